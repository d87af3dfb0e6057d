// Package validate holds the acceptance checks applied around parsing.
//
// The name and number predicates ([IsValidName], [ResolveNumber],
// [IsSuiteAggregate]) reject parser artifacts before they become records.
// [Response] and [Units] grade a parsed generation response, and
// [NoPlaceholders] is the pre-flight gate that refuses supporting documents
// still carrying template text.
package validate

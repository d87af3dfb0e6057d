// Package generate parses second-pass model output, the fully written unit
// definitions, into [Unit] records.
//
// The response is interpreted by an ordered cascade of strategies:
//
//  1. delimited: "--- Unit N ---" block markers with labelled lines and
//     "## Section" bodies
//  2. json: a whole-text JSON array or an object carrying a units list
//  3. fenced: every fenced code block, each read as JSON, as delimited text
//     or as one raw unit
//  4. synthetic: the whole trimmed response as one unit
//
// Empty input yields no units; any other input yields at least one.
package generate

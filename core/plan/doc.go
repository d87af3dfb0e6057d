// Package plan parses first-pass model output, the list of proposed work
// units, into [Proposal] records.
//
// The response runs through an ordered cascade and the first stage that
// yields at least one admissible proposal wins:
//
//  1. json: the whole text decoded as JSON (repaired when slightly malformed)
//  2. json-object: the first balanced {...} span in the text
//  3. headings: markdown headings naming the keyword and a number
//  4. minimal: loose "Unit N: Name" and "N. Name" lines
//
// A single wrapping code fence is removed first. Every stage drops suite
// aggregates, rejected numbers and implausible names, and a final pass
// resolves numbers and fills defaults whichever stage produced the records.
//
// The heading stage ignores everything from the first line containing the
// sentinel phrase (see [DefaultSentinel] and [WithSentinel]) onwards.
package plan

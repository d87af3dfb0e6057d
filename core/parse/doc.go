// Package parse provides format-agnostic helpers for slicing structured
// content out of raw language-model text. Models routinely ignore the output
// format they were asked for: JSON arrives wrapped in markdown fences, embedded
// in narrative prose, or subtly malformed. The helpers here locate candidate
// spans (fenced blocks, the first balanced object) and decode them with an
// automatic repair pass before giving up.
//
// None of the helpers return errors for malformed input; they report failure
// through a boolean so callers can move on to their next strategy. The typed
// [ParseStringAs] entry point is the exception and returns an error describing
// every attempt that failed.
package parse

// Package zapobs implements observability.Provider on top of go.uber.org/zap
// for services that already standardise on zap. Spans, counters and
// histograms are emitted as debug-level zap entries; counters also keep an
// in-memory running total.
package zapobs

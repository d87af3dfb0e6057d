// Package cascade runs an ordered list of parse strategies over one input and
// keeps the output of the first strategy that produces anything.
//
// Results are never merged across strategies. A strategy that panics is
// treated as having matched nothing, so a bug in one heuristic degrades the
// parse instead of aborting it. The order is explicit and inspectable through
// [Cascade.Names], which lets tests target a single stage in isolation.
//
// When a [observability.Provider] is attached with [WithObserver], every run
// opens a span, logs each stage at debug level, counts the winning stage on
// [observability.MetricStrategyHits] and records the run duration in
// milliseconds on [observability.MetricParseDuration].
package cascade

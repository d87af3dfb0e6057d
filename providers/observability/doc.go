// Package observability defines the interfaces and semantic conventions used
// for tracing, metrics and structured logging across agentplan.
//
// [Provider] composes [Tracer], [Metrics] and [Logger] into one injectable
// dependency. Parsers accept an optional Provider and stay silent without one.
// A Provider can also travel through a [context.Context] via
// [ContextWithObserver] and [ObserverFromContext].
//
// semconv.go holds the attribute keys, span names and metric names emitted by
// the parsers so every backend (slogobs, zapobs) reports them consistently.
package observability

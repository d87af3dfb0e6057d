// Package slogobs provides an observability.Provider backed by the standard
// library log/slog package. Spans and metrics are rendered as structured log
// records, so parse diagnostics need nothing beyond a log sink.
// The entry point is [New]; tune it with [WithFormat], [WithLevel],
// [WithOutput] and [WithLogger], or through AGENTPLAN_LOG_FORMAT and
// AGENTPLAN_LOG_LEVEL.
package slogobs

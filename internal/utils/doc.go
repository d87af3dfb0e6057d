// Package utils holds small helpers shared by the parsers: log-safe previews
// of model output and a wall-clock timer for per-run parse durations.
package utils

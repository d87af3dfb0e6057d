package slogobs

import (
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below DEBUG and is filtered out unless explicitly enabled.
const LevelTrace = slog.LevelDebug - 4

// LevelFromEnv returns the log level configured via AGENTPLAN_LOG_LEVEL,
// falling back to LOG_LEVEL. Default: INFO.
func LevelFromEnv() slog.Level {
	level := os.Getenv("AGENTPLAN_LOG_LEVEL")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	return ParseLogLevel(level)
}

// ParseLogLevel parses TRACE, DEBUG, INFO, WARN, WARNING or ERROR
// (case-insensitive). Unknown and empty values map to INFO.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

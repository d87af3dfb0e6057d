package zapobs

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leofalp/agentplan/providers/observability"
)

// Observer adapts a zap.Logger to observability.Provider.
type Observer struct {
	logger *zap.Logger

	mu       sync.Mutex
	counters map[string]*counter
}

var _ observability.Provider = (*Observer)(nil)

// New wraps an existing logger. A nil logger yields a no-op observer.
func New(logger *zap.Logger) *Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Observer{logger: logger, counters: make(map[string]*counter)}
}

// NewFromLevel builds a zap logger for the given level ("debug", "info",
// "warn", "error") and format ("json" selects the production encoder, anything
// else the development console encoder).
func NewFromLevel(level, format string) (*Observer, error) {
	var cfg zap.Config
	if strings.EqualFold(format, "json") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return New(logger), nil
}

// ParseLevel maps a level name to a zapcore.Level, defaulting to info.
// "trace" maps to debug since zap has no lower level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger returns the wrapped zap logger.
func (o *Observer) Logger() *zap.Logger {
	return o.logger
}

// Sync flushes buffered log entries.
func (o *Observer) Sync() error {
	return o.logger.Sync()
}

// --- TRACING ---

func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	s := &span{
		name:   name,
		start:  time.Now(),
		logger: o.logger.With(zap.String("span", name)),
		attrs:  append([]observability.Attribute(nil), attrs...),
	}
	s.logger.Debug("Span started", fields(attrs)...)
	return observability.ContextWithSpan(ctx, s), s
}

type span struct {
	name   string
	start  time.Time
	logger *zap.Logger

	mu    sync.Mutex
	attrs []observability.Attribute
}

func (s *span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("Span ended", append(fields(s.attrs), zap.Duration(observability.AttrDuration, time.Since(s.start)))...)
}

func (s *span) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

func (s *span) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, observability.String(observability.AttrStatus, code.String()))
	if description != "" {
		s.attrs = append(s.attrs, observability.String(observability.AttrStatusDescription, description))
	}
}

func (s *span) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	s.attrs = append(s.attrs, observability.Error(err))
	s.mu.Unlock()
	s.logger.Error("Span error", zap.Error(err))
}

func (s *span) AddEvent(name string, attrs ...observability.Attribute) {
	s.logger.Debug("Span event", append(fields(attrs), zap.String("event", name))...)
}

// --- METRICS ---

func (o *Observer) Counter(name string) observability.Counter {
	o.mu.Lock()
	defer o.mu.Unlock()
	c, ok := o.counters[name]
	if !ok {
		c = &counter{name: name, logger: o.logger}
		o.counters[name] = c
	}
	return c
}

func (o *Observer) Histogram(name string) observability.Histogram {
	return histogram{name: name, logger: o.logger}
}

// CounterValue reports the running total of a counter.
func (o *Observer) CounterValue(name string) int64 {
	o.mu.Lock()
	c, ok := o.counters[name]
	o.mu.Unlock()
	if !ok {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

type counter struct {
	name   string
	logger *zap.Logger
	mu     sync.Mutex
	value  int64
}

func (c *counter) Add(_ context.Context, value int64, attrs ...observability.Attribute) {
	c.mu.Lock()
	c.value += value
	current := c.value
	c.mu.Unlock()

	c.logger.Debug("Counter", append(fields(attrs),
		zap.String("metric", c.name),
		zap.Int64("value", current),
		zap.Int64("delta", value),
	)...)
}

type histogram struct {
	name   string
	logger *zap.Logger
}

func (h histogram) Record(_ context.Context, value float64, attrs ...observability.Attribute) {
	h.logger.Debug("Histogram", append(fields(attrs),
		zap.String("metric", h.name),
		zap.Float64("value", value),
	)...)
}

// --- LOGGING ---

func (o *Observer) Trace(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Debug(msg, append(fields(attrs), zap.Bool("trace", true))...)
}

func (o *Observer) Debug(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Debug(msg, fields(attrs)...)
}

func (o *Observer) Info(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Info(msg, fields(attrs)...)
}

func (o *Observer) Warn(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Warn(msg, fields(attrs)...)
}

func (o *Observer) Error(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Error(msg, fields(attrs)...)
}

func fields(attrs []observability.Attribute) []zap.Field {
	out := make([]zap.Field, 0, len(attrs)+3)
	for _, attr := range attrs {
		out = append(out, zap.Any(attr.Key, attr.Value))
	}
	return out
}

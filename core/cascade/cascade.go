package cascade

import (
	"context"
	"fmt"

	"github.com/leofalp/agentplan/internal/utils"
	"github.com/leofalp/agentplan/providers/observability"
)

// Strategy is one named stage of a cascade. Run returns the records it could
// recover from text, or an empty slice when the input does not have the shape
// the stage understands.
type Strategy[T any] struct {
	Name string
	Run  func(text string) []T
}

// Result is the outcome of a cascade run. Strategy names the stage whose
// output was kept and is empty when no stage matched.
type Result[T any] struct {
	Items    []T
	Strategy string
}

// Cascade is an immutable ordered list of strategies. It holds no state
// between runs and is safe for concurrent use.
type Cascade[T any] struct {
	span       string
	strategies []Strategy[T]
	observer   observability.Provider
}

// Option configures a Cascade.
type Option[T any] func(*Cascade[T])

// WithObserver attaches an observability provider. A nil provider disables
// instrumentation.
func WithObserver[T any](observer observability.Provider) Option[T] {
	return func(c *Cascade[T]) {
		c.observer = observer
	}
}

// New builds a cascade that tries strategies in the given order. span names
// the tracing span opened around each run.
//
// Example:
//
//	c := cascade.New(observability.SpanParsePlan, []cascade.Strategy[Proposal]{
//		{Name: "json", Run: parseJSON},
//		{Name: "minimal", Run: parseMinimal},
//	})
func New[T any](span string, strategies []Strategy[T], opts ...Option[T]) *Cascade[T] {
	c := &Cascade[T]{
		span:       span,
		strategies: append([]Strategy[T](nil), strategies...),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Names returns the stage names in execution order.
func (c *Cascade[T]) Names() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name
	}
	return names
}

// Stage returns the strategy registered under name.
func (c *Cascade[T]) Stage(name string) (Strategy[T], bool) {
	for _, s := range c.strategies {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy[T]{}, false
}

// Run tries each strategy in order and returns the first non-empty output.
// It never panics on behalf of a strategy.
func (c *Cascade[T]) Run(ctx context.Context, text string) Result[T] {
	if c.observer == nil {
		for _, s := range c.strategies {
			if items, _ := c.runStage(s, text); len(items) > 0 {
				return Result[T]{Items: items, Strategy: s.Name}
			}
		}
		return Result[T]{}
	}
	return c.runObserved(ctx, text)
}

func (c *Cascade[T]) runObserved(ctx context.Context, text string) Result[T] {
	timer := utils.NewTimer()

	ctx, span := c.observer.StartSpan(ctx, c.span,
		observability.Strings(observability.AttrParseStages, c.Names()),
		observability.Int(observability.AttrParseInputLength, len(text)),
	)
	defer span.End()
	ctx = observability.ContextWithObserver(ctx, c.observer)

	c.observer.Trace(ctx, "parse input",
		observability.String(observability.AttrParseInputPreview, utils.Preview(text, 0)),
	)

	var result Result[T]
	for _, s := range c.strategies {
		items, err := c.runStage(s, text)
		if err != nil {
			span.AddEvent(observability.EventStagePanic, observability.String(observability.AttrParseStrategy, s.Name))
			c.observer.Warn(ctx, "parse stage panicked",
				observability.String(observability.AttrParseStrategy, s.Name),
				observability.Error(err),
			)
			continue
		}
		if len(items) == 0 {
			span.AddEvent(observability.EventStageMiss, observability.String(observability.AttrParseStrategy, s.Name))
			c.observer.Debug(ctx, "parse stage missed",
				observability.String(observability.AttrParseStrategy, s.Name),
			)
			continue
		}

		span.AddEvent(observability.EventStageHit, observability.String(observability.AttrParseStrategy, s.Name))
		c.observer.Debug(ctx, "parse stage matched",
			observability.String(observability.AttrParseStrategy, s.Name),
			observability.Int(observability.AttrParseRecords, len(items)),
		)
		c.observer.Counter(observability.MetricStrategyHits).Add(ctx, 1,
			observability.String(observability.AttrParseStrategy, s.Name),
		)
		result = Result[T]{Items: items, Strategy: s.Name}
		break
	}

	timer.Stop()
	c.observer.Histogram(observability.MetricParseDuration).Record(ctx,
		float64(timer.Elapsed().Microseconds())/1000,
		observability.String(observability.AttrParseStrategy, result.Strategy),
	)

	if result.Strategy == "" {
		c.observer.Counter(observability.MetricParseEmpty).Add(ctx, 1)
		span.SetStatus(observability.StatusOK, "no stage matched")
		return result
	}

	span.SetAttributes(
		observability.String(observability.AttrParseStrategy, result.Strategy),
		observability.Int(observability.AttrParseRecords, len(result.Items)),
		observability.Duration(observability.AttrDuration, timer.Elapsed()),
	)
	span.SetStatus(observability.StatusOK, "")
	return result
}

// runStage calls one strategy, converting a panic into an error.
func (c *Cascade[T]) runStage(s Strategy[T], text string) (items []T, err error) {
	if s.Run == nil {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("stage %q: %v", s.Name, r)
		}
	}()
	return s.Run(text), nil
}

package plan

import (
	"context"
	"strings"

	"github.com/leofalp/agentplan/core/cascade"
	"github.com/leofalp/agentplan/core/parse"
	"github.com/leofalp/agentplan/providers/observability"
)

// Stage names, in cascade order.
const (
	StageJSON       = "json"
	StageJSONObject = "json-object"
	StageHeadings   = "headings"
	StageMinimal    = "minimal"
)

// Option configures a Parser.
type Option func(*options)

type options struct {
	keyword  string
	sentinel string
	observer observability.Provider
}

// WithKeyword sets the word that names a unit in headings ("## Agent 2: ...").
// Blank keywords are ignored.
func WithKeyword(keyword string) Option {
	return func(o *options) {
		if k := strings.TrimSpace(keyword); k != "" {
			o.keyword = k
		}
	}
}

// WithSentinel overrides the phrase that ends the heading scan. An empty
// sentinel disables truncation.
func WithSentinel(sentinel string) Option {
	return func(o *options) {
		o.sentinel = sentinel
	}
}

// WithObserver attaches an observability provider to every parse.
func WithObserver(observer observability.Provider) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// Parser parses plan responses. It is immutable and safe for concurrent use.
type Parser struct {
	keyword  string
	observer observability.Provider
	cascade  *cascade.Cascade[candidate]
}

// NewParser builds a parser with the "Unit" keyword and [DefaultSentinel]
// unless options say otherwise.
func NewParser(opts ...Option) *Parser {
	o := options{keyword: DefaultKeyword, sentinel: DefaultSentinel}
	for _, opt := range opts {
		opt(&o)
	}

	headings := headingFormat{keyword: o.keyword, sentinel: o.sentinel}
	minimal := newMinimalFormat(o.keyword)

	return &Parser{
		keyword:  o.keyword,
		observer: o.observer,
		cascade: cascade.New(observability.SpanParsePlan, []cascade.Strategy[candidate]{
			{Name: StageJSON, Run: fromJSON},
			{Name: StageJSONObject, Run: fromFirstObject},
			{Name: StageHeadings, Run: headings.parse},
			{Name: StageMinimal, Run: minimal.parse},
		}, cascade.WithObserver[candidate](o.observer)),
	}
}

var defaultParser = NewParser()

// ParseResponse parses text with the default parser.
func ParseResponse(text string) Plan {
	return defaultParser.Parse(context.Background(), text)
}

// StageNames returns the cascade order.
func (p *Parser) StageNames() []string {
	return p.cascade.Names()
}

// Parse returns the proposals recovered from text. It never panics; text no
// stage understands yields a plan with no units.
func (p *Parser) Parse(ctx context.Context, text string) Plan {
	body := parse.StripWrappingFence(text)
	if body == "" {
		return Plan{Units: []Proposal{}}
	}

	result := p.cascade.Run(ctx, body)
	units := finalize(result.Items)

	if p.observer != nil {
		p.observer.Debug(ctx, "plan parsed",
			observability.String(observability.AttrParseKind, "plan"),
			observability.String(observability.AttrParseKeyword, p.keyword),
			observability.String(observability.AttrParseStrategy, result.Strategy),
			observability.Int(observability.AttrParseRecords, len(units)),
		)
	}
	return Plan{Units: units, Strategy: result.Strategy}
}

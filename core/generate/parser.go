package generate

import (
	"context"
	"strings"

	"github.com/leofalp/agentplan/core/cascade"
	"github.com/leofalp/agentplan/core/parse"
	"github.com/leofalp/agentplan/providers/observability"
)

// DefaultKeyword is the word used in block markers and synthesized ids.
const DefaultKeyword = "Unit"

// Stage names, in cascade order.
const (
	StageDelimited = "delimited"
	StageJSON      = "json"
	StageFenced    = "fenced"
	StageSynthetic = "synthetic"
)

// Option configures a Parser.
type Option func(*options)

type options struct {
	keyword  string
	observer observability.Provider
}

// WithKeyword sets the word that names a unit in block markers ("--- Agent 1 ---")
// and in synthesized ids and names. Blank keywords are ignored.
func WithKeyword(keyword string) Option {
	return func(o *options) {
		if k := strings.TrimSpace(keyword); k != "" {
			o.keyword = k
		}
	}
}

// WithObserver attaches an observability provider to every parse.
func WithObserver(observer observability.Provider) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// Parser parses generation responses. It is immutable and safe for
// concurrent use.
type Parser struct {
	keyword   string
	delimited delimitedFormat
	json      jsonFormat
	cascade   *cascade.Cascade[Unit]
}

// NewParser builds a parser. Without options it recognises "--- Unit N ---"
// markers and stays silent.
func NewParser(opts ...Option) *Parser {
	o := options{keyword: DefaultKeyword}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Parser{
		keyword:   o.keyword,
		delimited: newDelimitedFormat(o.keyword),
		json:      jsonFormat{positional: positional{keyword: o.keyword}},
	}
	p.cascade = cascade.New(observability.SpanParseGeneration, []cascade.Strategy[Unit]{
		{Name: StageDelimited, Run: p.parseDelimited},
		{Name: StageJSON, Run: p.parseJSON},
		{Name: StageFenced, Run: p.parseFenced},
		{Name: StageSynthetic, Run: p.parseSynthetic},
	}, cascade.WithObserver[Unit](o.observer))
	return p
}

var defaultParser = NewParser()

// ParseResponse parses text with the default parser.
func ParseResponse(text string) []Unit {
	return defaultParser.Parse(context.Background(), text)
}

// StageNames returns the cascade order.
func (p *Parser) StageNames() []string {
	return p.cascade.Names()
}

// Parse returns the units recovered from text. Blank text yields an empty,
// non-nil slice; anything else yields at least one unit. A bare JSON object
// outside a fence is not read field by field: it becomes one synthetic unit
// whose raw text is the trimmed input.
func (p *Parser) Parse(ctx context.Context, text string) []Unit {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []Unit{}
	}

	result := p.cascade.Run(ctx, trimmed)
	if len(result.Items) == 0 {
		return []Unit{p.json.textUnit(trimmed, 0)}
	}
	return result.Items
}

func (p *Parser) parseDelimited(text string) []Unit {
	return p.delimited.units(text, 0)
}

func (p *Parser) parseJSON(text string) []Unit {
	data, ok := parse.DecodeJSON(text)
	if !ok {
		return nil
	}
	elements, ok := p.json.elements(data, false)
	if !ok {
		return nil
	}
	return p.json.units(elements, 0)
}

// parseFenced reads each fenced block in turn: JSON first, then delimited
// markers, then the block text itself.
func (p *Parser) parseFenced(text string) []Unit {
	var units []Unit
	for _, block := range parse.FencedBlocks(text) {
		if data, ok := parse.DecodeJSON(block); ok {
			if elements, ok := p.json.elements(data, true); ok {
				units = append(units, p.json.units(elements, len(units))...)
				continue
			}
		}
		if fromBlock := p.delimited.units(block, len(units)); len(fromBlock) > 0 {
			units = append(units, fromBlock...)
			continue
		}
		units = append(units, p.json.textUnit(block, len(units)))
	}
	return units
}

func (p *Parser) parseSynthetic(text string) []Unit {
	return []Unit{p.json.textUnit(text, 0)}
}

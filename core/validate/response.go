package validate

import (
	"fmt"
	"strings"

	"github.com/leofalp/agentplan/core/generate"
)

// Messages reported by Response.
const (
	ErrEmptyResponse = "empty response from upstream model"
	ErrNoUnits       = "no units could be parsed from the response"
)

// Result is the outcome of validating a parsed response. Valid is true iff
// Errors is empty; warnings never affect validity.
type Result struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Response validates the units parsed from text. Blank text or an empty unit
// list is an error. Each unit lacking both instructions and raw content, or
// lacking an id, adds a warning.
func Response(text string, units []generate.Unit) Result {
	r := Result{Errors: []string{}, Warnings: []string{}}

	if strings.TrimSpace(text) == "" {
		r.Errors = append(r.Errors, ErrEmptyResponse)
		return r
	}
	if len(units) == 0 {
		r.Errors = append(r.Errors, ErrNoUnits)
		return r
	}

	for i, u := range units {
		name := displayName(u, i)
		if strings.TrimSpace(u.Instructions) == "" && strings.TrimSpace(u.Raw) == "" {
			r.Warnings = append(r.Warnings, name+": missing instructions or content")
		}
		if strings.TrimSpace(u.ID) == "" {
			r.Warnings = append(r.Warnings, name+": missing id (recommended for traceability)")
		}
	}

	r.Valid = true
	return r
}

// Units validates an already parsed list without the source text.
func Units(units []generate.Unit) Result {
	text := ""
	if len(units) > 0 {
		text = "ok"
	}
	return Response(text, units)
}

func displayName(u generate.Unit, index int) string {
	if u.Name != "" {
		return u.Name
	}
	if u.ID != "" {
		return u.ID
	}
	return fmt.Sprintf("Unit %d", index+1)
}

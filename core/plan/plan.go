package plan

import "strings"

const (
	// DefaultKeyword is the word that names a unit in headings.
	DefaultKeyword = "Unit"
	// DefaultSentinel marks the end of the proposal list in the instructions
	// given to the upstream model. Content after it is never attributed to a
	// unit by the heading stage.
	DefaultSentinel = "Ready for Pass 2"
	// DefaultKind is the category assigned to proposals that carry none.
	DefaultKind = "agent"
	// UnknownEstimate stands in for a missing time estimate.
	UnknownEstimate = "—"
)

// Proposal is one proposed work unit.
type Proposal struct {
	Number        int            `json:"number" yaml:"number"`
	Name          string         `json:"name" yaml:"name"`
	Description   string         `json:"description" yaml:"description"`
	Rationale     string         `json:"rationale" yaml:"rationale"`
	KeyActions    []string       `json:"keyActions" yaml:"keyActions"`
	EstimatedTime string         `json:"estimatedTime" yaml:"estimatedTime"`
	Kind          string         `json:"type" yaml:"type"`
	Extra         map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Plan is the result of parsing a plan response.
type Plan struct {
	Units []Proposal `json:"units" yaml:"units"`
	// Strategy names the stage that produced Units; empty when none did.
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// numberState tracks how a candidate's number was obtained.
type numberState int

const (
	numberUnset numberState = iota
	numberResolved
	numberRejected
)

// candidate is a proposal before finalization.
type candidate struct {
	Proposal
	state numberState
}

// stripQuotes removes leading and trailing double quotes, then surrounding
// whitespace.
func stripQuotes(s string) string {
	return strings.TrimSpace(strings.Trim(s, `"`))
}

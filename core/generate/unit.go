package generate

import (
	"strconv"
	"strings"
)

// Unit is one generated work unit.
type Unit struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Kind          string `json:"type,omitempty" yaml:"type,omitempty"`
	Purpose       string `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	Instructions  string `json:"instructions" yaml:"instructions"`
	DemoScript    string `json:"demoScript" yaml:"demoScript"`
	BusinessValue string `json:"businessValue" yaml:"businessValue"`
	Transition    string `json:"transition" yaml:"transition"`
	// Raw is the block text or the indented source JSON the unit came from.
	Raw string `json:"raw" yaml:"raw"`
}

// positional derives the synthesized id and display name for the unit at
// zero-based index.
type positional struct {
	keyword string
}

func (p positional) id(index int) string {
	return strings.ToLower(p.keyword) + "-" + strconv.Itoa(index+1)
}

func (p positional) name(index int) string {
	return p.keyword + " " + strconv.Itoa(index+1)
}

// textUnit wraps free text as a unit whose instructions and raw are the text.
func (p positional) textUnit(text string, index int) Unit {
	return Unit{
		ID:           p.id(index),
		Name:         p.name(index),
		Instructions: text,
		Raw:          text,
	}
}

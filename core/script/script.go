package script

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leofalp/agentplan/core/generate"
)

// SectionType classifies a script section.
type SectionType string

const (
	SectionOpening SectionType = "opening"
	SectionUnit    SectionType = "unit"
	SectionCallout SectionType = "callout"
	SectionClosing SectionType = "closing"
)

// contextLimit caps how much of the company context and objectives is quoted
// in the opening.
const contextLimit = 300

const calloutTitle = "💡 Business value"

// Context is the demo background supplied by the presenter.
type Context struct {
	CompanyContext string `json:"companyContext" yaml:"companyContext"`
	DemoObjectives string `json:"demoObjectives" yaml:"demoObjectives"`
	// Keyword titles unit sections ("## Unit 2: ..."); defaults to "Unit".
	Keyword string `json:"keyword,omitempty" yaml:"keyword,omitempty"`
}

// Section is one block of the script.
type Section struct {
	Type    SectionType `json:"type" yaml:"type"`
	Title   string      `json:"title,omitempty" yaml:"title,omitempty"`
	Number  int         `json:"number,omitempty" yaml:"number,omitempty"`
	Name    string      `json:"name,omitempty" yaml:"name,omitempty"`
	Content string      `json:"content" yaml:"content"`
}

// Script is a generated demo script.
type Script struct {
	Markdown string    `json:"markdown" yaml:"markdown"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Generate builds the script for units in order. Each unit section shows the
// unit's demo script, falling back to its instructions and then its raw text.
// The callout quotes the unit's business value when it has one.
func Generate(units []generate.Unit, ctx Context) Script {
	keyword := strings.TrimSpace(ctx.Keyword)
	if keyword == "" {
		keyword = generate.DefaultKeyword
	}

	sections := make([]Section, 0, 2*len(units)+2)

	opening := []string{"Welcome to this demo."}
	if c := strings.TrimSpace(ctx.CompanyContext); c != "" {
		opening = append(opening, "Context: "+ellipsize(c, contextLimit))
	}
	if o := strings.TrimSpace(ctx.DemoObjectives); o != "" {
		opening = append(opening, "Today's objectives: "+ellipsize(o, contextLimit))
	}
	sections = append(sections, Section{
		Type:    SectionOpening,
		Title:   "Opening",
		Content: strings.Join(opening, "\n\n"),
	})

	for i, u := range units {
		name := u.Name
		if name == "" {
			name = fmt.Sprintf("%s %d", keyword, i+1)
		}
		sections = append(sections, Section{
			Type:    SectionUnit,
			Title:   fmt.Sprintf("%s %d: %s", keyword, i+1, name),
			Number:  i + 1,
			Name:    name,
			Content: firstNonBlank(u.DemoScript, u.Instructions, u.Raw),
		})

		callout := fmt.Sprintf("Highlight the outcome and value of %s for the customer.", name)
		if bv := strings.TrimSpace(u.BusinessValue); bv != "" {
			callout = bv
		}
		sections = append(sections, Section{
			Type:    SectionCallout,
			Title:   calloutTitle,
			Content: callout,
		})
	}

	sections = append(sections, Section{
		Type:  SectionClosing,
		Title: "Closing",
		Content: strings.Join([]string{
			"Summarize what we showed and how it supports the objectives.",
			"Thank the audience and offer next steps or Q&A.",
		}, "\n\n"),
	})

	return Script{Markdown: Markdown(sections), Sections: sections}
}

// Markdown renders sections as a markdown document. Unit content is fenced;
// a longer fence is used when the content already contains one.
func Markdown(sections []Section) string {
	var b strings.Builder
	b.WriteString("# Demo script\n\n")

	for _, s := range sections {
		content := strings.TrimSpace(s.Content)
		switch s.Type {
		case SectionOpening, SectionClosing:
			fmt.Fprintf(&b, "## %s\n\n%s\n\n\n", s.Title, content)
		case SectionUnit:
			fence := fenceFor(content)
			fmt.Fprintf(&b, "## %s\n\n%s\n%s\n%s\n\n\n", s.Title, fence, content, fence)
		case SectionCallout:
			title := s.Title
			if title == "" {
				title = calloutTitle
			}
			fmt.Fprintf(&b, "### %s\n\n%s\n\n\n", title, content)
		}
	}
	return strings.TrimSpace(b.String())
}

// fenceFor returns a backtick fence one longer than the longest run of
// backticks in content, and at least three long.
func fenceFor(content string) string {
	longest, run := 0, 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}

func ellipsize(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "…"
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

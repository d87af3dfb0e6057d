package generate

import (
	"regexp"
	"strings"

	"github.com/leofalp/agentplan/core/parse"
)

// Section titles recognised inside a delimited block, in output order.
const (
	SectionInstructions  = "Instructions"
	SectionDemoScript    = "Demo Script"
	SectionBusinessValue = "Business Value"
	SectionTransition    = "Transition"
)

var (
	// labelLineRegex marks the start of any "Label: value" line and therefore
	// the end of the previous label's value.
	labelLineRegex = regexp.MustCompile(`^[A-Z][A-Za-z ]*:(?:\s|$)`)
	// subHeadingRegex matches a level-two heading; deeper headings stay inside
	// the enclosing section body.
	subHeadingRegex = regexp.MustCompile(`^##(?:\s|$)`)
)

// delimitedFormat splits text on "--- <keyword> N ---" markers.
type delimitedFormat struct {
	positional
	marker   *regexp.Regexp
	sections map[string]*regexp.Regexp
	labels   map[string]*regexp.Regexp
}

func newDelimitedFormat(keyword string) delimitedFormat {
	f := delimitedFormat{
		positional: positional{keyword: keyword},
		marker:     regexp.MustCompile(`(?im)^---\s*` + regexp.QuoteMeta(keyword) + `\s+(\d+)\s*---`),
		sections:   make(map[string]*regexp.Regexp),
		labels:     make(map[string]*regexp.Regexp),
	}
	for _, title := range []string{SectionInstructions, SectionDemoScript, SectionBusinessValue, SectionTransition} {
		f.sections[title] = regexp.MustCompile(`(?i)^##\s*` + regexp.QuoteMeta(title) + `\s*:?\s*$`)
	}
	for _, label := range []string{"Name", "Type", "Purpose"} {
		f.labels[label] = regexp.MustCompile(`(?i)^` + label + `:\s*(.*)$`)
	}
	return f
}

// units parses every non-empty block after a marker. offset is the number of
// units already emitted by the caller and shifts the positional ids.
// Text before the first marker is ignored.
func (f delimitedFormat) units(text string, offset int) []Unit {
	locs := f.marker.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var units []Unit
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		block := strings.TrimSpace(text[loc[1]:end])
		if block == "" {
			continue
		}
		units = append(units, f.block(block, offset+len(units)))
	}
	return units
}

func (f delimitedFormat) block(raw string, index int) Unit {
	lines := parse.Lines(raw)

	u := Unit{
		ID:            f.id(index),
		Name:          f.label(lines, "Name"),
		Kind:          f.label(lines, "Type"),
		Purpose:       f.label(lines, "Purpose"),
		Instructions:  f.section(lines, SectionInstructions),
		DemoScript:    f.section(lines, SectionDemoScript),
		BusinessValue: f.section(lines, SectionBusinessValue),
		Transition:    f.section(lines, SectionTransition),
		Raw:           raw,
	}
	if u.Name == "" {
		u.Name = f.name(index)
	}
	if u.Instructions == "" {
		u.Instructions = raw
	}
	return u
}

// label returns the value of the first "Label: value" line. The value runs
// over following lines until the next label line or sub-heading.
func (f delimitedFormat) label(lines []string, label string) string {
	re := f.labels[label]
	for i, line := range lines {
		m := re.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		parts := []string{m[1]}
		for _, next := range lines[i+1:] {
			t := strings.TrimSpace(next)
			if labelLineRegex.MatchString(t) || subHeadingRegex.MatchString(t) {
				break
			}
			parts = append(parts, next)
		}
		return strings.TrimSpace(strings.Join(parts, "\n"))
	}
	return ""
}

// section returns the body under "## <title>" up to the next level-two heading.
func (f delimitedFormat) section(lines []string, title string) string {
	re := f.sections[title]
	for i, line := range lines {
		if !re.MatchString(strings.TrimSpace(line)) {
			continue
		}
		var body []string
		for _, next := range lines[i+1:] {
			if subHeadingRegex.MatchString(strings.TrimSpace(next)) {
				break
			}
			body = append(body, next)
		}
		return strings.TrimSpace(strings.Join(body, "\n"))
	}
	return ""
}

package plan

import (
	"strconv"
	"strings"

	"github.com/leofalp/agentplan/core/parse"
)

// headingFormat recognises markdown headings such as "## Unit 3: Intake Bot"
// and the block of lines under each.
type headingFormat struct {
	keyword  string
	sentinel string
}

func (f headingFormat) parse(text string) []candidate {
	lines := f.truncate(parse.Lines(text))

	var starts []int
	for i, line := range lines {
		if f.isHeading(line) {
			starts = append(starts, i)
		}
	}

	var cands []candidate
	for k, start := range starts {
		end := len(lines)
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		cands = append(cands, f.block(lines[start], lines[start+1:end]))
	}
	return filter(cands)
}

// truncate drops the first line containing the sentinel and everything after it.
func (f headingFormat) truncate(lines []string) []string {
	if f.sentinel == "" {
		return lines
	}
	for i, line := range lines {
		if strings.Contains(line, f.sentinel) {
			return lines[:i]
		}
	}
	return lines
}

// isHeading reports whether line starts with '#' and contains the keyword
// followed somewhere later by a digit. The keyword match is case-sensitive.
func (f headingFormat) isHeading(line string) bool {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "#") {
		return false
	}
	idx := strings.Index(t, f.keyword)
	if idx == -1 {
		return false
	}
	return strings.ContainsAny(t[idx+len(f.keyword):], "0123456789")
}

// number returns the digits right after the keyword, skipping spaces, or 0.
func (f headingFormat) number(line string) int {
	idx := strings.Index(line, f.keyword)
	if idx == -1 {
		return 0
	}
	rest := strings.TrimLeft(line[idx+len(f.keyword):], " ")
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return n
}

// name takes the text after the last colon of the cleaned heading, or the
// text after the keyword, its number and an optional period.
func (f headingFormat) name(line string) string {
	cleaned := cleanHeading(line)
	if i := strings.LastIndex(cleaned, ":"); i != -1 {
		return stripQuotes(cleanHeading(cleaned[i+1:]))
	}
	idx := strings.Index(cleaned, f.keyword)
	if idx == -1 {
		return stripQuotes(cleaned)
	}
	rest := strings.TrimLeft(cleaned[idx+len(f.keyword):], " ")
	rest = strings.TrimLeft(rest, "0123456789")
	rest = strings.TrimPrefix(rest, ".")
	return stripQuotes(cleanHeading(rest))
}

func (f headingFormat) block(heading string, lines []string) candidate {
	number := f.number(heading)
	c := candidate{
		Proposal: Proposal{Number: number, Name: f.name(heading), Kind: DefaultKind},
		state:    numberResolved,
	}
	if number < 1 {
		c.state = numberRejected
	}

	var rationale string
	labelled := false
	for _, line := range lines {
		if !isLabelLine(line) {
			continue
		}
		value := cleanHeading(line[strings.Index(line, ":")+1:])
		if value != "" {
			rationale, labelled = value, true
			break
		}
	}

	var bullets, details []string
	for _, line := range lines {
		t := strings.TrimSpace(line)
		switch {
		case t == "":
		case t[0] == '-' || t[0] == '*':
			if b := cleanHeading(t[1:]); b != "" {
				bullets = append(bullets, b)
			}
		case isLabelLine(line):
		default:
			details = append(details, line)
		}
	}
	detail := strings.TrimSpace(strings.Join(details, "\n"))

	if labelled {
		c.KeyActions = bullets
		c.Description = joinNonEmpty("\n\n", rationale, detail)
	} else {
		rationale = firstLine(lines)
		c.KeyActions = []string{}
		c.Description = detail
	}
	if c.Description == "" {
		c.Description = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	c.Rationale = rationale
	if c.Rationale == "" && len(c.KeyActions) > 0 {
		c.Rationale = c.KeyActions[0]
	}
	if c.Rationale == "" {
		c.Rationale = c.Description
	}

	if c.Name == "" {
		c.Name = cleanHeading(heading)
	}
	if c.Name == "" {
		c.Name = f.keyword + " " + strconv.Itoa(number)
	}
	return c
}

// isLabelLine reports whether line is a "Purpose: ..." or "Description: ..."
// label, matched case-insensitively anywhere before a colon.
func isLabelLine(line string) bool {
	if !strings.Contains(line, ":") {
		return false
	}
	lower := strings.ToLower(line)
	return strings.Contains(lower, "purpose") || strings.Contains(lower, "description")
}

// firstLine returns the first non-empty line, cleaned of markdown markers.
// A leading bullet is kept.
func firstLine(lines []string) string {
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		return cleanHeading(t)
	}
	return ""
}

// cleanHeading removes '#', '*' and '\' characters and trims the result.
func cleanHeading(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '\\':
			return -1
		}
		return r
	}, s))
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

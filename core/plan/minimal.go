package plan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/leofalp/agentplan/core/parse"
)

var (
	numberedLineRegex = regexp.MustCompile(`^\s*(\d+)[.)]\s*(.+?)(?:\s*\*\*)?$`)
	bulletNumberRegex = regexp.MustCompile(`^\s*[-*]\s*(\d+)[.)]?\s*(.+?)$`)
	descLabelRegex    = regexp.MustCompile(`(?i)(?:Description|Purpose|Role):\s*(.+)`)
	bulletLineRegex   = regexp.MustCompile(`^\s*[-*•]`)
	bulletPrefixRegex = regexp.MustCompile(`^\s*[-*•]\s*`)
)

// minimalFormat is the last-resort list recogniser: "Unit N: Name" lines,
// headed or not, and "N. Name" or "- N. Name" list items.
type minimalFormat struct {
	keyword  string
	patterns []*regexp.Regexp
}

func newMinimalFormat(keyword string) minimalFormat {
	kw := regexp.QuoteMeta(keyword)
	return minimalFormat{
		keyword: keyword,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b` + kw + `\s+(\d+):\s*(.+?)(?:\s*\*\*)?$`),
			regexp.MustCompile(`(?i)^\s*#{1,6}\s*\*?\*?` + kw + `\s+(\d+):\s*(.+?)(?:\s*\*\*)?$`),
			numberedLineRegex,
			bulletNumberRegex,
		},
	}
}

type minimalHeader struct {
	index  int
	number int
	name   string
}

func (f minimalFormat) match(line string) (minimalHeader, bool) {
	for _, re := range f.patterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			n = 0
		}
		return minimalHeader{number: n, name: strings.TrimSpace(strings.ReplaceAll(m[2], "**", ""))}, true
	}
	return minimalHeader{}, false
}

func (f minimalFormat) parse(text string) []candidate {
	lines := parse.Lines(text)

	var headers []minimalHeader
	for i, line := range lines {
		if h, ok := f.match(line); ok {
			h.index = i
			headers = append(headers, h)
		}
	}

	var cands []candidate
	for k, h := range headers {
		end := len(lines)
		if k+1 < len(headers) {
			end = headers[k+1].index
		}
		cands = append(cands, f.block(h, lines[h.index+1:end]))
	}
	return filter(cands)
}

func (f minimalFormat) block(h minimalHeader, lines []string) candidate {
	blockText := strings.TrimSpace(strings.Join(lines, "\n"))

	name := h.name
	if name == "" {
		name = f.keyword + " " + strconv.Itoa(h.number)
	}

	description := ""
	if line, ok := firstMatching(lines, descLabelRegex); ok {
		description = stripEmphasis(descLabelRegex.FindStringSubmatch(line)[1])
	} else {
		head := lines
		if len(head) > 3 {
			head = head[:3]
		}
		var parts []string
		for _, l := range head {
			if l != "" {
				parts = append(parts, l)
			}
		}
		description = stripEmphasis(strings.Join(parts, " "))
	}

	keyActions := []string{}
	for _, l := range lines {
		if !bulletLineRegex.MatchString(l) {
			continue
		}
		if action := stripEmphasis(bulletPrefixRegex.ReplaceAllString(l, "")); action != "" {
			keyActions = append(keyActions, action)
		}
	}
	if len(keyActions) == 0 && blockText != "" {
		keyActions = []string{blockText}
	}

	c := candidate{
		Proposal: Proposal{
			Number:      h.number,
			Name:        stripQuotes(name),
			Description: description,
			KeyActions:  keyActions,
			Kind:        DefaultKind,
		},
		state: numberResolved,
	}
	if h.number < 1 {
		c.state = numberRejected
	}
	if c.Description == "" {
		c.Description = blockText
	}

	switch {
	case description != "":
		c.Rationale = description
	case len(keyActions) > 0:
		c.Rationale = keyActions[0]
	default:
		c.Rationale = blockText
	}
	return c
}

func firstMatching(lines []string, re *regexp.Regexp) (string, bool) {
	for _, l := range lines {
		if re.MatchString(l) {
			return l, true
		}
	}
	return "", false
}

func stripEmphasis(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}

package validate

import (
	"regexp"
	"strings"

	"github.com/leofalp/agentplan/core/document"
)

// PlaceholderPhrases are the phrases that mark unreplaced template content.
var PlaceholderPhrases = []string{"placeholder", "replace with actual"}

var placeholderRegex = buildPlaceholderRegex(PlaceholderPhrases)

func buildPlaceholderRegex(phrases []string) *regexp.Regexp {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(quoted, "|"))
}

// HasPlaceholderContent reports whether text contains a placeholder phrase,
// ignoring case.
func HasPlaceholderContent(text string) bool {
	return placeholderRegex.MatchString(text)
}

// PlaceholderResult names the first document that failed the placeholder
// guard. DocumentName is empty when Valid is true.
type PlaceholderResult struct {
	Valid        bool   `json:"valid" yaml:"valid"`
	DocumentName string `json:"documentName,omitempty" yaml:"documentName,omitempty"`
}

// NoPlaceholders scans the selected library documents and then every
// reference document, stopping at the first one with placeholder content.
func NoPlaceholders(docs []document.Document) PlaceholderResult {
	for _, d := range docs {
		if d.Kind == document.KindLibrary && d.Selected && HasPlaceholderContent(d.Content) {
			return PlaceholderResult{DocumentName: d.DisplayName(d.ID)}
		}
	}
	for _, d := range docs {
		if d.Kind == document.KindReference && HasPlaceholderContent(d.Content) {
			return PlaceholderResult{DocumentName: d.DisplayName("Reference file")}
		}
	}
	return PlaceholderResult{Valid: true}
}

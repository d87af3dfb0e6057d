package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultPreviewLength bounds the model output copied into log attributes.
	DefaultPreviewLength = 120
)

// Preview collapses whitespace runs in s to single spaces and cuts the result
// to at most maxLen runes, noting the original rune count when it truncates.
// A non-positive maxLen selects DefaultPreviewLength.
func Preview(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultPreviewLength
	}
	flat := strings.Join(strings.Fields(s), " ")
	total := utf8.RuneCountInString(flat)
	if total <= maxLen {
		return flat
	}
	runes := []rune(flat)
	return fmt.Sprintf("%s... (truncated, total: %d chars)", string(runes[:maxLen]), total)
}

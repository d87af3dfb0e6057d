package parse

import (
	"regexp"
	"strings"
)

// fencePattern matches a fenced code block with an optional language tag.
// The body is captured lazily so consecutive blocks stay separate.
const fencePattern = "```(?:[A-Za-z0-9_+-]+)?[ \\t]*\\n?(.*?)```"

var (
	fencedBlockRegex  = regexp.MustCompile("(?s)" + fencePattern)
	leadingFenceRegex = regexp.MustCompile("(?s)^" + fencePattern)
)

// StripWrappingFence removes a single fenced block wrapping the start of text
// and returns its trimmed body. Text that does not begin with a fence is
// returned trimmed but otherwise unchanged.
func StripWrappingFence(text string) string {
	trimmed := strings.TrimSpace(text)
	m := leadingFenceRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed
	}
	return strings.TrimSpace(m[1])
}

// FencedBlocks returns the trimmed bodies of every fenced block in text, in
// order of appearance. Empty blocks are skipped.
func FencedBlocks(text string) []string {
	matches := fencedBlockRegex.FindAllStringSubmatch(text, -1)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		if body := strings.TrimSpace(m[1]); body != "" {
			blocks = append(blocks, body)
		}
	}
	return blocks
}

// Lines splits text on LF or CRLF line endings.
func Lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

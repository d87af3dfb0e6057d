package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/leofalp/agentplan/core/parse"
)

// ErrNoChoices is returned when the body carries no completion choice.
var ErrNoChoices = errors.New("chat completion has no choices")

type completion struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type contentPart struct {
	Text *string `json:"text"`
}

// Content returns choices[0].message.content from a chat-completion body.
// String content is returned as is. An array of content parts yields the
// concatenation of their text fields. Any other object is re-encoded as
// JSON. A null or missing content is the empty string.
func Content(body []byte) (string, error) {
	env, err := parse.ParseStringAs[completion](string(body))
	if err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	if len(env.Choices) == 0 {
		return "", ErrNoChoices
	}
	return contentText(env.Choices[0].Message.Content)
}

func contentText(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode content string: %w", err)
		}
		return s, nil
	case '[':
		var parts []json.RawMessage
		if err := json.Unmarshal(raw, &parts); err != nil {
			return "", fmt.Errorf("decode content parts: %w", err)
		}
		var b strings.Builder
		for _, p := range parts {
			var part contentPart
			if json.Unmarshal(p, &part) == nil && part.Text != nil {
				b.WriteString(*part.Text)
			}
		}
		return b.String(), nil
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return "", fmt.Errorf("re-encode content object: %w", err)
		}
		return buf.String(), nil
	default:
		return "", nil
	}
}

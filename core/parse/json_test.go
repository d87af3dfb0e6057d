package parse

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{name: "valid object", input: `{"name":"Cost Analyzer"}`, wantOK: true},
		{name: "valid array with padding", input: "  [1, 2, 3]\n", wantOK: true},
		{name: "trailing comma repaired", input: `{"name": "Risk", "n": 1,}`, wantOK: true},
		{name: "single quotes repaired", input: `{'name': 'Risk'}`, wantOK: true},
		{name: "unquoted keys repaired", input: `{name: "Risk"}`, wantOK: true},
		{name: "prose rejected", input: "just some prose", wantOK: false},
		{name: "empty rejected", input: "   ", wantOK: false},
		{name: "heading rejected", input: "## Unit 1: Cost Analyzer", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeJSON(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("DecodeJSON() ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if ok && !json.Valid(got) {
				t.Errorf("DecodeJSON() returned invalid JSON: %q", got)
			}
		})
	}
}

func TestDecodeValue_KeepsNumbers(t *testing.T) {
	v, ok := DecodeValue(`{"agent_number": 12, "ratio": 0.5}`)
	if !ok {
		t.Fatal("DecodeValue() failed on valid JSON")
	}
	obj, isMap := v.(map[string]any)
	if !isMap {
		t.Fatalf("DecodeValue() = %T, want map[string]any", v)
	}
	if n, _ := obj["agent_number"].(json.Number); n.String() != "12" {
		t.Errorf("agent_number = %#v, want json.Number(12)", obj["agent_number"])
	}
	if n, _ := obj["ratio"].(json.Number); n.String() != "0.5" {
		t.Errorf("ratio = %#v, want json.Number(0.5)", obj["ratio"])
	}
}

func TestFirstObject(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "object in prose",
			input:  "Here is the plan:\n{\"agents\":[{\"name\":\"A\"}]}\nThanks!",
			want:   `{"agents":[{"name":"A"}]}`,
			wantOK: true,
		},
		{
			name:   "braces inside strings ignored",
			input:  `note {"text":"a } inside","n":1} tail`,
			want:   `{"text":"a } inside","n":1}`,
			wantOK: true,
		},
		{
			name:   "escaped quote inside string",
			input:  `{"text":"He said \"hi {\""}`,
			want:   `{"text":"He said \"hi {\""}`,
			wantOK: true,
		},
		{
			name:   "first of two objects",
			input:  `{"a":1} and {"b":2}`,
			want:   `{"a":1}`,
			wantOK: true,
		},
		{
			name:   "unbalanced brace skipped",
			input:  "a stray { then {\"a\":1}",
			want:   `{"a":1}`,
			wantOK: true,
		},
		{
			name:   "no object",
			input:  "plain text",
			wantOK: false,
		},
		{
			name:   "mismatched brackets",
			input:  `{"a":[1,2}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstObject(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("FirstObject() ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("FirstObject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstObject_SkipsUnbalancedStart(t *testing.T) {
	got, ok := FirstObject(`} {"a": {"b": 1}} {`)
	if !ok {
		t.Fatal("FirstObject() found nothing")
	}
	if got != `{"a": {"b": 1}}` {
		t.Errorf("FirstObject() = %q", got)
	}
}

func TestParseStringAs_Primitives(t *testing.T) {
	if got, err := ParseStringAs[string]("hello"); err != nil || got != "hello" {
		t.Errorf("ParseStringAs[string]() = %q, %v", got, err)
	}
	if got, err := ParseStringAs[bool](" true "); err != nil || !got {
		t.Errorf("ParseStringAs[bool]() = %v, %v", got, err)
	}
	if got, err := ParseStringAs[int]("42"); err != nil || got != 42 {
		t.Errorf("ParseStringAs[int]() = %v, %v", got, err)
	}
	if got, err := ParseStringAs[float64]("1.5"); err != nil || got != 1.5 {
		t.Errorf("ParseStringAs[float64]() = %v, %v", got, err)
	}
	if _, err := ParseStringAs[int]("forty-two"); err == nil {
		t.Error("ParseStringAs[int]() expected error for non-numeric input")
	}
}

func TestParseStringAs_Struct(t *testing.T) {
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	tests := []struct {
		name    string
		input   string
		want    message
		wantErr bool
	}{
		{
			name:  "valid JSON",
			input: `{"role":"assistant","content":"hi"}`,
			want:  message{Role: "assistant", Content: "hi"},
		},
		{
			name:  "repaired JSON",
			input: `{role: 'assistant', content: 'hi',}`,
			want:  message{Role: "assistant", Content: "hi"},
		},
		{
			name:  "schema wrapped values",
			input: `{"role":{"type":"string","value":"assistant"},"content":{"type":"string","value":"hi"}}`,
			want:  message{Role: "assistant", Content: "hi"},
		},
		{
			name:    "prose",
			input:   "not json at all",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[message](tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStringAs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseStringAs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

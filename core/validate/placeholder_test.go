package validate

import (
	"testing"

	"github.com/leofalp/agentplan/core/document"
)

func TestHasPlaceholderContent(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"This is a placeholder", true},
		{"Replace with actual company data", true},
		{"PLACEHOLDER", true},
		{"Real content here", false},
		{"", false},
		{"replace with real data", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := HasPlaceholderContent(tt.input); got != tt.want {
				t.Errorf("HasPlaceholderContent(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNoPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		docs []document.Document
		want PlaceholderResult
	}{
		{
			name: "no documents",
			want: PlaceholderResult{Valid: true},
		},
		{
			name: "clean documents",
			docs: []document.Document{
				{ID: "lib", Name: "Limits", Content: "Real", Kind: document.KindLibrary, Selected: true},
				{Name: "brief.md", Content: "Real", Kind: document.KindReference},
			},
			want: PlaceholderResult{Valid: true},
		},
		{
			name: "unselected library document ignored",
			docs: []document.Document{
				{ID: "lib", Name: "Limits", Content: "placeholder", Kind: document.KindLibrary},
			},
			want: PlaceholderResult{Valid: true},
		},
		{
			name: "library scanned before references",
			docs: []document.Document{
				{Name: "brief.md", Content: "Replace with actual data", Kind: document.KindReference},
				{ID: "lib", Name: "Limits", Content: "placeholder", Kind: document.KindLibrary, Selected: true},
			},
			want: PlaceholderResult{DocumentName: "Limits"},
		},
		{
			name: "library falls back to id",
			docs: []document.Document{
				{ID: "ANVI_LIMITATIONS", Content: "placeholder", Kind: document.KindLibrary, Selected: true},
			},
			want: PlaceholderResult{DocumentName: "ANVI_LIMITATIONS"},
		},
		{
			name: "unnamed reference",
			docs: []document.Document{
				{Content: "placeholder", Kind: document.KindReference, Selected: false},
			},
			want: PlaceholderResult{DocumentName: "Reference file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoPlaceholders(tt.docs); got != tt.want {
				t.Errorf("NoPlaceholders() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

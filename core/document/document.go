package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Kind distinguishes library documents from reference files.
type Kind string

const (
	// KindLibrary documents are optional context the user selects per request.
	KindLibrary Kind = "library"
	// KindReference documents are uploaded files that always travel with the request.
	KindReference Kind = "reference"
)

// ParseKind maps "library" or "reference" (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindLibrary:
		return KindLibrary, nil
	case KindReference:
		return KindReference, nil
	default:
		return "", fmt.Errorf("unknown document kind %q (want %q or %q)", s, KindLibrary, KindReference)
	}
}

// Document is one supporting document.
type Document struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Content  string `json:"content" yaml:"content"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	Selected bool   `json:"selected" yaml:"selected"`
}

// DisplayName returns Name, falling back to ID and then to fallback.
func (d Document) DisplayName(fallback string) string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return name
	}
	if id := strings.TrimSpace(d.ID); id != "" {
		return id
	}
	return fallback
}

// LoadFile reads path into a selected Document of the given kind. The ID is
// the file name without its extension and the Name is the file name.
// Files ending in .html or .htm are converted to markdown.
func LoadFile(path string, kind Kind) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document %s: %w", path, err)
	}

	content := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		content, err = htmltomarkdown.ConvertString(content)
		if err != nil {
			return Document{}, fmt.Errorf("convert %s to markdown: %w", path, err)
		}
	}

	base := filepath.Base(path)
	return Document{
		ID:       strings.TrimSuffix(base, filepath.Ext(base)),
		Name:     base,
		Content:  content,
		Kind:     kind,
		Selected: true,
	}, nil
}

// LoadFiles loads every path with LoadFile, stopping at the first failure.
func LoadFiles(kind Kind, paths ...string) ([]Document, error) {
	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		doc, err := LoadFile(path, kind)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Text(t *testing.T) {
	path := writeFile(t, t.TempDir(), "limitations.md", "# Limits\n\nNo live data.")

	doc, err := LoadFile(path, KindLibrary)
	require.NoError(t, err)

	assert.Equal(t, "limitations", doc.ID)
	assert.Equal(t, "limitations.md", doc.Name)
	assert.Equal(t, "# Limits\n\nNo live data.", doc.Content)
	assert.Equal(t, KindLibrary, doc.Kind)
	assert.True(t, doc.Selected)
}

func TestLoadFile_HTMLConvertedToMarkdown(t *testing.T) {
	path := writeFile(t, t.TempDir(), "brief.html", "<h1>Company Brief</h1><p>Replace with <strong>actual</strong> data</p>")

	doc, err := LoadFile(path, KindReference)
	require.NoError(t, err)

	assert.Contains(t, doc.Content, "# Company Brief")
	assert.Contains(t, doc.Content, "**actual**")
	assert.NotContains(t, doc.Content, "<p>")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt"), KindReference)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	b := writeFile(t, dir, "b.txt", "beta")

	docs, err := LoadFiles(KindReference, a, b)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "alpha", docs[0].Content)
	assert.Equal(t, "beta", docs[1].Content)

	_, err = LoadFiles(KindReference, a, filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind(" Library ")
	require.NoError(t, err)
	assert.Equal(t, KindLibrary, kind)

	kind, err = ParseKind("reference")
	require.NoError(t, err)
	assert.Equal(t, KindReference, kind)

	_, err = ParseKind("notes")
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Brief", Document{ID: "b", Name: " Brief "}.DisplayName("x"))
	assert.Equal(t, "b", Document{ID: "b"}.DisplayName("x"))
	assert.Equal(t, "x", Document{}.DisplayName("x"))
}

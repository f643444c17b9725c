package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyard/engram/internal/api"
	"github.com/halcyard/engram/internal/palette"
)

var testMemories = []api.Memory{
	{
		ID:       "m1",
		Title:    "Standup <notes>",
		Content:  "## Agenda\n- review *roadmap*",
		Category: "work",
		Tags:     []string{"meeting", "q3"},
	},
	{
		ID:      "m2",
		Title:   "Reading list",
		Content: "Status:  open",
	},
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"html":     FormatHTML,
		"HTML":     FormatHTML,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
		"txt":      FormatText,
		"plain":    FormatText,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docx")
}

func TestHTMLExportIsAStandaloneDocument(t *testing.T) {
	e := New(nil)
	doc, err := e.Render(FormatHTML, testMemories)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<style>")
	assert.Contains(t, doc, ".md-heading-lg")
	assert.Contains(t, doc, "</html>")
}

func TestHTMLExportEscapesTitlesAndRendersBodies(t *testing.T) {
	e := New(nil)
	doc, err := e.Render(FormatHTML, testMemories)
	require.NoError(t, err)

	assert.Contains(t, doc, "Standup &lt;notes&gt;")
	assert.NotContains(t, doc, "Standup <notes>")
	assert.Contains(t, doc, `md-heading-lg">Agenda`)
	assert.Contains(t, doc, "<em>roadmap</em>")
	assert.Contains(t, doc, `<span class="md-kv-key">Status:</span>`)
}

func TestHTMLExportUsesPaletteForCategories(t *testing.T) {
	p := palette.New(map[string]string{"work": "#123456"})
	e := New(p)
	doc, err := e.Render(FormatHTML, testMemories)
	require.NoError(t, err)

	assert.Contains(t, doc, `style="background:#123456"`)
}

func TestMarkdownExportSeparatesMemories(t *testing.T) {
	e := New(nil)
	doc, err := e.Render(FormatMarkdown, testMemories)
	require.NoError(t, err)

	assert.Contains(t, doc, "# Standup <notes>")
	assert.Contains(t, doc, "category: work | tags: meeting, q3")
	assert.Equal(t, 1, strings.Count(doc, "\n---\n"))
}

func TestTextExport(t *testing.T) {
	e := New(nil)
	doc, err := e.Render(FormatText, testMemories)
	require.NoError(t, err)

	assert.Contains(t, doc, "Reading list")
	assert.Contains(t, doc, strings.Repeat("=", 60))
	// raw content, no markup interpretation
	assert.Contains(t, doc, "- review *roadmap*")
}

func TestWriteCreatesDirectories(t *testing.T) {
	e := New(nil)
	path := filepath.Join(t.TempDir(), "exports", "out.html")

	require.NoError(t, e.Write(path, FormatHTML, testMemories))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "engram-export-2026-08-30.html", DefaultFilename(FormatHTML, now))
	assert.Equal(t, "engram-export-2026-08-30.md", DefaultFilename(FormatMarkdown, now))
	assert.Equal(t, "engram-export-2026-08-30.txt", DefaultFilename(FormatText, now))
}

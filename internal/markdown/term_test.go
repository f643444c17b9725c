package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTermEmptyInput(t *testing.T) {
	assert.Equal(t, "", New().RenderTerm("", 40))
}

func TestRenderTermListsUseBullets(t *testing.T) {
	out := New().RenderTerm("- alpha\n* beta\n1. gamma", 40)

	assert.Contains(t, out, "• alpha")
	assert.Contains(t, out, "• beta")
	assert.Contains(t, out, "• gamma")
}

func TestRenderTermDividerFillsWidth(t *testing.T) {
	out := New().RenderTerm("---", 12)

	assert.Contains(t, out, strings.Repeat("─", 12))
}

func TestRenderTermStripsInlineMarkers(t *testing.T) {
	out := New().RenderTerm("some **bold** and `code` here", 40)

	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "`")
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "code")
}

func TestRenderTermCodeBlockKeepsContentVerbatim(t *testing.T) {
	out := New().RenderTerm("```\n# not a heading\n```", 40)

	assert.Contains(t, out, "# not a heading")
}

func TestRenderTermNoHTML(t *testing.T) {
	out := New().RenderTerm("# Heading\nStatus:  Active\nplain", 40)

	assert.NotContains(t, out, "<")
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "Status:")
	assert.Contains(t, out, "Active")
}

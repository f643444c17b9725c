// Package export turns fetched memories into standalone export files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/halcyard/engram/internal/api"
	"github.com/halcyard/engram/internal/markdown"
	"github.com/halcyard/engram/internal/palette"
)

// Format names a supported export format.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{FormatHTML, FormatMarkdown, FormatText}
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt", "plain":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want html, markdown, or text)", name)
	}
}

// Exporter renders memories into export documents.
type Exporter struct {
	renderer *markdown.Renderer
	palette  *palette.Palette
}

// New builds an exporter. A nil palette falls back to default colors.
func New(p *palette.Palette) *Exporter {
	if p == nil {
		p = palette.New(nil)
	}
	return &Exporter{renderer: markdown.New(), palette: p}
}

// Render produces the export document for the given format.
func (e *Exporter) Render(format Format, memories []api.Memory) (string, error) {
	switch format {
	case FormatHTML:
		return e.html(memories), nil
	case FormatMarkdown:
		return e.markdown(memories), nil
	case FormatText:
		return e.text(memories), nil
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

// Write renders and writes the export to path, creating directories as
// needed.
func (e *Exporter) Write(path string, format Format, memories []api.Memory) error {
	doc, err := e.Render(format, memories)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// DefaultFilename suggests an export file name for a format.
func DefaultFilename(format Format, now time.Time) string {
	ext := "txt"
	switch format {
	case FormatHTML:
		ext = "html"
	case FormatMarkdown:
		ext = "md"
	}
	return fmt.Sprintf("engram-export-%s.%s", now.Format("2006-01-02"), ext)
}

func (e *Exporter) html(memories []api.Memory) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>engram export</title>\n<style>\n")
	b.WriteString(stylesheet)
	b.WriteString("</style>\n</head>\n<body>\n")

	for _, mem := range memories {
		b.WriteString(`<section class="memory">` + "\n")
		b.WriteString(`<header><h2>` + markdown.EscapeText(mem.Title) + "</h2>")
		if mem.Category != "" {
			b.WriteString(fmt.Sprintf(`<span class="category" style="background:%s">%s</span>`,
				e.palette.Hex(mem.Category), markdown.EscapeText(mem.Category)))
		}
		b.WriteString("</header>\n")
		if len(mem.Tags) > 0 {
			b.WriteString(`<div class="tags">`)
			for _, tag := range mem.Tags {
				b.WriteString(`<span class="tag">` + markdown.EscapeText(tag) + "</span>")
			}
			b.WriteString("</div>\n")
		}
		b.WriteString(`<div class="content">` + e.renderer.Render(mem.Content) + "</div>\n")
		b.WriteString("</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (e *Exporter) markdown(memories []api.Memory) string {
	var b strings.Builder
	for i, mem := range memories {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		b.WriteString("# " + mem.Title + "\n\n")
		if mem.Category != "" || len(mem.Tags) > 0 {
			b.WriteString(metaLine(mem) + "\n\n")
		}
		b.WriteString(strings.TrimSpace(mem.Content))
		b.WriteString("\n")
	}
	return b.String()
}

func (e *Exporter) text(memories []api.Memory) string {
	var b strings.Builder
	for i, mem := range memories {
		if i > 0 {
			b.WriteString("\n" + strings.Repeat("=", 60) + "\n\n")
		}
		b.WriteString(mem.Title + "\n")
		if mem.Category != "" || len(mem.Tags) > 0 {
			b.WriteString(metaLine(mem) + "\n")
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(mem.Content))
		b.WriteString("\n")
	}
	return b.String()
}

func metaLine(mem api.Memory) string {
	parts := make([]string, 0, 2)
	if mem.Category != "" {
		parts = append(parts, "category: "+mem.Category)
	}
	if len(mem.Tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(mem.Tags, ", "))
	}
	return strings.Join(parts, " | ")
}

// stylesheet styles the markdown renderer's class contract plus the export
// chrome. Class names must stay in step with internal/markdown.
const stylesheet = `body { font-family: -apple-system, sans-serif; max-width: 46rem; margin: 2rem auto; color: #d7d9da; background: #16161d; }
section.memory { border: 1px solid #273540; border-radius: 8px; padding: 1rem 1.5rem; margin-bottom: 1.5rem; }
section.memory header { display: flex; align-items: center; gap: .75rem; }
.category { color: #16161d; border-radius: 4px; padding: .1rem .5rem; font-size: .8rem; font-weight: 600; }
.tag { color: #9ba0bf; font-size: .8rem; margin-right: .5rem; }
.md-heading { font-weight: 700; margin: .8rem 0 .4rem; }
.md-heading-lg { font-size: 1.3rem; }
.md-heading-md { font-size: 1.1rem; }
.md-heading-sm { font-size: 1rem; color: #9ba0bf; }
.md-subhead { font-weight: 600; color: #78dce8; margin: .6rem 0 .2rem; }
.md-list { margin: .3rem 0; padding-left: 1.4rem; }
.md-item { margin: .15rem 0; }
.md-code { background: #1e1e28; border-radius: 6px; padding: .6rem .8rem; overflow-x: auto; }
.md-divider { border-top: 1px solid #273540; margin: .8rem 0; }
.md-para { margin: .4rem 0; }
.md-kv { display: flex; gap: .6rem; margin: .2rem 0; }
.md-kv-key { color: #78dce8; font-weight: 600; }
.md-dim { color: #9ba0bf; }
.md-inline-code { background: #1e1e28; border-radius: 3px; padding: 0 .25rem; }
`

// Package palette resolves display colors for memory categories.
package palette

import (
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colors is the fixed assignment pool. A category keeps the same color
// across sessions because the pick is a stable hash of its name.
var colors = []string{
	"#7f57b4", // purple
	"#436b77", // teal
	"#a7754e", // warm
	"#3f866b", // green
	"#c78854", // amber
	"#888ba4", // steel
	"#78dce8", // cyan
	"#b46a8a", // rose
}

// fallback is used for empty category names.
const fallback = "#9ba0bf"

// Palette maps category names to colors, honoring user overrides before
// falling back to the hashed pool.
type Palette struct {
	overrides map[string]string
}

// New builds a palette with the given overrides (category name → hex).
// Override keys are matched case- and whitespace-insensitively.
func New(overrides map[string]string) *Palette {
	p := &Palette{overrides: make(map[string]string, len(overrides))}
	for name, hex := range overrides {
		if hex != "" {
			p.overrides[normalize(name)] = hex
		}
	}
	return p
}

// Hex returns the color for a category as a hex string.
func (p *Palette) Hex(category string) string {
	key := normalize(category)
	if key == "" {
		return fallback
	}
	if hex, ok := p.overrides[key]; ok {
		return hex
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	return colors[h.Sum32()%uint32(len(colors))]
}

// Style returns a lipgloss foreground style for a category.
func (p *Palette) Style(category string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Hex(category)))
}

// Badge returns a filled badge style for a category.
func (p *Palette) Badge(category string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#16161d")).
		Background(lipgloss.Color(p.Hex(category))).
		Bold(true).
		Padding(0, 1)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

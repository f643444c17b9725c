package markdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	termHeadingLg = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7f57b4"))
	termHeadingMd = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#436b77"))
	termHeadingSm = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9ba0bf"))
	termSubhead   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#436b77"))
	termCode      = lipgloss.NewStyle().Foreground(lipgloss.Color("#c78854"))
	termDivider   = lipgloss.NewStyle().Foreground(lipgloss.Color("#273540"))
	termKey       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#436b77"))
	termDim       = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ba0bf"))
	termBold      = lipgloss.NewStyle().Bold(true)
	termItalic    = lipgloss.NewStyle().Italic(true)
	termBullet    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f57b4"))
)

// RenderTerm renders content for the preview pane with ANSI styling. It
// follows the same line rules as Render but emits styled plain text, so
// what the export produces and what the TUI shows stay in step.
func (r *Renderer) RenderTerm(text string, width int) string {
	if text == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	var lines []string
	var st scanState

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if st.inCode {
			switch {
			case strings.HasPrefix(line, "```"):
				st.inCode = false
			default:
				lines = append(lines, termCode.Render(raw))
			}
			continue
		}

		if line == "" {
			st.inList = false
			lines = append(lines, "")
			continue
		}

		if strings.HasPrefix(line, "```") {
			st.inList = false
			st.inCode = true
			continue
		}

		lines = append(lines, termLine(&st, line, width))
	}

	return strings.Join(lines, "\n")
}

func termLine(st *scanState, line string, width int) string {
	if m := headingRe.FindStringSubmatch(line); m != nil {
		st.inList = false
		style := termHeadingSm
		switch headingTier(len(m[1])) {
		case "lg":
			style = termHeadingLg
		case "md":
			style = termHeadingMd
		}
		return style.Render(inlineTerm(m[2]))
	}

	if dividerRe.MatchString(line) {
		st.inList = false
		return termDivider.Render(strings.Repeat("─", width))
	}

	if bareCodeRe.MatchString(line) || codeDashRe.MatchString(line) {
		st.inList = false
		return inlineTerm(line)
	}

	if m := listItemRe.FindStringSubmatch(line); m != nil {
		st.inList = true
		return termBullet.Render("• ") + inlineTerm(m[1])
	}

	if isSubheading(line) {
		st.inList = false
		return termSubhead.Render(inlineTerm(strings.TrimSuffix(line, ":")))
	}

	if m := keyValueRe.FindStringSubmatch(line); m != nil {
		st.inList = false
		return termKey.Render(m[1]) + "  " + inlineTerm(m[2])
	}

	st.inList = false
	return inlineTerm(line)
}

// inlineTerm strips the inline markers and applies their terminal styles.
func inlineTerm(s string) string {
	s = inlineCode.ReplaceAllStringFunc(s, func(m string) string {
		return termCode.Render(m[1 : len(m)-1])
	})
	s = inlineBold.ReplaceAllStringFunc(s, func(m string) string {
		return termBold.Render(strings.Trim(m, "*"))
	})
	s = italicizeTerm(s)
	if i := strings.LastIndex(s, emDashSplit); i >= 0 && i+len(emDashSplit) < len(s) {
		s = s[:i] + " " + termDim.Render("— "+s[i+len(emDashSplit):])
	}
	return s
}

func italicizeTerm(s string) string {
	matches := inlineEmRe.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && s[start-1] == '*' {
			continue
		}
		if end < len(s) && s[end] == '*' {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(termItalic.Render(s[m[2]:m[3]]))
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

// Package markdown renders the memory-content markdown subset to HTML.
//
// The subset is deliberately small: headings (1-4 hashes), flat lists,
// fenced code blocks, dividers, key/value rows, and inline bold, italic,
// code spans, and a dimmed em-dash tail. No nested lists, tables, or links.
package markdown

import (
	"regexp"
	"strings"
)

// Renderer converts raw memory content into HTML fragments. The zero value
// is not usable; construct with New. Escape may be swapped to use a
// different entity-escaping collaborator.
type Renderer struct {
	Escape func(string) string
}

// New returns a Renderer using the default escaper.
func New() *Renderer {
	return &Renderer{Escape: EscapeText}
}

// EscapeText entity-encodes &, < and >. Ampersand goes first so the other
// replacements are not double-escaped.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// scanState tracks the open blocks while walking lines. It lives for one
// Render call only.
type scanState struct {
	inList bool
	inCode bool
}

var (
	headingRe   = regexp.MustCompile(`^(#{1,4})\s+(.+)$`)
	dividerRe   = regexp.MustCompile(`^(-{3,}|={3,}|_{3,})$`)
	bareCodeRe  = regexp.MustCompile("^`[^` ]+`$")
	codeDashRe  = regexp.MustCompile("^`[^`]+` — .+$")
	listItemRe  = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s+(.+)$`)
	keyValueRe  = regexp.MustCompile(`^([A-Za-z][\w /().,-]{0,24}:?)  +(\S.*)$`)
	inlineCode  = regexp.MustCompile("`([^`]+)`")
	inlineBold  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	inlineEmRe  = regexp.MustCompile(`\*([^*]+)\*`)
	placeholder = "\x00"
)

const emDashSplit = " — "

// Render converts text to a string of HTML block elements. It is total over
// its input: empty input yields "", malformed constructs degrade to
// paragraphs, and an unterminated list or code fence is closed at the end
// of output rather than reported.
func (r *Renderer) Render(text string) string {
	if text == "" {
		return ""
	}
	esc := r.Escape
	if esc == nil {
		esc = EscapeText
	}

	var b strings.Builder
	var st scanState

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if st.inCode {
			switch {
			case line == "":
				b.WriteByte('\n')
			case strings.HasPrefix(line, "```"):
				b.WriteString("</pre>")
				st.inCode = false
			default:
				b.WriteString(esc(raw))
				b.WriteByte('\n')
			}
			continue
		}

		if line == "" {
			closeList(&b, &st)
			continue
		}

		if strings.HasPrefix(line, "```") {
			closeList(&b, &st)
			b.WriteString(`<pre class="md-code">`)
			st.inCode = true
			continue
		}

		r.renderLine(&b, &st, line, esc)
	}

	closeList(&b, &st)
	if st.inCode {
		b.WriteString("</pre>")
		st.inCode = false
	}
	return b.String()
}

// renderLine handles every non-blank, non-fence line outside code blocks.
// The cases are ordered; the first match wins.
func (r *Renderer) renderLine(b *strings.Builder, st *scanState, line string, esc func(string) string) {
	if m := headingRe.FindStringSubmatch(line); m != nil {
		closeList(b, st)
		b.WriteString(`<div class="md-heading md-heading-` + headingTier(len(m[1])) + `">`)
		b.WriteString(r.inline(m[2], esc))
		b.WriteString("</div>")
		return
	}

	if dividerRe.MatchString(line) {
		closeList(b, st)
		b.WriteString(`<div class="md-divider"></div>`)
		return
	}

	// A lone `token` line, or a `token` — description line, stays a
	// paragraph; without these cases the key/value and sub-heading rules
	// below could claim it.
	if bareCodeRe.MatchString(line) || codeDashRe.MatchString(line) {
		closeList(b, st)
		b.WriteString(`<p class="md-para">` + r.inline(line, esc) + "</p>")
		return
	}

	if m := listItemRe.FindStringSubmatch(line); m != nil {
		if !st.inList {
			b.WriteString(`<ul class="md-list">`)
			st.inList = true
		}
		b.WriteString(`<li class="md-item">` + r.inline(m[1], esc) + "</li>")
		return
	}

	if isSubheading(line) {
		closeList(b, st)
		b.WriteString(`<div class="md-subhead">` + r.inline(strings.TrimSuffix(line, ":"), esc) + "</div>")
		return
	}

	if m := keyValueRe.FindStringSubmatch(line); m != nil {
		closeList(b, st)
		b.WriteString(`<div class="md-kv"><span class="md-kv-key">` + esc(m[1]) +
			`</span><span class="md-kv-value">` + r.inline(m[2], esc) + "</span></div>")
		return
	}

	closeList(b, st)
	b.WriteString(`<p class="md-para">` + r.inline(line, esc) + "</p>")
}

func headingTier(hashes int) string {
	switch {
	case hashes <= 2:
		return "lg"
	case hashes == 3:
		return "md"
	default:
		return "sm"
	}
}

// isSubheading reports whether a line reads as a short section label:
// colon-terminated, under 50 characters, no code span, and no multi-space
// run (a multi-space run means the key/value rule should see it instead).
func isSubheading(line string) bool {
	return strings.HasSuffix(line, ":") &&
		len(line) < 50 &&
		!strings.Contains(line, "`") &&
		!strings.Contains(line, "  ")
}

func closeList(b *strings.Builder, st *scanState) {
	if st.inList {
		b.WriteString("</ul>")
		st.inList = false
	}
}

// inline applies the inline formatting pass: escape, code spans, bold,
// italic, then the trailing em-dash tail. Code spans are lifted out into
// placeholders before bold/italic run so their content stays inert, and
// restored last.
func (r *Renderer) inline(s string, esc func(string) string) string {
	out := esc(s)

	var spans []string
	out = inlineCode.ReplaceAllStringFunc(out, func(m string) string {
		body := m[1 : len(m)-1]
		spans = append(spans, `<code class="md-inline-code">`+body+`</code>`)
		return placeholder
	})

	out = inlineBold.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicize(out)
	out = dimTail(out)

	if len(spans) > 0 {
		var b strings.Builder
		i := 0
		for _, c := range out {
			if c == '\x00' && i < len(spans) {
				b.WriteString(spans[i])
				i++
				continue
			}
			b.WriteRune(c)
		}
		out = b.String()
	}
	return out
}

// italicize wraps *x* runs in <em>, skipping any candidate whose delimiters
// touch another asterisk so bold remnants are left alone.
func italicize(s string) string {
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
		b.WriteString("<em>")
		b.WriteString(s[m[2]:m[3]])
		b.WriteString("</em>")
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

// dimTail wraps the final " — rest" suffix in a dimmed span. Only the last
// em-dash split point is eligible.
func dimTail(s string) string {
	i := strings.LastIndex(s, emDashSplit)
	if i < 0 {
		return s
	}
	rest := s[i+len(emDashSplit):]
	if rest == "" {
		return s
	}
	return s[:i] + ` <span class="md-dim">— ` + rest + "</span>"
}

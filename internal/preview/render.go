package preview

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// defaultRenderWidth is used when the caller passes a non-positive width.
const defaultRenderWidth = 80

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	italicStyle  = lipgloss.NewStyle().Italic(true)
	linkStyle    = lipgloss.NewStyle().Underline(true)
)

// Render produces the text-mode approximation of the composed preview:
// block elements on their own lines, headings bold, links underlined with
// the href in brackets, list items bulleted, everything word-wrapped to
// width. Styles are not interpreted beyond what Compose strips, so the
// walk sees the same sanitized document a graphical preview would show.
func Render(htmlSrc, cssSrc string, width int) string {
	if width <= 0 {
		width = defaultRenderWidth
	}

	doc, err := html.Parse(strings.NewReader(Compose(htmlSrc, cssSrc)))
	if err != nil {
		return ""
	}

	r := &textRenderer{width: width}
	r.walk(doc)
	r.flush()
	return strings.Join(r.lines, "\n")
}

// textRenderer accumulates inline text into the current block and breaks
// blocks into wrapped lines.
type textRenderer struct {
	width int
	lines []string
	cur   strings.Builder
}

func (r *textRenderer) walk(n *html.Node) {
	if n.Type == html.TextNode {
		r.text(n.Data)
		return
	}

	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Head, atom.Script, atom.Style, atom.Title:
			return

		case atom.Br:
			r.flush()
			return

		case atom.Hr:
			r.flush()
			r.lines = append(r.lines, strings.Repeat("─", r.width))
			return

		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			r.flush()
			if text := collapse(collectText(n)); text != "" {
				for _, line := range strings.Split(wordwrap.String(text, r.width), "\n") {
					r.lines = append(r.lines, headingStyle.Render(line))
				}
			}
			return

		case atom.A:
			text := collapse(collectText(n))
			href := attrVal(n, "href")
			var s string
			if text != "" {
				s = linkStyle.Render(text)
			}
			if href != "" {
				if s != "" {
					s += " "
				}
				s += "[" + href + "]"
			}
			r.inline(s)
			return

		case atom.Strong, atom.B:
			if text := collapse(collectText(n)); text != "" {
				r.inline(boldStyle.Render(text))
			}
			return

		case atom.Em, atom.I:
			if text := collapse(collectText(n)); text != "" {
				r.inline(italicStyle.Render(text))
			}
			return

		case atom.Li:
			r.flush()
			r.cur.WriteString("• ")
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				r.walk(c)
			}
			r.flush()
			return

		case atom.Pre:
			r.flush()
			text := strings.Trim(collectText(n), "\n")
			if text != "" {
				r.lines = append(r.lines, strings.Split(text, "\n")...)
			}
			return
		}
	}

	block := isBlock(n)
	if block {
		r.flush()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
	if block {
		r.flush()
	}
}

// text appends collapsed text node content to the current block.
func (r *textRenderer) text(s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return
	}
	r.inline(strings.Join(fields, " "))
}

// inline appends an already-rendered fragment to the current block.
func (r *textRenderer) inline(s string) {
	if s == "" {
		return
	}
	if cur := r.cur.String(); cur != "" && !strings.HasSuffix(cur, " ") {
		r.cur.WriteByte(' ')
	}
	r.cur.WriteString(s)
}

// flush wraps the current block and emits its lines.
func (r *textRenderer) flush() {
	if r.cur.Len() == 0 {
		return
	}
	wrapped := wordwrap.String(r.cur.String(), r.width)
	r.lines = append(r.lines, strings.Split(wrapped, "\n")...)
	r.cur.Reset()
}

var blockAtoms = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Section:    true,
	atom.Article:    true,
	atom.Header:     true,
	atom.Footer:     true,
	atom.Main:       true,
	atom.Aside:      true,
	atom.Nav:        true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Blockquote: true,
	atom.Table:      true,
	atom.Tr:         true,
	atom.Form:       true,
	atom.Figure:     true,
	atom.Figcaption: true,
}

func isBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && blockAtoms[n.DataAtom]
}

func collectText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

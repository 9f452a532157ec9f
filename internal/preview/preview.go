// Package preview composes the editor buffers into one isolated HTML
// document and renders a text-mode approximation of it for the preview
// panel. It exposes nothing back to the workflows.
package preview

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Compose builds a single document from the two buffers: CSS scoped into
// the head, markup into the body. The isolation guarantee lives here:
// script elements, inline event handler attributes, and javascript: URLs
// are stripped from the markup, and the CSS is escaped so it cannot close
// the style element early. Malformed markup degrades to the parser's
// recovery, never an error.
func Compose(htmlSrc, cssSrc string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<style>\n")
	b.WriteString(sanitizedCSS(cssSrc))
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(sanitizedBody(htmlSrc))
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// sanitizedCSS hex-escapes "<" so the CSS text cannot contain a "</style"
// sequence, the only way raw text escapes the style element. Inside CSS
// strings "\3C " reads back as "<"; a bare "<" elsewhere is invalid CSS.
func sanitizedCSS(src string) string {
	return strings.ReplaceAll(src, "<", `\3C `)
}

// sanitizedBody parses the markup, sanitizes the tree, and returns the
// serialized interior of the recovered body element.
func sanitizedBody(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		// html.Parse recovers from malformed markup; an error means the
		// reader failed, which a strings.Reader cannot.
		return ""
	}

	sanitize(doc)

	body := findElement(doc, atom.Body)
	if body == nil {
		return ""
	}

	var b strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// urlAttrs are the attributes whose values can carry a URL scheme.
var urlAttrs = map[string]bool{
	"href":       true,
	"src":        true,
	"action":     true,
	"formaction": true,
	"data":       true,
}

// sanitize removes script elements, on* handler attributes, and javascript:
// URLs from the whole tree.
func sanitize(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && c.DataAtom == atom.Script {
			n.RemoveChild(c)
			continue
		}
		sanitize(c)
	}

	if n.Type != html.ElementNode {
		return
	}

	kept := n.Attr[:0]
	for _, a := range n.Attr {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") {
			continue
		}
		if urlAttrs[key] && isJavascriptURL(a.Val) {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

// isJavascriptURL reports whether a URL value resolves to the javascript:
// scheme. Whitespace and control characters are removed first since parsers
// tolerate them inside the scheme.
func isJavascriptURL(v string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, v)
	return strings.HasPrefix(strings.ToLower(cleaned), "javascript:")
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

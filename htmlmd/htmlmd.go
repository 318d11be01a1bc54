// Package htmlmd renders a parsed document to Markdown, a second
// plain-text-ish consumer of the parser alongside htmltext. No Markdown
// library appears anywhere in the example pack (see DESIGN.md), so this
// walk is hand-written in the same tagged-dispatch-over-node-kind style
// chtml/render.go uses for its own node-kind switch.
package htmlmd

import (
	"fmt"
	"strings"

	"github.com/corehtml/html5/tree"
)

// Render converts doc to a Markdown string, covering the common inline
// and block elements; anything else falls back to rendering its children
// with no added markup.
func Render(doc *tree.Node) string {
	var sb strings.Builder
	w := &writer{sb: &sb}
	w.walk(doc)
	return strings.TrimSpace(collapseBlankLines(w.sb.String()))
}

type writer struct {
	sb       *strings.Builder
	listDepth int
	ordered   []bool
}

func (w *writer) walk(n *tree.Node) {
	switch n.Type {
	case tree.TextNode:
		w.sb.WriteString(n.Data)
	case tree.ElementNode:
		w.element(n)
	default:
		w.children(n)
	}
}

func (w *writer) children(n *tree.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *writer) element(n *tree.Node) {
	if n.Namespace != tree.HTML {
		w.children(n)
		return
	}
	switch n.Data {
	case "script", "style", "template", "head":
		return
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		w.sb.WriteString("\n" + strings.Repeat("#", level) + " ")
		w.children(n)
		w.sb.WriteString("\n")
	case "p", "div":
		w.sb.WriteString("\n")
		w.children(n)
		w.sb.WriteString("\n")
	case "br":
		w.sb.WriteString("  \n")
	case "strong", "b":
		w.sb.WriteString("**")
		w.children(n)
		w.sb.WriteString("**")
	case "em", "i":
		w.sb.WriteString("_")
		w.children(n)
		w.sb.WriteString("_")
	case "code":
		w.sb.WriteString("`")
		w.children(n)
		w.sb.WriteString("`")
	case "pre":
		w.sb.WriteString("\n```\n")
		w.children(n)
		w.sb.WriteString("\n```\n")
	case "a":
		href, _ := n.Attribute("href")
		w.sb.WriteString("[")
		w.children(n)
		w.sb.WriteString(fmt.Sprintf("](%s)", href))
	case "img":
		alt, _ := n.Attribute("alt")
		src, _ := n.Attribute("src")
		w.sb.WriteString(fmt.Sprintf("![%s](%s)", alt, src))
	case "ul", "ol":
		w.ordered = append(w.ordered, n.Data == "ol")
		w.listDepth++
		w.sb.WriteString("\n")
		w.children(n)
		w.listDepth--
		w.ordered = w.ordered[:len(w.ordered)-1]
		w.sb.WriteString("\n")
	case "li":
		w.sb.WriteString(strings.Repeat("  ", w.listDepth-1))
		if len(w.ordered) > 0 && w.ordered[len(w.ordered)-1] {
			w.sb.WriteString("1. ")
		} else {
			w.sb.WriteString("- ")
		}
		w.children(n)
		w.sb.WriteString("\n")
	case "blockquote":
		w.sb.WriteString("\n> ")
		w.children(n)
		w.sb.WriteString("\n")
	case "hr":
		w.sb.WriteString("\n---\n")
	default:
		w.children(n)
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := false
	for _, l := range lines {
		trimmed := strings.TrimRight(l, " \t")
		if strings.TrimSpace(trimmed) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
		} else {
			blank = false
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n")
}

// Package htmltext extracts the visible text content of a parsed
// document, the plain-text consumer counterpart to the parser (e.g. for
// full-text indexing or a "reader view").
//
// Grounded on chtml/render.go's tagged dispatch over node kind (a switch
// on node type driving a per-kind render function), adapted here to a
// single recursive text-accumulating walk instead of producing a new tree.
package htmltext

import (
	"strings"

	"github.com/corehtml/html5/tree"
)

// nonVisible holds elements whose text content spec.md's data model still
// stores as #text children but that never contribute to rendered text: a
// page's <script>/<style> bodies are markup-adjacent data, not prose.
var nonVisible = map[string]bool{
	"script": true, "style": true, "template": true, "title": true,
}

// blockElements force a word/line boundary around their content, so that
// e.g. "<p>a</p><p>b</p>" extracts as "a\nb" rather than "ab".
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "header": true, "footer": true,
	"table": true, "ul": true, "ol": true, "blockquote": true,
}

// Extract returns the document's visible text, with block-level elements
// separated by newlines and a single space preserved between adjacent
// inline runs.
func Extract(doc *tree.Node) string {
	var sb strings.Builder
	walk(&sb, doc)
	return strings.TrimSpace(collapseBlankLines(sb.String()))
}

func walk(sb *strings.Builder, n *tree.Node) {
	switch n.Type {
	case tree.TextNode:
		sb.WriteString(n.Data)
	case tree.ElementNode:
		if n.Namespace == tree.HTML && nonVisible[n.Data] {
			return
		}
		isBlock := n.Namespace == tree.HTML && blockElements[n.Data]
		if isBlock && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(sb, c)
		}
		if isBlock && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(sb, c)
		}
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := false
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

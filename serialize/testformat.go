// Package serialize renders a parsed tree.Node document back out, in two
// flavors: the canonical indented html5lib-tests format (this file) and a
// compact HTML writer (html.go) that adds no indentation or line breaks.
package serialize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corehtml/html5/tree"
)

// TestFormat implements spec.md §4.5's canonical indented representation,
// matching the `#document`/`#document-fragment` sections of
// html5lib-tests' .dat fixtures. Grounded on justgohtml's
// internal/testutil/html5lib_tree.go, adapted to tree.Node and to this
// module's attribute-namespace representation.
func TestFormat(doc *tree.Node) string {
	var sb strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == tree.DoctypeNode {
			writeDoctype(&sb, c)
			continue
		}
		writeNode(&sb, c, 0)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// TestFormatFragment serializes a DocumentFragment's children the same
// way, for the #document section of a tree-construction fixture that
// carries a #document-fragment context.
func TestFormatFragment(frag *tree.Node) string {
	var sb strings.Builder
	for c := frag.FirstChild; c != nil; c = c.NextSibling {
		writeNode(&sb, c, 0)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeDoctype(sb *strings.Builder, d *tree.Node) {
	sb.WriteString("| <!DOCTYPE ")
	if d.Data == "" {
		sb.WriteString(">")
	} else {
		sb.WriteString(d.Data)
		if d.PublicID != "" || d.SystemID != "" {
			fmt.Fprintf(sb, " \"%s\" \"%s\">", d.PublicID, d.SystemID)
		} else {
			sb.WriteString(">")
		}
	}
	sb.WriteByte('\n')
}

func writeNode(sb *strings.Builder, n *tree.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case tree.ElementNode:
		sb.WriteString("| ")
		sb.WriteString(indent)
		sb.WriteByte('<')
		sb.WriteString(displayTagName(n))
		sb.WriteByte('>')
		sb.WriteByte('\n')

		attrs := append([]tree.Attribute(nil), n.Attr...)
		sort.Slice(attrs, func(i, j int) bool {
			return displayAttrName(attrs[i]) < displayAttrName(attrs[j])
		})
		for _, at := range attrs {
			sb.WriteString("| ")
			sb.WriteString(indent)
			sb.WriteString("  ")
			sb.WriteString(displayAttrName(at))
			fmt.Fprintf(sb, "=\"%s\"\n", at.Value)
		}

		if n.TemplateContent != nil {
			sb.WriteString("| ")
			sb.WriteString(strings.Repeat("  ", depth+1))
			sb.WriteString("content\n")
			for c := n.TemplateContent.FirstChild; c != nil; c = c.NextSibling {
				writeNode(sb, c, depth+2)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(sb, c, depth+1)
		}
	case tree.TextNode:
		fmt.Fprintf(sb, "| %s\"%s\"\n", indent, n.Data)
	case tree.CommentNode:
		fmt.Fprintf(sb, "| %s<!-- %s -->\n", indent, n.Data)
	}
}

func displayTagName(n *tree.Node) string {
	switch n.Namespace {
	case tree.SVG:
		return "svg " + n.Data
	case tree.MathML:
		return "math " + n.Data
	default:
		return n.Data
	}
}

func displayAttrName(at tree.Attribute) string {
	if at.Namespace == "" {
		return at.Name
	}
	return at.Namespace + " " + at.Name
}

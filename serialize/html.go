package serialize

import (
	"bytes"
	"strings"

	"github.com/corehtml/html5/tree"
)

// voidElements never get a closing tag when rendered back out as HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements' text children are written out verbatim: escaping "<" or
// "&" inside a <script> or <style> body would change its meaning.
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}

// HTML renders doc back out as an HTML document, buffer-based and
// recursive in the manner of arturoeanton-go-xml's Canonicalize: attributes
// are written in source order (HTML, unlike the canonical test format,
// doesn't require attribute sorting), void elements get no closing tag,
// and script/style contents are never escaped.
func HTML(doc *tree.Node) string {
	var buf bytes.Buffer
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		writeHTML(&buf, c)
	}
	return buf.String()
}

// HTMLFragment renders a DocumentFragment's children the same way.
func HTMLFragment(frag *tree.Node) string {
	var buf bytes.Buffer
	for c := frag.FirstChild; c != nil; c = c.NextSibling {
		writeHTML(&buf, c)
	}
	return buf.String()
}

func writeHTML(buf *bytes.Buffer, n *tree.Node) {
	switch n.Type {
	case tree.DoctypeNode:
		buf.WriteString("<!DOCTYPE ")
		buf.WriteString(n.Data)
		buf.WriteString(">")
	case tree.CommentNode:
		buf.WriteString("<!--")
		buf.WriteString(n.Data)
		buf.WriteString("-->")
	case tree.TextNode:
		buf.WriteString(escapeHTMLText(n.Data))
	case tree.ElementNode:
		writeElementHTML(buf, n)
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeHTML(buf, c)
		}
	}
}

func writeElementHTML(buf *bytes.Buffer, n *tree.Node) {
	name := n.Data
	buf.WriteByte('<')
	buf.WriteString(name)
	for _, at := range n.Attr {
		buf.WriteByte(' ')
		if at.Namespace != "" {
			buf.WriteString(at.Namespace)
			buf.WriteByte(':')
		}
		buf.WriteString(at.Name)
		buf.WriteString(`="`)
		buf.WriteString(escapeHTMLAttr(at.Value))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')

	if n.Namespace == tree.HTML && voidElements[name] {
		return
	}

	if n.TemplateContent != nil {
		for c := n.TemplateContent.FirstChild; c != nil; c = c.NextSibling {
			writeHTML(buf, c)
		}
	} else if n.Namespace == tree.HTML && rawTextElements[name] {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == tree.TextNode {
				buf.WriteString(c.Data)
			}
		}
	} else {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeHTML(buf, c)
		}
	}

	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
}

func escapeHTMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeHTMLAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

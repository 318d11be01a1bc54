package treebuilder

import (
	"github.com/corehtml/html5/tree"

	a "golang.org/x/net/html/atom"
)

// isSpecialElement reports whether n belongs to spec.md §4.3's "special"
// category, used by the adoption agency algorithm's furthest-block search
// and by the "any other end tag" fallback.
func isSpecialElement(n *tree.Node) bool {
	if n.Namespace != tree.HTML {
		switch {
		case n.Namespace == tree.MathML && (atomOf(n) == a.Mi || atomOf(n) == a.Mo || atomOf(n) == a.Mn || atomOf(n) == a.Ms || atomOf(n) == a.Mtext || atomOf(n) == a.AnnotationXml):
		case n.Namespace == tree.SVG && (n.Data == "foreignObject" || n.Data == "desc" || n.Data == "title"):
		default:
			return false
		}
	}
	switch atomOf(n) {
	case a.Address, a.Applet, a.Area, a.Article, a.Aside, a.Base, a.Basefont, a.Bgsound,
		a.Blockquote, a.Body, a.Br, a.Button, a.Caption, a.Center, a.Col, a.Colgroup,
		a.Dd, a.Details, a.Dir, a.Div, a.Dl, a.Dt, a.Embed, a.Fieldset, a.Figcaption,
		a.Figure, a.Footer, a.Form, a.Frame, a.Frameset, a.H1, a.H2, a.H3, a.H4, a.H5, a.H6,
		a.Head, a.Header, a.Hgroup, a.Hr, a.Html, a.Iframe, a.Img, a.Input, a.Keygen, a.Li,
		a.Link, a.Listing, a.Main, a.Marquee, a.Menu, a.Meta, a.Nav, a.Noembed, a.Noframes,
		a.Noscript, a.Object, a.Ol, a.P, a.Param, a.Plaintext, a.Pre, a.Script, a.Section,
		a.Select, a.Source, a.Style, a.Summary, a.Table, a.Tbody, a.Td, a.Template, a.Textarea,
		a.Tfoot, a.Th, a.Thead, a.Title, a.Tr, a.Track, a.Ul, a.Wbr, a.Xmp:
		return true
	}
	return n.Namespace != tree.HTML
}

// adoptionAgency implements spec.md §4.3's "adoption agency algorithm" for
// an end tag named tagName. Grounded on the teacher's
// inBodyEndTagFormatting, itself a literal translation of the WHATWG
// algorithm.
func (b *Builder) adoptionAgency(tagAtom a.Atom, tagName string) {
	if current := b.top(); current.Data == tagName && b.afeIndex(current) == -1 {
		b.oePop()
		return
	}

	for i := 0; i < 8; i++ {
		var formattingElement *tree.Node
		for j := len(b.afe) - 1; j >= 0; j-- {
			if b.afe[j] == scopeMarker {
				break
			}
			if atomOf(b.afe[j]) == tagAtom {
				formattingElement = b.afe[j]
				break
			}
		}
		if formattingElement == nil {
			b.inBodyEndTagOther(tagAtom, tagName)
			return
		}

		feIndex := b.oeIndex(formattingElement)
		if feIndex == -1 {
			b.afeRemove(formattingElement)
			return
		}
		if !b.elementInScope(defaultScope, tagAtom) {
			return
		}

		var furthestBlock *tree.Node
		for _, e := range b.oe[feIndex:] {
			if isSpecialElement(e) {
				furthestBlock = e
				break
			}
		}
		if furthestBlock == nil {
			e := b.oePop()
			for e != formattingElement {
				e = b.oePop()
			}
			b.afeRemove(e)
			return
		}

		commonAncestor := b.doc
		if feIndex > 0 {
			commonAncestor = b.oe[feIndex-1]
		}
		bookmark := b.afeIndex(formattingElement)

		lastNode := furthestBlock
		node := furthestBlock
		x := b.oeIndex(node)
		j := 0
		for {
			j++
			x--
			node = b.oe[x]
			if node == formattingElement {
				break
			}
			if ni := b.afeIndex(node); j > 3 && ni > -1 {
				b.afeRemove(node)
				if ni <= bookmark {
					bookmark--
				}
				continue
			}
			if b.afeIndex(node) == -1 {
				b.oeRemove(node)
				continue
			}
			clone := node.Clone(false)
			b.afe[b.afeIndex(node)] = clone
			b.oe[b.oeIndex(node)] = clone
			node = clone
			if lastNode == furthestBlock {
				bookmark = b.afeIndex(node) + 1
			}
			if lastNode.Parent != nil {
				lastNode.Parent.RemoveChild(lastNode)
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		if lastNode.Parent != nil {
			lastNode.Parent.RemoveChild(lastNode)
		}
		switch atomOf(commonAncestor) {
		case a.Table, a.Tbody, a.Tfoot, a.Thead, a.Tr:
			ip := b.fosterParentingInsertionPointFor(commonAncestor)
			ip.InsertNode(lastNode)
		default:
			commonAncestor.AppendChild(lastNode)
		}

		clone := formattingElement.Clone(false)
		for c := furthestBlock.FirstChild; c != nil; {
			next := c.NextSibling
			furthestBlock.RemoveChild(c)
			clone.AppendChild(c)
			c = next
		}
		furthestBlock.AppendChild(clone)

		if oldLoc := b.afeIndex(formattingElement); oldLoc != -1 && oldLoc < bookmark {
			bookmark--
		}
		b.afeRemove(formattingElement)
		if bookmark > len(b.afe) {
			bookmark = len(b.afe)
		}
		b.afe = append(b.afe[:bookmark], append([]*tree.Node{clone}, b.afe[bookmark:]...)...)

		b.oeRemove(formattingElement)
		if idx := b.oeIndex(furthestBlock); idx != -1 {
			b.oe = append(b.oe[:idx+1], append([]*tree.Node{clone}, b.oe[idx+1:]...)...)
		}
	}
}

// fosterParentingInsertionPointFor mirrors fosterParentingInsertionPoint
// but is used by the adoption agency algorithm, which already knows it
// wants to foster-parent regardless of b.fosterParenting's current value.
func (b *Builder) fosterParentingInsertionPointFor(_ *tree.Node) tree.InsertionPoint {
	return b.fosterParentingInsertionPoint()
}

// inBodyEndTagOther performs spec.md §4.3's "any other end tag" algorithm
// used both as the in-body fallback and as the adoption agency's give-up
// case.
func (b *Builder) inBodyEndTagOther(tagAtom a.Atom, tagName string) {
	for i := len(b.oe) - 1; i >= 0; i-- {
		n := b.oe[i]
		if atomOf(n) == tagAtom && (tagAtom != 0 || n.Data == tagName) {
			b.oe = b.oe[:i]
			break
		}
		if isSpecialElement(n) {
			break
		}
	}
}

package treebuilder

import (
	"github.com/corehtml/html5/token"
	"github.com/corehtml/html5/tree"
)

// initFragmentParsing implements spec.md §4.3's "parsing HTML fragments"
// algorithm: seed a synthetic <html> root as the only open element (the
// context element itself is not pushed; resetInsertionMode consults it),
// prime the tokenizer's text state when the context implies one
// (textarea/title -> RCDATA, style/xmp/iframe/noembed/noframes -> RAWTEXT,
// script -> script data, plaintext -> PLAINTEXT, noscript -> RAWTEXT when
// scripting is enabled), reset the form pointer to the nearest ancestor
// form, and compute the starting insertion mode via resetInsertionMode.
func (b *Builder) initFragmentParsing() {
	html := tree.NewElement("html", tree.HTML)
	b.doc.AppendChild(html)
	b.oePush(html)

	ctx := b.fragmentContext
	switch ctx.Data {
	case "title", "textarea":
		b.tokenizer.SetState(token.RCDATAState)
	case "style", "xmp", "iframe", "noembed", "noframes":
		b.tokenizer.SetState(token.RAWTEXTState)
	case "script":
		b.tokenizer.SetState(token.ScriptDataState)
	case "plaintext":
		b.tokenizer.SetState(token.PLAINTEXTState)
	case "noscript":
		if b.scripting {
			b.tokenizer.SetState(token.RAWTEXTState)
		}
	}
	b.tokenizer.SetLastStartTag(ctx.Data)

	for n := ctx; n != nil; n = n.Parent {
		if n.Data == "form" && n.Namespace == tree.HTML {
			b.formElement = n
			break
		}
	}

	b.resetInsertionMode()
}

// Fragment drains the oe stack's implied <html> wrapper and returns the
// parsed children as a DocumentFragment, per spec.md §4.3's fragment
// parsing algorithm's final step.
func (b *Builder) Fragment() *tree.Node {
	frag := tree.NewDocumentFragment()
	var htmlRoot *tree.Node
	for c := b.doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == tree.ElementNode && c.Data == "html" {
			htmlRoot = c
			break
		}
	}
	if htmlRoot == nil {
		return frag
	}
	for c := htmlRoot.FirstChild; c != nil; {
		next := c.NextSibling
		htmlRoot.RemoveChild(c)
		frag.AppendChild(c)
		c = next
	}
	return frag
}

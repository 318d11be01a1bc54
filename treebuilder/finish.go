package treebuilder

import "github.com/corehtml/html5/tree"

// Run drives the wired tokenizer to completion; every token, EOF
// included, reaches ProcessToken. It returns nothing and does not run the
// select-content post-pass; callers call Finish afterwards for that.
func (b *Builder) Run() {
	b.tokenizer.Run()
}

// Finish performs spec.md §4.3's document-level finalization: it runs the
// "select-content post-pass" spec.md §9 describes, which is not part of
// the WHATWG tree construction algorithm proper but is treated as part of
// this parser's finalization contract. For every <select> containing a
// <selectedcontent>, the children of the selected <option> (the one with
// an explicit "selected" attribute, or else the first option) are
// deep-cloned into the <selectedcontent>.
func (b *Builder) Finish() {
	walkSelects(b.doc)
}

func walkSelects(n *tree.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == tree.ElementNode && c.Data == "select" && c.Namespace == tree.HTML {
			populateSelectedContent(c)
		}
		walkSelects(c)
	}
}

func populateSelectedContent(sel *tree.Node) {
	var target *tree.Node
	var firstOption, selectedOption *tree.Node
	for c := sel.FirstChild; c != nil; c = c.NextSibling {
		collectOptions(c, &firstOption, &selectedOption)
		if c.Type == tree.ElementNode && c.Data == "selectedcontent" {
			target = c
		}
	}
	if target == nil {
		return
	}
	chosen := selectedOption
	if chosen == nil {
		chosen = firstOption
	}
	for c := target.FirstChild; c != nil; {
		next := c.NextSibling
		target.RemoveChild(c)
		c = next
	}
	if chosen == nil {
		return
	}
	for c := chosen.FirstChild; c != nil; c = c.NextSibling {
		target.AppendChild(c.Clone(true))
	}
}

// collectOptions walks option elements directly and through optgroup
// wrappers, recording the first option seen and the (last) explicitly
// selected one.
func collectOptions(n *tree.Node, first, selected **tree.Node) {
	if n.Type != tree.ElementNode || n.Namespace != tree.HTML {
		return
	}
	switch n.Data {
	case "option":
		if *first == nil {
			*first = n
		}
		if _, ok := n.Attribute("selected"); ok {
			*selected = n
		}
	case "optgroup":
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectOptions(c, first, selected)
		}
	}
}

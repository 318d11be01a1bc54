// Package tree implements the document data model produced by the parser:
// a small tagged-variant Node type connected by parent/sibling pointers, in
// the same shape golang.org/x/net/html.Node uses, extended with the fields
// the tree builder needs (namespace, template content, duplicate-rejecting
// attributes).
package tree

// Type is the tagged variant discriminating what a Node represents.
type Type int

const (
	DocumentNode Type = iota
	DocumentFragmentNode
	DoctypeNode
	CommentNode
	TextNode
	ElementNode
)

func (t Type) String() string {
	switch t {
	case DocumentNode:
		return "#document"
	case DocumentFragmentNode:
		return "#document-fragment"
	case DoctypeNode:
		return "#doctype"
	case CommentNode:
		return "#comment"
	case TextNode:
		return "#text"
	case ElementNode:
		return "#element"
	default:
		return "#unknown"
	}
}

// Namespace identifies which vocabulary an Element belongs to. The empty
// string means HTML.
type Namespace string

const (
	HTML Namespace = ""
	SVG  Namespace = "svg"
	MathML Namespace = "math"
)

// Attribute is a single name/value pair. Namespace is set only for the
// handful of foreign-content attributes that are adjusted onto the
// xlink/xml/xmlns namespaces (spec.md §4.3 "Foreign content").
type Attribute struct {
	Namespace string
	Name      string
	Value     string
}

// Node is the single tagged-variant type backing every part of the tree:
// Document, DocumentFragment, Doctype, Comment, Text and Element.
//
// Children are held as a doubly linked list (FirstChild/LastChild plus each
// child's PrevSibling/NextSibling) so that adoption agency and foster
// parenting moves, which splice nodes between parents, are O(1) instead of
// O(n) slice surgery. Parent is a non-owning back-reference: a Node's
// lifetime is governed entirely by whether its parent still links to it.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Type      Type
	Namespace Namespace

	// Data holds: the local (lowercased, for HTML) tag name for Element
	// nodes, the literal text for Text and Comment nodes, and the name for
	// Doctype nodes.
	Data string

	Attr []Attribute

	// TemplateContent is non-nil only for an Element whose Data is
	// "template" and whose Namespace is HTML; it is the DocumentFragment
	// node owning the template's content, per spec.md §3.
	TemplateContent *Node

	// Doctype fields, valid only when Type == DoctypeNode.
	PublicID    string
	SystemID    string
	ForceQuirks bool
}

// NewElement creates a detached Element node in the given namespace.
func NewElement(name string, ns Namespace) *Node {
	n := &Node{Type: ElementNode, Data: name, Namespace: ns}
	if ns == HTML && name == "template" {
		n.TemplateContent = &Node{Type: DocumentFragmentNode}
	}
	return n
}

// NewText creates a detached Text node.
func NewText(data string) *Node { return &Node{Type: TextNode, Data: data} }

// NewComment creates a detached Comment node.
func NewComment(data string) *Node { return &Node{Type: CommentNode, Data: data} }

// NewDocument creates a new, empty Document node.
func NewDocument() *Node { return &Node{Type: DocumentNode} }

// NewDocumentFragment creates a new, empty DocumentFragment node.
func NewDocumentFragment() *Node { return &Node{Type: DocumentFragmentNode} }

// HasChildNodes reports whether n has at least one child.
func (n *Node) HasChildNodes() bool { return n.FirstChild != nil }

// Attribute looks up an attribute by name, returning ("", false) if absent.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttribute inserts name=value, or overwrites it in place if it already
// exists (used by template-content / fragment helpers; the tokenizer itself
// enforces first-one-wins and never calls this for a pre-existing key).
func (n *Node) SetAttribute(name, value string) {
	for i, a := range n.Attr {
		if a.Name == name {
			n.Attr[i].Value = value
			return
		}
	}
	n.Attr = append(n.Attr, Attribute{Name: name, Value: value})
}

// AppendChild adds child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = child
	} else {
		n.FirstChild = child
	}
	child.PrevSibling = last
	child.NextSibling = nil
	child.Parent = n
	n.LastChild = child
}

// InsertBefore inserts newChild immediately before ref, or at the end if ref
// is nil. newChild is detached from any previous parent first.
func (n *Node) InsertBefore(newChild, ref *Node) {
	if ref == nil {
		n.AppendChild(newChild)
		return
	}
	if ref.Parent != n {
		panic("tree: InsertBefore called with a reference node that is not a child of n")
	}
	if newChild.Parent != nil {
		newChild.Parent.RemoveChild(newChild)
	}
	prev := ref.PrevSibling
	newChild.PrevSibling = prev
	newChild.NextSibling = ref
	if prev != nil {
		prev.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	ref.PrevSibling = newChild
	newChild.Parent = n
}

// RemoveChild detaches child from n. It panics if child is not a child of n,
// mirroring the invariant that the tree builder never attempts to remove a
// node it does not believe is present.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("tree: RemoveChild called with a node that is not a child of n")
	}
	if child.PrevSibling != nil {
		child.PrevSibling.NextSibling = child.NextSibling
	} else {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PrevSibling = child.PrevSibling
	} else {
		n.LastChild = child.PrevSibling
	}
	child.Parent = nil
	child.PrevSibling = nil
	child.NextSibling = nil
}

// Children returns n's children as a freshly allocated slice, for callers
// that want random access (e.g. the serializer). The canonical iteration
// form for hot paths remains the FirstChild/NextSibling walk.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Clone returns a detached copy of n. A template element's template
// content is always deep-copied. When deep is true, the whole child
// subtree is duplicated as well; otherwise n is copied with no children.
// The tree builder clones shallowly in the adoption agency and formatting
// reconstruction, and deeply in the select-content post-pass.
func (n *Node) Clone(deep bool) *Node {
	c := &Node{
		Type:        n.Type,
		Namespace:   n.Namespace,
		Data:        n.Data,
		PublicID:    n.PublicID,
		SystemID:    n.SystemID,
		ForceQuirks: n.ForceQuirks,
	}
	if n.Attr != nil {
		c.Attr = append([]Attribute(nil), n.Attr...)
	}
	if n.TemplateContent != nil {
		c.TemplateContent = n.TemplateContent.Clone(true)
	}
	if deep {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			c.AppendChild(ch.Clone(true))
		}
	}
	return c
}

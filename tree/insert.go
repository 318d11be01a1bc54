package tree

// InsertionPoint names where a node should land: as a child of Parent,
// immediately before Before (or at the end of Parent's children when Before
// is nil). Both the ordinary "current node" insertion point and the
// foster-parenting insertion point (spec.md §4.3) are expressed this way,
// so treebuilder code has one insertion primitive regardless of which rule
// computed the location.
type InsertionPoint struct {
	Parent *Node
	Before *Node
}

// InsertNode places n at ip, detaching it from any previous parent.
func (ip InsertionPoint) InsertNode(n *Node) {
	ip.Parent.InsertBefore(n, ip.Before)
}

// InsertText implements the coalescing-text invariant from spec.md §3: if
// the node immediately preceding ip is a Text node, its data is extended in
// place instead of creating a new sibling.
func (ip InsertionPoint) InsertText(data string) {
	if data == "" {
		return
	}
	var prev *Node
	if ip.Before != nil {
		prev = ip.Before.PrevSibling
	} else {
		prev = ip.Parent.LastChild
	}
	if prev != nil && prev.Type == TextNode {
		prev.Data += data
		return
	}
	ip.InsertNode(NewText(data))
}

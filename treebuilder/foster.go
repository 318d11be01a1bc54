package treebuilder

import (
	"github.com/corehtml/html5/tree"

	a "golang.org/x/net/html/atom"
)

// insertionPoint computes where the next node should land, applying the
// foster-parenting redirection (spec.md §4.3 "foster parenting") when the
// current node is a table/tbody/tfoot/thead/tr and foster parenting is
// switched on by the in-table-family insertion modes.
func (b *Builder) insertionPoint() tree.InsertionPoint {
	if !b.shouldFosterParent() {
		return tree.InsertionPoint{Parent: b.top()}
	}
	return b.fosterParentingInsertionPoint()
}

func (b *Builder) shouldFosterParent() bool {
	if !b.fosterParenting {
		return false
	}
	switch atomOf(b.top()) {
	case a.Table, a.Tbody, a.Tfoot, a.Thead, a.Tr:
		return true
	}
	return false
}

// fosterParentingInsertionPoint implements spec.md §4.3's foster-parenting
// algorithm: walk the stack of open elements for the last table (or
// template, if it is closer to the top) and land just before it.
func (b *Builder) fosterParentingInsertionPoint() tree.InsertionPoint {
	var table, template *tree.Node
	tableIdx, templateIdx := -1, -1
	for i := len(b.oe) - 1; i >= 0; i-- {
		if table == nil && atomOf(b.oe[i]) == a.Table {
			table = b.oe[i]
			tableIdx = i
		}
		if template == nil && atomOf(b.oe[i]) == a.Template {
			template = b.oe[i]
			templateIdx = i
		}
	}

	if template != nil && (table == nil || templateIdx > tableIdx) {
		return tree.InsertionPoint{Parent: template.TemplateContent}
	}
	if table == nil {
		return tree.InsertionPoint{Parent: b.oe[0]}
	}
	if table.Parent != nil {
		return tree.InsertionPoint{Parent: table.Parent, Before: table}
	}
	if tableIdx == 0 {
		return tree.InsertionPoint{Parent: b.oe[0]}
	}
	return tree.InsertionPoint{Parent: b.oe[tableIdx-1]}
}

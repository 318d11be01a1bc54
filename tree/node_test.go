package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/tree"
)

func TestAppendChild_LinksSiblingsAndParent(t *testing.T) {
	parent := tree.NewElement("div", tree.HTML)
	a := tree.NewText("a")
	b := tree.NewText("b")
	parent.AppendChild(a)
	parent.AppendChild(b)

	require.Equal(t, a, parent.FirstChild)
	require.Equal(t, b, parent.LastChild)
	require.Equal(t, b, a.NextSibling)
	require.Equal(t, a, b.PrevSibling)
	require.Equal(t, parent, a.Parent)
}

func TestAppendChild_DetachesFromPreviousParent(t *testing.T) {
	p1 := tree.NewElement("div", tree.HTML)
	p2 := tree.NewElement("span", tree.HTML)
	child := tree.NewText("x")
	p1.AppendChild(child)
	p2.AppendChild(child)

	require.False(t, p1.HasChildNodes())
	require.Equal(t, p2, child.Parent)
}

func TestInsertBefore_AtMiddle(t *testing.T) {
	parent := tree.NewElement("div", tree.HTML)
	a := tree.NewText("a")
	c := tree.NewText("c")
	parent.AppendChild(a)
	parent.AppendChild(c)

	b := tree.NewText("b")
	parent.InsertBefore(b, c)

	require.Equal(t, []*tree.Node{a, b, c}, parent.Children())
}

func TestRemoveChild_RelinksSiblings(t *testing.T) {
	parent := tree.NewElement("div", tree.HTML)
	a, b, c := tree.NewText("a"), tree.NewText("b"), tree.NewText("c")
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	parent.RemoveChild(b)

	require.Equal(t, []*tree.Node{a, c}, parent.Children())
	require.Nil(t, b.Parent)
}

func TestSetAttribute_OverwritesExisting(t *testing.T) {
	n := tree.NewElement("a", tree.HTML)
	n.SetAttribute("href", "x")
	n.SetAttribute("href", "y")

	v, ok := n.Attribute("href")
	require.True(t, ok)
	require.Equal(t, "y", v)
	require.Len(t, n.Attr, 1)
}

func TestNewElement_TemplateGetsOwnContentFragment(t *testing.T) {
	tpl := tree.NewElement("template", tree.HTML)
	require.NotNil(t, tpl.TemplateContent)
	require.Equal(t, tree.DocumentFragmentNode, tpl.TemplateContent.Type)

	notTemplate := tree.NewElement("div", tree.HTML)
	require.Nil(t, notTemplate.TemplateContent)
}

func TestClone_ShallowOmitsChildren(t *testing.T) {
	n := tree.NewElement("div", tree.HTML)
	n.SetAttribute("id", "x")
	n.AppendChild(tree.NewText("hi"))

	c := n.Clone(false)

	require.Equal(t, "div", c.Data)
	v, ok := c.Attribute("id")
	require.True(t, ok)
	require.Equal(t, "x", v)
	require.False(t, c.HasChildNodes())
	require.Nil(t, c.Parent)
}

func TestClone_DeepCopiesSubtree(t *testing.T) {
	n := tree.NewElement("div", tree.HTML)
	n.AppendChild(tree.NewText("hi"))

	c := n.Clone(true)

	require.True(t, c.HasChildNodes())
	require.Equal(t, "hi", c.FirstChild.Data)
	require.NotEqual(t, n.FirstChild, c.FirstChild)
}

func TestInsertionPoint_InsertTextCoalescesWithPrecedingTextNode(t *testing.T) {
	parent := tree.NewElement("div", tree.HTML)
	parent.AppendChild(tree.NewText("a"))

	ip := tree.InsertionPoint{Parent: parent}
	ip.InsertText("b")

	require.Equal(t, 1, len(parent.Children()))
	require.Equal(t, "ab", parent.FirstChild.Data)
}

func TestInsertionPoint_InsertTextCreatesNewNodeWhenPrecedingIsNotText(t *testing.T) {
	parent := tree.NewElement("div", tree.HTML)
	parent.AppendChild(tree.NewElement("span", tree.HTML))

	ip := tree.InsertionPoint{Parent: parent}
	ip.InsertText("hi")

	require.Equal(t, 2, len(parent.Children()))
	require.Equal(t, tree.TextNode, parent.LastChild.Type)
	require.Equal(t, "hi", parent.LastChild.Data)
}

func TestInsertionPoint_InsertTextIgnoresEmptyString(t *testing.T) {
	parent := tree.NewElement("div", tree.HTML)
	ip := tree.InsertionPoint{Parent: parent}
	ip.InsertText("")
	require.False(t, parent.HasChildNodes())
}

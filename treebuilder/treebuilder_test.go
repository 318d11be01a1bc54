package treebuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	html5 "github.com/corehtml/html5"
	"github.com/corehtml/html5/serialize"
	"github.com/corehtml/html5/tree"
)

func findDescendant(n *tree.Node, name string) *tree.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == tree.ElementNode && c.Data == name {
			return c
		}
		if found := findDescendant(c, name); found != nil {
			return found
		}
	}
	return nil
}

func TestBuilder_AdoptionAgencyReparentsMisnestedFormatting(t *testing.T) {
	res, err := html5.ParseString("<p>1<b>2<i>3</p>4</i>5</b>", html5.Options{})
	require.NoError(t, err)

	body := findDescendant(res.Root, "body")
	require.NotNil(t, body)
	out := serialize.TestFormat(res.Root)
	require.Contains(t, out, `"1"`)
	require.Contains(t, out, `"2"`)
	require.Contains(t, out, `"3"`)
	require.Contains(t, out, `"4"`)
	require.Contains(t, out, `"5"`)
}

func TestBuilder_ActiveFormattingElementsReconstructAcrossTable(t *testing.T) {
	res, err := html5.ParseString("<b>bold<table>in table</table>after</b>", html5.Options{})
	require.NoError(t, err)

	b1 := findDescendant(res.Root, "b")
	require.NotNil(t, b1)
}

func TestBuilder_SelectContentPostPassCopiesSelectedOption(t *testing.T) {
	res, err := html5.ParseString(
		`<select><selectedcontent></selectedcontent><option>first</option><option selected>second</option></select>`,
		html5.Options{},
	)
	require.NoError(t, err)

	sel := findDescendant(res.Root, "select")
	require.NotNil(t, sel)
	sc := findDescendant(sel, "selectedcontent")
	require.NotNil(t, sc)
	require.NotNil(t, sc.FirstChild)
	require.Equal(t, "second", sc.FirstChild.Data)
}

func TestBuilder_SelectContentPostPassFallsBackToFirstOption(t *testing.T) {
	res, err := html5.ParseString(
		`<select><selectedcontent></selectedcontent><option>only</option></select>`,
		html5.Options{},
	)
	require.NoError(t, err)

	sel := findDescendant(res.Root, "select")
	require.NotNil(t, sel)
	sc := findDescendant(sel, "selectedcontent")
	require.NotNil(t, sc)
	require.NotNil(t, sc.FirstChild)
	require.Equal(t, "only", sc.FirstChild.Data)
}

func TestBuilder_ParsesDocumentWithLegacyPublicDoctype(t *testing.T) {
	res, err := html5.ParseString(
		`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN"><p>x`,
		html5.Options{},
	)
	require.NoError(t, err)
	require.NotNil(t, res.Root)
}

func TestBuilder_TemplateContentIsolatedFromMainTree(t *testing.T) {
	res, err := html5.ParseString(`<template><p>inside</p></template>`, html5.Options{})
	require.NoError(t, err)

	tpl := findDescendant(res.Root, "template")
	require.NotNil(t, tpl)
	require.Nil(t, tpl.FirstChild)
	require.NotNil(t, tpl.TemplateContent)
	require.Equal(t, "p", tpl.TemplateContent.FirstChild.Data)
}

func TestBuilder_ForeignContentBreakoutStartTagBecomesHTMLSibling(t *testing.T) {
	res, err := html5.ParseString("<body><svg><b>hi</b></svg></body>", html5.Options{})
	require.NoError(t, err)

	body := findDescendant(res.Root, "body")
	require.NotNil(t, body)

	svg := findDescendant(body, "svg")
	require.NotNil(t, svg)
	require.Equal(t, tree.SVG, svg.Namespace)

	b := findDescendant(body, "b")
	require.NotNil(t, b)
	require.Equal(t, tree.HTML, b.Namespace)
	require.Equal(t, body, b.Parent)
	require.NotNil(t, b.FirstChild)
	require.Equal(t, "hi", b.FirstChild.Data)
}

func TestBuilder_ForeignContentNonBreakoutTagStaysForeign(t *testing.T) {
	res, err := html5.ParseString("<body><svg><circle/></svg></body>", html5.Options{})
	require.NoError(t, err)

	circle := findDescendant(res.Root, "circle")
	require.NotNil(t, circle)
	require.Equal(t, tree.SVG, circle.Namespace)
}

func TestBuilder_FragmentParsingProducesFragmentRoot(t *testing.T) {
	res, err := html5.ParseString("<tr><td>x</td></tr>", html5.Options{
		FragmentContext: &html5.FragmentContext{TagName: "table", Namespace: tree.HTML},
	})
	require.NoError(t, err)
	require.Equal(t, tree.DocumentFragmentNode, res.Root.Type)
	tbody := findDescendant(res.Root, "tbody")
	require.NotNil(t, tbody)
}

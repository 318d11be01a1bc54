package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	html5 "github.com/corehtml/html5"
	"github.com/corehtml/html5/cmd/internal/fixtures"
	"github.com/corehtml/html5/tree"
)

func TestParseFragmentContext_PlainHTML(t *testing.T) {
	fc := parseFragmentContext("div")
	require.Equal(t, &html5.FragmentContext{TagName: "div", Namespace: tree.HTML}, fc)
}

func TestParseFragmentContext_SVGNamespace(t *testing.T) {
	fc := parseFragmentContext("svg title")
	require.Equal(t, &html5.FragmentContext{TagName: "title", Namespace: tree.SVG}, fc)
}

func TestParseFragmentContext_MathMLNamespace(t *testing.T) {
	fc := parseFragmentContext("math annotation-xml")
	require.Equal(t, &html5.FragmentContext{TagName: "annotation-xml", Namespace: tree.MathML}, fc)
}

func TestRunRecord_PassesOnMatchingDocument(t *testing.T) {
	rec := fixtures.ParseDat("#data\n<p>hi\n#document\n| <html>\n|   <head>\n|   <body>\n|     <p>\n|       \"hi\"\n")[0]
	require.True(t, runRecord("t.dat", 0, rec))
}

func TestRunRecord_FailsOnMismatch(t *testing.T) {
	rec := fixtures.ParseDat("#data\n<p>hi\n#document\n| <html>\n|   <head>\n|   <body>\n|     <p>\n|       \"nope\"\n")[0]
	require.False(t, runRecord("t.dat", 0, rec))
}

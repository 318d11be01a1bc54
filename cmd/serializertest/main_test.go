package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/tree"
)

func TestBuildNode_ElementWithAttrsAndChildren(t *testing.T) {
	var raw []interface{}
	require.NoError(t, json.Unmarshal([]byte(`["p", {"class": "a"}, [["#text", "hi"]]]`), &raw))
	n := buildNode(raw)
	require.Equal(t, tree.ElementNode, n.Type)
	require.Equal(t, "p", n.Data)
	v, ok := n.Attribute("class")
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.NotNil(t, n.FirstChild)
	require.Equal(t, tree.TextNode, n.FirstChild.Type)
	require.Equal(t, "hi", n.FirstChild.Data)
}

func TestBuildNode_SVGNamespacePrefix(t *testing.T) {
	var raw []interface{}
	require.NoError(t, json.Unmarshal([]byte(`["svg title", {}, []]`), &raw))
	n := buildNode(raw)
	require.Equal(t, tree.SVG, n.Namespace)
	require.Equal(t, "title", n.Data)
}

func TestBuildNode_Comment(t *testing.T) {
	var raw []interface{}
	require.NoError(t, json.Unmarshal([]byte(`["#comment", "hi"]`), &raw))
	n := buildNode(raw)
	require.Equal(t, tree.CommentNode, n.Type)
	require.Equal(t, "hi", n.Data)
}

func TestRunCase_PassesWhenAnyExpectedMatches(t *testing.T) {
	tc := testCase{
		Input:    []interface{}{[]interface{}{"p", map[string]interface{}{}, []interface{}{}}},
		Expected: []string{"<p></p>", "<wrong>"},
	}
	require.True(t, runCase("t.test", tc))
}

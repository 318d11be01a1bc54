package html5_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	html5 "github.com/corehtml/html5"
	"github.com/corehtml/html5/serialize"
	"github.com/corehtml/html5/tree"
)

func TestParseString_MinimalDocument(t *testing.T) {
	res, err := html5.ParseString("<html><head></head><body><p>Hello</p></body></html>", html5.Options{})
	require.NoError(t, err)
	require.NotNil(t, res.Root)

	var body *tree.Node
	for c := res.Root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == tree.ElementNode && c.Data == "html" {
			for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
				if gc.Data == "body" {
					body = gc
				}
			}
		}
	}
	require.NotNil(t, body)
	require.Equal(t, "p", body.FirstChild.Data)
	require.Equal(t, "Hello", body.FirstChild.FirstChild.Data)
}

func TestParseString_FosterParenting(t *testing.T) {
	res, err := html5.ParseString("<table>A<tr><td>B", html5.Options{})
	require.NoError(t, err)
	out := serialize.TestFormat(res.Root)
	require.Contains(t, out, `"A"`)
	require.Contains(t, out, `"B"`)
}

func TestParseString_StrictSurfacesFirstError(t *testing.T) {
	_, err := html5.ParseString("<p>a</</p>", html5.Options{Strict: true})
	if err != nil {
		var strictErr *html5.StrictModeError
		require.ErrorAs(t, err, &strictErr)
	}
}

func TestParseString_FragmentContext(t *testing.T) {
	res, err := html5.ParseString("<tr><td>x</td></tr>", html5.Options{
		FragmentContext: &html5.FragmentContext{TagName: "table", Namespace: tree.HTML},
	})
	require.NoError(t, err)
	require.Equal(t, tree.DocumentFragmentNode, res.Root.Type)
}

func TestParseString_CollectErrors(t *testing.T) {
	res, err := html5.ParseString("<p><b attr=\"x\" attr=\"y\">x", html5.Options{CollectErrors: true})
	require.NoError(t, err)
	require.NotEmpty(t, res.Errors)
}

func TestParse_SniffsEncoding(t *testing.T) {
	res, err := html5.Parse([]byte("<html><head><meta charset=\"utf-8\"></head></html>"), "", html5.Options{})
	require.NoError(t, err)
	require.Equal(t, "UTF-8", res.Encoding)
}

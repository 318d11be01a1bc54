package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	html5 "github.com/corehtml/html5"
	"github.com/corehtml/html5/selector"
	"github.com/corehtml/html5/tree"
)

func TestSelect_DeepSearch(t *testing.T) {
	res, err := html5.ParseString(`<div><p>a</p><section><p>b</p></section></div>`, html5.Options{})
	require.NoError(t, err)

	matches, err := selector.Select(res.Root, "//p")
	require.NoError(t, err)
	require.Len(t, matches, 2)
}

func TestSelect_AttributeFilter(t *testing.T) {
	res, err := html5.ParseString(`<div><a href="x">1</a><a href="y">2</a></div>`, html5.Options{})
	require.NoError(t, err)

	matches, err := selector.Select(res.Root, "//a[href=y]")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	href, _ := matches[0].Attribute("href")
	require.Equal(t, "y", href)
}

func TestSelect_Index(t *testing.T) {
	res, err := html5.ParseString(`<ul><li>1</li><li>2</li><li>3</li></ul>`, html5.Options{})
	require.NoError(t, err)

	ul, err := selector.SelectOne(res.Root, "//ul")
	require.NoError(t, err)

	matches, err := selector.Select(ul, "li[1]")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "2", matches[0].FirstChild.Data)
}

func TestSelect_EmptySelectorErrors(t *testing.T) {
	_, err := selector.Select(&tree.Node{}, "")
	require.Error(t, err)
	var selErr *selector.SelectorError
	require.ErrorAs(t, err, &selErr)
}

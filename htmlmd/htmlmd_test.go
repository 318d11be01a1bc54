package htmlmd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	html5 "github.com/corehtml/html5"
	"github.com/corehtml/html5/htmlmd"
)

func TestRender_HeadingAndParagraph(t *testing.T) {
	res, err := html5.ParseString("<h1>Title</h1><p>Body text</p>", html5.Options{})
	require.NoError(t, err)
	out := htmlmd.Render(res.Root)
	require.Contains(t, out, "# Title")
	require.Contains(t, out, "Body text")
}

func TestRender_Link(t *testing.T) {
	res, err := html5.ParseString(`<a href="https://example.com">go</a>`, html5.Options{})
	require.NoError(t, err)
	require.Equal(t, "[go](https://example.com)", htmlmd.Render(res.Root))
}

func TestRender_List(t *testing.T) {
	res, err := html5.ParseString("<ul><li>one</li><li>two</li></ul>", html5.Options{})
	require.NoError(t, err)
	out := htmlmd.Render(res.Root)
	require.Contains(t, out, "- one")
	require.Contains(t, out, "- two")
}

func TestRender_BoldAndItalic(t *testing.T) {
	res, err := html5.ParseString("<p><b>bold</b> and <i>italic</i></p>", html5.Options{})
	require.NoError(t, err)
	require.Contains(t, htmlmd.Render(res.Root), "**bold** and _italic_")
}

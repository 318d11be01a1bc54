package htmltext_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	html5 "github.com/corehtml/html5"
	"github.com/corehtml/html5/htmltext"
)

func TestExtract_BlockElementsBreakLines(t *testing.T) {
	res, err := html5.ParseString("<p>Hello</p><p>World</p>", html5.Options{})
	require.NoError(t, err)
	require.Equal(t, "Hello\nWorld", htmltext.Extract(res.Root))
}

func TestExtract_SkipsScriptAndStyle(t *testing.T) {
	res, err := html5.ParseString(`<div><script>var x=1;</script><style>p{color:red}</style><p>Visible</p></div>`, html5.Options{})
	require.NoError(t, err)
	require.Equal(t, "Visible", htmltext.Extract(res.Root))
}

func TestExtract_InlineElementsStayOnOneLine(t *testing.T) {
	res, err := html5.ParseString("<p>Hello <b>bold</b> world</p>", html5.Options{})
	require.NoError(t, err)
	require.Equal(t, "Hello bold world", htmltext.Extract(res.Root))
}

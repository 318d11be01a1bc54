package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/serialize"
	"github.com/corehtml/html5/tree"
)

func TestTestFormat_ElementWithSortedAttributes(t *testing.T) {
	doc := tree.NewDocument()
	p := tree.NewElement("p", tree.HTML)
	p.SetAttribute("id", "x")
	p.SetAttribute("class", "y")
	doc.AppendChild(p)

	got := serialize.TestFormat(doc)
	require.Equal(t, "| <p>\n|   class=\"y\"\n|   id=\"x\"", got)
}

func TestTestFormat_TextAndComment(t *testing.T) {
	doc := tree.NewDocument()
	doc.AppendChild(tree.NewText("hi"))
	doc.AppendChild(tree.NewComment("c"))

	got := serialize.TestFormat(doc)
	require.Equal(t, "| \"hi\"\n| <!-- c -->", got)
}

func TestTestFormat_DoctypeWithoutIDs(t *testing.T) {
	doc := tree.NewDocument()
	doc.AppendChild(&tree.Node{Type: tree.DoctypeNode, Data: "html"})

	got := serialize.TestFormat(doc)
	require.Equal(t, "| <!DOCTYPE html>", got)
}

func TestTestFormat_ForeignElementPrefixed(t *testing.T) {
	doc := tree.NewDocument()
	doc.AppendChild(tree.NewElement("title", tree.SVG))

	got := serialize.TestFormat(doc)
	require.Equal(t, "| <svg title>", got)
}

func TestTestFormat_TemplateContentUnderContentMarker(t *testing.T) {
	doc := tree.NewDocument()
	tpl := tree.NewElement("template", tree.HTML)
	tpl.TemplateContent.AppendChild(tree.NewText("hi"))
	doc.AppendChild(tpl)

	got := serialize.TestFormat(doc)
	require.Equal(t, "| <template>\n|   content\n|     \"hi\"", got)
}

func TestTestFormatFragment_SerializesFragmentChildren(t *testing.T) {
	frag := tree.NewDocumentFragment()
	frag.AppendChild(tree.NewElement("p", tree.HTML))

	got := serialize.TestFormatFragment(frag)
	require.Equal(t, "| <p>", got)
}

func TestHTML_VoidElementHasNoClosingTag(t *testing.T) {
	doc := tree.NewDocument()
	doc.AppendChild(tree.NewElement("br", tree.HTML))

	require.Equal(t, "<br>", serialize.HTML(doc))
}

func TestHTML_NonVoidElementIsClosed(t *testing.T) {
	doc := tree.NewDocument()
	doc.AppendChild(tree.NewElement("p", tree.HTML))

	require.Equal(t, "<p></p>", serialize.HTML(doc))
}

func TestHTML_EscapesTextButNotScriptBody(t *testing.T) {
	doc := tree.NewDocument()
	p := tree.NewElement("p", tree.HTML)
	p.AppendChild(tree.NewText("a < b & c"))
	doc.AppendChild(p)

	script := tree.NewElement("script", tree.HTML)
	script.AppendChild(tree.NewText("if (a < b) {}"))
	doc.AppendChild(script)

	got := serialize.HTML(doc)
	require.Equal(t, "<p>a &lt; b &amp; c</p><script>if (a < b) {}</script>", got)
}

func TestHTML_AttributesEscapeAmpAndQuote(t *testing.T) {
	doc := tree.NewDocument()
	a := tree.NewElement("a", tree.HTML)
	a.SetAttribute("href", `x"y&z`)
	doc.AppendChild(a)

	got := serialize.HTML(doc)
	require.Equal(t, `<a href="x&quot;y&amp;z"></a>`, got)
}

func TestHTML_TemplateRendersOwnContentNotDOMChildren(t *testing.T) {
	doc := tree.NewDocument()
	tpl := tree.NewElement("template", tree.HTML)
	tpl.TemplateContent.AppendChild(tree.NewText("hi"))
	doc.AppendChild(tpl)

	require.Equal(t, "<template>hi</template>", serialize.HTML(doc))
}

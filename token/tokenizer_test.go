package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/token"
)

type collectSink struct {
	tokens []token.Token
}

func (c *collectSink) ProcessToken(t token.Token) token.Directive {
	c.tokens = append(c.tokens, t)
	return token.Continue
}

func run(t *testing.T, input string, opts token.Options) []token.Token {
	t.Helper()
	sink := &collectSink{}
	tok := token.New(input, sink, nil, opts)
	tok.Run()
	return sink.tokens
}

func TestTokenizer_EmitsStartAndEndTag(t *testing.T) {
	tokens := run(t, "<p>hi</p>", token.Options{})
	require.Equal(t, token.StartTagToken, tokens[0].Type)
	require.Equal(t, "p", tokens[0].Data)
	require.Equal(t, token.CharacterToken, tokens[1].Type)
	require.Equal(t, "hi", tokens[1].Data)
	require.Equal(t, token.EndTagToken, tokens[2].Type)
	require.Equal(t, "p", tokens[2].Data)
	require.Equal(t, token.EOFToken, tokens[len(tokens)-1].Type)
}

func TestTokenizer_ParsesAttributes(t *testing.T) {
	tokens := run(t, `<a href="x" class='y' disabled>`, token.Options{})
	require.Equal(t, token.StartTagToken, tokens[0].Type)
	href, ok := tokens[0].Attribute("href")
	require.True(t, ok)
	require.Equal(t, "x", href)
	class, ok := tokens[0].Attribute("class")
	require.True(t, ok)
	require.Equal(t, "y", class)
	disabled, ok := tokens[0].Attribute("disabled")
	require.True(t, ok)
	require.Equal(t, "", disabled)
}

func TestTokenizer_SelfClosingTag(t *testing.T) {
	tokens := run(t, `<br/>`, token.Options{})
	require.True(t, tokens[0].SelfClosing)
}

func TestTokenizer_NormalizesCRLFAndLoneCR(t *testing.T) {
	tokens := run(t, "a\r\nb\rc", token.Options{})
	require.Equal(t, token.CharacterToken, tokens[0].Type)
	require.Equal(t, "a\nb\nc", tokens[0].Data)
}

func TestTokenizer_ParsesComment(t *testing.T) {
	tokens := run(t, "<!--hello-->", token.Options{})
	require.Equal(t, token.CommentToken, tokens[0].Type)
	require.Equal(t, "hello", tokens[0].Data)
}

func TestTokenizer_ParsesDoctype(t *testing.T) {
	tokens := run(t, "<!DOCTYPE html>", token.Options{})
	require.Equal(t, token.DoctypeToken, tokens[0].Type)
	require.Equal(t, "html", tokens[0].Data)
	require.False(t, tokens[0].ForceQuirks)
}

func TestTokenizer_DoctypeWithPublicAndSystemID(t *testing.T) {
	tokens := run(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`, token.Options{})
	require.True(t, tokens[0].DoctypeHasPublicID)
	require.Equal(t, "-//W3C//DTD HTML 4.01//EN", tokens[0].DoctypePublicID)
	require.True(t, tokens[0].DoctypeHasSystemID)
	require.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", tokens[0].DoctypeSystemID)
}

func TestTokenizer_DecodesNamedCharacterReference(t *testing.T) {
	tokens := run(t, "a&amp;b", token.Options{})
	var text string
	for _, tok := range tokens {
		if tok.Type == token.CharacterToken {
			text += tok.Data
		}
	}
	require.Equal(t, "a&b", text)
}

func TestTokenizer_DecodesNumericCharacterReference(t *testing.T) {
	tokens := run(t, "&#65;&#x42;", token.Options{})
	var text string
	for _, tok := range tokens {
		if tok.Type == token.CharacterToken {
			text += tok.Data
		}
	}
	require.Equal(t, "AB", text)
}

func TestTokenizer_RAWTEXTStateDoesNotInterpretMarkup(t *testing.T) {
	tokens := run(t, "<b>not a tag</style>", token.Options{
		InitialState:      token.RAWTEXTState,
		InitialRawtextTag: "style",
	})
	require.Equal(t, token.CharacterToken, tokens[0].Type)
	require.Equal(t, "<b>not a tag", tokens[0].Data)
	require.Equal(t, token.EndTagToken, tokens[1].Type)
	require.Equal(t, "style", tokens[1].Data)
}

func TestTokenizer_PLAINTEXTStateConsumesRestOfInputAsText(t *testing.T) {
	tokens := run(t, "a<p>b", token.Options{InitialState: token.PLAINTEXTState})
	require.Equal(t, token.CharacterToken, tokens[0].Type)
	require.Equal(t, "a<p>b", tokens[0].Data)
}

func TestTokenizer_CDATASectionInForeignContext(t *testing.T) {
	sink := &collectSink{}
	tok := token.New("<![CDATA[<hi>]]>", sink, nil, token.Options{})
	tok.SetAllowCDATA(true)
	tok.Run()
	require.Equal(t, token.CharacterToken, sink.tokens[0].Type)
	require.Equal(t, "<hi>", sink.tokens[0].Data)
}

func TestTokenizer_CDATAOutsideForeignContextBecomesBogusComment(t *testing.T) {
	tokens := run(t, "<![CDATA[<hi>]]>", token.Options{})
	require.Equal(t, token.CommentToken, tokens[0].Type)
}

func TestTokenizer_EndTagAttributesAreSyntaxErrorsButParsed(t *testing.T) {
	tokens := run(t, `</p class="x">`, token.Options{})
	require.Equal(t, token.EndTagToken, tokens[0].Type)
	require.Equal(t, "p", tokens[0].Data)
}

func TestTokenizer_DuplicateAttributeIsDropped(t *testing.T) {
	tokens := run(t, `<p id="a" id="b">`, token.Options{})
	v, ok := tokens[0].Attribute("id")
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Len(t, tokens[0].Attr, 1)
}

func TestToken_StringFormatsByType(t *testing.T) {
	tok := token.Token{Type: token.CharacterToken, Data: "x"}
	require.Contains(t, tok.String(), "x")
}

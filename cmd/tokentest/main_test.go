package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/token"
)

func TestCanonicalize_CoalescesCharacterTokens(t *testing.T) {
	tokens := []token.Token{
		{Type: token.CharacterToken, Data: "a"},
		{Type: token.CharacterToken, Data: "b"},
		{Type: token.StartTagToken, Data: "p"},
		{Type: token.EOFToken},
	}
	out := canonicalize(tokens)
	require.Len(t, out, 2)
	require.Equal(t, []interface{}{"Character", "ab"}, out[0])
}

func TestTokenJSON_StartTagWithAttrsAndSelfClosing(t *testing.T) {
	tok := token.Token{
		Type:        token.StartTagToken,
		Data:        "br",
		Attr:        []token.Attribute{{Name: "class", Value: "x"}},
		SelfClosing: true,
	}
	got := tokenJSON(tok)
	require.Equal(t, "StartTag", got[0])
	require.Equal(t, "br", got[1])
	require.Equal(t, map[string]interface{}{"class": "x"}, got[2])
	require.Equal(t, true, got[3])
}

func TestTokenJSON_Doctype(t *testing.T) {
	tok := token.Token{
		Type:               token.DoctypeToken,
		Data:               "html",
		DoctypeHasPublicID: false,
		DoctypeHasSystemID: false,
		ForceQuirks:        true,
	}
	got := tokenJSON(tok)
	require.Equal(t, []interface{}{"DOCTYPE", "html", nil, nil, false}, got)
}

func TestExpandEscapesDeep_WalksNestedStructures(t *testing.T) {
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(`["Character", "a\\u0062c"]`), &v))
	out := expandEscapesDeep(v)
	require.Equal(t, []interface{}{"Character", "abc"}, out)
}

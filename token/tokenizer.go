package token

import (
	"strconv"
	"strings"

	"github.com/corehtml/html5/errcode"
	"github.com/corehtml/html5/perror"
)

// Directive is the value a Sink may return from ProcessToken to override
// the tokenizer's next state (spec.md §4.2 "Interface").
type Directive int

const (
	// Continue leaves the tokenizer's own state-override table (RAWTEXT/
	// RCDATA/PLAINTEXT switching on certain start tags) in effect.
	Continue Directive = iota
	// ToPlaintext forces the PLAINTEXT state regardless of the emitted
	// token, used by the tree builder when <plaintext> appears somewhere
	// the tag-name table alone would not catch (spec.md §4.3 IN_BODY).
	ToPlaintext
)

// Sink receives tokens as the tokenizer produces them.
type Sink interface {
	ProcessToken(Token) Directive
}

// Options configures a Tokenizer's entry state, mainly for fragment
// parsing and the conformance test runners (spec.md §6 tokenizer_opts).
type Options struct {
	InitialState      State
	InitialRawtextTag string
	DiscardBOM        bool
	XMLCoercion       bool
	ScriptingEnabled  bool
}

// Tokenizer is a streaming, character-by-character HTML5 tokenizer
// (spec.md §4.2). It is driven to completion by Run, pushing every token
// to a Sink synchronously as it is produced.
type Tokenizer struct {
	input []rune
	pos   int
	line  int
	col   int

	state State

	lastStartTag string
	scripting    bool
	xmlCoercion  bool

	sink     Sink
	reporter perror.Reporter

	// Current token under construction.
	tokType     Type
	nameBuf     strings.Builder
	dataBuf     strings.Builder
	selfClosing bool
	attrs       []Attribute
	attrName    strings.Builder
	attrValue   strings.Builder

	publicIDBuf        strings.Builder
	systemIDBuf        strings.Builder
	hasPublicID        bool
	hasSystemID        bool
	forceQuirks        bool

	tempBuf strings.Builder // RAWTEXT/RCDATA/script-data end-tag + double-escape matching

	attrDuplicate bool
	allowCDATA    bool
}

// New creates a Tokenizer over already-decoded text. CR normalization
// (spec.md §4.2 "Input normalization") and the optional BOM discard are
// applied immediately.
func New(text string, sink Sink, reporter perror.Reporter, opts Options) *Tokenizer {
	text = normalizeNewlines(text)
	runes := []rune(text)
	if opts.DiscardBOM && len(runes) > 0 && runes[0] == '﻿' {
		runes = runes[1:]
	}
	t := &Tokenizer{
		input:       runes,
		line:        1,
		col:         1,
		state:       DataState,
		sink:        sink,
		reporter:    reporter,
		scripting:   opts.ScriptingEnabled,
		xmlCoercion: opts.XMLCoercion,
	}
	if opts.InitialRawtextTag != "" {
		t.lastStartTag = opts.InitialRawtextTag
	}
	if opts.InitialState != 0 || opts.InitialRawtextTag != "" {
		t.state = opts.InitialState
	}
	return t
}

// SetSink rewires the tokenizer's output sink. This exists for the
// tokenizer/tree-builder two-phase construction: the tokenizer must exist
// before the builder, which needs to call back into it (SetState,
// SetLastStartTag) during its own construction for fragment parsing, but
// the builder is itself the tokenizer's sink. Callers construct the
// Tokenizer with a nil sink, build the Builder around it, then call
// SetSink(builder).
func (t *Tokenizer) SetSink(s Sink) { t.sink = s }

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\r' {
			b.WriteByte('\n')
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// SetState forces the tokenizer into state, used by fragment parsing and
// conformance tooling to seed RAWTEXT/RCDATA/PLAINTEXT/script-data ahead of
// the first token (spec.md §4.3 "Fragment parsing").
func (t *Tokenizer) SetState(s State) { t.state = s }

// SetLastStartTag seeds the "appropriate end tag" name, used together with
// SetState by fragment parsing.
func (t *Tokenizer) SetLastStartTag(name string) { t.lastStartTag = name }

func (t *Tokenizer) report(code errcode.Code, msg string) {
	if t.reporter != nil {
		t.reporter.Report(code, perror.Position{Line: t.line, Column: t.col}, msg)
	}
}

func (t *Tokenizer) eof() bool { return t.pos >= len(t.input) }

func (t *Tokenizer) peek() rune {
	if t.eof() {
		return 0
	}
	return t.input[t.pos]
}

func (t *Tokenizer) peekAt(off int) (rune, bool) {
	i := t.pos + off
	if i < 0 || i >= len(t.input) {
		return 0, false
	}
	return t.input[i], true
}

func (t *Tokenizer) next() rune {
	r := t.input[t.pos]
	t.pos++
	if r == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return r
}

func (t *Tokenizer) restOfInputStartsWith(s string, foldCase bool) bool {
	rs := []rune(s)
	for i, want := range rs {
		got, ok := t.peekAt(i)
		if !ok {
			return false
		}
		if foldCase {
			got = asciiLowerRune(got)
			want = asciiLowerRune(want)
		}
		if got != want {
			return false
		}
	}
	return true
}

func asciiLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 0x20
	}
	return r
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIAlphanumeric(r rune) bool {
	return isASCIIAlpha(r) || (r >= '0' && r <= '9')
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}

// Run drives the tokenizer to completion, pushing every token to the sink.
func (t *Tokenizer) Run() {
	for {
		directive := t.step()
		if directive == done {
			return
		}
	}
}

type stepResult int

const done stepResult = 1

// step processes input until one token has been emitted (or EOF has been
// handled), dispatching on the current state. Most states that do not
// themselves emit a token loop internally until they reach one that does.
func (t *Tokenizer) step() stepResult {
	switch t.state {
	case DataState:
		return t.dataState(false)
	case RCDATAState:
		return t.dataState(true)
	case RAWTEXTState:
		return t.rawtextLikeState(RAWTEXTLessThanSignState, false)
	case ScriptDataState:
		return t.rawtextLikeState(ScriptDataLessThanSignState, false)
	case PLAINTEXTState:
		return t.plaintextState()
	case TagOpenState:
		return t.tagOpenState()
	case EndTagOpenState:
		return t.endTagOpenState()
	case TagNameState:
		return t.tagNameState()
	case RCDATALessThanSignState:
		return t.genericLessThanSignState(RCDATAEndTagOpenState, RCDATAState)
	case RCDATAEndTagOpenState:
		return t.genericEndTagOpenState(RCDATAEndTagNameState, RCDATAState)
	case RCDATAEndTagNameState:
		return t.genericEndTagNameState(RCDATAState)
	case RAWTEXTLessThanSignState:
		return t.genericLessThanSignState(RAWTEXTEndTagOpenState, RAWTEXTState)
	case RAWTEXTEndTagOpenState:
		return t.genericEndTagOpenState(RAWTEXTEndTagNameState, RAWTEXTState)
	case RAWTEXTEndTagNameState:
		return t.genericEndTagNameState(RAWTEXTState)
	case ScriptDataLessThanSignState:
		return t.scriptDataLessThanSignState()
	case ScriptDataEndTagOpenState:
		return t.genericEndTagOpenState(ScriptDataEndTagNameState, ScriptDataState)
	case ScriptDataEndTagNameState:
		return t.genericEndTagNameState(ScriptDataState)
	case ScriptDataEscapeStartState:
		return t.scriptDataEscapeStartState()
	case ScriptDataEscapeStartDashState:
		return t.scriptDataEscapeStartDashState()
	case ScriptDataEscapedState:
		return t.rawtextLikeState(ScriptDataEscapedLessThanSignState, true)
	case ScriptDataEscapedDashState:
		return t.scriptDataEscapedDashState()
	case ScriptDataEscapedDashDashState:
		return t.scriptDataEscapedDashDashState()
	case ScriptDataEscapedLessThanSignState:
		return t.scriptDataEscapedLessThanSignState()
	case ScriptDataEscapedEndTagOpenState:
		return t.genericEndTagOpenState(ScriptDataEscapedEndTagNameState, ScriptDataEscapedState)
	case ScriptDataEscapedEndTagNameState:
		return t.genericEndTagNameState(ScriptDataEscapedState)
	case ScriptDataDoubleEscapeStartState:
		return t.scriptDataDoubleEscapeStartState()
	case ScriptDataDoubleEscapedState:
		return t.scriptDataDoubleEscapedState()
	case ScriptDataDoubleEscapedDashState:
		return t.scriptDataDoubleEscapedDashState()
	case ScriptDataDoubleEscapedDashDashState:
		return t.scriptDataDoubleEscapedDashDashState()
	case ScriptDataDoubleEscapedLessThanSignState:
		return t.scriptDataDoubleEscapedLessThanSignState()
	case ScriptDataDoubleEscapeEndState:
		return t.scriptDataDoubleEscapeEndState()
	case BeforeAttributeNameState:
		return t.beforeAttributeNameState()
	case AttributeNameState:
		return t.attributeNameState()
	case AfterAttributeNameState:
		return t.afterAttributeNameState()
	case BeforeAttributeValueState:
		return t.beforeAttributeValueState()
	case AttributeValueDoubleQuotedState:
		return t.attributeValueQuotedState('"')
	case AttributeValueSingleQuotedState:
		return t.attributeValueQuotedState('\'')
	case AttributeValueUnquotedState:
		return t.attributeValueUnquotedState()
	case AfterAttributeValueQuotedState:
		return t.afterAttributeValueQuotedState()
	case SelfClosingStartTagState:
		return t.selfClosingStartTagState()
	case BogusCommentState:
		return t.bogusCommentState()
	case MarkupDeclarationOpenState:
		return t.markupDeclarationOpenState()
	case CommentStartState:
		return t.commentStartState()
	case CommentStartDashState:
		return t.commentStartDashState()
	case CommentState:
		return t.commentState()
	case CommentLessThanSignState:
		return t.commentLessThanSignState()
	case CommentLessThanSignBangState:
		return t.commentLessThanSignBangState()
	case CommentLessThanSignBangDashState:
		return t.commentLessThanSignBangDashState()
	case CommentLessThanSignBangDashDashState:
		return t.commentLessThanSignBangDashDashState()
	case CommentEndDashState:
		return t.commentEndDashState()
	case CommentEndState:
		return t.commentEndState()
	case CommentEndBangState:
		return t.commentEndBangState()
	case DoctypeState:
		return t.doctypeState()
	case BeforeDoctypeNameState:
		return t.beforeDoctypeNameState()
	case DoctypeNameState:
		return t.doctypeNameState()
	case AfterDoctypeNameState:
		return t.afterDoctypeNameState()
	case AfterDoctypePublicKeywordState:
		return t.afterDoctypePublicKeywordState()
	case BeforeDoctypePublicIdentifierState:
		return t.beforeDoctypePublicIdentifierState()
	case DoctypePublicIdentifierDoubleQuotedState:
		return t.doctypePublicIdentifierQuotedState('"')
	case DoctypePublicIdentifierSingleQuotedState:
		return t.doctypePublicIdentifierQuotedState('\'')
	case AfterDoctypePublicIdentifierState:
		return t.afterDoctypePublicIdentifierState()
	case BetweenDoctypePublicAndSystemIdentifiersState:
		return t.betweenDoctypePublicAndSystemIdentifiersState()
	case AfterDoctypeSystemKeywordState:
		return t.afterDoctypeSystemKeywordState()
	case BeforeDoctypeSystemIdentifierState:
		return t.beforeDoctypeSystemIdentifierState()
	case DoctypeSystemIdentifierDoubleQuotedState:
		return t.doctypeSystemIdentifierQuotedState('"')
	case DoctypeSystemIdentifierSingleQuotedState:
		return t.doctypeSystemIdentifierQuotedState('\'')
	case AfterDoctypeSystemIdentifierState:
		return t.afterDoctypeSystemIdentifierState()
	case BogusDoctypeState:
		return t.bogusDoctypeState()
	case CDATASectionState:
		return t.cdataSectionState()
	case CDATASectionBracketState:
		return t.cdataSectionBracketState()
	case CDATASectionEndState:
		return t.cdataSectionEndState()
	default:
		// Character-reference states are handled inline by
		// consumeCharacterReference and never reached via step().
		t.state = DataState
		return 0
	}
}

func (t *Tokenizer) emit(tok Token) {
	if t.xmlCoercion {
		tok = coerceForXML(tok)
	}
	directive := t.sink.ProcessToken(tok)
	if directive == ToPlaintext {
		t.state = PLAINTEXTState
		return
	}
	// The sink sets allowCDATA while the current node is foreign content;
	// the tag-name state overrides apply only in HTML content.
	if tok.Type == StartTagToken && !t.allowCDATA {
		name := tok.Data
		if IsRawtextTag(name) && (name != "noscript" || t.scripting) {
			t.state = RAWTEXTState
			t.lastStartTag = name
		} else if IsRCDATATag(name) {
			t.state = RCDATAState
			t.lastStartTag = name
		} else if name == "plaintext" {
			t.state = PLAINTEXTState
			t.lastStartTag = name
		} else if name == "script" {
			t.state = ScriptDataState
			t.lastStartTag = name
		} else {
			t.lastStartTag = name
		}
	}
}

func (t *Tokenizer) emitEOF() {
	t.emit(Token{Type: EOFToken})
}

func coerceForXML(tok Token) Token {
	switch tok.Type {
	case CharacterToken:
		tok.Data = xmlCoerceText(tok.Data)
	case CommentToken:
		tok.Data = strings.ReplaceAll(tok.Data, "--", "- -")
	}
	return tok
}

func xmlCoerceText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == 0x0C:
			b.WriteRune(0x20)
		case r >= 0xFDD0 && r <= 0xFDEF:
			b.WriteRune(0xFFFD)
		case r&0xFFFE == 0xFFFE:
			b.WriteRune(0xFFFD)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// newDoctypeToken formats the accumulated doctype buffers into a Token.
func (t *Tokenizer) newDoctypeToken() Token {
	tok := Token{
		Type:               DoctypeToken,
		Data:               t.nameBuf.String(),
		DoctypeHasPublicID: t.hasPublicID,
		DoctypeHasSystemID: t.hasSystemID,
		ForceQuirks:        t.forceQuirks,
	}
	if t.hasPublicID {
		tok.DoctypePublicID = t.publicIDBuf.String()
	}
	if t.hasSystemID {
		tok.DoctypeSystemID = t.systemIDBuf.String()
	}
	return tok
}

func (t *Tokenizer) resetDoctypeBuffers() {
	t.nameBuf.Reset()
	t.publicIDBuf.Reset()
	t.systemIDBuf.Reset()
	t.hasPublicID = false
	t.hasSystemID = false
	t.forceQuirks = false
}

func (t *Tokenizer) resetTagBuffers(tt Type) {
	t.tokType = tt
	t.nameBuf.Reset()
	t.selfClosing = false
	t.attrs = nil
}

// checkAttributeNameDuplicate must be called exactly once, at the moment the
// tokenizer leaves AttributeNameState, per spec.md §4.2's duplicate-attribute
// rule: the first occurrence of a name wins and later ones are dropped but
// their value is still tokenized (to stay in sync with the input).
func (t *Tokenizer) checkAttributeNameDuplicate() {
	name := t.attrName.String()
	for _, a := range t.attrs {
		if a.Name == name {
			t.report(errcode.DuplicateAttribute, "duplicate attribute "+name)
			t.attrDuplicate = true
			return
		}
	}
	t.attrDuplicate = false
}

func (t *Tokenizer) finishAttribute() {
	if t.attrName.Len() == 0 {
		t.attrName.Reset()
		t.attrValue.Reset()
		return
	}
	if !t.attrDuplicate {
		t.attrs = append(t.attrs, Attribute{Name: t.attrName.String(), Value: t.attrValue.String()})
	}
	t.attrName.Reset()
	t.attrValue.Reset()
	t.attrDuplicate = false
}

// finishTagToken commits the pending attribute (if any) and emits the
// current start/end tag token.
func (t *Tokenizer) finishTagToken() {
	t.finishAttribute()
	tok := Token{
		Type:        t.tokType,
		Data:        t.nameBuf.String(),
		Attr:        append([]Attribute(nil), t.attrs...),
		SelfClosing: t.selfClosing,
	}
	if t.tokType == EndTagToken {
		if len(t.attrs) > 0 {
			t.report(errcode.EndTagWithAttributes, "end tag with attributes")
		}
		if t.selfClosing {
			t.report(errcode.EndTagWithTrailingSolidus, "end tag with trailing solidus")
		}
	}
	t.emit(tok)
}

func (t *Tokenizer) flushCharacterBuffer() {
	if t.dataBuf.Len() > 0 {
		t.emit(Token{Type: CharacterToken, Data: t.dataBuf.String()})
		t.dataBuf.Reset()
	}
}

// advance consumes n runes, used after a literal keyword match
// (e.g. "DOCTYPE", "PUBLIC") found via restOfInputStartsWith.
func (t *Tokenizer) advance(n int) {
	for i := 0; i < n; i++ {
		t.next()
	}
}

// SetAllowCDATA tells the tokenizer whether CDATA sections are permitted at
// the current insertion point (spec.md §4.2 "CDATA sections" — true only
// inside foreign content). The tree builder calls this from ProcessToken
// before the tokenizer advances past the token just delivered.
func (t *Tokenizer) SetAllowCDATA(allow bool) { t.allowCDATA = allow }

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func parseIntBase(s string, base int) (int64, error) {
	return strconv.ParseInt(s, base, 64)
}

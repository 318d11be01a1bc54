package token

import "github.com/corehtml/html5/errcode"

// dataState implements both the Data and RCDATA states (spec.md §4.2):
// they differ only in whether '<' leads back to TagOpenState or to
// RCDATALessThanSignState, and both support character references.
func (t *Tokenizer) dataState(rcdata bool) stepResult {
	for {
		if t.eof() {
			t.flushCharacterBuffer()
			t.emitEOF()
			return done
		}
		r := t.peek()
		switch {
		case r == '&':
			t.flushCharacterBuffer()
			t.next()
			t.consumeCharacterReference(false)
		case r == '<':
			t.flushCharacterBuffer()
			t.next()
			if rcdata {
				t.state = RCDATALessThanSignState
			} else {
				t.state = TagOpenState
			}
			return 0
		case r == 0:
			t.next()
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.dataBuf.WriteRune(0xFFFD)
		default:
			t.next()
			t.dataBuf.WriteRune(r)
		}
	}
}

// rawtextLikeState implements RAWTEXT, script data, and script data escaped:
// no character references, NUL becomes U+FFFD, '<' leads to lessThan.
func (t *Tokenizer) rawtextLikeState(lessThan State, scriptEscaped bool) stepResult {
	for {
		if t.eof() {
			if scriptEscaped {
				t.report(errcode.EOFInScriptHTMLCommentLikeText, "eof in script html comment-like text")
			}
			t.flushCharacterBuffer()
			t.emitEOF()
			return done
		}
		r := t.peek()
		switch {
		case r == '<':
			t.flushCharacterBuffer()
			t.next()
			t.state = lessThan
			return 0
		case r == 0:
			t.next()
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.dataBuf.WriteRune(0xFFFD)
		default:
			t.next()
			t.dataBuf.WriteRune(r)
		}
	}
}

func (t *Tokenizer) plaintextState() stepResult {
	for {
		if t.eof() {
			t.flushCharacterBuffer()
			t.emitEOF()
			return done
		}
		r := t.next()
		if r == 0 {
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.dataBuf.WriteRune(0xFFFD)
			continue
		}
		t.dataBuf.WriteRune(r)
	}
}

func (t *Tokenizer) tagOpenState() stepResult {
	if t.eof() {
		t.report(errcode.EOFBeforeTagName, "eof before tag name")
		t.emit(Token{Type: CharacterToken, Data: "<"})
		t.emitEOF()
		return done
	}
	r := t.peek()
	switch {
	case r == '!':
		t.next()
		t.state = MarkupDeclarationOpenState
	case r == '/':
		t.next()
		t.state = EndTagOpenState
	case isASCIIAlpha(r):
		t.resetTagBuffers(StartTagToken)
		t.state = TagNameState
	case r == '?':
		t.report(errcode.UnexpectedQuestionMarkInsteadOfTagName, "unexpected question mark instead of tag name")
		t.dataBuf.Reset()
		t.state = BogusCommentState
	default:
		t.report(errcode.InvalidFirstCharacterOfTagName, "invalid first character of tag name")
		t.emit(Token{Type: CharacterToken, Data: "<"})
		t.state = DataState
	}
	return 0
}

func (t *Tokenizer) endTagOpenState() stepResult {
	if t.eof() {
		t.report(errcode.EOFBeforeTagName, "eof before tag name")
		t.emit(Token{Type: CharacterToken, Data: "</"})
		t.emitEOF()
		return done
	}
	r := t.peek()
	switch {
	case isASCIIAlpha(r):
		t.resetTagBuffers(EndTagToken)
		t.state = TagNameState
	case r == '>':
		t.next()
		t.report(errcode.MissingEndTagName, "missing end tag name")
		t.state = DataState
	default:
		t.report(errcode.InvalidFirstCharacterOfTagName, "invalid first character of tag name")
		t.dataBuf.Reset()
		t.state = BogusCommentState
	}
	return 0
}

func (t *Tokenizer) tagNameState() stepResult {
	for {
		if t.eof() {
			t.report(errcode.EOFInTag, "eof in tag")
			t.emitEOF()
			return done
		}
		r := t.next()
		switch {
		case isWhitespace(r):
			t.state = BeforeAttributeNameState
			return 0
		case r == '/':
			t.state = SelfClosingStartTagState
			return 0
		case r == '>':
			t.finishTagToken()
			t.state = DataState
			return 0
		case r == 0:
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.nameBuf.WriteRune(0xFFFD)
		case isASCIIUpper(r):
			t.nameBuf.WriteRune(r + 0x20)
		default:
			t.nameBuf.WriteRune(r)
		}
	}
}

// genericLessThanSignState implements RCDATALessThanSignState and
// RAWTEXTLessThanSignState: a bare '<' joins the pending character run
// unless followed by '/'.
func (t *Tokenizer) genericLessThanSignState(toEndTagOpen, fallback State) stepResult {
	if !t.eof() && t.peek() == '/' {
		t.next()
		t.tempBuf.Reset()
		t.state = toEndTagOpen
		return 0
	}
	t.dataBuf.WriteRune('<')
	t.state = fallback
	return 0
}

func (t *Tokenizer) genericEndTagOpenState(toEndTagName, fallback State) stepResult {
	if !t.eof() && isASCIIAlpha(t.peek()) {
		t.resetTagBuffers(EndTagToken)
		t.state = toEndTagName
		return 0
	}
	t.emit(Token{Type: CharacterToken, Data: "</"})
	t.state = fallback
	return 0
}

// genericEndTagNameState implements the RCDATA/RAWTEXT/script-data end tag
// name states: only an "appropriate" end tag (matching lastStartTag) is
// allowed to actually close the element; anything else is flushed back out
// as literal character data (spec.md §4.2 "appropriate end tag token").
func (t *Tokenizer) genericEndTagNameState(fallback State) stepResult {
	for {
		if t.eof() {
			t.emitAnythingElseForEndTagName(fallback)
			return 0
		}
		r := t.peek()
		if isASCIIAlpha(r) {
			t.next()
			t.tempBuf.WriteRune(r)
			if isASCIIUpper(r) {
				t.nameBuf.WriteRune(r + 0x20)
			} else {
				t.nameBuf.WriteRune(r)
			}
			continue
		}
		appropriate := t.lastStartTag != "" && t.nameBuf.String() == t.lastStartTag
		switch {
		case isWhitespace(r) && appropriate:
			t.next()
			t.state = BeforeAttributeNameState
			return 0
		case r == '/' && appropriate:
			t.next()
			t.state = SelfClosingStartTagState
			return 0
		case r == '>' && appropriate:
			t.next()
			t.finishTagToken()
			t.state = DataState
			return 0
		default:
			t.emitAnythingElseForEndTagName(fallback)
			return 0
		}
	}
}

func (t *Tokenizer) emitAnythingElseForEndTagName(fallback State) {
	t.emit(Token{Type: CharacterToken, Data: "</" + t.tempBuf.String()})
	t.state = fallback
}

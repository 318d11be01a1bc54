package token

import "github.com/corehtml/html5/errcode"

func (t *Tokenizer) scriptDataLessThanSignState() stepResult {
	if !t.eof() {
		switch t.peek() {
		case '/':
			t.next()
			t.tempBuf.Reset()
			t.state = ScriptDataEndTagOpenState
			return 0
		case '!':
			t.next()
			t.emit(Token{Type: CharacterToken, Data: "<!"})
			t.state = ScriptDataEscapeStartState
			return 0
		}
	}
	t.emit(Token{Type: CharacterToken, Data: "<"})
	t.state = ScriptDataState
	return 0
}

func (t *Tokenizer) scriptDataEscapeStartState() stepResult {
	if !t.eof() && t.peek() == '-' {
		t.next()
		t.emit(Token{Type: CharacterToken, Data: "-"})
		t.state = ScriptDataEscapeStartDashState
		return 0
	}
	t.state = ScriptDataState
	return 0
}

func (t *Tokenizer) scriptDataEscapeStartDashState() stepResult {
	if !t.eof() && t.peek() == '-' {
		t.next()
		t.emit(Token{Type: CharacterToken, Data: "-"})
		t.state = ScriptDataEscapedDashDashState
		return 0
	}
	t.state = ScriptDataState
	return 0
}

func (t *Tokenizer) scriptDataEscapedDashState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInScriptHTMLCommentLikeText, "eof in script html comment-like text")
		t.emitEOF()
		return done
	}
	r := t.next()
	switch r {
	case '-':
		t.emit(Token{Type: CharacterToken, Data: "-"})
		t.state = ScriptDataEscapedDashDashState
	case '<':
		t.state = ScriptDataEscapedLessThanSignState
	case 0:
		t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
		t.emit(Token{Type: CharacterToken, Data: "�"})
		t.state = ScriptDataEscapedState
	default:
		t.emit(Token{Type: CharacterToken, Data: string(r)})
		t.state = ScriptDataEscapedState
	}
	return 0
}

func (t *Tokenizer) scriptDataEscapedDashDashState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInScriptHTMLCommentLikeText, "eof in script html comment-like text")
		t.emitEOF()
		return done
	}
	r := t.next()
	switch r {
	case '-':
		t.emit(Token{Type: CharacterToken, Data: "-"})
	case '<':
		t.state = ScriptDataEscapedLessThanSignState
	case '>':
		t.emit(Token{Type: CharacterToken, Data: ">"})
		t.state = ScriptDataState
	case 0:
		t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
		t.emit(Token{Type: CharacterToken, Data: "�"})
		t.state = ScriptDataEscapedState
	default:
		t.emit(Token{Type: CharacterToken, Data: string(r)})
		t.state = ScriptDataEscapedState
	}
	return 0
}

func (t *Tokenizer) scriptDataEscapedLessThanSignState() stepResult {
	if !t.eof() {
		switch {
		case t.peek() == '/':
			t.next()
			t.tempBuf.Reset()
			t.state = ScriptDataEscapedEndTagOpenState
			return 0
		case isASCIIAlpha(t.peek()):
			t.tempBuf.Reset()
			t.emit(Token{Type: CharacterToken, Data: "<"})
			t.state = ScriptDataDoubleEscapeStartState
			return 0
		}
	}
	t.emit(Token{Type: CharacterToken, Data: "<"})
	t.state = ScriptDataEscapedState
	return 0
}

// scriptDataDoubleEscapeStartState and scriptDataDoubleEscapeEndState both
// track whether the accumulated temp buffer spells "script" to decide
// whether the double-escape actually takes effect (spec.md §4.2).
func (t *Tokenizer) scriptDataDoubleEscapeStartState() stepResult {
	if t.eof() {
		t.state = ScriptDataEscapedState
		return 0
	}
	r := t.peek()
	switch {
	case isWhitespace(r) || r == '/' || r == '>':
		t.next()
		if t.tempBuf.String() == "script" {
			t.state = ScriptDataDoubleEscapedState
		} else {
			t.state = ScriptDataEscapedState
		}
		t.emit(Token{Type: CharacterToken, Data: string(r)})
	case isASCIIAlpha(r):
		t.next()
		if isASCIIUpper(r) {
			t.tempBuf.WriteRune(r + 0x20)
		} else {
			t.tempBuf.WriteRune(r)
		}
		t.emit(Token{Type: CharacterToken, Data: string(r)})
	default:
		t.state = ScriptDataEscapedState
	}
	return 0
}

func (t *Tokenizer) scriptDataDoubleEscapedState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInScriptHTMLCommentLikeText, "eof in script html comment-like text")
		t.emitEOF()
		return done
	}
	r := t.next()
	switch r {
	case '-':
		t.emit(Token{Type: CharacterToken, Data: "-"})
		t.state = ScriptDataDoubleEscapedDashState
	case '<':
		t.emit(Token{Type: CharacterToken, Data: "<"})
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
		t.emit(Token{Type: CharacterToken, Data: "�"})
	default:
		t.emit(Token{Type: CharacterToken, Data: string(r)})
	}
	return 0
}

func (t *Tokenizer) scriptDataDoubleEscapedDashState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInScriptHTMLCommentLikeText, "eof in script html comment-like text")
		t.emitEOF()
		return done
	}
	r := t.next()
	switch r {
	case '-':
		t.emit(Token{Type: CharacterToken, Data: "-"})
		t.state = ScriptDataDoubleEscapedDashDashState
	case '<':
		t.emit(Token{Type: CharacterToken, Data: "<"})
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
		t.emit(Token{Type: CharacterToken, Data: "�"})
		t.state = ScriptDataDoubleEscapedState
	default:
		t.emit(Token{Type: CharacterToken, Data: string(r)})
		t.state = ScriptDataDoubleEscapedState
	}
	return 0
}

func (t *Tokenizer) scriptDataDoubleEscapedDashDashState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInScriptHTMLCommentLikeText, "eof in script html comment-like text")
		t.emitEOF()
		return done
	}
	r := t.next()
	switch r {
	case '-':
		t.emit(Token{Type: CharacterToken, Data: "-"})
	case '<':
		t.emit(Token{Type: CharacterToken, Data: "<"})
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case '>':
		t.emit(Token{Type: CharacterToken, Data: ">"})
		t.state = ScriptDataState
	case 0:
		t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
		t.emit(Token{Type: CharacterToken, Data: "�"})
		t.state = ScriptDataDoubleEscapedState
	default:
		t.emit(Token{Type: CharacterToken, Data: string(r)})
		t.state = ScriptDataDoubleEscapedState
	}
	return 0
}

func (t *Tokenizer) scriptDataDoubleEscapedLessThanSignState() stepResult {
	if !t.eof() && t.peek() == '/' {
		t.next()
		t.tempBuf.Reset()
		t.emit(Token{Type: CharacterToken, Data: "/"})
		t.state = ScriptDataDoubleEscapeEndState
		return 0
	}
	t.state = ScriptDataDoubleEscapedState
	return 0
}

func (t *Tokenizer) scriptDataDoubleEscapeEndState() stepResult {
	if t.eof() {
		t.state = ScriptDataDoubleEscapedState
		return 0
	}
	r := t.peek()
	switch {
	case isWhitespace(r) || r == '/' || r == '>':
		t.next()
		if t.tempBuf.String() == "script" {
			t.state = ScriptDataEscapedState
		} else {
			t.state = ScriptDataDoubleEscapedState
		}
		t.emit(Token{Type: CharacterToken, Data: string(r)})
	case isASCIIAlpha(r):
		t.next()
		if isASCIIUpper(r) {
			t.tempBuf.WriteRune(r + 0x20)
		} else {
			t.tempBuf.WriteRune(r)
		}
		t.emit(Token{Type: CharacterToken, Data: string(r)})
	default:
		t.state = ScriptDataDoubleEscapedState
	}
	return 0
}

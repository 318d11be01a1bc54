package token

import "github.com/corehtml/html5/errcode"

func (t *Tokenizer) bogusCommentState() stepResult {
	for {
		if t.eof() {
			t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
			t.emitEOF()
			return done
		}
		r := t.next()
		switch r {
		case '>':
			t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
			t.state = DataState
			return 0
		case 0:
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.dataBuf.WriteRune(0xFFFD)
		default:
			t.dataBuf.WriteRune(r)
		}
	}
}

// markupDeclarationOpenState distinguishes "<!--", "<!DOCTYPE" and
// "<![CDATA[" (spec.md §4.2). CDATA sections are only honored when the tree
// builder has told the tokenizer, via SetAllowCDATA, that the current
// insertion point is inside foreign content.
func (t *Tokenizer) markupDeclarationOpenState() stepResult {
	if t.restOfInputStartsWith("--", false) {
		t.advance(2)
		t.dataBuf.Reset()
		t.state = CommentStartState
		return 0
	}
	if t.restOfInputStartsWith("DOCTYPE", true) {
		t.advance(7)
		t.resetDoctypeBuffers()
		t.state = DoctypeState
		return 0
	}
	if t.restOfInputStartsWith("[CDATA[", false) {
		t.advance(7)
		if t.allowCDATA {
			t.state = CDATASectionState
		} else {
			t.report(errcode.CDATAInHTMLContent, "cdata in html content")
			t.dataBuf.Reset()
			t.dataBuf.WriteString("[CDATA[")
			t.state = BogusCommentState
		}
		return 0
	}
	t.report(errcode.IncorrectlyOpenedComment, "incorrectly opened comment")
	t.dataBuf.Reset()
	t.state = BogusCommentState
	return 0
}

func (t *Tokenizer) commentStartState() stepResult {
	if t.eof() {
		t.state = CommentState
		return 0
	}
	switch t.peek() {
	case '-':
		t.next()
		t.state = CommentStartDashState
	case '>':
		t.next()
		t.report(errcode.AbruptClosingOfEmptyComment, "abrupt closing of empty comment")
		t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
		t.state = DataState
	default:
		t.state = CommentState
	}
	return 0
}

func (t *Tokenizer) commentStartDashState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInComment, "eof in comment")
		t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
		t.emitEOF()
		return done
	}
	switch t.peek() {
	case '-':
		t.next()
		t.state = CommentEndState
	case '>':
		t.next()
		t.report(errcode.AbruptClosingOfEmptyComment, "abrupt closing of empty comment")
		t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
		t.state = DataState
	default:
		t.dataBuf.WriteRune('-')
		t.state = CommentState
	}
	return 0
}

func (t *Tokenizer) commentState() stepResult {
	for {
		if t.eof() {
			t.report(errcode.EOFInComment, "eof in comment")
			t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
			t.emitEOF()
			return done
		}
		r := t.next()
		switch r {
		case '<':
			t.dataBuf.WriteRune('<')
			t.state = CommentLessThanSignState
			return 0
		case '-':
			t.state = CommentEndDashState
			return 0
		case 0:
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.dataBuf.WriteRune(0xFFFD)
		default:
			t.dataBuf.WriteRune(r)
		}
	}
}

func (t *Tokenizer) commentLessThanSignState() stepResult {
	if !t.eof() {
		switch t.peek() {
		case '!':
			t.next()
			t.dataBuf.WriteRune('!')
			t.state = CommentLessThanSignBangState
			return 0
		case '<':
			t.next()
			t.dataBuf.WriteRune('<')
			return 0
		}
	}
	t.state = CommentState
	return 0
}

func (t *Tokenizer) commentLessThanSignBangState() stepResult {
	if !t.eof() && t.peek() == '-' {
		t.next()
		t.state = CommentLessThanSignBangDashState
		return 0
	}
	t.state = CommentState
	return 0
}

func (t *Tokenizer) commentLessThanSignBangDashState() stepResult {
	if !t.eof() && t.peek() == '-' {
		t.next()
		t.state = CommentLessThanSignBangDashDashState
		return 0
	}
	t.state = CommentEndDashState
	return 0
}

func (t *Tokenizer) commentLessThanSignBangDashDashState() stepResult {
	if !(t.eof() || t.peek() == '>') {
		t.report(errcode.NestedComment, "nested comment")
	}
	t.state = CommentEndState
	return 0
}

func (t *Tokenizer) commentEndDashState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInComment, "eof in comment")
		t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
		t.emitEOF()
		return done
	}
	if t.peek() == '-' {
		t.next()
		t.state = CommentEndState
		return 0
	}
	t.dataBuf.WriteRune('-')
	t.state = CommentState
	return 0
}

func (t *Tokenizer) commentEndState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInComment, "eof in comment")
		t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
		t.emitEOF()
		return done
	}
	switch t.peek() {
	case '>':
		t.next()
		t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
		t.state = DataState
	case '!':
		t.next()
		t.state = CommentEndBangState
	case '-':
		t.next()
		t.dataBuf.WriteRune('-')
	default:
		t.dataBuf.WriteString("--")
		t.state = CommentState
	}
	return 0
}

func (t *Tokenizer) commentEndBangState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInComment, "eof in comment")
		t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
		t.emitEOF()
		return done
	}
	switch t.peek() {
	case '-':
		t.next()
		t.dataBuf.WriteString("--!")
		t.state = CommentEndDashState
	case '>':
		t.next()
		t.report(errcode.IncorrectlyClosedComment, "incorrectly closed comment")
		t.emit(Token{Type: CommentToken, Data: t.dataBuf.String()})
		t.state = DataState
	default:
		t.dataBuf.WriteString("--!")
		t.state = CommentState
	}
	return 0
}

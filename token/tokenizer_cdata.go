package token

import "github.com/corehtml/html5/errcode"

// CDATASectionState is only reachable when the tree builder has enabled it
// via SetAllowCDATA (foreign content); see markupDeclarationOpenState.
func (t *Tokenizer) cdataSectionState() stepResult {
	for {
		if t.eof() {
			t.report(errcode.EOFInCDATA, "eof in cdata")
			t.flushCharacterBuffer()
			t.emitEOF()
			return done
		}
		r := t.next()
		if r == ']' {
			t.state = CDATASectionBracketState
			return 0
		}
		t.dataBuf.WriteRune(r)
	}
}

func (t *Tokenizer) cdataSectionBracketState() stepResult {
	if !t.eof() && t.peek() == ']' {
		t.next()
		t.state = CDATASectionEndState
		return 0
	}
	t.dataBuf.WriteRune(']')
	t.state = CDATASectionState
	return 0
}

func (t *Tokenizer) cdataSectionEndState() stepResult {
	if !t.eof() {
		switch t.peek() {
		case ']':
			t.next()
			t.dataBuf.WriteRune(']')
			return 0
		case '>':
			t.next()
			t.flushCharacterBuffer()
			t.state = DataState
			return 0
		}
	}
	t.dataBuf.WriteString("]]")
	t.state = CDATASectionState
	return 0
}

package token

import "github.com/corehtml/html5/errcode"

func (t *Tokenizer) eofInDoctype() stepResult {
	t.forceQuirks = true
	t.report(errcode.EOFInDoctype, "eof in doctype")
	t.emit(t.newDoctypeToken())
	t.emitEOF()
	return done
}

func (t *Tokenizer) doctypeState() stepResult {
	if t.eof() {
		return t.eofInDoctype()
	}
	r := t.peek()
	if isWhitespace(r) {
		t.next()
		t.state = BeforeDoctypeNameState
		return 0
	}
	if r == '>' {
		t.state = BeforeDoctypeNameState
		return 0
	}
	t.report(errcode.MissingWhitespaceBeforeDoctypeName, "missing whitespace before doctype name")
	t.state = BeforeDoctypeNameState
	return 0
}

func (t *Tokenizer) beforeDoctypeNameState() stepResult {
	for {
		if t.eof() {
			return t.eofInDoctype()
		}
		r := t.peek()
		if isWhitespace(r) {
			t.next()
			continue
		}
		switch {
		case isASCIIUpper(r):
			t.next()
			t.nameBuf.WriteRune(r + 0x20)
			t.state = DoctypeNameState
		case r == 0:
			t.next()
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.nameBuf.WriteRune(0xFFFD)
			t.state = DoctypeNameState
		case r == '>':
			t.next()
			t.forceQuirks = true
			t.report(errcode.MissingDoctypeName, "missing doctype name")
			t.emit(t.newDoctypeToken())
			t.state = DataState
		default:
			t.next()
			t.nameBuf.WriteRune(r)
			t.state = DoctypeNameState
		}
		return 0
	}
}

func (t *Tokenizer) doctypeNameState() stepResult {
	for {
		if t.eof() {
			return t.eofInDoctype()
		}
		r := t.next()
		switch {
		case isWhitespace(r):
			t.state = AfterDoctypeNameState
			return 0
		case r == '>':
			t.emit(t.newDoctypeToken())
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

func (t *Tokenizer) afterDoctypeNameState() stepResult {
	for {
		if t.eof() {
			return t.eofInDoctype()
		}
		r := t.peek()
		if isWhitespace(r) {
			t.next()
			continue
		}
		if r == '>' {
			t.next()
			t.emit(t.newDoctypeToken())
			t.state = DataState
			return 0
		}
		if t.restOfInputStartsWith("PUBLIC", true) {
			t.advance(6)
			t.state = AfterDoctypePublicKeywordState
			return 0
		}
		if t.restOfInputStartsWith("SYSTEM", true) {
			t.advance(6)
			t.state = AfterDoctypeSystemKeywordState
			return 0
		}
		t.next()
		t.report(errcode.InvalidCharacterSequenceAfterDoctypeName, "invalid character sequence after doctype name")
		t.forceQuirks = true
		t.state = BogusDoctypeState
		return 0
	}
}

func (t *Tokenizer) afterDoctypePublicKeywordState() stepResult {
	if t.eof() {
		return t.eofInDoctype()
	}
	switch r := t.peek(); {
	case isWhitespace(r):
		t.next()
		t.state = BeforeDoctypePublicIdentifierState
	case r == '"':
		t.next()
		t.report(errcode.MissingWhitespaceAfterDoctypePublicKeyword, "missing whitespace after doctype public keyword")
		t.hasPublicID = true
		t.publicIDBuf.Reset()
		t.state = DoctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		t.next()
		t.report(errcode.MissingWhitespaceAfterDoctypePublicKeyword, "missing whitespace after doctype public keyword")
		t.hasPublicID = true
		t.publicIDBuf.Reset()
		t.state = DoctypePublicIdentifierSingleQuotedState
	case r == '>':
		t.next()
		t.forceQuirks = true
		t.report(errcode.MissingDoctypePublicIdentifier, "missing doctype public identifier")
		t.emit(t.newDoctypeToken())
		t.state = DataState
	default:
		t.next()
		t.forceQuirks = true
		t.report(errcode.MissingQuoteBeforeDoctypePublicIdentifier, "missing quote before doctype public identifier")
		t.state = BogusDoctypeState
	}
	return 0
}

func (t *Tokenizer) beforeDoctypePublicIdentifierState() stepResult {
	for {
		if t.eof() {
			return t.eofInDoctype()
		}
		r := t.peek()
		if isWhitespace(r) {
			t.next()
			continue
		}
		switch r {
		case '"':
			t.next()
			t.hasPublicID = true
			t.publicIDBuf.Reset()
			t.state = DoctypePublicIdentifierDoubleQuotedState
		case '\'':
			t.next()
			t.hasPublicID = true
			t.publicIDBuf.Reset()
			t.state = DoctypePublicIdentifierSingleQuotedState
		case '>':
			t.next()
			t.forceQuirks = true
			t.report(errcode.MissingDoctypePublicIdentifier, "missing doctype public identifier")
			t.emit(t.newDoctypeToken())
			t.state = DataState
		default:
			t.next()
			t.forceQuirks = true
			t.report(errcode.MissingQuoteBeforeDoctypePublicIdentifier, "missing quote before doctype public identifier")
			t.state = BogusDoctypeState
		}
		return 0
	}
}

func (t *Tokenizer) doctypePublicIdentifierQuotedState(quote rune) stepResult {
	for {
		if t.eof() {
			return t.eofInDoctype()
		}
		r := t.next()
		switch {
		case r == quote:
			t.state = AfterDoctypePublicIdentifierState
			return 0
		case r == 0:
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.publicIDBuf.WriteRune(0xFFFD)
		case r == '>':
			t.forceQuirks = true
			t.report(errcode.AbruptDoctypePublicIdentifier, "abrupt doctype public identifier")
			t.emit(t.newDoctypeToken())
			t.state = DataState
			return 0
		default:
			t.publicIDBuf.WriteRune(r)
		}
	}
}

func (t *Tokenizer) afterDoctypePublicIdentifierState() stepResult {
	if t.eof() {
		return t.eofInDoctype()
	}
	switch r := t.peek(); {
	case isWhitespace(r):
		t.next()
		t.state = BetweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		t.next()
		t.emit(t.newDoctypeToken())
		t.state = DataState
	case r == '"':
		t.next()
		t.report(errcode.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers, "missing whitespace between doctype public and system identifiers")
		t.hasSystemID = true
		t.systemIDBuf.Reset()
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.next()
		t.report(errcode.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers, "missing whitespace between doctype public and system identifiers")
		t.hasSystemID = true
		t.systemIDBuf.Reset()
		t.state = DoctypeSystemIdentifierSingleQuotedState
	default:
		t.next()
		t.forceQuirks = true
		t.report(errcode.MissingQuoteBeforeDoctypeSystemIdentifier, "missing quote before doctype system identifier")
		t.state = BogusDoctypeState
	}
	return 0
}

func (t *Tokenizer) betweenDoctypePublicAndSystemIdentifiersState() stepResult {
	for {
		if t.eof() {
			return t.eofInDoctype()
		}
		r := t.peek()
		if isWhitespace(r) {
			t.next()
			continue
		}
		switch r {
		case '>':
			t.next()
			t.emit(t.newDoctypeToken())
			t.state = DataState
		case '"':
			t.next()
			t.hasSystemID = true
			t.systemIDBuf.Reset()
			t.state = DoctypeSystemIdentifierDoubleQuotedState
		case '\'':
			t.next()
			t.hasSystemID = true
			t.systemIDBuf.Reset()
			t.state = DoctypeSystemIdentifierSingleQuotedState
		default:
			t.next()
			t.forceQuirks = true
			t.report(errcode.MissingQuoteBeforeDoctypeSystemIdentifier, "missing quote before doctype system identifier")
			t.state = BogusDoctypeState
		}
		return 0
	}
}

func (t *Tokenizer) afterDoctypeSystemKeywordState() stepResult {
	if t.eof() {
		return t.eofInDoctype()
	}
	switch r := t.peek(); {
	case isWhitespace(r):
		t.next()
		t.state = BeforeDoctypeSystemIdentifierState
	case r == '"':
		t.next()
		t.report(errcode.MissingWhitespaceAfterDoctypeSystemKeyword, "missing whitespace after doctype system keyword")
		t.hasSystemID = true
		t.systemIDBuf.Reset()
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.next()
		t.report(errcode.MissingWhitespaceAfterDoctypeSystemKeyword, "missing whitespace after doctype system keyword")
		t.hasSystemID = true
		t.systemIDBuf.Reset()
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case r == '>':
		t.next()
		t.forceQuirks = true
		t.report(errcode.MissingDoctypeSystemIdentifier, "missing doctype system identifier")
		t.emit(t.newDoctypeToken())
		t.state = DataState
	default:
		t.next()
		t.forceQuirks = true
		t.report(errcode.MissingQuoteBeforeDoctypeSystemIdentifier, "missing quote before doctype system identifier")
		t.state = BogusDoctypeState
	}
	return 0
}

func (t *Tokenizer) beforeDoctypeSystemIdentifierState() stepResult {
	for {
		if t.eof() {
			return t.eofInDoctype()
		}
		r := t.peek()
		if isWhitespace(r) {
			t.next()
			continue
		}
		switch r {
		case '"':
			t.next()
			t.hasSystemID = true
			t.systemIDBuf.Reset()
			t.state = DoctypeSystemIdentifierDoubleQuotedState
		case '\'':
			t.next()
			t.hasSystemID = true
			t.systemIDBuf.Reset()
			t.state = DoctypeSystemIdentifierSingleQuotedState
		case '>':
			t.next()
			t.forceQuirks = true
			t.report(errcode.MissingDoctypeSystemIdentifier, "missing doctype system identifier")
			t.emit(t.newDoctypeToken())
			t.state = DataState
		default:
			t.next()
			t.forceQuirks = true
			t.report(errcode.MissingQuoteBeforeDoctypeSystemIdentifier, "missing quote before doctype system identifier")
			t.state = BogusDoctypeState
		}
		return 0
	}
}

func (t *Tokenizer) doctypeSystemIdentifierQuotedState(quote rune) stepResult {
	for {
		if t.eof() {
			return t.eofInDoctype()
		}
		r := t.next()
		switch {
		case r == quote:
			t.state = AfterDoctypeSystemIdentifierState
			return 0
		case r == 0:
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.systemIDBuf.WriteRune(0xFFFD)
		case r == '>':
			t.forceQuirks = true
			t.report(errcode.AbruptDoctypeSystemIdentifier, "abrupt doctype system identifier")
			t.emit(t.newDoctypeToken())
			t.state = DataState
			return 0
		default:
			t.systemIDBuf.WriteRune(r)
		}
	}
}

func (t *Tokenizer) afterDoctypeSystemIdentifierState() stepResult {
	if t.eof() {
		return t.eofInDoctype()
	}
	r := t.peek()
	if isWhitespace(r) {
		t.next()
		return 0
	}
	if r == '>' {
		t.next()
		t.emit(t.newDoctypeToken())
		t.state = DataState
		return 0
	}
	t.next()
	t.report(errcode.UnexpectedCharacterAfterDoctypeSystemIdentifier, "unexpected character after doctype system identifier")
	t.state = BogusDoctypeState
	return 0
}

func (t *Tokenizer) bogusDoctypeState() stepResult {
	for {
		if t.eof() {
			t.emit(t.newDoctypeToken())
			t.emitEOF()
			return done
		}
		r := t.next()
		switch r {
		case '>':
			t.emit(t.newDoctypeToken())
			t.state = DataState
			return 0
		case 0:
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
		}
	}
}

package token

import "github.com/corehtml/html5/errcode"

func (t *Tokenizer) beforeAttributeNameState() stepResult {
	for {
		if t.eof() {
			t.state = AfterAttributeNameState
			return 0
		}
		r := t.peek()
		if isWhitespace(r) {
			t.next()
			continue
		}
		switch r {
		case '/', '>':
			t.state = AfterAttributeNameState
			return 0
		case '=':
			t.next()
			t.report(errcode.UnexpectedEqualsSignBeforeAttributeName, "unexpected equals sign before attribute name")
			t.attrName.WriteRune('=')
			t.state = AttributeNameState
			return 0
		default:
			t.state = AttributeNameState
			return 0
		}
	}
}

func (t *Tokenizer) attributeNameState() stepResult {
	for {
		if t.eof() {
			t.checkAttributeNameDuplicate()
			t.finishAttribute()
			t.state = AfterAttributeNameState
			return 0
		}
		r := t.peek()
		switch {
		case isWhitespace(r) || r == '/' || r == '>':
			t.checkAttributeNameDuplicate()
			t.finishAttribute()
			t.state = AfterAttributeNameState
			return 0
		case r == '=':
			t.next()
			t.checkAttributeNameDuplicate()
			t.state = BeforeAttributeValueState
			return 0
		case r == 0:
			t.next()
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.attrName.WriteRune(0xFFFD)
		case isASCIIUpper(r):
			t.next()
			t.attrName.WriteRune(r + 0x20)
		case r == '"' || r == '\'' || r == '<':
			t.next()
			t.report(errcode.UnexpectedCharacterInAttributeName, "unexpected character in attribute name")
			t.attrName.WriteRune(r)
		default:
			t.next()
			t.attrName.WriteRune(r)
		}
	}
}

func (t *Tokenizer) afterAttributeNameState() stepResult {
	for {
		if t.eof() {
			t.report(errcode.EOFInTag, "eof in tag")
			t.emitEOF()
			return done
		}
		r := t.peek()
		if isWhitespace(r) {
			t.next()
			continue
		}
		switch r {
		case '/':
			t.next()
			t.state = SelfClosingStartTagState
		case '=':
			t.next()
			t.state = BeforeAttributeValueState
		case '>':
			t.next()
			t.finishTagToken()
			t.state = DataState
		default:
			t.state = AttributeNameState
		}
		return 0
	}
}

func (t *Tokenizer) beforeAttributeValueState() stepResult {
	for {
		if t.eof() {
			t.state = AttributeValueUnquotedState
			return 0
		}
		r := t.peek()
		if isWhitespace(r) {
			t.next()
			continue
		}
		switch r {
		case '"':
			t.next()
			t.state = AttributeValueDoubleQuotedState
		case '\'':
			t.next()
			t.state = AttributeValueSingleQuotedState
		case '>':
			t.next()
			t.report(errcode.MissingAttributeValue, "missing attribute value")
			t.finishTagToken()
			t.state = DataState
		default:
			t.state = AttributeValueUnquotedState
		}
		return 0
	}
}

func (t *Tokenizer) attributeValueQuotedState(quote rune) stepResult {
	for {
		if t.eof() {
			t.report(errcode.EOFInTag, "eof in tag")
			t.emitEOF()
			return done
		}
		r := t.next()
		switch {
		case r == quote:
			t.state = AfterAttributeValueQuotedState
			return 0
		case r == '&':
			t.consumeCharacterReference(true)
		case r == 0:
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.attrValue.WriteRune(0xFFFD)
		default:
			t.attrValue.WriteRune(r)
		}
	}
}

func (t *Tokenizer) attributeValueUnquotedState() stepResult {
	for {
		if t.eof() {
			t.report(errcode.EOFInTag, "eof in tag")
			t.emitEOF()
			return done
		}
		r := t.peek()
		switch {
		case isWhitespace(r):
			t.next()
			t.finishAttribute()
			t.state = BeforeAttributeNameState
			return 0
		case r == '&':
			t.next()
			t.consumeCharacterReference(true)
		case r == '>':
			t.next()
			t.finishTagToken()
			t.state = DataState
			return 0
		case r == 0:
			t.next()
			t.report(errcode.UnexpectedNullCharacter, "unexpected null character")
			t.attrValue.WriteRune(0xFFFD)
		case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
			t.next()
			t.report(errcode.UnexpectedCharacterInUnquotedAttributeValue, "unexpected character in unquoted attribute value")
			t.attrValue.WriteRune(r)
		default:
			t.next()
			t.attrValue.WriteRune(r)
		}
	}
}

func (t *Tokenizer) afterAttributeValueQuotedState() stepResult {
	t.finishAttribute()
	if t.eof() {
		t.report(errcode.EOFInTag, "eof in tag")
		t.emitEOF()
		return done
	}
	r := t.peek()
	switch {
	case isWhitespace(r):
		t.next()
		t.state = BeforeAttributeNameState
	case r == '/':
		t.next()
		t.state = SelfClosingStartTagState
	case r == '>':
		t.next()
		t.finishTagToken()
		t.state = DataState
	default:
		t.report(errcode.MissingWhitespaceBetweenAttributes, "missing whitespace between attributes")
		t.state = BeforeAttributeNameState
	}
	return 0
}

func (t *Tokenizer) selfClosingStartTagState() stepResult {
	if t.eof() {
		t.report(errcode.EOFInTag, "eof in tag")
		t.emitEOF()
		return done
	}
	if t.peek() == '>' {
		t.next()
		t.selfClosing = true
		t.finishTagToken()
		t.state = DataState
		return 0
	}
	t.report(errcode.UnexpectedSolidusInTag, "unexpected solidus in tag")
	t.state = BeforeAttributeNameState
	return 0
}

package token

import "github.com/corehtml/html5/errcode"

// consumeCharacterReference implements spec.md §4.2 "Character reference
// consumption". The leading '&' has already been consumed by the caller.
// inAttr selects whether decoded text lands in the pending attribute value
// or the current text run, and gates the "ambiguous ampersand in attribute"
// legacy exception for unterminated named references.
func (t *Tokenizer) consumeCharacterReference(inAttr bool) {
	if t.eof() {
		t.writeCharRefOutput("&", inAttr)
		return
	}
	switch r := t.peek(); {
	case r == '#':
		t.next()
		t.consumeNumericCharacterReference(inAttr)
	case isASCIIAlphanumeric(r):
		t.consumeNamedCharacterReference(inAttr)
	default:
		t.writeCharRefOutput("&", inAttr)
	}
}

func (t *Tokenizer) writeCharRefOutput(s string, inAttr bool) {
	if inAttr {
		t.attrValue.WriteString(s)
	} else {
		t.dataBuf.WriteString(s)
	}
}

// consumeNamedCharacterReference performs the longest-prefix-match search
// (token.lookupNamed) and applies the "ambiguous ampersand" exception: an
// unterminated legacy match inside an attribute is left undecoded if it is
// immediately followed by '=' or an alphanumeric, since that almost always
// indicates the author meant a literal '&' followed by the next attribute.
func (t *Tokenizer) consumeNamedCharacterReference(inAttr bool) {
	var candidate []rune
	for len(candidate) < maxEntityNameLength {
		r, ok := t.peekAt(len(candidate))
		if !ok || !isASCIIAlphanumeric(r) {
			break
		}
		candidate = append(candidate, r)
	}
	next, hasNext := t.peekAt(len(candidate))

	match, ok := lookupNamed(candidate, next, hasNext)
	if !ok {
		t.writeCharRefOutput("&", inAttr)
		return
	}
	if !match.sawSemi {
		after, hasAfter := t.peekAt(match.consumed)
		if inAttr && hasAfter && (after == '=' || isASCIIAlphanumeric(after)) {
			t.writeCharRefOutput("&", inAttr)
			return
		}
		t.report(errcode.MissingSemicolonAfterCharacterReference, "missing semicolon after character reference")
	}
	t.advance(match.consumed)
	t.writeCharRefOutput(match.value, inAttr)
}

// consumeNumericCharacterReference implements the "&#", hexadecimal and
// decimal reference states collapsed into one pass, followed by the end
// state's remap/exclusion handling from entities.go.
func (t *Tokenizer) consumeNumericCharacterReference(inAttr bool) {
	hex := false
	if !t.eof() && (t.peek() == 'x' || t.peek() == 'X') {
		hex = true
		t.next()
	}
	var digits []rune
	for !t.eof() {
		r := t.peek()
		if hex && isHexDigit(r) {
			digits = append(digits, r)
			t.next()
			continue
		}
		if !hex && r >= '0' && r <= '9' {
			digits = append(digits, r)
			t.next()
			continue
		}
		break
	}
	if len(digits) == 0 {
		t.report(errcode.AbsenceOfDigitsInNumericCharacterReference, "absence of digits in numeric character reference")
		prefix := "&#"
		if hex {
			prefix += "x"
		}
		t.writeCharRefOutput(prefix, inAttr)
		return
	}

	base := 10
	if hex {
		base = 16
	}
	cp, err := parseIntBase(string(digits), base)
	if err != nil || cp > 0x10FFFF {
		cp = 0x110000
	}

	if !t.eof() && t.peek() == ';' {
		t.next()
	} else {
		t.report(errcode.MissingSemicolonAfterCharacterReference, "missing semicolon after character reference")
	}

	r, code := remapNumericReference(cp)
	switch code {
	case "null-character-reference":
		t.report(errcode.NullCharacterReference, "null character reference")
	case "character-reference-outside-unicode-range":
		t.report(errcode.CharacterReferenceOutsideUnicodeRange, "character reference outside unicode range")
	case "surrogate-character-reference":
		t.report(errcode.SurrogateCharacterReference, "surrogate character reference")
	case "control-character-reference":
		t.report(errcode.ControlCharacterReference, "control character reference")
	case "noncharacter-character-reference":
		t.report(errcode.NoncharacterCharacterReference, "noncharacter character reference")
	}
	t.writeCharRefOutput(string(r), inAttr)
}

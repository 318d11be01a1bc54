package token

// windows1252Remap implements the spec's numeric character reference remap
// table for the 0x80-0x9F C1 control range (spec.md §4.2 "Numeric").
var windows1252Remap = map[rune]rune{
	0x80: 0x20AC, 0x81: 0x0081, 0x82: 0x201A, 0x83: 0x0192,
	0x84: 0x201E, 0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021,
	0x88: 0x02C6, 0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039,
	0x8C: 0x0152, 0x8D: 0x008D, 0x8E: 0x017D, 0x8F: 0x008F,
	0x90: 0x0090, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9D: 0x009D, 0x9E: 0x017E, 0x9F: 0x0178,
}

// remapNumericReference applies the windows-1252 remap table and the
// surrogate/too-large/noncharacter/null exclusions from spec.md §4.2,
// returning the replacement rune and the error code to report, if any.
func remapNumericReference(cp int64) (r rune, code string) {
	switch {
	case cp == 0:
		return 0xFFFD, "null-character-reference"
	case cp > 0x10FFFF:
		return 0xFFFD, "character-reference-outside-unicode-range"
	case cp >= 0xD800 && cp <= 0xDFFF:
		return 0xFFFD, "surrogate-character-reference"
	}
	if remapped, ok := windows1252Remap[rune(cp)]; ok {
		return remapped, "control-character-reference"
	}
	if isNoncharacter(rune(cp)) {
		return rune(cp), "noncharacter-character-reference"
	}
	if isControlReferenceCodepoint(rune(cp)) {
		return rune(cp), "control-character-reference"
	}
	return rune(cp), ""
}

func isNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	switch r & 0xFFFE {
	case 0xFFFE:
		return true
	}
	return r&0xFFFF == 0xFFFF || r&0xFFFF == 0xFFFE
}

func isControlReferenceCodepoint(r rune) bool {
	if r >= 0x0001 && r <= 0x001F {
		switch r {
		case 0x09, 0x0A, 0x0C:
			return false
		}
		return true
	}
	return r >= 0x007F && r <= 0x009F
}

// namedMatch is the result of a successful longest-match lookup.
type namedMatch struct {
	value       string
	consumed    int  // runes consumed after '&', including the ';' when sawSemi is true
	sawSemi     bool
}

// lookupNamed performs the longest-match search required by spec.md §4.2
// ("Named"): it tries the longest possible name first, preferring a match
// followed by a literal ';' over a legacy no-semicolon match.
func lookupNamed(candidate []rune, nextAfterCandidate rune, hasNext bool) (namedMatch, bool) {
	n := len(candidate)
	if n > maxEntityNameLength {
		n = maxEntityNameLength
	}
	for l := n; l >= 1; l-- {
		name := string(candidate[:l])
		e, ok := namedEntities[name]
		if !ok {
			continue
		}
		sawSemi := (l < len(candidate) && candidate[l] == ';') ||
			(l == len(candidate) && hasNext && nextAfterCandidate == ';')
		if sawSemi {
			return namedMatch{value: e.value, consumed: l + 1, sawSemi: true}, true
		}
		if e.legacy {
			return namedMatch{value: e.value, consumed: l, sawSemi: false}, true
		}
	}
	return namedMatch{}, false
}

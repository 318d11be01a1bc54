package treebuilder

import (
	"strings"

	"github.com/corehtml/html5/token"
)

// quirksPublicIDPrefixes and limitedQuirksPublicIDPrefixes implement
// spec.md §4.6's DOCTYPE-driven quirks-mode table: a case-insensitive
// prefix match against the DOCTYPE's public identifier (and, for a few
// entries, a a combination with an empty/non-empty system identifier).
var quirksPublicIDPrefixes = []string{
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

var limitedQuirksPublicIDPrefixes = []string{
	"-//w3c//dtd xhtml 1.0 frameset//",
	"-//w3c//dtd xhtml 1.0 transitional//",
}

// computeQuirksMode implements spec.md §4.6's "initial insertion mode"
// DOCTYPE handling.
func computeQuirksMode(tok token.Token) QuirksMode {
	if strings.ToLower(tok.Data) != "html" {
		return Quirks
	}
	if tok.ForceQuirks {
		return Quirks
	}
	if tok.DoctypeHasSystemID && strings.EqualFold(tok.DoctypeSystemID,
		"http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd") {
		return Quirks
	}

	public := strings.ToLower(tok.DoctypePublicID)
	switch public {
	case "-//w3o//dtd w3 html strict 3.0//en//":
		return Quirks
	case "-/w3c/dtd html 4.0 transitional/en", "html":
		return Quirks
	}
	for _, prefix := range quirksPublicIDPrefixes {
		if strings.HasPrefix(public, prefix) {
			return Quirks
		}
	}
	if !tok.DoctypeHasSystemID {
		for _, prefix := range []string{
			"-//w3c//dtd html 4.01 frameset//",
			"-//w3c//dtd html 4.01 transitional//",
		} {
			if strings.HasPrefix(public, prefix) {
				return Quirks
			}
		}
	}
	for _, prefix := range limitedQuirksPublicIDPrefixes {
		if strings.HasPrefix(public, prefix) {
			return LimitedQuirks
		}
	}
	return NoQuirks
}

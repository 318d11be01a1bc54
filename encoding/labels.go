// Package encoding implements the HTML5 encoding-sniffing algorithm
// (spec.md §4.1): BOM detection, a transport-label override, a bounded
// prescan of the document for a <meta charset> declaration, and a
// windows-1252 fallback, followed by byte-to-UTF-8 transcoding.
package encoding

import "strings"

// Encoding is one member of the closed label set this sniffer recognizes
// (spec.md §4.1 "Supported labels"). Grounded on
// _examples/other_examples/ddee2475_MeKo-Christian-justgohtml__encoding-encoding.go.go's
// Encoding struct and label tables.
type Encoding struct {
	Name   string
	Labels []string
}

var (
	UTF8 = &Encoding{
		Name: "UTF-8",
		Labels: []string{
			"utf-8", "utf8", "unicode-1-1-utf-8",
			"unicode11utf8", "unicode20utf8", "x-unicode20utf8",
		},
	}
	Windows1252 = &Encoding{
		Name: "windows-1252",
		Labels: []string{
			"windows-1252", "windows1252", "cp1252", "x-cp1252",
			"ansi_x3.4-1968", "ascii", "us-ascii",
			"iso-ir-100", "csisolatin1",
			"iso-8859-1", "iso8859-1", "iso88591", "iso_8859-1",
			"iso_8859-1:1987", "latin1", "latin-1", "l1", "cp819", "ibm819",
		},
	}
	ISO88592 = &Encoding{
		Name: "iso-8859-2",
		Labels: []string{
			"iso-8859-2", "iso8859-2", "iso88592",
			"iso_8859-2", "iso_8859-2:1987",
			"iso-ir-101", "csisolatin2",
			"latin2", "latin-2", "l2",
		},
	}
	EUCJP = &Encoding{
		Name:   "euc-jp",
		Labels: []string{"euc-jp", "eucjp", "cseucpkdfmtjapanese", "x-euc-jp"},
	}
	UTF16LE = &Encoding{Name: "utf-16le", Labels: []string{"utf-16le", "utf16le"}}
	UTF16BE = &Encoding{Name: "utf-16be", Labels: []string{"utf-16be", "utf16be"}}
	UTF16   = &Encoding{Name: "utf-16", Labels: []string{"utf-16", "utf16"}}
)

var allEncodings = []*Encoding{UTF8, Windows1252, ISO88592, EUCJP, UTF16, UTF16LE, UTF16BE}

// normalizeEncodingLabel maps a (transport or meta-declared) label to a
// supported Encoding, folding ISO-8859-1-family labels into windows-1252 and
// rejecting UTF-7 outright, per spec.md §4.1's security note.
func normalizeEncodingLabel(label string) *Encoding {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return nil
	}
	switch label {
	case "utf-7", "utf7", "x-utf-7":
		return Windows1252
	}
	for _, enc := range allEncodings {
		for _, l := range enc.Labels {
			if l == label {
				return enc
			}
		}
	}
	return nil
}

// normalizeMetaDeclaredEncoding additionally folds UTF-16 meta declarations
// (UTF-32 labels are not in the label set and are not recognized at all)
// to UTF-8, since a document that declares UTF-16 via <meta>
// (rather than a BOM or transport header) almost never really is UTF-16.
func normalizeMetaDeclaredEncoding(label string) *Encoding {
	enc := normalizeEncodingLabel(label)
	if enc == nil {
		return nil
	}
	switch enc.Name {
	case "utf-16", "utf-16le", "utf-16be", "utf-32", "utf-32le", "utf-32be":
		return UTF8
	}
	return enc
}

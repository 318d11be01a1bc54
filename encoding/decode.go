package encoding

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// decodeWithEncoding transcodes data (already stripped of any BOM) to a
// UTF-8 string according to enc, delegating the actual byte tables to
// golang.org/x/text/encoding rather than hand-rolling them, per DESIGN.md.
func decodeWithEncoding(data []byte, enc *Encoding) (string, error) {
	switch enc.Name {
	case "UTF-8":
		return string(data), nil
	case "windows-1252":
		return charmap.Windows1252.NewDecoder().String(string(data))
	case "iso-8859-2":
		return charmap.ISO8859_2.NewDecoder().String(string(data))
	case "euc-jp":
		return japanese.EUCJP.NewDecoder().String(string(data))
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().String(string(data))
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().String(string(data))
	case "utf-16":
		// Only a transport label selects plain "utf-16" (meta declarations
		// fold to UTF-8), and Decode passes UTF16LE/BE instead when a BOM
		// is present, so with no byte order known this defaults to
		// little-endian.
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().String(string(data))
	default:
		return "", fmt.Errorf("encoding: unsupported encoding %q", enc.Name)
	}
}

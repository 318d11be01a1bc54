package encoding

import (
	"bytes"
	"strings"
)

// Confidence records how sure the sniffing algorithm is of the encoding it
// picked, mirroring the HTML spec's "confidence" concept (certain/tentative).
// Decode and the html5 façade discard it; parsing is never restarted on a
// late-discovered charset declaration.
type Confidence int

const (
	Tentative Confidence = iota
	Certain
)

const (
	maxPrescanNonComment = 1024
	maxPrescanTotal      = 65536
)

// Sniff implements spec.md §4.1's encoding-sniffing algorithm: a
// transport-supplied label first, then a BOM, then a bounded prescan for
// <meta charset>, then a windows-1252 fallback. It never consumes data:
// decoding happens separately in Decode.
func Sniff(data []byte, transportHint string) (*Encoding, Confidence) {
	if enc := normalizeEncodingLabel(transportHint); enc != nil {
		return enc, Certain
	}
	if enc, _ := detectBOM(data); enc != nil {
		return enc, Certain
	}
	if enc := prescanForMetaCharset(data); enc != nil {
		return enc, Tentative
	}
	return Windows1252, Tentative
}

// Decode sniffs data's encoding and transcodes it to a UTF-8 string,
// stripping any leading BOM. transportHint is the charset parameter from a
// Content-Type header, if any; pass "" when none is available.
func Decode(data []byte, transportHint string) (string, *Encoding, error) {
	enc, _ := Sniff(data, transportHint)
	decodeAs := enc
	if bomEnc, n := detectBOM(data); n > 0 {
		data = data[n:]
		if enc == UTF16 && bomEnc != UTF8 {
			decodeAs = bomEnc
		}
	}
	s, err := decodeWithEncoding(data, decodeAs)
	if err != nil {
		return "", enc, err
	}
	return s, enc, nil
}

// detectBOM reports the encoding implied by a leading byte-order mark and
// the number of bytes it occupies, or (nil, 0) if none is present.
func detectBOM(data []byte) (*Encoding, int) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return UTF8, 3
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return UTF16LE, 2
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return UTF16BE, 2
	}
	return nil, 0
}

// prescanForMetaCharset walks data looking for a <meta charset=...> or
// <meta http-equiv=Content-Type content=...charset=...> declaration, bounded
// to maxPrescanNonComment bytes of non-comment markup and maxPrescanTotal
// bytes overall, per spec.md §4.1. Adapted from the scan shape in
// _examples/other_examples/ddee2475_..._encoding-encoding.go.go's
// prescanForMetaCharset, restructured around an explicit cursor type instead
// of free functions over a byte slice.
func prescanForMetaCharset(data []byte) *Encoding {
	p := &prescanner{data: data}
	nonComment := 0
	for p.pos < len(data) && p.pos < maxPrescanTotal && nonComment < maxPrescanNonComment {
		start := p.pos
		if p.consumeComment() {
			continue
		}
		if !p.at('<') {
			p.pos++
			nonComment++
			continue
		}
		if enc := p.consumeMetaTag(); enc != nil {
			return enc
		}
		if p.pos == start {
			p.pos++
		}
		nonComment += p.pos - start
	}
	return nil
}

type prescanner struct {
	data []byte
	pos  int
}

func (p *prescanner) at(b byte) bool { return p.pos < len(p.data) && p.data[p.pos] == b }

func (p *prescanner) consumeComment() bool {
	if !bytes.HasPrefix(p.data[p.pos:], []byte("<!--")) {
		return false
	}
	end := bytes.Index(p.data[p.pos+4:], []byte("-->"))
	if end < 0 {
		p.pos = len(p.data)
		return true
	}
	p.pos += 4 + end + 3
	return true
}

// consumeMetaTag attempts to parse the tag starting at p.pos as a <meta>
// element carrying a charset declaration, advancing p.pos past it
// regardless of outcome (non-meta tags are skipped over wholesale).
func (p *prescanner) consumeMetaTag() *Encoding {
	rest := p.data[p.pos:]
	end := bytes.IndexByte(rest, '>')
	if end < 0 {
		p.pos = len(p.data)
		return nil
	}
	tag := rest[:end+1]
	p.pos += end + 1

	if !bytes.HasPrefix(bytes.ToLower(tag), []byte("<meta")) {
		return nil
	}
	attrs := parseAttrsLoose(tag[len("<meta"):])

	if v, ok := attrs["charset"]; ok {
		return normalizeMetaDeclaredEncoding(v)
	}
	httpEquiv, hasEquiv := attrs["http-equiv"]
	content, hasContent := attrs["content"]
	if hasEquiv && hasContent && strings.EqualFold(httpEquiv, "content-type") {
		if cs := extractCharsetFromContent(content); cs != "" {
			return normalizeMetaDeclaredEncoding(cs)
		}
	}
	return nil
}

// parseAttrsLoose performs a minimal, quote-aware attribute scan sufficient
// for prescanning: it does not need to be a conformant tokenizer, only to
// find charset/http-equiv/content name=value pairs.
func parseAttrsLoose(s []byte) map[string]string {
	attrs := make(map[string]string)
	i := 0
	for i < len(s) {
		for i < len(s) && isHTMLSpace(s[i]) {
			i++
		}
		nameStart := i
		for i < len(s) && s[i] != '=' && !isHTMLSpace(s[i]) && s[i] != '>' {
			i++
		}
		name := string(bytes.ToLower(s[nameStart:i]))
		for i < len(s) && isHTMLSpace(s[i]) {
			i++
		}
		if i >= len(s) || s[i] != '=' {
			if i == nameStart {
				i++
			}
			continue
		}
		i++
		for i < len(s) && isHTMLSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		var value string
		if s[i] == '"' || s[i] == '\'' {
			quote := s[i]
			i++
			valStart := i
			for i < len(s) && s[i] != quote {
				i++
			}
			value = string(s[valStart:i])
			if i < len(s) {
				i++
			}
		} else {
			valStart := i
			for i < len(s) && !isHTMLSpace(s[i]) && s[i] != '>' {
				i++
			}
			value = string(s[valStart:i])
		}
		if name != "" {
			attrs[name] = value
		}
	}
	return attrs
}

func isHTMLSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// extractCharsetFromContent finds the charset=... parameter inside a
// Content-Type content="text/html; charset=..." attribute value.
func extractCharsetFromContent(content string) string {
	lower := strings.ToLower(content)
	idx := strings.Index(lower, "charset")
	if idx < 0 {
		return ""
	}
	rest := content[idx+len("charset"):]
	rest = strings.TrimLeft(rest, " \t\n\r\f")
	if !strings.HasPrefix(rest, "=") {
		return ""
	}
	rest = strings.TrimLeft(rest[1:], " \t\n\r\f")
	if rest == "" {
		return ""
	}
	if rest[0] == '"' || rest[0] == '\'' {
		quote := rest[0]
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			return rest[1:]
		}
		return rest[1 : 1+end]
	}
	end := strings.IndexAny(rest, " \t\n\r\f;")
	if end < 0 {
		return rest
	}
	return rest[:end]
}

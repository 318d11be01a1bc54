package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSniff_BOM(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want *Encoding
	}{
		{"utf8", []byte("\xEF\xBB\xBF<html></html>"), UTF8},
		{"utf16le", []byte("\xFF\xFE<\x00"), UTF16LE},
		{"utf16be", []byte("\xFE\xFF\x00<"), UTF16BE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, conf := Sniff(tt.data, "")
			require.Equal(t, tt.want, enc)
			require.Equal(t, Certain, conf)
		})
	}
}

func TestSniff_TransportHintOverridesMeta(t *testing.T) {
	data := []byte(`<html><head><meta charset="iso-8859-2"></head></html>`)
	enc, conf := Sniff(data, "windows-1252")
	require.Equal(t, Windows1252, enc)
	require.Equal(t, Certain, conf)
}

func TestSniff_MetaCharsetAttribute(t *testing.T) {
	data := []byte(`<html><head><meta charset="iso-8859-2"></head></html>`)
	enc, conf := Sniff(data, "")
	require.Equal(t, ISO88592, enc)
	require.Equal(t, Tentative, conf)
}

func TestSniff_MetaHTTPEquivContentType(t *testing.T) {
	data := []byte(`<meta http-equiv="Content-Type" content="text/html; charset=EUC-JP">`)
	enc, conf := Sniff(data, "")
	require.Equal(t, EUCJP, enc)
	require.Equal(t, Tentative, conf)
}

func TestSniff_MetaUTF16DeclarationFoldsToUTF8(t *testing.T) {
	data := []byte(`<meta charset="utf-16">`)
	enc, _ := Sniff(data, "")
	require.Equal(t, UTF8, enc)
}

func TestSniff_FallsBackToWindows1252(t *testing.T) {
	data := []byte(`<html><body>no charset info here</body></html>`)
	enc, conf := Sniff(data, "")
	require.Equal(t, Windows1252, enc)
	require.Equal(t, Tentative, conf)
}

func TestSniff_SkipsComments(t *testing.T) {
	data := []byte(`<!-- <meta charset="iso-8859-2"> --><meta charset="euc-jp">`)
	enc, _ := Sniff(data, "")
	require.Equal(t, EUCJP, enc)
}

func TestSniff_UTF7RejectedAsWindows1252(t *testing.T) {
	enc, conf := Sniff([]byte(`<html></html>`), "utf-7")
	require.Equal(t, Windows1252, enc)
	require.Equal(t, Certain, conf)
}

func TestDecode_StripsBOM(t *testing.T) {
	s, enc, err := Decode([]byte("\xEF\xBB\xBFhello"), "")
	require.NoError(t, err)
	require.Equal(t, UTF8, enc)
	require.Equal(t, "hello", s)
}

func TestDecode_Windows1252(t *testing.T) {
	// 0x80 is the Euro sign in windows-1252.
	s, enc, err := Decode([]byte("caf\xe9 \x80"), "")
	require.NoError(t, err)
	require.Equal(t, Windows1252, enc)
	require.Equal(t, "café €", s)
}

func TestNormalizeEncodingLabel_ISO88591FoldsToWindows1252(t *testing.T) {
	require.Equal(t, Windows1252, normalizeEncodingLabel("ISO-8859-1"))
	require.Equal(t, Windows1252, normalizeEncodingLabel("latin1"))
}

func TestNormalizeEncodingLabel_Unknown(t *testing.T) {
	require.Nil(t, normalizeEncodingLabel("shift_jis_unknown_variant"))
}

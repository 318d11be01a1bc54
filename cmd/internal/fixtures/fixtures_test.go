package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/cmd/internal/fixtures"
)

func TestParseDat_SplitsOnDataDirective(t *testing.T) {
	input := "#data\nfoo\n#errors\n#document\n| <html>\n\n#data\nbar\n#document\n| <html>\n"
	recs := fixtures.ParseDat(input)
	require.Len(t, recs, 2)
	require.Equal(t, "foo", recs[0].Text("#data"))
	require.Equal(t, "bar", recs[1].Text("#data"))
	require.True(t, recs[0].Has("#errors"))
	require.False(t, recs[1].Has("#errors"))
}

func TestParseDat_PreservesMultilineSections(t *testing.T) {
	input := "#data\n<p>a\n<p>b\n#document\n| <html>\n|   <p>\n|     \"a\"\n"
	recs := fixtures.ParseDat(input)
	require.Len(t, recs, 1)
	require.Equal(t, "<p>a\n<p>b", recs[0].Text("#data"))
}

func TestExpandEscapes_Hex(t *testing.T) {
	require.Equal(t, "a\x00b", fixtures.ExpandEscapes(`a\x00b`))
}

func TestExpandEscapes_Unicode(t *testing.T) {
	require.Equal(t, "aéb", fixtures.ExpandEscapes(`a\u00e9b`))
}

func TestExpandEscapes_LeavesUnrelatedBackslashesAlone(t *testing.T) {
	require.Equal(t, `a\nb`, fixtures.ExpandEscapes(`a\nb`))
}

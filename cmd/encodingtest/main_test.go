package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/cmd/internal/fixtures"
)

func TestPathHasScriptedComponent(t *testing.T) {
	require.True(t, pathHasScriptedComponent("testdata/scripted/foo.dat"))
	require.False(t, pathHasScriptedComponent("testdata/unscripted/foo.dat"))
}

func TestRunRecord_MatchesCaseInsensitively(t *testing.T) {
	rec := fixtures.ParseDat("#data\n<meta charset=\"utf-8\">\n#encoding\nutf-8\n")[0]
	require.True(t, runRecord("t.dat", 0, rec))
}

func TestRunRecord_FailsOnWrongEncoding(t *testing.T) {
	rec := fixtures.ParseDat("#data\n<meta charset=\"utf-8\">\n#encoding\nshift_jis\n")[0]
	require.False(t, runRecord("t.dat", 0, rec))
}

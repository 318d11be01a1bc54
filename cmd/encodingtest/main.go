// Command encodingtest replays html5lib-style encoding-sniffer ".dat"
// fixtures (spec.md §6 "Encoding runner") against the encoding package and
// compares the sniffed canonical label against each fixture's "#encoding"
// line, skipping any fixture under a "scripted" directory.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corehtml/html5/cmd/internal/fixtures"
	"github.com/corehtml/html5/encoding"
)

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "encodingtest <path>...",
	Short: "`encodingtest` replays html5lib-style encoding-sniffer .dat fixtures",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	total, passed, skipped := 0, 0, 0

	for _, root := range args {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if pathHasScriptedComponent(path) {
				return nil
			}
			if !strings.HasSuffix(path, ".dat") {
				return nil
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			for i, rec := range fixtures.ParseDat(string(raw)) {
				if !rec.Has("#data") || !rec.Has("#encoding") {
					skipped++
					continue
				}
				total++
				if runRecord(path, i, rec) {
					passed++
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	log.Infof("encodingtest: %d/%d passed (%d skipped)", passed, total, skipped)
	if passed != total {
		return fmt.Errorf("%d fixture(s) failed", total-passed)
	}
	return nil
}

func pathHasScriptedComponent(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "scripted" {
			return true
		}
	}
	return false
}

func runRecord(file string, index int, rec fixtures.Record) bool {
	// #data in encoding fixtures is raw bytes under a text encoding, not
	// the tree-construction \x/\u escape dialect; sniffing needs the
	// literal bytes as they appear in the fixture.
	data := []byte(rec.Text("#data"))
	want := strings.TrimSpace(rec.Text("#encoding"))

	enc, _ := encoding.Sniff(data, "")
	got := ""
	if enc != nil {
		got = enc.Name
	}

	if strings.EqualFold(got, want) {
		return true
	}
	log.WithFields(logrus.Fields{
		"file":     file,
		"index":    index,
		"expected": want,
		"actual":   got,
	}).Debug("encodingtest: mismatch")
	return false
}

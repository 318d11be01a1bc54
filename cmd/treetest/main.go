// Command treetest parses html5lib-style tree-construction ".dat" fixtures
// (spec.md §6 "Tree-construction runner") through the public html5 façade
// and compares the canonical serialization against each fixture's
// "#document" block ("#document-fragment", when present, names the
// fragment context element).
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	html5 "github.com/corehtml/html5"
	"github.com/corehtml/html5/cmd/internal/fixtures"
	"github.com/corehtml/html5/serialize"
	"github.com/corehtml/html5/tree"
)

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "treetest <path>...",
	Short: "`treetest` replays html5lib-style tree-construction .dat fixtures",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

var verbose bool

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log a diff for every failing fixture")
}

func run(cmd *cobra.Command, args []string) error {
	total, passed, skipped := 0, 0, 0

	for _, root := range args {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".dat") {
				return nil
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			for i, rec := range fixtures.ParseDat(string(raw)) {
				if !rec.Has("#data") {
					continue
				}
				if rec.Has("#script-on") {
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

	log.Infof("treetest: %d/%d passed (%d #script-on skipped)", passed, total, skipped)
	if passed != total {
		return fmt.Errorf("%d fixture(s) failed", total-passed)
	}
	return nil
}

func runRecord(file string, index int, rec fixtures.Record) bool {
	data := fixtures.ExpandEscapes(rec.Text("#data"))

	opts := html5.Options{}
	if rec.Has("#xml-coercion") {
		opts.TokenizerOpts.XMLCoercion = true
	}
	if rec.Has("#iframe-srcdoc") {
		opts.IframeSrcdoc = true
	}
	if frag, ok := rec.Get("#document-fragment"); ok {
		opts.FragmentContext = parseFragmentContext(strings.Join(frag.Lines, ""))
	}

	res, err := html5.ParseString(data, opts)
	if err != nil {
		log.WithError(err).WithField("file", file).Warn("treetest: parse failed")
		return false
	}

	var actual string
	if opts.FragmentContext != nil {
		actual = serialize.TestFormatFragment(res.Root)
	} else {
		actual = serialize.TestFormat(res.Root)
	}
	expected := rec.Text("#document")

	if actual == expected {
		return true
	}
	if verbose {
		log.WithFields(logrus.Fields{
			"file":  file,
			"index": index,
		}).Infof("treetest: mismatch (-expected +actual)\n%s", cmp.Diff(expected, actual))
	}
	return false
}

// parseFragmentContext turns a "#document-fragment" line ("div", "svg
// title", "math annotation-xml") into a FragmentContext.
func parseFragmentContext(name string) *html5.FragmentContext {
	switch {
	case strings.HasPrefix(name, "svg "):
		return &html5.FragmentContext{TagName: strings.TrimPrefix(name, "svg "), Namespace: tree.SVG}
	case strings.HasPrefix(name, "math "):
		return &html5.FragmentContext{TagName: strings.TrimPrefix(name, "math "), Namespace: tree.MathML}
	default:
		return &html5.FragmentContext{TagName: name, Namespace: tree.HTML}
	}
}

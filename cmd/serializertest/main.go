// Command serializertest replays html5lib-style serializer ".test" fixtures
// (spec.md §6 "Serializer runner"): each fixture describes a small tree and
// a set of acceptable serialized forms, and a fixture passes if this
// module's HTML serializer produces any one of them.
package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

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
	Use:   "serializertest <path>...",
	Short: "`serializertest` replays html5lib-style serializer .test fixtures",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

type fixtureFile struct {
	Tests []testCase `json:"tests"`
}

type testCase struct {
	Description string        `json:"description"`
	Input       []interface{} `json:"input"`
	Expected    []string      `json:"expected"`
}

func run(cmd *cobra.Command, args []string) error {
	total, passed := 0, 0

	for _, root := range args {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".test") {
				return nil
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			var file fixtureFile
			if err := json.Unmarshal(raw, &file); err != nil {
				log.WithError(err).WithField("file", path).Warn("serializertest: skipping unparseable fixture")
				return nil
			}
			for _, tc := range file.Tests {
				total++
				if runCase(path, tc) {
					passed++
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	log.Infof("serializertest: %d/%d passed", passed, total)
	if passed != total {
		return fmt.Errorf("%d fixture(s) failed", total-passed)
	}
	return nil
}

func runCase(file string, tc testCase) bool {
	doc := tree.NewDocument()
	for _, raw := range tc.Input {
		child := buildNode(raw)
		if child != nil {
			doc.AppendChild(child)
		}
	}

	actual := serialize.HTML(doc)
	for _, want := range tc.Expected {
		if actual == want {
			return true
		}
	}
	log.WithFields(logrus.Fields{
		"file":        file,
		"description": tc.Description,
		"expected":    tc.Expected,
		"actual":      actual,
	}).Debug("serializertest: mismatch")
	return false
}

// buildNode turns one fixture node descriptor into a tree.Node:
//   ["#text", data]
//   ["#comment", data]
//   ["#doctype", name, publicId, systemId]
//   [tagName, {attrs}, [children...]]
// tagName may be prefixed "svg "/"math " to select a foreign namespace.
func buildNode(raw interface{}) *tree.Node {
	arr, ok := raw.([]interface{})
	if !ok || len(arr) == 0 {
		return nil
	}
	kind, _ := arr[0].(string)

	switch kind {
	case "#text":
		data, _ := arr[1].(string)
		return tree.NewText(data)
	case "#comment":
		data, _ := arr[1].(string)
		return tree.NewComment(data)
	case "#doctype":
		d := &tree.Node{Type: tree.DoctypeNode}
		if len(arr) > 1 {
			d.Data, _ = arr[1].(string)
		}
		if len(arr) > 2 {
			d.PublicID, _ = arr[2].(string)
		}
		if len(arr) > 3 {
			d.SystemID, _ = arr[3].(string)
		}
		return d
	default:
		name, ns := kind, tree.HTML
		switch {
		case strings.HasPrefix(name, "svg "):
			name, ns = strings.TrimPrefix(name, "svg "), tree.SVG
		case strings.HasPrefix(name, "math "):
			name, ns = strings.TrimPrefix(name, "math "), tree.MathML
		}
		el := tree.NewElement(name, ns)
		if len(arr) > 1 {
			if attrs, ok := arr[1].(map[string]interface{}); ok {
				for k, v := range attrs {
					if s, ok := v.(string); ok {
						el.SetAttribute(k, s)
					}
				}
			}
		}
		if len(arr) > 2 {
			if children, ok := arr[2].([]interface{}); ok {
				for _, c := range children {
					if n := buildNode(c); n != nil {
						el.AppendChild(n)
					}
				}
			}
		}
		return el
	}
}

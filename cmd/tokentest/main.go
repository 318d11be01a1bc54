// Command tokentest replays html5lib-style tokenizer ".test" fixtures
// (spec.md §6 "Tokenizer runner") against the token package directly,
// bypassing tree construction entirely, and reports a pass/fail summary.
//
// Grounded on the teacher's distribution-distribution cobra.Command idiom
// (registry/root.go's RootCmd/Use/Short/Run shape) and sirupsen/logrus for
// structured progress output.
package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corehtml/html5/cmd/internal/fixtures"
	"github.com/corehtml/html5/token"
)

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tokentest <path>...",
	Short: "`tokentest` replays html5lib-style tokenizer .test fixtures",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

type fixtureFile struct {
	Tests []testCase `json:"tests"`
}

type testCase struct {
	Description   string          `json:"description"`
	Input         string          `json:"input"`
	Output        json.RawMessage `json:"output"`
	InitialStates []string        `json:"initialStates"`
	LastStartTag  string          `json:"lastStartTag"`
	DoubleEscaped bool            `json:"doubleEscaped"`
}

var stateByName = map[string]token.State{
	"Data state":        token.DataState,
	"PLAINTEXT state":   token.PLAINTEXTState,
	"RCDATA state":      token.RCDATAState,
	"RAWTEXT state":     token.RAWTEXTState,
	"Script data state": token.ScriptDataState,
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
				log.WithError(err).WithField("file", path).Warn("tokentest: skipping unparseable fixture")
				return nil
			}
			for _, tc := range file.Tests {
				states := tc.InitialStates
				if len(states) == 0 {
					states = []string{"Data state"}
				}
				for _, stateName := range states {
					total++
					if runCase(path, tc, stateName) {
						passed++
					}
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	log.Infof("tokentest: %d/%d passed", passed, total)
	if passed != total {
		return fmt.Errorf("%d fixture(s) failed", total-passed)
	}
	return nil
}

func runCase(file string, tc testCase, stateName string) bool {
	input := tc.Input
	if tc.DoubleEscaped {
		input = fixtures.ExpandEscapes(input)
	}

	state, ok := stateByName[stateName]
	if !ok {
		log.WithFields(logrus.Fields{"file": file, "state": stateName}).Warn("tokentest: unknown initial state")
		return false
	}

	sink := &collectSink{}
	tok := token.New(input, sink, nil, token.Options{
		InitialState:      state,
		InitialRawtextTag: tc.LastStartTag,
	})
	tok.Run()

	actual := canonicalize(sink.tokens)

	var expected interface{}
	if len(tc.Output) > 0 {
		if err := json.Unmarshal(tc.Output, &expected); err != nil {
			log.WithError(err).WithField("file", file).Warn("tokentest: unparseable expected output")
			return false
		}
	}
	if tc.DoubleEscaped {
		expected = expandEscapesDeep(expected)
	}

	actualJSON, _ := json.Marshal(actual)
	var actualNormalized interface{}
	json.Unmarshal(actualJSON, &actualNormalized)

	if cmp.Equal(actualNormalized, expected) {
		return true
	}
	log.WithFields(logrus.Fields{
		"file":        file,
		"description": tc.Description,
		"state":       stateName,
	}).Debugf("tokentest: mismatch (-expected +actual)\n%s", cmp.Diff(expected, actualNormalized))
	return false
}

// collectSink records every token the tokenizer emits, in order.
type collectSink struct {
	tokens []token.Token
}

func (c *collectSink) ProcessToken(t token.Token) token.Directive {
	c.tokens = append(c.tokens, t)
	return token.Continue
}

// canonicalize drops the terminal EOF token and coalesces adjacent
// Character tokens into one, per spec.md §6's tokenizer-runner contract.
func canonicalize(tokens []token.Token) []interface{} {
	var out []interface{}
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Type == token.EOFToken {
			continue
		}
		if t.Type == token.CharacterToken {
			data := t.Data
			for i+1 < len(tokens) && tokens[i+1].Type == token.CharacterToken {
				i++
				data += tokens[i].Data
			}
			out = append(out, []interface{}{"Character", data})
			continue
		}
		out = append(out, tokenJSON(t))
	}
	return out
}

func tokenJSON(t token.Token) []interface{} {
	switch t.Type {
	case token.DoctypeToken:
		var pub, sys interface{}
		if t.DoctypeHasPublicID {
			pub = t.DoctypePublicID
		}
		if t.DoctypeHasSystemID {
			sys = t.DoctypeSystemID
		}
		return []interface{}{"DOCTYPE", t.Data, pub, sys, !t.ForceQuirks}
	case token.StartTagToken:
		attrs := map[string]interface{}{}
		for _, a := range t.Attr {
			attrs[a.Name] = a.Value
		}
		item := []interface{}{"StartTag", t.Data, attrs}
		if t.SelfClosing {
			item = append(item, true)
		}
		return item
	case token.EndTagToken:
		return []interface{}{"EndTag", t.Data}
	case token.CommentToken:
		return []interface{}{"Comment", t.Data}
	default:
		return nil
	}
}

// expandEscapesDeep applies fixtures.ExpandEscapes to every string reachable
// in a decoded JSON value, for doubleEscaped fixtures.
func expandEscapesDeep(v interface{}) interface{} {
	switch x := v.(type) {
	case string:
		return fixtures.ExpandEscapes(x)
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = expandEscapesDeep(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, e := range x {
			out[fixtures.ExpandEscapes(k)] = expandEscapesDeep(e)
		}
		return out
	default:
		return v
	}
}

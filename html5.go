// Package html5 is the public façade (spec.md §6): a constructor that
// drives the encoding sniffer, tokenizer and tree builder over either a
// byte buffer or a string and returns the parsed tree plus diagnostics.
//
// Follows the teacher's (dpotapov/go-pages) options-struct constructor
// pattern (pages.Config / chtml's component options) rather than a
// builder API or flag globals.
package html5

import (
	"fmt"

	"github.com/corehtml/html5/encoding"
	"github.com/corehtml/html5/perror"
	"github.com/corehtml/html5/token"
	"github.com/corehtml/html5/treebuilder"
	"github.com/corehtml/html5/tree"
)

// FragmentContext names the element spec.md §6's fragment_context option
// describes: fragment parsing proceeds as though the input were the
// contents of an element with this tag name and namespace.
type FragmentContext struct {
	TagName   string
	Namespace tree.Namespace
}

// TokenizerOptions exposes the tokenizer's test/debug entry points
// (spec.md §6 tokenizer_opts), used by the conformance fixture runners to
// replay a fixture's initialStates/lastStartTag.
type TokenizerOptions struct {
	InitialState      token.State
	InitialRawtextTag string
	DiscardBOM        bool
	XMLCoercion       bool
}

// Options configures a call to Parse or ParseString. Setting
// FragmentContext switches either call into fragment-parsing mode.
type Options struct {
	// Strict raises the first collected parse error as a fatal failure,
	// reported once tokenization of the current input has finished.
	Strict bool
	// CollectErrors populates Result.Errors; when false, errors are
	// still detected (and still honored by Strict) but not retained.
	CollectErrors bool
	// Encoding overrides the transport-layer encoding hint for byte
	// input (spec.md §4.1's "transport layer" sniffing step).
	Encoding string
	// FragmentContext, if set, switches to fragment parsing.
	FragmentContext *FragmentContext
	// IframeSrcdoc affects quirks-mode derivation when no DOCTYPE is
	// present, per spec.md §6.
	IframeSrcdoc bool
	// ScriptingEnabled affects only the IN_HEAD <noscript> branch
	// (spec.md §9's "Open questions": scripting defaults to false).
	ScriptingEnabled bool
	// TokenizerOpts carries the tokenizer test/debug hooks through.
	TokenizerOpts TokenizerOptions
}

// Result is the public façade's output shape (spec.md §6): the parsed
// tree (or fragment), the recorded errors (if CollectErrors was set), the
// encoding the input was decoded with, and the fragment context that was
// in effect, if any.
type Result struct {
	Root            *tree.Node
	Errors          []*perror.Error
	Encoding        string
	FragmentContext *FragmentContext
}

// StrictModeError is returned by Parse/ParseString when Options.Strict
// is set and at least one parse error was recorded. It carries the first
// recorded error, per spec.md §7's "surfaced as a fatal condition ... at
// the end of tokenization of the current input" rule — never mid-state.
type StrictModeError struct {
	First *perror.Error
}

func (e *StrictModeError) Error() string {
	return fmt.Sprintf("html5: strict mode: %s", e.First.Error())
}

// Parse decodes and parses a complete HTML document from a byte buffer.
// transportEncoding, if non-empty, is the transport-layer encoding label
// (spec.md §4.1); it is overridden by opts.Encoding when that is set.
func Parse(data []byte, transportEncoding string, opts Options) (*Result, error) {
	if opts.Encoding != "" {
		transportEncoding = opts.Encoding
	}
	text, enc, err := encoding.Decode(data, transportEncoding)
	if err != nil {
		return nil, fmt.Errorf("html5: decode: %w", err)
	}
	res, err := parseText(text, opts)
	if err != nil {
		return nil, err
	}
	res.Encoding = enc.Name
	return res, nil
}

// ParseString parses a complete HTML document from already-decoded text,
// skipping the encoding sniffer entirely.
func ParseString(s string, opts Options) (*Result, error) {
	return parseText(s, opts)
}

func parseText(text string, opts Options) (*Result, error) {
	sink := &perror.Sink{Collect: opts.CollectErrors || opts.Strict}

	var fragmentNode *tree.Node
	if opts.FragmentContext != nil {
		fragmentNode = tree.NewElement(opts.FragmentContext.TagName, opts.FragmentContext.Namespace)
	}

	tok := token.New(text, nil, sink, token.Options{
		InitialState:      opts.TokenizerOpts.InitialState,
		InitialRawtextTag: opts.TokenizerOpts.InitialRawtextTag,
		DiscardBOM:        opts.TokenizerOpts.DiscardBOM,
		XMLCoercion:       opts.TokenizerOpts.XMLCoercion,
		ScriptingEnabled:  opts.ScriptingEnabled,
	})
	builder := treebuilder.New(tok, sink, treebuilder.Options{
		ScriptingEnabled: opts.ScriptingEnabled,
		FragmentContext:  fragmentNode,
		IframeSrcdoc:     opts.IframeSrcdoc,
	})
	tok.SetSink(builder)

	builder.Run()
	builder.Finish()

	res := &Result{FragmentContext: opts.FragmentContext}
	if fragmentNode != nil {
		res.Root = builder.Fragment()
	} else {
		res.Root = builder.Document()
	}

	if opts.CollectErrors {
		res.Errors = sink.Errors
	}
	if opts.Strict && len(sink.Errors) > 0 {
		return res, &StrictModeError{First: sink.Errors[0]}
	}
	return res, nil
}

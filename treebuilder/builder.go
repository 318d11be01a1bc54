// Package treebuilder implements the HTML5 tree construction stage
// (spec.md §4.3): a token.Sink that drives the stack of open elements, the
// list of active formatting elements, and the 23 insertion modes to build a
// tree.Node document from a token.Tokenizer's output.
//
// Grounded on the teacher's chtml/html/parse.go (itself a trimmed fork of
// golang.org/x/net/html's parser) for the stack/scope/adoption-agency/
// foster-parenting machinery, generalized from the teacher's body-only
// subset to the full insertion-mode set spec.md §4.3 requires, cross-checked
// against justgohtml's treebuilder-builder.go and treebuilder-mode_handlers.go
// for the dispatcher/mode-handler split and field naming.
package treebuilder

import (
	"strings"

	"github.com/corehtml/html5/errcode"
	"github.com/corehtml/html5/perror"
	"github.com/corehtml/html5/token"
	"github.com/corehtml/html5/tree"

	a "golang.org/x/net/html/atom"
)

// QuirksMode records which of the three DOCTYPE-driven rendering modes
// spec.md §4.6 the document triggered.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

// insertionMode is one of the 23 state-transition functions in spec.md
// §4.3. It reports whether the current token was consumed (false means
// "reprocess the same token under the now-updated mode").
type insertionMode func(*Builder) bool

// scopeMarker is a sentinel pushed onto the list of active formatting
// elements by table cells/captions/objects/applets/marquees, per spec.md
// §4.3's "insert a marker" step. Its identity (not its contents) is what
// matters: afe entries are compared against it with ==.
var scopeMarker = &tree.Node{}

// Options configures a Builder. The zero value parses a full document in
// no-quirks mode with scripting disabled.
type Options struct {
	ScriptingEnabled bool
	// FragmentContext, if non-nil, seeds fragment-parsing mode (spec.md
	// §4.3 "parsing HTML fragments"): the builder behaves as though
	// parsing the contents of an element with this tag/namespace.
	FragmentContext *tree.Node
	// IframeSrcdoc suppresses the no-DOCTYPE-means-quirks-mode default
	// (spec.md §6 iframe_srcdoc), matching the HTML spec's carve-out for
	// documents parsed from an iframe's srcdoc attribute.
	IframeSrcdoc bool
}

// Builder is a token.Sink that constructs a tree.Node document from the
// token stream a token.Tokenizer produces.
type Builder struct {
	doc *tree.Node

	oe  []*tree.Node // stack of open elements
	afe []*tree.Node // list of active formatting elements (may hold scopeMarker)

	headElement *tree.Node
	formElement *tree.Node

	mode         insertionMode
	originalMode insertionMode
	templateModes []insertionMode

	fosterParenting bool
	framesetOK      bool
	quirksMode      QuirksMode
	scripting       bool

	fragmentContext *tree.Node
	fragmentDone    bool
	iframeSrcdoc    bool

	tok                 token.Token
	hasSelfClosingToken bool

	tokenizer *token.Tokenizer
	reporter  perror.Reporter

	pendingTableText       []token.Token
	pendingTableTextHasNon bool

	stopParsing bool
}

// New creates a Builder. tok is wired bidirectionally: the Builder drives
// it as a token.Sink, and calls back into it (SetState/SetLastStartTag/
// SetAllowCDATA) the way the insertion modes require.
func New(tok *token.Tokenizer, reporter perror.Reporter, opts Options) *Builder {
	b := &Builder{
		doc:          tree.NewDocument(),
		framesetOK:   true,
		scripting:    opts.ScriptingEnabled,
		tokenizer:    tok,
		reporter:     reporter,
		iframeSrcdoc: opts.IframeSrcdoc,
	}
	if opts.FragmentContext != nil {
		b.fragmentContext = opts.FragmentContext
		b.initFragmentParsing()
	} else {
		b.mode = initialIM
	}
	return b
}

// Document returns the constructed document (or, for fragment parsing, the
// document whose single child is the synthetic <html> root — callers
// use Fragment to get the assembled children instead).
func (b *Builder) Document() *tree.Node { return b.doc }

func (b *Builder) report(code errcode.Code, msg string) {
	if b.reporter != nil {
		b.reporter.Report(code, perror.Position{}, msg)
	}
}

func (b *Builder) top() *tree.Node {
	if n := b.oeTop(); n != nil {
		return n
	}
	return b.doc
}

func (b *Builder) oeTop() *tree.Node {
	if len(b.oe) == 0 {
		return nil
	}
	return b.oe[len(b.oe)-1]
}

func (b *Builder) oePush(n *tree.Node) { b.oe = append(b.oe, n) }

func (b *Builder) oePop() *tree.Node {
	n := b.oe[len(b.oe)-1]
	b.oe = b.oe[:len(b.oe)-1]
	return n
}

func (b *Builder) oeIndex(n *tree.Node) int {
	for i := len(b.oe) - 1; i >= 0; i-- {
		if b.oe[i] == n {
			return i
		}
	}
	return -1
}

func (b *Builder) oeContains(atoms ...a.Atom) bool {
	for _, n := range b.oe {
		at := atomOf(n)
		for _, want := range atoms {
			if at == want {
				return true
			}
		}
	}
	return false
}

func (b *Builder) oeRemove(n *tree.Node) {
	if i := b.oeIndex(n); i != -1 {
		b.oe = append(b.oe[:i], b.oe[i+1:]...)
	}
}

// atomOf resolves a node's tag name to a golang.org/x/net/html/atom for
// fast, allocation-free tag identity comparisons; custom/unknown tags
// resolve to the zero Atom, in which case callers fall back to Data.
func atomOf(n *tree.Node) a.Atom {
	if n == nil || n.Type != tree.ElementNode {
		return 0
	}
	return a.Lookup([]byte(n.Data))
}

// addChild inserts n at the current insertion point (honoring foster
// parenting) and, for elements, pushes it onto the stack of open elements.
func (b *Builder) addChild(n *tree.Node) {
	ip := b.insertionPoint()
	ip.InsertNode(n)
	if n.Type == tree.ElementNode {
		b.oePush(n)
	}
}

func (b *Builder) addText(text string) {
	if text == "" {
		return
	}
	b.insertionPoint().InsertText(text)
}

// addElement builds an Element from the current token and inserts it.
func (b *Builder) addElement() *tree.Node {
	n := tree.NewElement(b.tok.Data, tree.HTML)
	for _, attr := range b.tok.Attr {
		n.SetAttribute(attr.Name, attr.Value)
	}
	b.addChild(n)
	return n
}

// addFormattingElement implements spec.md §4.3's "push onto the list of
// active formatting elements", including the Noah's Ark clause (at most
// three copies of an identical element survive).
func (b *Builder) addFormattingElement() {
	tagAtom, attr := atomOf(b.oeTop()), b.tok.Attr
	n := b.addElement()
	tagAtom = atomOf(n)

	identical := 0
findIdentical:
	for i := len(b.afe) - 1; i >= 0; i-- {
		e := b.afe[i]
		if e == scopeMarker {
			break
		}
		if e.Namespace != tree.HTML || atomOf(e) != tagAtom {
			continue
		}
		if len(e.Attr) != len(attr) {
			continue
		}
		for _, want := range attr {
			found := false
			for _, have := range e.Attr {
				if have.Name == want.Name && have.Value == want.Value {
					found = true
					break
				}
			}
			if !found {
				continue findIdentical
			}
		}
		identical++
		if identical >= 3 {
			b.afeRemove(e)
		}
	}
	b.afe = append(b.afe, n)
}

func (b *Builder) afeIndex(n *tree.Node) int {
	for i := len(b.afe) - 1; i >= 0; i-- {
		if b.afe[i] == n {
			return i
		}
	}
	return -1
}

func (b *Builder) afeRemove(n *tree.Node) {
	if i := b.afeIndex(n); i != -1 {
		b.afe = append(b.afe[:i], b.afe[i+1:]...)
	}
}

func (b *Builder) clearActiveFormattingElementsToLastMarker() {
	for len(b.afe) > 0 {
		n := b.afe[len(b.afe)-1]
		b.afe = b.afe[:len(b.afe)-1]
		if n == scopeMarker {
			return
		}
	}
}

// reconstructActiveFormattingElements implements spec.md §4.3's
// reconstruction step: re-creates formatting elements that adoption-agency
// or table processing left off the stack of open elements.
func (b *Builder) reconstructActiveFormattingElements() {
	if len(b.afe) == 0 {
		return
	}
	n := b.afe[len(b.afe)-1]
	if n == scopeMarker || b.oeIndex(n) != -1 {
		return
	}
	i := len(b.afe) - 1
	for n != scopeMarker && b.oeIndex(n) == -1 {
		if i == 0 {
			i = -1
			break
		}
		i--
		n = b.afe[i]
	}
	for {
		i++
		clone := b.afe[i].Clone(false)
		b.addChild(clone)
		b.afe[i] = clone
		if i == len(b.afe)-1 {
			break
		}
	}
}

func (b *Builder) acknowledgeSelfClosingTag() { b.hasSelfClosingToken = false }

// ProcessToken implements token.Sink. It drives b.tok through the dispatch
// loop (foreign content first, then the current insertion mode) until the
// token is consumed, mirroring spec.md §4.3's single-token processing loop.
func (b *Builder) ProcessToken(tok token.Token) token.Directive {
	b.tok = tok
	if tok.Type == token.StartTagToken && tok.SelfClosing {
		b.hasSelfClosingToken = true
	}

	consumed := false
	for !consumed {
		if b.inForeignContent() {
			consumed = b.parseForeignContent()
		} else {
			consumed = b.mode(b)
		}
	}
	if b.hasSelfClosingToken {
		b.report(errcode.NonVoidHTMLElementStartTagWithTrailingSolidus, "self-closing flag on non-void element ignored")
		b.hasSelfClosingToken = false
	}

	if n := b.oeTop(); n != nil && n.Namespace != tree.HTML {
		b.tokenizer.SetAllowCDATA(true)
	} else {
		b.tokenizer.SetAllowCDATA(false)
	}

	directive := token.Continue
	if tok.Type == token.StartTagToken && tok.Data == "plaintext" {
		directive = token.ToPlaintext
	}
	return directive
}

// parseImpliedToken reprocesses a synthetic token (used by the "act as if
// an end tag token had been seen" phrasing throughout spec.md §4.3).
func (b *Builder) parseImpliedToken(typ token.Type, name string) {
	real, selfClosing := b.tok, b.hasSelfClosingToken
	b.tok = token.Token{Type: typ, Data: name}
	b.hasSelfClosingToken = false
	consumed := false
	for !consumed {
		if b.inForeignContent() {
			consumed = b.parseForeignContent()
		} else {
			consumed = b.mode(b)
		}
	}
	b.tok, b.hasSelfClosingToken = real, selfClosing
}

func (b *Builder) setOriginalMode() { b.originalMode = b.mode }

const whitespace = " \t\n\f\r"

func isWhitespace(s string) bool { return strings.Trim(s, whitespace) == "" }

// Package selector implements a small path/filter query engine over
// tree.Node, the consumer-facing counterpart to the parser: given a parsed
// document, find elements by tag path, attribute filter, or index.
//
// Grounded on arturoeanton-go-xml/xml/query.go's QueryAll path syntax
// (deep navigation, "//tag" deep search, "[attr=value]" filters, "[N]"
// indexing), adapted from its generic any/OrderedMap walk to tree.Node's
// concrete element/attribute shape.
package selector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corehtml/html5/tree"
)

// SelectorError reports a malformed selector string, per spec.md §7's
// "Selector/serializer errors are localized" requirement.
type SelectorError struct {
	Selector string
	Reason   string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("selector: %q: %s", e.Selector, e.Reason)
}

// segment is one "/"-delimited path component: a tag name (or "*" for
// any element, or "" for a deep search), plus an optional attribute
// filter or positional index.
type segment struct {
	tag      string
	deep     bool
	filter   *filter
	index    int
	hasIndex bool
}

type filter struct {
	attr string
	op   string // "", "=", "!="
	val  string
}

// Select parses path and returns every element in doc matching it.
// Path syntax:
//   - "div/p"        children named p inside a div child of the root
//   - "//a"          every <a> anywhere in the tree
//   - "div[0]"       the first div among its siblings at that level
//   - "a[href=foo]"  an <a> whose href attribute equals "foo"
//   - "a[href!=foo]" an <a> whose href attribute is present and != "foo"
func Select(doc *tree.Node, path string) ([]*tree.Node, error) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	candidates := []*tree.Node{doc}
	for _, seg := range segs {
		var next []*tree.Node
		for _, c := range candidates {
			if seg.deep {
				next = append(next, findAllDeep(c, seg)...)
				continue
			}
			next = append(next, matchChildren(c, seg)...)
		}
		candidates = next
		if len(candidates) == 0 {
			return nil, nil
		}
	}
	return candidates, nil
}

// SelectOne returns the first match, or a nil node and a *SelectorError
// (reason "no match") if nothing matched.
func SelectOne(doc *tree.Node, path string) (*tree.Node, error) {
	matches, err := Select(doc, path)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, &SelectorError{Selector: path, Reason: "no match"}
	}
	return matches[0], nil
}

func parsePath(path string) ([]segment, error) {
	if path == "" {
		return nil, &SelectorError{Selector: path, Reason: "empty selector"}
	}
	var segs []segment
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		seg, err := parseSegment(part)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	if len(segs) > 0 && strings.HasPrefix(path, "//") {
		segs[0].deep = true
	}
	return segs, nil
}

func parseSegment(part string) (segment, error) {
	seg := segment{index: -1}
	tag := part
	if i := strings.IndexByte(part, '['); i >= 0 {
		if !strings.HasSuffix(part, "]") {
			return seg, &SelectorError{Selector: part, Reason: "unterminated [ ]"}
		}
		tag = part[:i]
		inside := part[i+1 : len(part)-1]
		if n, err := strconv.Atoi(inside); err == nil {
			seg.hasIndex = true
			seg.index = n
		} else if op := filterOp(inside); op != "" {
			kv := strings.SplitN(inside, op, 2)
			seg.filter = &filter{attr: strings.TrimSpace(kv[0]), op: op, val: strings.TrimSpace(kv[1])}
		} else {
			seg.filter = &filter{attr: strings.TrimSpace(inside), op: ""}
		}
	}
	if tag == "" {
		return seg, &SelectorError{Selector: part, Reason: "missing tag name"}
	}
	seg.tag = tag
	return seg, nil
}

func filterOp(s string) string {
	for _, op := range []string{"!=", "="} {
		if strings.Contains(s, op) {
			return op
		}
	}
	return ""
}

func matchChildren(n *tree.Node, seg segment) []*tree.Node {
	var matches []*tree.Node
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != tree.ElementNode {
			continue
		}
		if !tagMatches(c, seg.tag) || !filterMatches(c, seg.filter) {
			continue
		}
		if seg.hasIndex {
			if i == seg.index {
				matches = append(matches, c)
			}
			i++
			continue
		}
		matches = append(matches, c)
	}
	return matches
}

func findAllDeep(n *tree.Node, seg segment) []*tree.Node {
	var matches []*tree.Node
	var walk func(*tree.Node)
	walk = func(node *tree.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == tree.ElementNode && tagMatches(c, seg.tag) && filterMatches(c, seg.filter) {
				matches = append(matches, c)
			}
			walk(c)
		}
	}
	walk(n)
	return matches
}

func tagMatches(n *tree.Node, tag string) bool {
	return tag == "*" || n.Data == tag
}

func filterMatches(n *tree.Node, f *filter) bool {
	if f == nil {
		return true
	}
	val, ok := n.Attribute(f.attr)
	switch f.op {
	case "":
		return ok
	case "=":
		return ok && val == f.val
	case "!=":
		return ok && val != f.val
	default:
		return false
	}
}

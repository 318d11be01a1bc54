package treebuilder

import a "golang.org/x/net/html/atom"

// scope selects which stop-tag table elementInScope consults, mirroring the
// five scope variants spec.md §4.3 names (default/list-item/button/table/
// select). Grounded on the teacher's chtml/html/parse.go scope type and
// defaultScopeStopTags table, generalized with the table/select variants
// the teacher's stripped-down parser never needed.
type scope int

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	selectScope
)

var defaultScopeStopTags = map[string][]a.Atom{
	"":     {a.Applet, a.Caption, a.Html, a.Table, a.Td, a.Th, a.Marquee, a.Object, a.Template},
	"math": {a.AnnotationXml, a.Mi, a.Mn, a.Mo, a.Ms, a.Mtext},
	"svg":  {a.Desc, a.ForeignObject, a.Title},
}

// indexOfElementInScope returns the index in b.oe of the topmost element
// whose tag is in matchTags and is within the given scope, or -1.
func (b *Builder) indexOfElementInScope(s scope, matchTags ...a.Atom) int {
	for i := len(b.oe) - 1; i >= 0; i-- {
		n := b.oe[i]
		tagAtom := atomOf(n)
		if n.Namespace == "" {
			for _, t := range matchTags {
				if t == tagAtom {
					return i
				}
			}
			switch s {
			case defaultScope:
			case listItemScope:
				if tagAtom == a.Ol || tagAtom == a.Ul {
					return -1
				}
			case buttonScope:
				if tagAtom == a.Button {
					return -1
				}
			case tableScope:
				if tagAtom == a.Html || tagAtom == a.Table || tagAtom == a.Template {
					return -1
				}
			case selectScope:
				if tagAtom != a.Optgroup && tagAtom != a.Option {
					return -1
				}
				continue
			}
		}
		if s == selectScope {
			continue
		}
		if stopTags, ok := defaultScopeStopTags[string(n.Namespace)]; ok {
			for _, t := range stopTags {
				if t == tagAtom {
					return -1
				}
			}
		}
	}
	return -1
}

func (b *Builder) elementInScope(s scope, matchTags ...a.Atom) bool {
	return b.indexOfElementInScope(s, matchTags...) != -1
}

// popUntil pops the stack of open elements up to and including the highest
// element whose tag is in matchTags, provided no stop tag for s sits above
// it. Reports whether such an element was found.
func (b *Builder) popUntil(s scope, matchTags ...a.Atom) bool {
	if i := b.indexOfElementInScope(s, matchTags...); i != -1 {
		b.oe = b.oe[:i]
		return true
	}
	return false
}

// generateImpliedEndTags pops dd/dt/li/optgroup/option/p/rb/rp/rt/rtc nodes
// off the stack, per spec.md §4.3 "generate implied end tags", skipping
// named exceptions.
func (b *Builder) generateImpliedEndTags(exceptions ...string) {
	i := len(b.oe) - 1
loop:
	for ; i >= 0; i-- {
		n := b.oe[i]
		switch atomOf(n) {
		case a.Dd, a.Dt, a.Li, a.Optgroup, a.Option, a.P, a.Rb, a.Rp, a.Rt, a.Rtc:
			for _, except := range exceptions {
				if n.Data == except {
					break loop
				}
			}
			continue
		}
		break
	}
	b.oe = b.oe[:i+1]
}

// generateImpliedEndTagsThoroughly additionally pops caption/colgroup/
// tbody/td/tfoot/th/thead/tr, per the "thoroughly" variant spec.md §4.3
// uses before popping a template's contents.
func (b *Builder) generateImpliedEndTagsThoroughly() {
	i := len(b.oe) - 1
	for ; i >= 0; i-- {
		switch atomOf(b.oe[i]) {
		case a.Dd, a.Dt, a.Li, a.Optgroup, a.Option, a.P, a.Rb, a.Rp, a.Rt, a.Rtc,
			a.Caption, a.Colgroup, a.Tbody, a.Td, a.Tfoot, a.Th, a.Thead, a.Tr:
			continue
		}
		break
	}
	b.oe = b.oe[:i+1]
}

package treebuilder

import (
	"strings"

	"github.com/corehtml/html5/token"
	"github.com/corehtml/html5/tree"

	a "golang.org/x/net/html/atom"
)

// This file holds the table-family and select insertion modes (spec.md
// §4.3's in-table/in-caption/in-column-group/in-table-body/in-row/in-cell/
// in-select/in-select-in-table/in-template modes), none of which the
// teacher's body-fragment parser implemented; written fresh against the
// WHATWG algorithm text, reusing the stack/scope/foster-parenting
// primitives the teacher-derived files define.

func inTableIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		switch atomOf(b.top()) {
		case a.Table, a.Tbody, a.Tfoot, a.Thead, a.Tr:
			b.pendingTableText = nil
			b.pendingTableTextHasNon = false
			b.setOriginalMode()
			b.mode = inTableTextIM
			return false
		}
	case token.CommentToken:
		b.addChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		return true
	case token.StartTagToken:
		switch b.tok.Data {
		case "caption":
			b.clearToTableContext()
			b.afe = append(b.afe, scopeMarker)
			b.addElement()
			b.mode = inCaptionIM
			return true
		case "colgroup":
			b.clearToTableContext()
			b.addElement()
			b.mode = inColumnGroupIM
			return true
		case "col":
			b.clearToTableContext()
			b.parseImpliedToken(token.StartTagToken, "colgroup")
			return false
		case "tbody", "tfoot", "thead":
			b.clearToTableContext()
			b.addElement()
			b.mode = inTableBodyIM
			return true
		case "td", "th", "tr":
			b.clearToTableContext()
			b.parseImpliedToken(token.StartTagToken, "tbody")
			return false
		case "table":
			if !b.elementInScope(tableScope, a.Table) {
				return true
			}
			b.popUntil(tableScope, a.Table)
			b.resetInsertionMode()
			return false
		case "style", "script", "template":
			return inHeadIM(b)
		case "input":
			if v, ok := b.tok.Attribute("type"); ok && strings.EqualFold(v, "hidden") {
				b.addElement()
				b.oePop()
				b.acknowledgeSelfClosingTag()
				return true
			}
		case "form":
			if b.formElement == nil && !b.oeContains(a.Template) {
				n := b.addElement()
				b.formElement = n
				b.oePop()
			}
			return true
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "table":
			if !b.elementInScope(tableScope, a.Table) {
				return true
			}
			b.popUntil(tableScope, a.Table)
			b.resetInsertionMode()
			return true
		case "body", "caption", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			return true
		case "template":
			return inHeadIM(b)
		}
	case token.EOFToken:
		return inBodyIM(b)
	}
	b.fosterParenting = true
	consumed := inBodyIM(b)
	b.fosterParenting = false
	return consumed
}

func (b *Builder) clearToTableContext() {
	for len(b.oe) > 0 {
		switch atomOf(b.top()) {
		case a.Table, a.Html, a.Template:
			return
		}
		b.oePop()
	}
}

func inTableTextIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		if strings.Contains(b.tok.Data, "\x00") {
			return true
		}
		if strings.TrimLeft(b.tok.Data, whitespace) != "" {
			b.pendingTableTextHasNon = true
		}
		b.pendingTableText = append(b.pendingTableText, b.tok)
		return true
	}
	text := ""
	for _, t := range b.pendingTableText {
		text += t.Data
	}
	if b.pendingTableTextHasNon {
		b.fosterParenting = true
		b.reconstructActiveFormattingElements()
		b.addText(text)
		b.fosterParenting = false
	} else {
		b.addText(text)
	}
	b.pendingTableText = nil
	b.pendingTableTextHasNon = false
	b.mode = b.originalMode
	return false
}

func inCaptionIM(b *Builder) bool {
	switch b.tok.Type {
	case token.StartTagToken:
		switch b.tok.Data {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !b.elementInScope(tableScope, a.Caption) {
				return true
			}
			b.popUntil(tableScope, a.Caption)
			b.clearActiveFormattingElementsToLastMarker()
			b.mode = inTableIM
			return false
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "caption":
			if !b.elementInScope(tableScope, a.Caption) {
				return true
			}
			b.popUntil(tableScope, a.Caption)
			b.clearActiveFormattingElementsToLastMarker()
			b.mode = inTableIM
			return true
		case "table":
			if !b.elementInScope(tableScope, a.Caption) {
				return true
			}
			b.popUntil(tableScope, a.Caption)
			b.clearActiveFormattingElementsToLastMarker()
			b.mode = inTableIM
			return false
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			return true
		}
	}
	return inBodyIM(b)
}

func inColumnGroupIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
			b.addText(b.tok.Data)
			return true
		}
	case token.CommentToken:
		b.addChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		return true
	case token.StartTagToken:
		switch b.tok.Data {
		case "html":
			return inBodyIM(b)
		case "col":
			b.addElement()
			b.oePop()
			b.acknowledgeSelfClosingTag()
			return true
		case "template":
			return inHeadIM(b)
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "colgroup":
			if atomOf(b.top()) != a.Colgroup {
				return true
			}
			b.oePop()
			b.mode = inTableIM
			return true
		case "col":
			return true
		case "template":
			return inHeadIM(b)
		}
	case token.EOFToken:
		return inBodyIM(b)
	}
	if atomOf(b.top()) != a.Colgroup {
		return true
	}
	b.oePop()
	b.mode = inTableIM
	return false
}

func inTableBodyIM(b *Builder) bool {
	switch b.tok.Type {
	case token.StartTagToken:
		switch b.tok.Data {
		case "tr":
			b.clearToTableBodyContext()
			b.addElement()
			b.mode = inRowIM
			return true
		case "th", "td":
			b.clearToTableBodyContext()
			b.parseImpliedToken(token.StartTagToken, "tr")
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !b.elementInScope(tableScope, a.Tbody, a.Thead, a.Tfoot) {
				return true
			}
			b.clearToTableBodyContext()
			b.oePop()
			b.mode = inTableIM
			return false
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "tbody", "tfoot", "thead":
			if !b.elementInScope(tableScope, a.Lookup([]byte(b.tok.Data))) {
				return true
			}
			b.clearToTableBodyContext()
			b.oePop()
			b.mode = inTableIM
			return true
		case "table":
			if !b.elementInScope(tableScope, a.Tbody, a.Thead, a.Tfoot) {
				return true
			}
			b.clearToTableBodyContext()
			b.oePop()
			b.mode = inTableIM
			return false
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			return true
		}
	}
	return inTableIM(b)
}

func (b *Builder) clearToTableBodyContext() {
	for len(b.oe) > 0 {
		switch atomOf(b.top()) {
		case a.Tbody, a.Tfoot, a.Thead, a.Template, a.Html:
			return
		}
		b.oePop()
	}
}

func inRowIM(b *Builder) bool {
	switch b.tok.Type {
	case token.StartTagToken:
		switch b.tok.Data {
		case "th", "td":
			b.clearToTableRowContext()
			b.addElement()
			b.mode = inCellIM
			b.afe = append(b.afe, scopeMarker)
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !b.elementInScope(tableScope, a.Tr) {
				return true
			}
			b.clearToTableRowContext()
			b.oePop()
			b.mode = inTableBodyIM
			return false
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "tr":
			if !b.elementInScope(tableScope, a.Tr) {
				return true
			}
			b.clearToTableRowContext()
			b.oePop()
			b.mode = inTableBodyIM
			return true
		case "table":
			if !b.elementInScope(tableScope, a.Tr) {
				return true
			}
			b.clearToTableRowContext()
			b.oePop()
			b.mode = inTableBodyIM
			return false
		case "tbody", "tfoot", "thead":
			if !b.elementInScope(tableScope, a.Lookup([]byte(b.tok.Data))) {
				return true
			}
			if b.elementInScope(tableScope, a.Tr) {
				b.clearToTableRowContext()
				b.oePop()
				b.mode = inTableBodyIM
			}
			return false
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			return true
		}
	}
	return inTableIM(b)
}

func (b *Builder) clearToTableRowContext() {
	for len(b.oe) > 0 {
		switch atomOf(b.top()) {
		case a.Tr, a.Template, a.Html:
			return
		}
		b.oePop()
	}
}

func inCellIM(b *Builder) bool {
	switch b.tok.Type {
	case token.StartTagToken:
		switch b.tok.Data {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !b.elementInScope(tableScope, a.Td) && !b.elementInScope(tableScope, a.Th) {
				return true
			}
			b.closeTheCell()
			return false
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "td", "th":
			tagAtom := a.Lookup([]byte(b.tok.Data))
			if !b.elementInScope(tableScope, tagAtom) {
				return true
			}
			b.generateImpliedEndTags()
			b.popUntil(defaultScope, tagAtom)
			b.clearActiveFormattingElementsToLastMarker()
			b.mode = inRowIM
			return true
		case "body", "caption", "col", "colgroup", "html":
			return true
		case "table", "tbody", "tfoot", "thead", "tr":
			if !b.elementInScope(tableScope, a.Lookup([]byte(b.tok.Data))) {
				return true
			}
			b.closeTheCell()
			return false
		}
	}
	return inBodyIM(b)
}

func (b *Builder) closeTheCell() {
	b.generateImpliedEndTags()
	if atomOf(b.top()) == a.Td {
		b.popUntil(defaultScope, a.Td)
	} else {
		b.popUntil(defaultScope, a.Th)
	}
	b.clearActiveFormattingElementsToLastMarker()
	b.mode = inRowIM
}

func inSelectIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		b.addText(strings.ReplaceAll(b.tok.Data, "\x00", ""))
		return true
	case token.CommentToken:
		b.addChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		return true
	case token.StartTagToken:
		switch b.tok.Data {
		case "html":
			return inBodyIM(b)
		case "option":
			if atomOf(b.top()) == a.Option {
				b.oePop()
			}
			b.addElement()
			return true
		case "optgroup":
			if atomOf(b.top()) == a.Option {
				b.oePop()
			}
			if atomOf(b.top()) == a.Optgroup {
				b.oePop()
			}
			b.addElement()
			return true
		case "select":
			if !b.elementInScope(selectScope, a.Select) {
				return true
			}
			b.popUntil(selectScope, a.Select)
			b.resetInsertionMode()
			return true
		case "input", "keygen", "textarea":
			if !b.elementInScope(selectScope, a.Select) {
				return true
			}
			b.popUntil(selectScope, a.Select)
			b.resetInsertionMode()
			return false
		case "selectedcontent":
			b.addElement()
			return true
		case "script", "template":
			return inHeadIM(b)
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "optgroup":
			if atomOf(b.top()) == a.Option && len(b.oe) >= 2 && atomOf(b.oe[len(b.oe)-2]) == a.Optgroup {
				b.oePop()
			}
			if atomOf(b.top()) == a.Optgroup {
				b.oePop()
			}
			return true
		case "option":
			if atomOf(b.top()) == a.Option {
				b.oePop()
			}
			return true
		case "selectedcontent":
			if b.top().Data == "selectedcontent" {
				b.oePop()
			}
			return true
		case "select":
			if !b.elementInScope(selectScope, a.Select) {
				return true
			}
			b.popUntil(selectScope, a.Select)
			b.resetInsertionMode()
			return true
		case "template":
			return inHeadIM(b)
		}
	case token.EOFToken:
		return inBodyIM(b)
	}
	return true
}

func inSelectInTableIM(b *Builder) bool {
	switch b.tok.Type {
	case token.StartTagToken:
		switch b.tok.Data {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			b.popUntil(selectScope, a.Select)
			b.resetInsertionMode()
			return false
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			if !b.elementInScope(tableScope, a.Lookup([]byte(b.tok.Data))) {
				return true
			}
			b.popUntil(selectScope, a.Select)
			b.resetInsertionMode()
			return false
		}
	}
	return inSelectIM(b)
}

func inTemplateIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken, token.CommentToken, token.DoctypeToken:
		return inBodyIM(b)
	case token.StartTagToken:
		switch b.tok.Data {
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			return inHeadIM(b)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			b.popTemplateMode()
			b.pushTemplateMode(inTableIM)
			b.mode = inTableIM
			return false
		case "col":
			b.popTemplateMode()
			b.pushTemplateMode(inColumnGroupIM)
			b.mode = inColumnGroupIM
			return false
		case "tr":
			b.popTemplateMode()
			b.pushTemplateMode(inTableBodyIM)
			b.mode = inTableBodyIM
			return false
		case "td", "th":
			b.popTemplateMode()
			b.pushTemplateMode(inRowIM)
			b.mode = inRowIM
			return false
		default:
			b.popTemplateMode()
			b.pushTemplateMode(inBodyIM)
			b.mode = inBodyIM
			return false
		}
	case token.EndTagToken:
		if b.tok.Data == "template" {
			return inHeadIM(b)
		}
		return true
	case token.EOFToken:
		if !b.oeContains(a.Template) {
			b.stopParsing = true
			return true
		}
		b.generateImpliedEndTagsThoroughly()
		b.popUntil(defaultScope, a.Template)
		b.clearActiveFormattingElementsToLastMarker()
		b.popTemplateMode()
		b.resetInsertionMode()
		return false
	}
	return true
}

func (b *Builder) pushTemplateMode(m insertionMode) {
	b.templateModes = append(b.templateModes, m)
}

func (b *Builder) popTemplateMode() {
	if len(b.templateModes) > 0 {
		b.templateModes = b.templateModes[:len(b.templateModes)-1]
	}
}

// resetInsertionMode implements spec.md §4.3's "reset the insertion mode
// appropriately" algorithm, used after popping the stack back during table
// and select handling and to restore state after template/fragment
// contexts.
func (b *Builder) resetInsertionMode() {
	for i := len(b.oe) - 1; i >= 0; i-- {
		n := b.oe[i]
		last := i == 0
		if last && b.fragmentContext != nil {
			n = b.fragmentContext
		}
		switch atomOf(n) {
		case a.Select:
			if !last {
				for j := i - 1; j > 0; j-- {
					switch atomOf(b.oe[j]) {
					case a.Template:
						b.mode = inSelectIM
						return
					case a.Table:
						b.mode = inSelectInTableIM
						return
					}
				}
			}
			b.mode = inSelectIM
			return
		case a.Td, a.Th:
			if !last {
				b.mode = inCellIM
				return
			}
		case a.Tr:
			b.mode = inRowIM
			return
		case a.Tbody, a.Thead, a.Tfoot:
			b.mode = inTableBodyIM
			return
		case a.Caption:
			b.mode = inCaptionIM
			return
		case a.Colgroup:
			b.mode = inColumnGroupIM
			return
		case a.Table:
			b.mode = inTableIM
			return
		case a.Template:
			if len(b.templateModes) > 0 {
				b.mode = b.templateModes[len(b.templateModes)-1]
				return
			}
		case a.Head:
			if !last {
				b.mode = inHeadIM
				return
			}
		case a.Body:
			b.mode = inBodyIM
			return
		case a.Frameset:
			b.mode = inFramesetIM
			return
		case a.Html:
			if b.headElement == nil {
				b.mode = beforeHeadIM
			} else {
				b.mode = afterHeadIM
			}
			return
		}
		if last {
			b.mode = inBodyIM
			return
		}
	}
	b.mode = inBodyIM
}

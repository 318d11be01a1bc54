package treebuilder

import (
	"strings"

	"github.com/corehtml/html5/token"
	"github.com/corehtml/html5/tree"

	a "golang.org/x/net/html/atom"
)

// The insertion-mode functions below implement spec.md §4.3's modes (23
// functions in all, with those in modes_table.go).
// Each reports whether b.tok was consumed; false means "reprocess under
// the (now updated) mode". The in-body mode is adapted line-for-line from
// the teacher's inBodyIM (chtml/html/parse.go); the remaining modes, which
// the teacher's body-fragment-only parser never implemented, are written
// fresh against the WHATWG algorithm text spec.md §4.3 cites, reusing the
// same stack/scope/afe primitives.

func initialIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
			return true
		}
	case token.CommentToken:
		b.doc.AppendChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		doctype := &tree.Node{Type: tree.DoctypeNode, Data: b.tok.Data}
		if b.tok.DoctypeHasPublicID {
			doctype.PublicID = b.tok.DoctypePublicID
		}
		if b.tok.DoctypeHasSystemID {
			doctype.SystemID = b.tok.DoctypeSystemID
		}
		b.doc.AppendChild(doctype)
		b.quirksMode = computeQuirksMode(b.tok)
		b.mode = beforeHTMLIM
		return true
	}
	if !b.iframeSrcdoc {
		b.quirksMode = Quirks
	}
	b.mode = beforeHTMLIM
	return false
}

func beforeHTMLIM(b *Builder) bool {
	switch b.tok.Type {
	case token.DoctypeToken:
		return true
	case token.CommentToken:
		b.doc.AppendChild(tree.NewComment(b.tok.Data))
		return true
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
			return true
		}
	case token.StartTagToken:
		if b.tok.Data == "html" {
			b.addElement()
			b.mode = beforeHeadIM
			return true
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "head", "body", "html", "br":
		default:
			return true
		}
	}
	html := tree.NewElement("html", tree.HTML)
	b.doc.AppendChild(html)
	b.oePush(html)
	b.mode = beforeHeadIM
	return false
}

func beforeHeadIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
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
		case "head":
			n := b.addElement()
			b.headElement = n
			b.mode = inHeadIM
			return true
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "head", "body", "html", "br":
		default:
			return true
		}
	}
	b.parseImpliedToken(token.StartTagToken, "head")
	return false
}

func inHeadIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		trimmed := strings.TrimLeft(b.tok.Data, whitespace)
		if len(b.tok.Data)-len(trimmed) > 0 {
			b.addText(b.tok.Data[:len(b.tok.Data)-len(trimmed)])
		}
		if trimmed == "" {
			return true
		}
		b.tok.Data = trimmed
		return false
	case token.CommentToken:
		b.addChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		return true
	case token.StartTagToken:
		switch b.tok.Data {
		case "html":
			return inBodyIM(b)
		case "base", "basefont", "bgsound", "link", "meta":
			b.addElement()
			b.oePop()
			b.acknowledgeSelfClosingTag()
			return true
		case "title":
			b.parseRCDATAElement()
			return true
		case "noscript":
			if b.scripting {
				b.parseRawtextElement()
				return true
			}
			b.addElement()
			b.mode = inHeadNoscriptIM
			return true
		case "noframes", "style":
			b.parseRawtextElement()
			return true
		case "script":
			ip := b.insertionPoint()
			n := tree.NewElement("script", tree.HTML)
			for _, at := range b.tok.Attr {
				n.SetAttribute(at.Name, at.Value)
			}
			ip.InsertNode(n)
			b.oePush(n)
			b.tokenizer.SetState(token.ScriptDataState)
			b.setOriginalMode()
			b.mode = textIM
			return true
		case "template":
			b.addElement()
			b.afe = append(b.afe, scopeMarker)
			b.framesetOK = false
			b.mode = inTemplateIM
			b.templateModes = append(b.templateModes, inTemplateIM)
			return true
		case "head":
			return true
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "head":
			b.oePop()
			b.mode = afterHeadIM
			return true
		case "body", "html", "br":
		case "template":
			if !b.oeContains(a.Template) {
				return true
			}
			b.generateImpliedEndTagsThoroughly()
			b.popUntil(defaultScope, a.Template)
			b.clearActiveFormattingElementsToLastMarker()
			if len(b.templateModes) > 0 {
				b.templateModes = b.templateModes[:len(b.templateModes)-1]
			}
			b.resetInsertionMode()
			return true
		default:
			return true
		}
	}
	b.oePop()
	b.mode = afterHeadIM
	return false
}

func inHeadNoscriptIM(b *Builder) bool {
	switch b.tok.Type {
	case token.DoctypeToken:
		return true
	case token.StartTagToken:
		switch b.tok.Data {
		case "html":
			return inBodyIM(b)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return inHeadIM(b)
		}
	case token.EndTagToken:
		if b.tok.Data == "noscript" {
			b.oePop()
			b.mode = inHeadIM
			return true
		}
		if b.tok.Data != "br" {
			return true
		}
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
			return inHeadIM(b)
		}
	case token.CommentToken:
		return inHeadIM(b)
	}
	b.oePop()
	b.mode = inHeadIM
	return false
}

func afterHeadIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		trimmed := strings.TrimLeft(b.tok.Data, whitespace)
		if len(b.tok.Data)-len(trimmed) > 0 {
			b.addText(b.tok.Data[:len(b.tok.Data)-len(trimmed)])
		}
		if trimmed == "" {
			return true
		}
		b.tok.Data = trimmed
		return false
	case token.CommentToken:
		b.addChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		return true
	case token.StartTagToken:
		switch b.tok.Data {
		case "html":
			return inBodyIM(b)
		case "body":
			b.addElement()
			b.framesetOK = false
			b.mode = inBodyIM
			return true
		case "frameset":
			b.addElement()
			b.mode = inFramesetIM
			return true
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			b.oePush(b.headElement)
			consumed := inHeadIM(b)
			b.oeRemove(b.headElement)
			return consumed
		case "head":
			return true
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "body", "html", "br":
		case "template":
			return inHeadIM(b)
		default:
			return true
		}
	}
	b.parseImpliedToken(token.StartTagToken, "body")
	b.framesetOK = true
	return false
}

// parseRawtextElement / parseRCDATAElement implement spec.md §4.3's
// generic raw-text/RCDATA element parsing algorithms: add the element,
// switch the tokenizer to the matching text state, and remember which
// mode to return to once the synthetic end tag closes it.
func (b *Builder) parseRawtextElement() {
	n := b.addElement()
	b.tokenizer.SetState(token.RAWTEXTState)
	b.tokenizer.SetLastStartTag(n.Data)
	b.setOriginalMode()
	b.mode = textIM
}

func (b *Builder) parseRCDATAElement() {
	n := b.addElement()
	b.tokenizer.SetState(token.RCDATAState)
	b.tokenizer.SetLastStartTag(n.Data)
	b.setOriginalMode()
	b.mode = textIM
}

func textIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		b.addText(b.tok.Data)
		return true
	case token.EOFToken:
		b.oePop()
		b.mode = b.originalMode
		return false
	case token.EndTagToken:
		b.oePop()
	}
	b.mode = b.originalMode
	return true
}

func inBodyIM(b *Builder) bool {
	switch b.tok.Type {
	case token.DoctypeToken:
		return true
	case token.CharacterToken:
		d := b.tok.Data
		switch atomOf(b.top()) {
		case a.Pre, a.Listing:
			if b.top().FirstChild == nil {
				if strings.HasPrefix(d, "\r") {
					d = d[1:]
				}
				if strings.HasPrefix(d, "\n") {
					d = d[1:]
				}
			}
		}
		d = strings.ReplaceAll(d, "\x00", "")
		if d == "" {
			return true
		}
		b.reconstructActiveFormattingElements()
		b.addText(d)
		if strings.TrimLeft(d, whitespace) != "" {
			b.framesetOK = false
		}
	case token.StartTagToken:
		switch b.tok.Data {
		case "html":
			return true
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			return inHeadIM(b)
		case "body":
			return true
		case "frameset":
			return true
		case "address", "article", "aside", "blockquote", "center", "details", "dialog",
			"dir", "div", "dl", "fieldset", "figcaption", "figure", "footer", "header",
			"hgroup", "main", "menu", "nav", "ol", "p", "section", "summary", "ul":
			b.popUntil(buttonScope, a.P)
			b.addElement()
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.popUntil(buttonScope, a.P)
			switch atomOf(b.top()) {
			case a.H1, a.H2, a.H3, a.H4, a.H5, a.H6:
				b.oePop()
			}
			b.addElement()
		case "pre", "listing":
			b.popUntil(buttonScope, a.P)
			b.addElement()
			b.framesetOK = false
		case "form":
			if b.formElement != nil && !b.oeContains(a.Template) {
				return true
			}
			b.popUntil(buttonScope, a.P)
			n := b.addElement()
			if !b.oeContains(a.Template) {
				b.formElement = n
			}
		case "li":
			for i := len(b.oe) - 1; i >= 0; i-- {
				node := b.oe[i]
				switch atomOf(node) {
				case a.Li:
					b.oe = b.oe[:i]
				case a.Address, a.Div, a.P:
					continue
				default:
					if !isSpecialElement(node) {
						continue
					}
				}
				break
			}
			b.popUntil(buttonScope, a.P)
			b.addElement()
		case "dd", "dt":
			for i := len(b.oe) - 1; i >= 0; i-- {
				node := b.oe[i]
				switch atomOf(node) {
				case a.Dd, a.Dt:
					b.oe = b.oe[:i]
				case a.Address, a.Div, a.P:
					continue
				default:
					if !isSpecialElement(node) {
						continue
					}
				}
				break
			}
			b.popUntil(buttonScope, a.P)
			b.addElement()
		case "plaintext":
			b.popUntil(buttonScope, a.P)
			b.addElement()
		case "button":
			b.popUntil(defaultScope, a.Button)
			b.reconstructActiveFormattingElements()
			b.addElement()
			b.framesetOK = false
		case "a":
			for i := len(b.afe) - 1; i >= 0 && b.afe[i] != scopeMarker; i-- {
				if n := b.afe[i]; atomOf(n) == a.A {
					b.adoptionAgency(a.A, "a")
					b.oeRemove(n)
					b.afeRemove(n)
					break
				}
			}
			b.reconstructActiveFormattingElements()
			b.addFormattingElement()
		case "b", "big", "code", "em", "font", "i", "s", "small", "strike", "strong", "tt", "u":
			b.reconstructActiveFormattingElements()
			b.addFormattingElement()
		case "nobr":
			b.reconstructActiveFormattingElements()
			if b.elementInScope(defaultScope, a.Nobr) {
				b.adoptionAgency(a.Nobr, "nobr")
				b.reconstructActiveFormattingElements()
			}
			b.addFormattingElement()
		case "applet", "marquee", "object":
			b.reconstructActiveFormattingElements()
			b.addElement()
			b.afe = append(b.afe, scopeMarker)
			b.framesetOK = false
		case "table":
			if b.quirksMode != Quirks {
				b.popUntil(buttonScope, a.P)
			}
			b.addElement()
			b.framesetOK = false
			b.mode = inTableIM
			return true
		case "area", "br", "embed", "img", "keygen", "wbr":
			b.reconstructActiveFormattingElements()
			b.addElement()
			b.oePop()
			b.acknowledgeSelfClosingTag()
			b.framesetOK = false
		case "input":
			b.reconstructActiveFormattingElements()
			b.addElement()
			b.oePop()
			b.acknowledgeSelfClosingTag()
			if v, ok := b.tok.Attribute("type"); !ok || !strings.EqualFold(v, "hidden") {
				b.framesetOK = false
			}
		case "param", "source", "track":
			b.addElement()
			b.oePop()
			b.acknowledgeSelfClosingTag()
		case "hr":
			b.popUntil(buttonScope, a.P)
			b.addElement()
			b.oePop()
			b.acknowledgeSelfClosingTag()
			b.framesetOK = false
		case "image":
			b.tok.Data = "img"
			return false
		case "textarea":
			n := b.addElement()
			b.tokenizer.SetState(token.RCDATAState)
			b.tokenizer.SetLastStartTag(n.Data)
			b.framesetOK = false
			b.setOriginalMode()
			b.mode = textIM
		case "xmp":
			b.popUntil(buttonScope, a.P)
			b.reconstructActiveFormattingElements()
			b.framesetOK = false
			b.parseRawtextElement()
		case "iframe":
			b.framesetOK = false
			b.parseRawtextElement()
		case "noembed":
			b.parseRawtextElement()
		case "select":
			b.reconstructActiveFormattingElements()
			b.addElement()
			b.framesetOK = false
			switch b.mode {
			case inTableIM, inCaptionIM, inTableBodyIM, inRowIM, inCellIM:
				b.mode = inSelectInTableIM
			default:
				b.mode = inSelectIM
			}
			return true
		case "optgroup", "option":
			if atomOf(b.top()) == a.Option {
				b.oePop()
			}
			b.reconstructActiveFormattingElements()
			b.addElement()
		case "rb", "rtc":
			if b.elementInScope(defaultScope, a.Ruby) {
				b.generateImpliedEndTags()
			}
			b.addElement()
		case "rp", "rt":
			if b.elementInScope(defaultScope, a.Ruby) {
				b.generateImpliedEndTags("rtc")
			}
			b.addElement()
		case "math", "svg":
			b.reconstructActiveFormattingElements()
			ns := tree.SVG
			if b.tok.Data == "math" {
				ns = tree.MathML
			}
			n := tree.NewElement(b.tok.Data, ns)
			for _, at := range b.tok.Attr {
				n.Attr = append(n.Attr, tree.Attribute{Name: at.Name, Value: at.Value})
			}
			if ns == tree.MathML {
				adjustAttributeNames(n, mathMLAttributeAdjustments)
			} else {
				adjustAttributeNames(n, svgAttributeAdjustments)
			}
			adjustForeignAttributes(n)
			b.addChild(n)
			if b.hasSelfClosingToken {
				b.oePop()
				b.acknowledgeSelfClosingTag()
			}
			return true
		case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th", "thead", "tr":
			return true
		default:
			b.reconstructActiveFormattingElements()
			b.addElement()
		}
	case token.EndTagToken:
		switch b.tok.Data {
		case "body":
			if b.elementInScope(defaultScope, a.Body) {
				b.mode = afterBodyIM
			}
		case "html":
			if b.elementInScope(defaultScope, a.Body) {
				b.parseImpliedToken(token.EndTagToken, "body")
				return false
			}
			return true
		case "address", "article", "aside", "blockquote", "button", "center", "details",
			"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure", "footer",
			"header", "hgroup", "listing", "main", "menu", "nav", "ol", "pre", "section",
			"summary", "ul":
			b.popUntil(defaultScope, a.Lookup([]byte(b.tok.Data)))
		case "form":
			if b.oeContains(a.Template) {
				i := b.indexOfElementInScope(defaultScope, a.Form)
				if i == -1 {
					return true
				}
				b.generateImpliedEndTags()
				if atomOf(b.oe[i]) != a.Form {
					return true
				}
				b.popUntil(defaultScope, a.Form)
			} else {
				node := b.formElement
				b.formElement = nil
				i := b.indexOfElementInScope(defaultScope, a.Form)
				if node == nil || i == -1 || b.oe[i] != node {
					return true
				}
				b.generateImpliedEndTags()
				b.oeRemove(node)
			}
		case "p":
			if !b.elementInScope(buttonScope, a.P) {
				b.parseImpliedToken(token.StartTagToken, "p")
			}
			b.popUntil(buttonScope, a.P)
		case "li":
			b.popUntil(listItemScope, a.Li)
		case "dd", "dt":
			b.popUntil(defaultScope, a.Lookup([]byte(b.tok.Data)))
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.popUntil(defaultScope, a.H1, a.H2, a.H3, a.H4, a.H5, a.H6)
		case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small", "strike", "strong", "tt", "u":
			b.adoptionAgency(a.Lookup([]byte(b.tok.Data)), b.tok.Data)
		case "applet", "marquee", "object":
			if b.popUntil(defaultScope, a.Lookup([]byte(b.tok.Data))) {
				b.clearActiveFormattingElementsToLastMarker()
			}
		case "br":
			b.tok.Type = token.StartTagToken
			return false
		case "template":
			return inHeadIM(b)
		default:
			b.inBodyEndTagOther(a.Lookup([]byte(b.tok.Data)), b.tok.Data)
		}
	case token.CommentToken:
		b.addChild(tree.NewComment(b.tok.Data))
	case token.EOFToken:
		if len(b.templateModes) > 0 {
			return inTemplateIM(b)
		}
		b.stopParsing = true
	}
	return true
}

func afterBodyIM(b *Builder) bool {
	switch b.tok.Type {
	case token.EOFToken:
		b.stopParsing = true
		return true
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
			return inBodyIM(b)
		}
	case token.StartTagToken:
		if b.tok.Data == "html" {
			return inBodyIM(b)
		}
	case token.EndTagToken:
		if b.tok.Data == "html" {
			b.mode = afterAfterBodyIM
			return true
		}
	case token.CommentToken:
		if len(b.oe) >= 1 {
			b.oe[0].AppendChild(tree.NewComment(b.tok.Data))
		}
		return true
	case token.DoctypeToken:
		return true
	}
	b.mode = inBodyIM
	return false
}

func inFramesetIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CommentToken:
		b.addChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		return true
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
			b.addText(b.tok.Data)
		}
		return true
	case token.StartTagToken:
		switch b.tok.Data {
		case "html":
			return inBodyIM(b)
		case "frameset":
			b.addElement()
			return true
		case "frame":
			b.addElement()
			b.oePop()
			b.acknowledgeSelfClosingTag()
			return true
		case "noframes":
			return inHeadIM(b)
		}
	case token.EndTagToken:
		if b.tok.Data == "frameset" {
			if atomOf(b.top()) == a.Html {
				return true
			}
			b.oePop()
			if atomOf(b.top()) != a.Frameset {
				b.mode = afterFramesetIM
			}
			return true
		}
	case token.EOFToken:
		b.stopParsing = true
		return true
	}
	return true
}

func afterFramesetIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CommentToken:
		b.addChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		return true
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
			b.addText(b.tok.Data)
		}
		return true
	case token.StartTagToken:
		switch b.tok.Data {
		case "html":
			return inBodyIM(b)
		case "noframes":
			return inHeadIM(b)
		}
	case token.EndTagToken:
		if b.tok.Data == "html" {
			b.mode = afterAfterFramesetIM
			return true
		}
	case token.EOFToken:
		b.stopParsing = true
		return true
	}
	return true
}

func afterAfterBodyIM(b *Builder) bool {
	switch b.tok.Type {
	case token.EOFToken:
		b.stopParsing = true
		return true
	case token.CommentToken:
		b.doc.AppendChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		return true
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
			return inBodyIM(b)
		}
	case token.StartTagToken:
		if b.tok.Data == "html" {
			return inBodyIM(b)
		}
	}
	b.mode = inBodyIM
	return false
}

func afterAfterFramesetIM(b *Builder) bool {
	switch b.tok.Type {
	case token.EOFToken:
		b.stopParsing = true
		return true
	case token.CommentToken:
		b.doc.AppendChild(tree.NewComment(b.tok.Data))
		return true
	case token.DoctypeToken:
		return true
	case token.CharacterToken:
		if isWhitespace(b.tok.Data) {
			return inBodyIM(b)
		}
	case token.StartTagToken:
		switch b.tok.Data {
		case "html":
			return inBodyIM(b)
		case "noframes":
			return inHeadIM(b)
		}
	}
	return true
}

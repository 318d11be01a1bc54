package treebuilder

import (
	"strings"

	"github.com/corehtml/html5/errcode"
	"github.com/corehtml/html5/token"
	"github.com/corehtml/html5/tree"

	a "golang.org/x/net/html/atom"
)

// svgTagNameAdjustments corrects the camelCase SVG element names the
// tokenizer lowercases on the way in, per spec.md §4.3 "adjust SVG tag
// names". Grounded on the teacher's svgTagNameAdjustments table
// (chtml/html/foreign.go equivalent folded into parse.go's import of
// golang.org/x/net/html's internal table; reproduced here since that table
// is unexported upstream).
var svgTagNameAdjustments = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"fedropshadow":        "feDropShadow",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

// svgAttributeAdjustments corrects camelCase SVG attribute names.
var svgAttributeAdjustments = map[string]string{
	"attributename":     "attributeName",
	"attributetype":     "attributeType",
	"basefrequency":     "baseFrequency",
	"baseprofile":       "baseProfile",
	"calcmode":          "calcMode",
	"clippathunits":     "clipPathUnits",
	"diffuseconstant":   "diffuseConstant",
	"edgemode":          "edgeMode",
	"filterunits":       "filterUnits",
	"glyphref":          "glyphRef",
	"gradienttransform": "gradientTransform",
	"gradientunits":     "gradientUnits",
	"kernelmatrix":      "kernelMatrix",
	"kernelunitlength":  "kernelUnitLength",
	"keypoints":         "keyPoints",
	"keysplines":        "keySplines",
	"keytimes":          "keyTimes",
	"lengthadjust":      "lengthAdjust",
	"limitingconeangle": "limitingConeAngle",
	"markerheight":      "markerHeight",
	"markerunits":       "markerUnits",
	"markerwidth":       "markerWidth",
	"maskcontentunits":  "maskContentUnits",
	"maskunits":         "maskUnits",
	"numoctaves":        "numOctaves",
	"pathlength":        "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":  "patternTransform",
	"patternunits":      "patternUnits",
	"pointsatx":         "pointsAtX",
	"pointsaty":         "pointsAtY",
	"pointsatz":         "pointsAtZ",
	"preservealpha":     "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":    "primitiveUnits",
	"refx":              "refX",
	"refy":              "refY",
	"repeatcount":       "repeatCount",
	"repeatdur":         "repeatDur",
	"requiredextensions": "requiredExtensions",
	"requiredfeatures":  "requiredFeatures",
	"specularconstant":  "specularConstant",
	"specularexponent":  "specularExponent",
	"spreadmethod":      "spreadMethod",
	"startoffset":       "startOffset",
	"stddeviation":      "stdDeviation",
	"stitchtiles":       "stitchTiles",
	"surfacescale":      "surfaceScale",
	"systemlanguage":    "systemLanguage",
	"tablevalues":       "tableValues",
	"targetx":           "targetX",
	"targety":           "targetY",
	"textlength":        "textLength",
	"viewbox":           "viewBox",
	"viewtarget":        "viewTarget",
	"xchannelselector":  "xChannelSelector",
	"ychannelselector":  "yChannelSelector",
	"zoomandpan":        "zoomAndPan",
}

// mathMLAttributeAdjustments corrects the one MathML attribute spec.md
// §4.3's "adjust MathML attributes" step names.
var mathMLAttributeAdjustments = map[string]string{
	"definitionurl": "definitionURL",
}

// foreignAttributeNamespaces re-namespaces xlink:*/xml:*/xmlns(:*)
// attributes on foreign elements, per spec.md §4.3 "adjust foreign
// attributes".
var foreignAttributeNamespaces = map[string]struct{ ns, local string }{
	"xlink:actuate": {"xlink", "actuate"},
	"xlink:arcrole": {"xlink", "arcrole"},
	"xlink:href":    {"xlink", "href"},
	"xlink:role":    {"xlink", "role"},
	"xlink:show":    {"xlink", "show"},
	"xlink:title":   {"xlink", "title"},
	"xlink:type":    {"xlink", "type"},
	"xml:lang":      {"xml", "lang"},
	"xml:space":     {"xml", "space"},
	"xmlns":         {"xmlns", "xmlns"},
	"xmlns:xlink":   {"xmlns", "xlink"},
}

func adjustAttributeNames(n *tree.Node, table map[string]string) {
	for i, at := range n.Attr {
		if want, ok := table[at.Name]; ok {
			n.Attr[i].Name = want
		}
	}
}

func adjustForeignAttributes(n *tree.Node) {
	for i, at := range n.Attr {
		if adj, ok := foreignAttributeNamespaces[at.Name]; ok {
			n.Attr[i].Namespace = adj.ns
			n.Attr[i].Name = adj.local
		}
	}
}

var htmlIntegrationPointMathML = map[a.Atom]bool{
	a.Mi: true, a.Mn: true, a.Mo: true, a.Ms: true, a.Mtext: true,
}

func mathMLTextIntegrationPoint(n *tree.Node) bool {
	return n.Namespace == tree.MathML && htmlIntegrationPointMathML[atomOf(n)]
}

// htmlIntegrationPoint reports whether n is an HTML integration point per
// spec.md §4.3's table: MathML annotation-xml with an HTML/XHTML encoding,
// or any of the listed SVG elements.
func htmlIntegrationPoint(n *tree.Node) bool {
	if n.Namespace == tree.MathML && atomOf(n) == a.AnnotationXml {
		if enc, ok := n.Attribute("encoding"); ok {
			low := strings.ToLower(enc)
			if low == "text/html" || low == "application/xhtml+xml" {
				return true
			}
		}
		return false
	}
	if n.Namespace == tree.SVG {
		switch n.Data {
		case "foreignObject", "desc", "title":
			return true
		}
	}
	return false
}

// inForeignContent implements spec.md §4.3's "tree construction dispatcher"
// predicate: whether the token should be handled by the foreign-content
// rules instead of the current insertion mode.
func (b *Builder) inForeignContent() bool {
	if len(b.oe) == 0 {
		return false
	}
	n := b.oeTop()
	if n.Namespace == tree.HTML {
		return false
	}
	if mathMLTextIntegrationPoint(n) {
		if b.tok.Type == token.StartTagToken && b.tok.Data != "mglyph" && b.tok.Data != "malignmark" {
			return false
		}
		if b.tok.Type == token.CharacterToken {
			return false
		}
	}
	if n.Namespace == tree.MathML && atomOf(n) == a.AnnotationXml &&
		b.tok.Type == token.StartTagToken && b.tok.Data == "svg" {
		return false
	}
	if htmlIntegrationPoint(n) && (b.tok.Type == token.StartTagToken || b.tok.Type == token.CharacterToken) {
		return false
	}
	if b.tok.Type == token.EOFToken {
		return false
	}
	return true
}

// foreignBreakoutTags is the "breakout set" from spec.md §4.3's rules for
// parsing tokens in foreign content: a start tag with one of these names
// (or "font" carrying a color/face/size attribute) pops out of foreign
// content back to the nearest HTML ancestor/integration point instead of
// becoming a foreign element.
var foreignBreakoutTags = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true,
	"center": true, "code": true, "dd": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "head": true, "hr": true, "i": true,
	"img": true, "li": true, "listing": true, "menu": true, "meta": true,
	"nobr": true, "ol": true, "p": true, "pre": true, "ruby": true, "s": true,
	"small": true, "span": true, "strong": true, "strike": true, "sub": true,
	"sup": true, "table": true, "tt": true, "u": true, "ul": true, "var": true,
}

// isForeignBreakoutStartTag reports whether tok is a start tag that must
// break out of foreign content, per spec.md §4.3: a tag named in
// foreignBreakoutTags, or a "font" start tag carrying a color, face, or
// size attribute.
func isForeignBreakoutStartTag(tok token.Token) bool {
	if foreignBreakoutTags[tok.Data] {
		return true
	}
	if tok.Data != "font" {
		return false
	}
	for _, at := range tok.Attr {
		switch at.Name {
		case "color", "face", "size":
			return true
		}
	}
	return false
}

// breakOutOfForeignContent implements spec.md §4.3's breakout step: pop the
// stack of open elements until the current node is a MathML text
// integration point, an HTML integration point, or an element in the HTML
// namespace, then let the token be reprocessed under the current insertion
// mode instead of the foreign-content rules.
func (b *Builder) breakOutOfForeignContent() bool {
	b.report(errcode.StartTagInForeignBreaksOut, "html start tag in foreign content")
	for {
		n := b.oeTop()
		if n == nil || n.Namespace == tree.HTML || mathMLTextIntegrationPoint(n) || htmlIntegrationPoint(n) {
			break
		}
		b.oePop()
	}
	return false
}

// parseForeignContent implements spec.md §4.3's "rules for parsing tokens
// in foreign content".
func (b *Builder) parseForeignContent() bool {
	switch b.tok.Type {
	case token.CharacterToken:
		d := strings.ReplaceAll(b.tok.Data, "\x00", "�")
		b.addText(d)
	case token.CommentToken:
		b.addChild(tree.NewComment(b.tok.Data))
	case token.StartTagToken:
		if b.fragmentContext == nil && isForeignBreakoutStartTag(b.tok) {
			return b.breakOutOfForeignContent()
		}
		current := b.oeTop()
		n := tree.NewElement(b.tok.Data, current.Namespace)
		for _, at := range b.tok.Attr {
			n.Attr = append(n.Attr, tree.Attribute{Name: at.Name, Value: at.Value})
		}
		switch current.Namespace {
		case tree.MathML:
			adjustAttributeNames(n, mathMLAttributeAdjustments)
		case tree.SVG:
			if fixed, ok := svgTagNameAdjustments[n.Data]; ok {
				n.Data = fixed
			}
			adjustAttributeNames(n, svgAttributeAdjustments)
		}
		adjustForeignAttributes(n)
		b.addChild(n)
		if b.hasSelfClosingToken {
			b.oePop()
			b.acknowledgeSelfClosingTag()
		}
	case token.EndTagToken:
		for i := len(b.oe) - 1; i >= 0; i-- {
			if i == 0 {
				break
			}
			if b.oe[i].Namespace == tree.HTML {
				return b.mode(b)
			}
			if strings.EqualFold(b.oe[i].Data, b.tok.Data) {
				b.oe = b.oe[:i]
				break
			}
		}
		return true
	}
	return true
}

package token

// State names one of the tokenizer's 60+ discrete states (spec.md §4.2,
// WHATWG §13.2.5.*).
type State int

const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState

	TagOpenState
	EndTagOpenState
	TagNameState

	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState

	RAWTEXTLessThanSignState
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState

	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState

	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState

	SelfClosingStartTagState
	BogusCommentState

	MarkupDeclarationOpenState

	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState

	DoctypeState
	BeforeDoctypeNameState
	DoctypeNameState
	AfterDoctypeNameState
	AfterDoctypePublicKeywordState
	BeforeDoctypePublicIdentifierState
	DoctypePublicIdentifierDoubleQuotedState
	DoctypePublicIdentifierSingleQuotedState
	AfterDoctypePublicIdentifierState
	BetweenDoctypePublicAndSystemIdentifiersState
	AfterDoctypeSystemKeywordState
	BeforeDoctypeSystemIdentifierState
	DoctypeSystemIdentifierDoubleQuotedState
	DoctypeSystemIdentifierSingleQuotedState
	AfterDoctypeSystemIdentifierState
	BogusDoctypeState

	CDATASectionState
	CDATASectionBracketState
	CDATASectionEndState

	CharacterReferenceState
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState
)

// rawtextTags and rcdataTags implement the state-override table of spec.md
// §4.2: once a start tag with one of these names has been handed to the
// sink, and the sink has not marked the current node as foreign content
// (SetAllowCDATA(true)), Tokenizer.emit switches to RAWTEXT or RCDATA.
// script (script data state) and plaintext are matched by name in emit.
var rawtextTags = map[string]bool{
	"style": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "noscript": true,
}

var rcdataTags = map[string]bool{
	"title": true, "textarea": true,
}

// IsRawtextTag reports whether name switches the tokenizer to RAWTEXT after
// its start tag is emitted. For noscript, emit switches only when
// Options.ScriptingEnabled is set.
func IsRawtextTag(name string) bool { return rawtextTags[name] }

// IsRCDATATag reports whether name switches the tokenizer to RCDATA after
// its start tag is emitted.
func IsRCDATATag(name string) bool { return rcdataTags[name] }

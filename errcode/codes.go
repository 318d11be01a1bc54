// Package errcode defines the closed set of parse-error codes shared by the
// tokenizer and tree builder (spec.md §7). Grounded on
// _examples/other_examples/00fe769f_MeKo-Christian-justgohtml__errors-codes.go.go,
// which carries the same kebab-case code strings under the same names.
package errcode

// Code is a stable, kebab-case parse-error identifier.
type Code string

// Tokenizer errors.
const (
	AbruptClosingOfEmptyComment               Code = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier             Code = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier             Code = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharacterReference Code = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                        Code = "cdata-in-html-content"
	CharacterReferenceOutsideUnicodeRange     Code = "character-reference-outside-unicode-range"
	ControlCharacterInInputStream             Code = "control-character-in-input-stream"
	ControlCharacterReference                 Code = "control-character-reference"
	DuplicateAttribute                        Code = "duplicate-attribute"
	EndTagWithAttributes                      Code = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                 Code = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                          Code = "eof-before-tag-name"
	EOFInCDATA                                Code = "eof-in-cdata"
	EOFInComment                              Code = "eof-in-comment"
	EOFInDoctype                              Code = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText            Code = "eof-in-script-html-comment-like-text"
	EOFInTag                                  Code = "eof-in-tag"
	IncorrectlyClosedComment                  Code = "incorrectly-closed-comment"
	IncorrectlyOpenedComment                  Code = "incorrectly-opened-comment"
	InvalidCharacterSequenceAfterDoctypeName  Code = "invalid-character-sequence-after-doctype-name"
	InvalidFirstCharacterOfTagName            Code = "invalid-first-character-of-tag-name"
	MissingAttributeValue                     Code = "missing-attribute-value"
	MissingDoctypeName                        Code = "missing-doctype-name"
	MissingDoctypePublicIdentifier            Code = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier            Code = "missing-doctype-system-identifier"
	MissingEndTagName                         Code = "missing-end-tag-name"
	MissingQuoteBeforeDoctypePublicIdentifier Code = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier Code = "missing-quote-before-doctype-system-identifier"
	MissingSemicolonAfterCharacterReference   Code = "missing-semicolon-after-character-reference"
	MissingWhitespaceAfterDoctypePublicKeyword Code = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword Code = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName        Code = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes        Code = "missing-whitespace-between-attributes"
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers Code = "missing-whitespace-between-doctype-public-and-system-identifiers"
	NestedComment                             Code = "nested-comment"
	NoncharacterCharacterReference             Code = "noncharacter-character-reference"
	NoncharacterInInputStream                 Code = "noncharacter-in-input-stream"
	NonVoidHTMLElementStartTagWithTrailingSolidus Code = "non-void-html-element-start-tag-with-trailing-solidus"
	NullCharacterReference                    Code = "null-character-reference"
	SurrogateCharacterReference                Code = "surrogate-character-reference"
	SurrogateInInputStream                    Code = "surrogate-in-input-stream"
	UnexpectedCharacterAfterDoctypeSystemIdentifier Code = "unexpected-character-after-doctype-system-identifier"
	UnexpectedCharacterInAttributeName         Code = "unexpected-character-in-attribute-name"
	UnexpectedCharacterInUnquotedAttributeValue Code = "unexpected-character-in-unquoted-attribute-value"
	UnexpectedEqualsSignBeforeAttributeName    Code = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter                   Code = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName     Code = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag                    Code = "unexpected-solidus-in-tag"
	UnknownNamedCharacterReference             Code = "unknown-named-character-reference"
)

// Tree-construction errors.
const (
	AbandonedHeadElementChild           Code = "abandoned-head-element-child"
	AdoptionAgency11                    Code = "adoption-agency-1.1"
	AdoptionAgency12                    Code = "adoption-agency-1.2"
	AdoptionAgency13                    Code = "adoption-agency-1.3"
	AdoptionAgency14                    Code = "adoption-agency-1.4"
	AdoptionAgency21                    Code = "adoption-agency-2.1"
	AdoptionAgency22                    Code = "adoption-agency-2.2"
	AdoptionAgency23                    Code = "adoption-agency-2.3"
	AdoptionAgency4                     Code = "adoption-agency-4"
	CloseAfterAfterBody                 Code = "expected-closing-tag-but-got-eof"
	ClosedEmptyElement                  Code = "non-void-html-element-start-tag-with-trailing-solidus"
	DisallowedContentInNoscriptInHead   Code = "disallowed-content-in-noscript-in-head"
	DuplicateAttributeTree              Code = "duplicate-attribute"
	EndTagTooEarly                      Code = "end-tag-too-early"
	EndTagTooEarlyNamedSubtree          Code = "end-tag-too-early-named-subtree"
	EndTagWithSelectOpen                Code = "end-tag-with-select-open"
	InvalidCodepointInForeignContent    Code = "invalid-codepoint-in-foreign-content"
	MisplacedDoctype                    Code = "misplaced-doctype"
	MisplacedStartTagForHeadElement     Code = "misplaced-start-tag-for-head-element"
	MissingDoctype                      Code = "missing-doctype"
	NoncharacterInForeignContent        Code = "noncharacter-in-foreign-content"
	NullCharacterInForeignContent       Code = "null-character-in-foreign-content"
	OpenElementsLeftAfterEOF            Code = "expected-one-end-tag-but-got-eof"
	StartTagInForeignBreaksOut          Code = "html-start-tag-in-foreign-content"
	StartTagInTable                     Code = "unexpected-start-tag-implies-table-voodoo"
	StrayDoctype                        Code = "unexpected-doctype"
	StrayEndTag                         Code = "stray-end-tag"
	StrayStartTag                       Code = "stray-start-tag"
	UnclosedElements                    Code = "expected-closing-tag-but-got-eof"
	UnexpectedCellEndTag                Code = "unexpected-cell-end-tag"
	UnexpectedDoctype                   Code = "unexpected-doctype"
	UnexpectedEndTag                    Code = "unexpected-end-tag"
	UnexpectedEOFInText                 Code = "eof-in-text-mode"
	UnexpectedImplicitCloseOfP          Code = "unexpected-implicit-close-of-p"
	UnexpectedStartTag                  Code = "unexpected-start-tag"
	UnexpectedStartTagIgnored           Code = "unexpected-start-tag-ignored"
)

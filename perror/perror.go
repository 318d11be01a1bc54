// Package perror defines the parse-error value type and the Reporter
// interface shared by the token and treebuilder packages, so both
// subsystems can report through one ordered list (spec.md §7) without
// importing each other.
package perror

import (
	"fmt"

	"github.com/corehtml/html5/errcode"
)

// Position is a 1-based line/column location in the parser's input.
type Position struct {
	Line   int
	Column int
}

// Error is a single recorded parse error. The parser is total: an Error
// never aborts a parse by itself; it is only surfaced as a Go error when
// strict mode is requested by the caller.
type Error struct {
	Code     errcode.Code
	Message  string
	Position Position
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d:%d: %s (%s)", e.Position.Line, e.Position.Column, e.Message, e.Code)
	}
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Code)
}

// Reporter receives parse errors as they are discovered. Sink is the
// reference implementation; tokenizer/tree-builder tests are free to supply
// their own (e.g. one that records only codes).
type Reporter interface {
	Report(code errcode.Code, pos Position, message string)
}

// Sink is a Reporter that appends to an in-memory slice, optionally
// discarding everything when Collect is false (spec.md §4.2's "tokenizer
// may silently suppress them otherwise for performance").
type Sink struct {
	Collect bool
	Errors  []*Error
}

func (s *Sink) Report(code errcode.Code, pos Position, message string) {
	if !s.Collect {
		return
	}
	s.Errors = append(s.Errors, &Error{Code: code, Message: message, Position: pos})
}

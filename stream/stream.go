// Package stream implements spec.md §6's streaming façade: a lazy,
// non-restartable sequence of parse events, re-running the tokenizer
// directly (bypassing tree construction) and coalescing adjacent character
// tokens into a single text event.
//
// Grounded on moznion-helium's sax/interface.go ContentHandler shape
// (StartElement/EndElement/Characters/Comment as the event vocabulary) and
// the teacher's pages.go goroutine+channel idiom for pushing events to a
// consumer one at a time without materializing the whole sequence.
package stream

import (
	"github.com/corehtml/html5/token"
)

// Kind discriminates the five event shapes spec.md §6 names.
type Kind int

const (
	StartElement Kind = iota
	EndElement
	Text
	Comment
	Doctype
)

func (k Kind) String() string {
	switch k {
	case StartElement:
		return "start"
	case EndElement:
		return "end"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case Doctype:
		return "doctype"
	default:
		return "unknown"
	}
}

// Event is one entry in the streaming façade's output sequence.
type Event struct {
	Kind Kind

	TagName string
	Attrs   map[string]string

	Text string

	PublicID    string
	HasPublicID bool
	SystemID    string
	HasSystemID bool
}

// Stream is a finite, non-restartable sequence of Events produced by
// re-tokenizing input. Call Next repeatedly until ok is false.
type Stream struct {
	events chan Event
}

// New starts tokenizing input in a background goroutine and returns a
// Stream that yields its events lazily as Next is called. input must
// already be decoded text (callers needing byte-level encoding sniffing
// should decode with the encoding package first).
func New(input string) *Stream {
	events := make(chan Event, 16)
	s := &Stream{events: events}

	go func() {
		defer close(events)
		sink := &eventSink{events: events}
		tok := token.New(input, sink, nil, token.Options{})
		tok.Run()
	}()

	return s
}

// Next returns the next event in the sequence, or ok=false once the
// stream is exhausted.
func (s *Stream) Next() (Event, bool) {
	ev, ok := <-s.events
	return ev, ok
}

// eventSink adapts token.Sink to the Event vocabulary, coalescing adjacent
// CharacterTokens the way spec.md §6's streaming façade requires.
type eventSink struct {
	events  chan<- Event
	pending []byte
}

func (s *eventSink) ProcessToken(tok token.Token) token.Directive {
	switch tok.Type {
	case token.CharacterToken:
		s.pending = append(s.pending, tok.Data...)
		return token.Continue
	case token.StartTagToken:
		s.flushText()
		attrs := make(map[string]string, len(tok.Attr))
		for _, a := range tok.Attr {
			attrs[a.Name] = a.Value
		}
		s.events <- Event{Kind: StartElement, TagName: tok.Data, Attrs: attrs}
	case token.EndTagToken:
		s.flushText()
		s.events <- Event{Kind: EndElement, TagName: tok.Data}
	case token.CommentToken:
		s.flushText()
		s.events <- Event{Kind: Comment, Text: tok.Data}
	case token.DoctypeToken:
		s.flushText()
		s.events <- Event{
			Kind:        Doctype,
			TagName:     tok.Data,
			PublicID:    tok.DoctypePublicID,
			HasPublicID: tok.DoctypeHasPublicID,
			SystemID:    tok.DoctypeSystemID,
			HasSystemID: tok.DoctypeHasSystemID,
		}
	case token.EOFToken:
		s.flushText()
	}
	return token.Continue
}

func (s *eventSink) flushText() {
	if len(s.pending) == 0 {
		return
	}
	s.events <- Event{Kind: Text, Text: string(s.pending)}
	s.pending = nil
}

package stream_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/stream"
)

func drain(s *stream.Stream) []stream.Event {
	var out []stream.Event
	for {
		ev, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestStream_CoalescesCharacterTokens(t *testing.T) {
	events := drain(stream.New("ab&amp;cd"))
	require.Len(t, events, 1)
	require.Equal(t, stream.Text, events[0].Kind)
	require.Equal(t, "ab&cd", events[0].Text)
}

func TestStream_StartEndElement(t *testing.T) {
	events := drain(stream.New("<p class=\"a\">hi</p>"))
	require.Len(t, events, 3)
	require.Equal(t, stream.StartElement, events[0].Kind)
	require.Equal(t, "p", events[0].TagName)
	require.Equal(t, "a", events[0].Attrs["class"])
	require.Equal(t, stream.Text, events[1].Kind)
	require.Equal(t, "hi", events[1].Text)
	require.Equal(t, stream.EndElement, events[2].Kind)
	require.Equal(t, "p", events[2].TagName)
}

func TestStream_Doctype(t *testing.T) {
	events := drain(stream.New("<!DOCTYPE html>"))
	require.Len(t, events, 1)
	require.Equal(t, stream.Doctype, events[0].Kind)
	require.Equal(t, "html", events[0].TagName)
}

func TestStream_Comment(t *testing.T) {
	events := drain(stream.New("<!-- hi -->"))
	require.Len(t, events, 1)
	require.Equal(t, stream.Comment, events[0].Kind)
	require.Equal(t, " hi ", events[0].Text)
}

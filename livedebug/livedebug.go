// Package livedebug is a small debug server that streams parse events to a
// connected browser panel over a websocket, one JSON message per event, so
// a developer can watch a document tokenize/parse live.
//
// Grounded on the teacher's pages.go ServeHTTP websocket branch: upgrade
// the connection, then push one message per "thing that changed" from a
// goroutine-fed channel until the client disconnects. Where the teacher
// pushes re-renders of a live component, this pushes stream.Events from
// parsing a submitted document.
package livedebug

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/corehtml/html5/stream"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server serves a websocket endpoint that parses whatever HTML text a
// client sends and streams back one JSON-encoded stream.Event per message,
// in order, until the input is exhausted or the connection closes.
type Server struct {
	Logger *logrus.Logger
}

// NewServer returns a Server with a default logger, matching the
// teacher's preference for a field-carrying structured logger over
// fmt.Println diagnostics.
func NewServer() *Server {
	return &Server{Logger: logrus.New()}
}

// wireEvent is the JSON shape pushed to the browser panel for each
// stream.Event; stream.Kind's String method supplies a stable tag the
// panel's JS can switch on.
type wireEvent struct {
	Kind    string            `json:"kind"`
	TagName string            `json:"tagName,omitempty"`
	Attrs   map[string]string `json:"attrs,omitempty"`
	Text    string            `json:"text,omitempty"`
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		http.Error(w, "expected a websocket upgrade", http.StatusBadRequest)
		return
	}
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.WithError(err).Warn("livedebug: upgrade failed")
		return
	}
	defer ws.Close()

	for {
		var msg struct {
			HTML string `json:"html"`
		}
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return
			}
			s.Logger.WithError(err).Warn("livedebug: read message")
			return
		}

		s.Logger.WithField("bytes", len(msg.HTML)).Info("livedebug: streaming parse")

		strm := stream.New(msg.HTML)
		for {
			ev, ok := strm.Next()
			if !ok {
				break
			}
			if err := ws.WriteJSON(toWire(ev)); err != nil {
				s.Logger.WithError(err).Warn("livedebug: write event")
				return
			}
		}
	}
}

func toWire(ev stream.Event) wireEvent {
	return wireEvent{
		Kind:    ev.Kind.String(),
		TagName: ev.TagName,
		Attrs:   ev.Attrs,
		Text:    ev.Text,
	}
}

// MarshalEvent is exported for callers that want the same wire shape
// without standing up a websocket server.
func MarshalEvent(ev stream.Event) ([]byte, error) {
	return json.Marshal(toWire(ev))
}

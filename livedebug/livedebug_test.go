package livedebug_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/livedebug"
	"github.com/corehtml/html5/stream"
)

func TestMarshalEvent_StartElement(t *testing.T) {
	data, err := livedebug.MarshalEvent(stream.Event{
		Kind:    stream.StartElement,
		TagName: "p",
		Attrs:   map[string]string{"class": "a"},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"start","tagName":"p","attrs":{"class":"a"}}`, string(data))
}

func TestMarshalEvent_Text(t *testing.T) {
	data, err := livedebug.MarshalEvent(stream.Event{Kind: stream.Text, Text: "hi"})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"text","text":"hi"}`, string(data))
}

func TestServer_RejectsNonWebsocketRequests(t *testing.T) {
	srv := livedebug.NewServer()
	req := httptest.NewRequest(http.MethodGet, "/debug", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

package sse

import (
	"net/url"
	"strings"
)

const (
	// EventEndpoint announces the message endpoint carrying the session id.
	EventEndpoint = "endpoint"
	// EventMessage carries one JSON-RPC payload.
	EventMessage = "message"
)

// Event is one server-sent event, immutable once returned by the Scanner.
// Data holds all data lines joined with a newline, surrounding whitespace
// trimmed.
type Event struct {
	Type string
	Data string
}

// SessionID extracts the session_id query parameter from an endpoint event
// payload such as "/messages/?session_id=abc123". The second result is false
// when no session id is present.
func (e *Event) SessionID() (string, bool) {
	query := e.Data
	if _, rest, ok := strings.Cut(e.Data, "?"); ok {
		query = rest
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return "", false
	}
	id := values.Get("session_id")
	return id, id != ""
}

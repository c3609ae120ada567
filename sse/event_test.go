package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_SessionID(t *testing.T) {
	testCases := []struct {
		description string
		data        string
		expected    string
		ok          bool
	}{
		{
			description: "relative endpoint path",
			data:        "/messages/?session_id=abc123",
			expected:    "abc123",
			ok:          true,
		},
		{
			description: "absolute endpoint URL",
			data:        "http://localhost:30800/messages/?session_id=9f0e2a",
			expected:    "9f0e2a",
			ok:          true,
		},
		{
			description: "session id among other parameters",
			data:        "/messages/?foo=bar&session_id=tok&x=1",
			expected:    "tok",
			ok:          true,
		},
		{
			description: "no session id parameter",
			data:        "/messages/?foo=bar",
			ok:          false,
		},
		{
			description: "no query at all",
			data:        "/messages/",
			ok:          false,
		},
		{
			description: "empty session id",
			data:        "/messages/?session_id=",
			ok:          false,
		},
	}

	for _, testCase := range testCases {
		event := &Event{Type: EventEndpoint, Data: testCase.data}
		actual, ok := event.SessionID()
		assert.Equal(t, testCase.ok, ok, testCase.description)
		if testCase.ok {
			assert.Equal(t, testCase.expected, actual, testCase.description)
		}
	}
}

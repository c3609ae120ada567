package session

import "sync"

// State represents the session lifecycle. Transitions only move forward:
// Uninitialized -> Established -> Closed.
type State int

const (
	// Uninitialized means no endpoint event has been seen yet.
	Uninitialized State = iota
	// Established means the session id is committed and outbound traffic
	// flows directly.
	Established
	// Closed means one of the streams ended.
	Closed
)

// Sender delivers one outbound message for the given session id. Delivery
// failures are the sender's concern; the session never retries, so ordering
// stays independent of delivery outcome.
type Sender func(sessionID, message string)

// Session owns the session id, its lifecycle and the pre-establishment
// outbound buffer. One mutex sequences transitions, buffered appends, the
// flush and direct sends, so no message can be posted out of order or lost
// across the Established transition.
type Session struct {
	mu      sync.Mutex
	state   State
	id      string
	pending []string
	send    Sender
}

// New creates an Uninitialized session that delivers through send.
func New(send Sender) *Session {
	return &Session{send: send}
}

// ID returns the committed session id, empty while Uninitialized.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Establish commits the session id and replays buffered messages in arrival
// order. Only the first call on an Uninitialized session has any effect; the
// id is immutable for the process lifetime. Returns whether the transition
// happened.
func (s *Session) Establish(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Uninitialized {
		return false
	}
	s.id = id
	s.state = Established
	for _, message := range s.pending {
		s.send(s.id, message)
	}
	s.pending = nil
	return true
}

// EnqueueOrSend buffers the message while the session is Uninitialized,
// sends it immediately once Established and drops it after Close.
func (s *Session) EnqueueOrSend(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case Uninitialized:
		s.pending = append(s.pending, message)
	case Established:
		s.send(s.id, message)
	}
}

// Close ends the session; any still-buffered messages are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Closed
	s.pending = nil
}

package bridge

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/viant/ssebridge/session"
	"github.com/viant/ssebridge/sse"
	"github.com/viant/ssebridge/stdio"
)

// Service bridges the local line-delimited JSON-RPC peer with the remote
// event stream peer. The output stream carries nothing but remote message
// payloads; all diagnostics go through the logger.
type Service struct {
	client  *sse.Client
	session *session.Session
	input   io.Reader
	output  io.Writer
	logger  zerolog.Logger
}

// New creates a bridge service for the given event stream endpoint URL.
func New(endpoint string, options ...Option) *Service {
	service := &Service{
		client: sse.New(endpoint),
		input:  os.Stdin,
		output: os.Stdout,
		logger: zerolog.New(os.Stderr).With().Timestamp().
			Str("component", "sse-bridge").
			Str("run", uuid.NewString()).
			Logger(),
	}
	for _, option := range options {
		option(service)
	}
	service.session = session.New(service.post)
	return service
}

// Run opens the remote stream and pumps both directions until one side's
// stream ends. A failure to open the stream is fatal and returned; an
// orderly end of either stream returns nil.
func (s *Service) Run(ctx context.Context) error {
	stream, err := s.client.Open(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()
	s.logger.Info().Str("endpoint", s.client.Endpoint()).Msg("connected")

	done := make(chan error, 2)
	go func() {
		reader := stdio.New(s.input, s.logger)
		err := reader.Run(s.session.EnqueueOrSend)
		if err == nil {
			s.logger.Info().Msg("local input ended")
		}
		done <- err
	}()
	go func() {
		done <- s.pump(stream)
	}()
	err = <-done
	s.session.Close()
	return err
}

// pump dispatches remote events until the stream ends: endpoint events
// establish the session, message events are forwarded to the local output.
func (s *Service) pump(stream io.Reader) error {
	scanner := sse.NewScanner(stream)
	for {
		event, err := scanner.Next()
		if err != nil {
			if err != io.EOF {
				// a mid-session drop ends the bridge the same way an
				// orderly close does
				s.logger.Warn().Err(err).Msg("remote stream error")
			}
			s.logger.Info().Msg("remote stream ended")
			return nil
		}
		switch event.Type {
		case sse.EventEndpoint:
			s.establish(event)
		case sse.EventMessage:
			if !json.Valid([]byte(event.Data)) {
				s.logger.Warn().Str("data", event.Data).Msg("dropping invalid JSON message event")
				continue
			}
			if _, err := io.WriteString(s.output, event.Data+"\n"); err != nil {
				return err
			}
		default:
			s.logger.Debug().Str("type", event.Type).Msg("ignoring event")
		}
	}
}

// establish commits the session id announced by an endpoint event and
// replays any buffered outbound messages.
func (s *Service) establish(event *sse.Event) {
	id, ok := event.SessionID()
	if !ok {
		s.logger.Warn().Str("data", event.Data).Msg("endpoint event without session_id, ignored")
		return
	}
	if !s.session.Establish(id) {
		s.logger.Warn().Str("session", id).Msg("duplicate endpoint event, ignored")
		return
	}
	s.logger.Info().Str("session", id).Msg("session established")
}

// post delivers one outbound message; a delivery failure is logged and never
// blocks subsequent messages.
func (s *Service) post(sessionID, message string) {
	if err := s.client.Post(context.Background(), sessionID, message); err != nil {
		s.logger.Warn().Err(err).Msg("message delivery failed")
	}
}

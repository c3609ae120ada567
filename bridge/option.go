package bridge

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/viant/ssebridge/sse"
)

// Option customizes the bridge service.
type Option func(*Service)

// WithInput overrides the local input stream (default os.Stdin).
func WithInput(input io.Reader) Option {
	return func(s *Service) {
		s.input = input
	}
}

// WithOutput overrides the local output stream (default os.Stdout).
func WithOutput(output io.Writer) Option {
	return func(s *Service) {
		s.output = output
	}
}

// WithLogger overrides the diagnostics logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClient overrides the remote transport client.
func WithClient(client *sse.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

package stdio

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/rs/zerolog"
)

// Handler receives each complete, validated input line.
type Handler func(line string)

// Reader reassembles newline-delimited JSON frames from the local input
// stream. Chunks arrive in arbitrary sizes; a partial trailing line is
// carried over to the next chunk. Complete lines are trimmed, validated as
// JSON and forwarded with their original bytes, never re-encoded, so
// byte-exact payloads reach the remote.
type Reader struct {
	input  io.Reader
	logger zerolog.Logger
}

// New creates a frame reader over input.
func New(input io.Reader, logger zerolog.Logger) *Reader {
	return &Reader{input: input, logger: logger}
}

// Run consumes the input stream until end-of-stream, invoking handler for
// every valid frame. Invalid lines are logged and dropped. An unterminated
// trailing line at end-of-stream is discarded. Returns nil on end-of-stream,
// otherwise the read error.
func (r *Reader) Run(handler Handler) error {
	var carry []byte
	chunk := make([]byte, 4096)
	for {
		n, err := r.input.Read(chunk)
		if n > 0 {
			carry = append(carry, chunk[:n]...)
			carry = r.drain(carry, handler)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// drain emits every complete line in carry and returns the remaining
// partial line.
func (r *Reader) drain(carry []byte, handler Handler) []byte {
	for {
		index := bytes.IndexByte(carry, '\n')
		if index < 0 {
			return carry
		}
		line := bytes.TrimSpace(carry[:index])
		carry = carry[index+1:]
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			r.logger.Warn().Str("line", excerpt(line)).Msg("dropping invalid JSON input line")
			continue
		}
		handler(string(line))
	}
}

func excerpt(line []byte) string {
	const limit = 120
	if len(line) > limit {
		return string(line[:limit]) + "..."
	}
	return string(line)
}

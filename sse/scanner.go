package sse

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single stream line; generous for control-plane
// payloads.
const maxLineSize = 1 << 20

// Scanner demultiplexes a raw event stream into discrete events. It
// accumulates event: and data: lines until a blank delimiter line, at which
// point one complete Event is emitted and the accumulator resets. Fields the
// bridge does not use (id:, retry:, comments) are ignored.
type Scanner struct {
	scanner *bufio.Scanner
}

// NewScanner creates a streaming event scanner over reader.
func NewScanner(reader io.Reader) *Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{scanner: scanner}
}

// Next returns the next complete event, io.EOF once the stream ends, or the
// underlying read error. An event left unterminated when the stream ends is
// discarded.
func (s *Scanner) Next() (*Event, error) {
	var event Event
	var dataLines []string
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line == "" {
			if event.Type == "" && len(dataLines) == 0 {
				continue
			}
			event.Data = strings.TrimSpace(strings.Join(dataLines, "\n"))
			return &event, nil
		}
		switch {
		case strings.HasPrefix(line, "event:"):
			event.Type = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimPrefix(line, "data:")
			dataLines = append(dataLines, strings.TrimPrefix(data, " "))
		}
	}
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

package stdio

import (
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader yields the source a fixed number of bytes at a time to
// exercise the carry-over path.
type chunkReader struct {
	source io.Reader
	size   int
}

func (r *chunkReader) Read(buffer []byte) (int, error) {
	if len(buffer) > r.size {
		buffer = buffer[:r.size]
	}
	return r.source.Read(buffer)
}

func TestReader_Run(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		chunkSize   int
		expected    []string
	}{
		{
			description: "lines split across tiny chunks",
			input:       "{\"jsonrpc\":\"2.0\",\"id\":1}\n{\"jsonrpc\":\"2.0\",\"id\":2}\n",
			chunkSize:   3,
			expected:    []string{`{"jsonrpc":"2.0","id":1}`, `{"jsonrpc":"2.0","id":2}`},
		},
		{
			description: "surrounding whitespace trimmed, blanks skipped",
			input:       "  {\"id\":1}  \n\n\t\n{\"id\":2}\n",
			chunkSize:   4096,
			expected:    []string{`{"id":1}`, `{"id":2}`},
		},
		{
			description: "invalid line dropped, later line still forwarded",
			input:       "{\"id\":1}\n{bad json\n{\"id\":2}\n",
			chunkSize:   5,
			expected:    []string{`{"id":1}`, `{"id":2}`},
		},
		{
			description: "unterminated trailing line discarded",
			input:       "{\"id\":1}\n{\"id\":2}",
			chunkSize:   4096,
			expected:    []string{`{"id":1}`},
		},
		{
			description: "empty input",
			input:       "",
			chunkSize:   4096,
			expected:    nil,
		},
	}

	for _, testCase := range testCases {
		var actual []string
		reader := New(&chunkReader{source: strings.NewReader(testCase.input), size: testCase.chunkSize}, zerolog.Nop())
		err := reader.Run(func(line string) {
			actual = append(actual, line)
		})
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expected, actual, testCase.description)
	}
}

func TestReader_Run_PreservesExactBytes(t *testing.T) {
	// unusual but valid formatting must survive untouched
	input := "{\"a\":  1,\"z\":\"\\u00e9\"}\n"
	var actual []string
	reader := New(strings.NewReader(input), zerolog.Nop())
	err := reader.Run(func(line string) {
		actual = append(actual, line)
	})
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Equal(t, `{"a":  1,"z":"\u00e9"}`, actual[0])
}

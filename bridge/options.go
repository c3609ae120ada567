package bridge

// DefaultEndpoint is the event stream URL used when no argument is given.
const DefaultEndpoint = "http://localhost:30800/sse"

// Options holds the CLI surface: a single positional endpoint URL.
type Options struct {
	Args struct {
		Endpoint string `positional-arg-name:"endpoint" description:"remote SSE endpoint URL"`
	} `positional-args:"yes"`
}

// Endpoint returns the configured endpoint URL, or DefaultEndpoint when the
// argument was omitted.
func (o *Options) Endpoint() string {
	if o.Args.Endpoint == "" {
		return DefaultEndpoint
	}
	return o.Args.Endpoint
}

// Command sse-bridge is a standalone binary that bridges a local JSON-RPC
// peer on standard input/output with a remote server-sent events endpoint.
//
// It takes a single positional argument, the event stream URL (default
// http://localhost:30800/sse), and exits 0 once either stream ends or
// nonzero when the initial connection cannot be opened.
package main

import (
	"log"
	"os"

	"github.com/viant/ssebridge/bridge"
)

func main() {
	if err := bridge.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

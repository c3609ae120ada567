// Package sse implements the remote side of the bridge: a streaming parser
// for server-sent events and an HTTP client pairing the long-lived event
// stream GET with per-message POSTs.
package sse

// Package ssebridge bridges a local peer speaking line-delimited JSON-RPC on
// standard input/output with a remote peer that exposes a server-sent events
// (SSE) stream plus a message POST endpoint.
//
// The remote side announces a session id via an `endpoint` event on the SSE
// stream; until that arrives, locally read messages are buffered in arrival
// order and replayed once the session is established. Payloads are opaque to
// the bridge: lines are validated as JSON and forwarded byte-exact, never
// re-encoded.
//
// The compiled `sse-bridge` binary (see bridge/sse-bridge) is the primary
// entry point; the bridge package exposes the same functionality as a
// library.
package ssebridge

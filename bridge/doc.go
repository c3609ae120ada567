// Package bridge wires the event stream client, the session state and the
// local frame reader into one runnable service, and owns process exit
// semantics: a clean end of either stream terminates the bridge orderly,
// while a failure to open the initial remote connection is fatal. There is
// no reconnect, retry or timeout logic; restarting the bridge is the
// caller's responsibility.
package bridge

// Package upstream implements the client for the external market feed.
//
// The feed speaks a Socket.IO-style text protocol over a persistent
// WebSocket: "2"/"3" heartbeat frames, a "40" connect acknowledgment, and
// "42"-prefixed JSON data frames. The client owns the connection lifecycle
// (connect, subscribe, reconnect) and pushes parsed batches into the store.
package upstream

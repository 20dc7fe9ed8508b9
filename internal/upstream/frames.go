package upstream

import "strings"

// Socket.IO-style protocol frames exchanged with the feed.
const (
	framePing       = "2"  // heartbeat ping from upstream, answered with framePong
	framePong       = "3"  // heartbeat pong
	frameConnectAck = "40" // connect acknowledgment, sent by this client after open
	frameDataPrefix = "42" // prefix of JSON data frames: 42["event", payload]
)

// frameKind discriminates incoming frames for the dispatch table.
type frameKind int

const (
	kindPing frameKind = iota
	kindPong
	kindConnectAck
	kindData
	kindUnknown
)

// classifyFrame maps a raw text frame to its kind. Order matters: the data
// prefix "42" must be checked before the connect ack "4x" family.
func classifyFrame(msg string) frameKind {
	switch {
	case msg == framePing:
		return kindPing
	case msg == framePong:
		return kindPong
	case strings.HasPrefix(msg, frameDataPrefix):
		return kindData
	case strings.HasPrefix(msg, frameConnectAck):
		return kindConnectAck
	default:
		return kindUnknown
	}
}

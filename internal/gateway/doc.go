// Package gateway pushes price and symbol data to downstream subscribers
// over WebSocket.
//
// Every downstream message is a JSON array ["event", payload], the same
// frame family the upstream feed uses inside its data frames. Delivery is
// best effort: a slow subscriber has its frames dropped, never the whole
// broadcast stalled.
package gateway

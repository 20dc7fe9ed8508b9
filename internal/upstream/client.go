package upstream

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"

	"github.com/Osman-ordu/ceptecash-backend/internal/model"
	"github.com/Osman-ordu/ceptecash-backend/internal/parser"
	"github.com/Osman-ordu/ceptecash-backend/internal/store"
)

// State is the connection lifecycle state.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateOpenUnsubscribed
	StateOpenSubscribed
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateOpenUnsubscribed:
		return "open-unsubscribed"
	case StateOpenSubscribed:
		return "open-subscribed"
	default:
		return "unknown"
	}
}

// Config configures the feed client.
type Config struct {
	URL              string        // upstream WebSocket address
	Channel          string        // channel to subscribe; also the dual-price event name
	UpdateChannel    string        // single-price event name
	ReconnectDelay   time.Duration // fixed delay between reconnect attempts
	HandshakeTimeout time.Duration // dial timeout
	WriteTimeout     time.Duration // write deadline for outgoing frames
}

// Client maintains the persistent connection to the external feed and feeds
// parsed batches into the store. All transitions run through the frame
// dispatch table; ingestion failures are contained and never unwind into
// the state machine.
type Client struct {
	cfg    Config
	store  *store.Store
	logger *slog.Logger

	handlers map[frameKind]func(*Client, string)

	writeMu sync.Mutex // serializes frame writes

	mu             sync.Mutex
	conn           *websocket.Conn
	state          State
	reconnectTimer *time.Timer // at most one pending reconnect
}

// NewClient creates a feed client. It does not connect.
func NewClient(cfg Config, st *store.Store, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		cfg:    cfg,
		store:  st,
		logger: logger,
	}
	c.handlers = map[frameKind]func(*Client, string){
		kindPing:       (*Client).handlePing,
		kindPong:       (*Client).handlePong,
		kindConnectAck: (*Client).handleConnectAck,
		kindData:       (*Client).handleData,
		kindUnknown:    (*Client).handleUnknown,
	}
	return c
}

// Connect opens the upstream connection. It is a no-op while a connection
// attempt is in flight or a connection is already open. Dialing happens in
// the background; failures schedule a reconnect.
func (c *Client) Connect() {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return
	}
	c.state = StateConnecting
	c.mu.Unlock()

	go c.dial()
}

// Disconnect cancels any pending reconnect, closes the transport and resets
// the state machine. Safe to call at any time, in any state.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.state = StateDisconnected
}

// IsConnected reports whether the transport is open.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateOpenUnsubscribed || c.state == StateOpenSubscribed
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// dial opens the transport and hands it to the read loop.
func (c *Client) dial() {
	dialer := websocket.Dialer{HandshakeTimeout: c.cfg.HandshakeTimeout}

	conn, _, err := dialer.Dial(c.cfg.URL, nil)
	if err != nil {
		c.logger.Warn("feed dial failed", "url", c.cfg.URL, "error", err)
		c.mu.Lock()
		if c.state == StateConnecting {
			c.state = StateDisconnected
			c.scheduleReconnectLocked()
		}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	if c.state != StateConnecting {
		// Disconnect won the race; drop the fresh transport.
		c.mu.Unlock()
		conn.Close()
		return
	}
	c.conn = conn
	c.state = StateOpenUnsubscribed
	c.mu.Unlock()

	c.logger.Info("feed connected", "url", c.cfg.URL)
	c.send(frameConnectAck)

	go c.readLoop(conn)
}

// readLoop reads frames until the transport closes, then reports the close.
func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.handleClose(conn, err)
			return
		}

		msg := string(data)
		c.handlers[classifyFrame(msg)](c, msg)
	}
}

// handleClose moves to disconnected and arms the reconnect timer, unless the
// close was caused by an explicit Disconnect or belongs to a stale transport.
func (c *Client) handleClose(conn *websocket.Conn, err error) {
	c.mu.Lock()
	if c.conn != conn {
		// Already disconnected or replaced; stale read loop.
		c.mu.Unlock()
		return
	}
	c.conn.Close()
	c.conn = nil
	c.state = StateDisconnected
	c.scheduleReconnectLocked()
	c.mu.Unlock()

	c.logger.Warn("feed disconnected, reconnect scheduled",
		"delay", c.cfg.ReconnectDelay,
		"error", err,
	)
}

// scheduleReconnectLocked arms the reconnect timer if none is pending.
// Callers must hold c.mu.
//
// The callback may already be in flight when Disconnect runs, in which case
// timer.Stop() cannot prevent it. The callback therefore re-checks under the
// lock that it is still the armed timer (Disconnect clears the slot) and
// performs the state transition in the same critical section, so a
// disconnected client never dials again.
func (c *Client) scheduleReconnectLocked() {
	if c.reconnectTimer != nil {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(c.cfg.ReconnectDelay, func() {
		c.mu.Lock()
		if c.reconnectTimer != timer {
			// Disconnected while this callback was in flight.
			c.mu.Unlock()
			return
		}
		c.reconnectTimer = nil
		if c.state != StateDisconnected {
			c.mu.Unlock()
			return
		}
		c.state = StateConnecting
		c.mu.Unlock()

		go c.dial()
	})
	c.reconnectTimer = timer
}

func (c *Client) handlePing(string) {
	c.send(framePong)
}

func (c *Client) handlePong(string) {
	// Upstream acknowledged a ping; nothing to do.
}

func (c *Client) handleConnectAck(string) {
	// Handshake echo; the state already advanced on open.
}

func (c *Client) handleUnknown(msg string) {
	c.logger.Debug("ignoring unrecognized frame", "frame", truncate(msg, 64))
}

// handleData routes a data frame. The first data frame after open only
// proves the channel is live: it triggers the subscribe command and is
// discarded without parsing.
func (c *Client) handleData(msg string) {
	c.mu.Lock()
	if c.state == StateOpenUnsubscribed {
		c.state = StateOpenSubscribed
		c.mu.Unlock()
		c.subscribe()
		return
	}
	c.mu.Unlock()

	payload := msg[len(frameDataPrefix):]

	var event []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &event); err != nil || len(event) < 2 {
		c.logger.Warn("dropping malformed data frame", "frame", truncate(payload, 100))
		return
	}

	var name string
	if err := json.Unmarshal(event[0], &name); err != nil {
		return
	}

	switch name {
	case c.cfg.Channel:
		c.ingest(name, parser.ParseDual([]byte(payload)))
	case c.cfg.UpdateChannel:
		c.ingest(name, parser.ParseSingle([]byte(payload)))
	}
}

// ingest applies a parsed batch to the store.
func (c *Client) ingest(event string, batch map[string]model.PriceRecord) {
	if len(batch) == 0 {
		c.logger.Warn("event parsed to empty batch", "event", event)
		return
	}

	c.store.Update(batch)
	c.logger.Debug("applied price batch",
		"event", event,
		"records", len(batch),
		"store_size", c.store.Size(),
	)
}

// subscribe sends the channel subscribe command.
func (c *Client) subscribe() {
	cmd := fmt.Sprintf(`%s["subscribe",%q]`, frameDataPrefix, c.cfg.Channel)
	c.send(cmd)
	c.logger.Info("subscribed to feed channel", "channel", c.cfg.Channel)
}

// send writes a text frame if the transport is open.
func (c *Client) send(msg string) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		c.logger.Debug("feed write failed", "error", err)
	}
}

// truncate shortens s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

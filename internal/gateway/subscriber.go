package gateway

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// subscriber is one downstream connection with its own buffered send queue.
// Writes go through the queue so one stalled connection never blocks the
// broadcast tick.
type subscriber struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	logger *slog.Logger

	mu     sync.Mutex // guards closed against concurrent enqueue/close
	closed bool
}

func newSubscriber(id string, conn *websocket.Conn, bufferSize int, logger *slog.Logger) *subscriber {
	return &subscriber{
		id:     id,
		conn:   conn,
		send:   make(chan []byte, bufferSize),
		logger: logger,
	}
}

// enqueue queues a frame for delivery, dropping it if the queue is full or
// the subscriber is already closed.
func (s *subscriber) enqueue(frame []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.send <- frame:
	default:
		s.logger.Warn("subscriber send buffer full, dropping frame", "subscriber", s.id)
	}
}

// close shuts the send queue exactly once; writePump closes the socket.
func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

// writePump drains the send queue onto the socket.
func (s *subscriber) writePump(writeTimeout time.Duration) {
	defer s.conn.Close()

	for frame := range s.send {
		s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			s.logger.Debug("subscriber write failed", "subscriber", s.id, "error", err)
			return
		}
	}

	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

package gateway

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Osman-ordu/ceptecash-backend/internal/model"
	"github.com/Osman-ordu/ceptecash-backend/internal/store"
	"github.com/Osman-ordu/ceptecash-backend/internal/symbol"
)

// Config configures the gateway.
type Config struct {
	BroadcastInterval time.Duration // full re-broadcast cadence
	SendBufferSize    int           // per-subscriber queue length
	WriteTimeout      time.Duration // write deadline per frame
}

// Gateway owns the downstream subscriber set. It reads the store, never
// writes it.
type Gateway struct {
	cfg    Config
	store  *store.Store
	logger *slog.Logger

	upgrader websocket.Upgrader

	mu     sync.Mutex
	subs   map[*subscriber]struct{}
	done   chan struct{}
	closed bool
}

// New creates a gateway and starts its broadcast ticker. The ticker runs for
// the lifetime of the gateway, regardless of whether data changed.
func New(cfg Config, st *store.Store, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}

	g := &Gateway{
		cfg:    cfg,
		store:  st,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		subs: make(map[*subscriber]struct{}),
		done: make(chan struct{}),
	}

	go g.broadcastLoop()

	return g
}

// ServeHTTP upgrades a downstream connection and registers it as a
// subscriber. The initial snapshot goes out immediately, independent of the
// broadcast timer phase.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Debug("subscriber upgrade failed", "error", err)
		return
	}

	sub := newSubscriber(uuid.NewString(), conn, g.cfg.SendBufferSize, g.logger)

	// Queue the connect-time view before the subscriber can receive tick
	// traffic, so the snapshot is always the first thing it sees.
	g.sendSnapshot(sub)
	g.sendSymbols(sub)

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		conn.Close()
		return
	}
	g.subs[sub] = struct{}{}
	count := len(g.subs)
	g.mu.Unlock()

	g.logger.Info("subscriber connected", "subscriber", sub.id, "subscribers", count)

	go sub.writePump(g.cfg.WriteTimeout)
	go g.readPump(sub)
}

// SubscriberCount returns the number of connected subscribers.
func (g *Gateway) SubscriberCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subs)
}

// Close stops the broadcast ticker and disconnects every subscriber.
// Idempotent.
func (g *Gateway) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	close(g.done)
	subs := make([]*subscriber, 0, len(g.subs))
	for sub := range g.subs {
		subs = append(subs, sub)
	}
	g.subs = make(map[*subscriber]struct{})
	g.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}

	g.logger.Info("gateway closed", "disconnected", len(subs))
}

// readPump handles client-initiated events until the connection drops.
func (g *Gateway) readPump(sub *subscriber) {
	defer g.unregister(sub)

	for {
		_, data, err := sub.conn.ReadMessage()
		if err != nil {
			return
		}

		event, ok := decodeEvent(data)
		if !ok {
			continue
		}

		switch event {
		case EventPing:
			g.emit(sub, EventPong, nil)
		case EventSubscribe:
			g.sendSymbols(sub)
		}
	}
}

func (g *Gateway) unregister(sub *subscriber) {
	g.mu.Lock()
	_, ok := g.subs[sub]
	if ok {
		delete(g.subs, sub)
	}
	count := len(g.subs)
	g.mu.Unlock()

	if ok {
		sub.close()
		g.logger.Info("subscriber disconnected", "subscriber", sub.id, "subscribers", count)
	}
}

// broadcastLoop re-broadcasts the full view on a fixed cadence.
func (g *Gateway) broadcastLoop() {
	ticker := time.NewTicker(g.cfg.BroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-g.done:
			return
		case <-ticker.C:
			g.broadcastAll()
		}
	}
}

// broadcastAll pushes the snapshot, category partitions and symbol lists to
// every subscriber. Payloads are encoded once per tick.
func (g *Gateway) broadcastAll() {
	frames := make([][]byte, 0, 7)

	push := func(event string, payload any) {
		frame, err := encodeEvent(event, payload)
		if err != nil {
			g.logger.Warn("failed to encode broadcast frame", "event", event, "error", err)
			return
		}
		frames = append(frames, frame)
	}

	push(EventPrices, g.store.All())
	push(EventPricesStockMarket, g.store.CurrencyMarket())
	push(EventPricesPrecious, g.store.CommodityMetals())

	symbols := g.store.Symbols()
	push(EventSymbols, symbols)
	push(EventSymbolsWithLabels, g.labeledSymbols(symbols))
	push(EventSymbolsStockMarket, g.store.SymbolsByCategory(model.CategoryCurrencyMarket))
	push(EventSymbolsPrecious, g.store.SymbolsByCategory(model.CategoryCommodityMetal))

	g.mu.Lock()
	subs := make([]*subscriber, 0, len(g.subs))
	for sub := range g.subs {
		subs = append(subs, sub)
	}
	g.mu.Unlock()

	for _, sub := range subs {
		for _, frame := range frames {
			sub.enqueue(frame)
		}
	}
}

// sendSnapshot pushes the full filtered price table to one subscriber.
func (g *Gateway) sendSnapshot(sub *subscriber) {
	g.emit(sub, EventPrices, g.store.All())
}

// sendSymbols pushes the symbol list and its labeled form to one subscriber.
func (g *Gateway) sendSymbols(sub *subscriber) {
	symbols := g.store.Symbols()
	g.emit(sub, EventSymbols, symbols)
	g.emit(sub, EventSymbolsWithLabels, g.labeledSymbols(symbols))
}

// labeledSymbols attaches display labels and categories to a symbol list.
func (g *Gateway) labeledSymbols(symbols []string) []model.SymbolInfo {
	infos := make([]model.SymbolInfo, 0, len(symbols))
	for _, sym := range symbols {
		cat := model.CategoryCurrencyMarket
		if rec, ok := g.store.Get(sym); ok && rec.Category != "" {
			cat = rec.Category
		}
		infos = append(infos, model.SymbolInfo{
			Symbol:   sym,
			Label:    symbol.Label(sym),
			Category: cat,
		})
	}
	return infos
}

func (g *Gateway) emit(sub *subscriber, event string, payload any) {
	frame, err := encodeEvent(event, payload)
	if err != nil {
		g.logger.Warn("failed to encode frame", "event", event, "error", err)
		return
	}
	sub.enqueue(frame)
}

package gateway

import "encoding/json"

// Server-to-client event names.
const (
	EventPrices             = "prices"
	EventPricesStockMarket  = "prices:stockMarket"
	EventPricesPrecious     = "prices:preciousMetals"
	EventSymbols            = "symbols"
	EventSymbolsWithLabels  = "symbolsWithLabels"
	EventSymbolsStockMarket = "symbols:stockMarket"
	EventSymbolsPrecious    = "symbols:preciousMetals"
	EventPong               = "pong"
)

// Client-to-server event names.
const (
	EventPing      = "ping"
	EventSubscribe = "subscribe"
)

// encodeEvent marshals an event frame: ["event"] or ["event", payload].
func encodeEvent(event string, payload any) ([]byte, error) {
	if payload == nil {
		return json.Marshal([]any{event})
	}
	return json.Marshal([]any{event, payload})
}

// decodeEvent extracts the event name from an incoming frame.
func decodeEvent(data []byte) (string, bool) {
	var frame []json.RawMessage
	if err := json.Unmarshal(data, &frame); err != nil || len(frame) == 0 {
		return "", false
	}
	var name string
	if err := json.Unmarshal(frame[0], &name); err != nil {
		return "", false
	}
	return name, true
}

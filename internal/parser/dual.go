package parser

import (
	"encoding/json"
	"time"

	"github.com/Osman-ordu/ceptecash-backend/internal/model"
	"github.com/Osman-ordu/ceptecash-backend/internal/symbol"
)

// dualEntry is one upstream entry carrying separate buy/sell quotes.
// Field names follow the upstream wire format.
type dualEntry struct {
	Buy     json.RawMessage `json:"alis"`
	Sell    json.RawMessage `json:"satis"`
	Percent json.RawMessage `json:"percent"`
}

// ParseDual parses a dual-price payload: each entry carries a buy value, a
// sell value, and optionally a raw change percentage. Entries missing either
// side, or with invalid prices, are dropped.
func ParseDual(raw []byte) map[string]model.PriceRecord {
	data := unwrapPayload(raw)
	if data == nil {
		return map[string]model.PriceRecord{}
	}

	now := time.Now().UnixMilli()
	out := make(map[string]model.PriceRecord, len(data))

	for key, value := range data {
		var entry dualEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			continue
		}
		if entry.Buy == nil || entry.Sell == nil {
			continue
		}

		buy, ok := parsePrice(entry.Buy)
		if !ok || !validPrice(buy) {
			continue
		}
		sell, ok := parsePrice(entry.Sell)
		if !ok || !validPrice(sell) {
			continue
		}

		// Raw change percent rides along when upstream supplies one;
		// the store recomputes it whenever it has a previous price.
		var percent float64
		if entry.Percent != nil {
			if p, ok := parsePrice(entry.Percent); ok {
				percent = p
			}
		}

		sym := symbol.Normalize(key)
		out[sym] = model.PriceRecord{
			Symbol:        sym,
			BuyPrice:      buy,
			SellPrice:     sell,
			ChangePercent: percent,
			Timestamp:     now,
		}
	}

	return out
}

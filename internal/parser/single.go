package parser

import (
	"time"

	"github.com/Osman-ordu/ceptecash-backend/internal/model"
	"github.com/Osman-ordu/ceptecash-backend/internal/symbol"
)

// metadataKeys are non-symbol fields in the single-price payload.
var metadataKeys = map[string]struct{}{
	"S": {},
	"T": {},
}

// ParseSingle parses a single-price payload of the form
// {"USDTRY": 43.3839, ...}. The one value serves as both buy and sell; the
// change percentage is left for the store to compute.
func ParseSingle(raw []byte) map[string]model.PriceRecord {
	data := unwrapPayload(raw)
	if data == nil {
		return map[string]model.PriceRecord{}
	}

	now := time.Now().UnixMilli()
	out := make(map[string]model.PriceRecord, len(data))

	for key, value := range data {
		if _, skip := metadataKeys[key]; skip {
			continue
		}

		price, ok := parsePrice(value)
		if !ok || !validPrice(price) {
			continue
		}

		sym := symbol.Normalize(key)
		out[sym] = model.PriceRecord{
			Symbol:    sym,
			BuyPrice:  price,
			SellPrice: price,
			Timestamp: now,
		}
	}

	return out
}

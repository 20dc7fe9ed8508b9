package model

// Category classifies a symbol for downstream grouping.
type Category string

const (
	// CategoryCurrencyMarket covers forex pairs, single currencies and indexes.
	CategoryCurrencyMarket Category = "STOCK_MARKET"

	// CategoryCommodityMetal covers gold denominations, silver and metal crosses.
	CategoryCommodityMetal Category = "PRECIOUS_METALS"
)

// PriceRecord is the latest known quote for a single symbol.
type PriceRecord struct {
	Symbol        string   `json:"symbol"`
	BuyPrice      float64  `json:"buyPrice"`
	SellPrice     float64  `json:"sellPrice"`
	ChangePercent float64  `json:"changePercent"`
	Timestamp     int64    `json:"timestamp"` // ms since epoch, stamped at parse time
	Category      Category `json:"category,omitempty"`
}

// SymbolInfo pairs a symbol with its display label and category.
type SymbolInfo struct {
	Symbol   string   `json:"symbol"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

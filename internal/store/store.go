// Package store holds the authoritative in-memory table of latest prices.
//
// One writer (the upstream ingestion path) calls Update; the broadcast
// ticker and status queries read concurrently. Records are replaced whole
// under the lock, so a reader never observes a half-written row.
package store

import (
	"sort"
	"sync"

	"github.com/Osman-ordu/ceptecash-backend/internal/model"
	"github.com/Osman-ordu/ceptecash-backend/internal/symbol"
)

// Store is the single source of truth for market prices.
type Store struct {
	mu     sync.RWMutex
	prices map[string]model.PriceRecord
	prev   map[string]float64 // previous buy price per symbol, for change computation
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		prices: make(map[string]model.PriceRecord),
		prev:   make(map[string]float64),
	}
}

// Update merges a parsed batch into the table.
//
// For each record the change percentage is recomputed against the previous
// stored buy price. Without a usable previous price, a non-zero percentage
// supplied by the parser is kept; otherwise the change is zero. Categories
// are sticky: the first classification of a symbol is never overwritten.
func (s *Store) Update(batch map[string]model.PriceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range batch {
		if prev, ok := s.prev[rec.Symbol]; ok && prev > 0 {
			rec.ChangePercent = (rec.BuyPrice - prev) / prev * 100
		}

		if existing, ok := s.prices[rec.Symbol]; ok && existing.Category != "" {
			rec.Category = existing.Category
		} else {
			rec.Category = symbol.Classify(rec.Symbol)
		}

		s.prev[rec.Symbol] = rec.BuyPrice
		s.prices[rec.Symbol] = rec
	}
}

// Get returns the record for a symbol, unfiltered.
func (s *Store) Get(sym string) (model.PriceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.prices[sym]
	return rec, ok
}

// All returns every record except blacklisted symbols, sorted by symbol.
func (s *Store) All() []model.PriceRecord {
	s.mu.RLock()
	records := make([]model.PriceRecord, 0, len(s.prices))
	for _, rec := range s.prices {
		records = append(records, rec)
	}
	s.mu.RUnlock()

	records = symbol.FilterRecords(records)
	sort.Slice(records, func(i, j int) bool { return records[i].Symbol < records[j].Symbol })
	return records
}

// Size returns the number of stored records, including blacklisted symbols.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.prices)
}

// Symbols returns all stored symbols except blacklisted ones, sorted.
func (s *Store) Symbols() []string {
	s.mu.RLock()
	symbols := make([]string, 0, len(s.prices))
	for sym := range s.prices {
		symbols = append(symbols, sym)
	}
	s.mu.RUnlock()

	symbols = symbol.FilterSymbols(symbols)
	sort.Strings(symbols)
	return symbols
}

// ByCategory returns the filtered records of one category, sorted by symbol.
func (s *Store) ByCategory(cat model.Category) []model.PriceRecord {
	s.mu.RLock()
	records := make([]model.PriceRecord, 0, len(s.prices))
	for _, rec := range s.prices {
		if rec.Category == cat {
			records = append(records, rec)
		}
	}
	s.mu.RUnlock()

	records = symbol.FilterRecords(records)
	sort.Slice(records, func(i, j int) bool { return records[i].Symbol < records[j].Symbol })
	return records
}

// CurrencyMarket returns the filtered forex/currency records.
func (s *Store) CurrencyMarket() []model.PriceRecord {
	return s.ByCategory(model.CategoryCurrencyMarket)
}

// CommodityMetals returns the filtered precious-metal records.
func (s *Store) CommodityMetals() []model.PriceRecord {
	return s.ByCategory(model.CategoryCommodityMetal)
}

// SymbolsByCategory returns the filtered symbols of one category, sorted.
func (s *Store) SymbolsByCategory(cat model.Category) []string {
	records := s.ByCategory(cat)
	symbols := make([]string, 0, len(records))
	for _, rec := range records {
		symbols = append(symbols, rec.Symbol)
	}
	return symbols
}

// Clear removes every record and the previous-price memory.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices = make(map[string]model.PriceRecord)
	s.prev = make(map[string]float64)
}

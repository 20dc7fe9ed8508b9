package store

import (
	"math"
	"sync"
	"testing"

	"github.com/Osman-ordu/ceptecash-backend/internal/model"
)

func record(sym string, buy, sell float64) model.PriceRecord {
	return model.PriceRecord{
		Symbol:    sym,
		BuyPrice:  buy,
		SellPrice: sell,
		Timestamp: 1700000000000,
	}
}

func batch(recs ...model.PriceRecord) map[string]model.PriceRecord {
	m := make(map[string]model.PriceRecord, len(recs))
	for _, r := range recs {
		m[r.Symbol] = r
	}
	return m
}

func TestUpdateChangePercent(t *testing.T) {
	s := New()

	s.Update(batch(record("USD", 100, 101)))
	rec, _ := s.Get("USD")
	if rec.ChangePercent != 0 {
		t.Errorf("first write ChangePercent = %v, want 0", rec.ChangePercent)
	}

	s.Update(batch(record("USD", 110, 111)))
	rec, _ = s.Get("USD")
	if math.Abs(rec.ChangePercent-10) > 1e-9 {
		t.Errorf("ChangePercent = %v, want 10", rec.ChangePercent)
	}

	s.Update(batch(record("USD", 99, 100)))
	rec, _ = s.Get("USD")
	if math.Abs(rec.ChangePercent-(-10)) > 1e-9 {
		t.Errorf("ChangePercent = %v, want -10", rec.ChangePercent)
	}
}

func TestUpdateKeepsParserPercentWithoutPrevious(t *testing.T) {
	s := New()

	rec := record("EUR", 51.4, 51.6)
	rec.ChangePercent = 0.35 // upstream-supplied
	s.Update(batch(rec))

	got, _ := s.Get("EUR")
	if got.ChangePercent != 0.35 {
		t.Errorf("ChangePercent = %v, want parser-supplied 0.35", got.ChangePercent)
	}

	// With a previous price on record, the computed value wins.
	rec2 := record("EUR", 51.914, 52.0)
	rec2.ChangePercent = 99
	s.Update(batch(rec2))

	got, _ = s.Get("EUR")
	if math.Abs(got.ChangePercent-1.0) > 1e-9 {
		t.Errorf("ChangePercent = %v, want computed 1.0", got.ChangePercent)
	}
}

func TestCategorySticky(t *testing.T) {
	s := New()

	s.Update(batch(record("USD", 42, 42.1)))
	rec, _ := s.Get("USD")
	if rec.Category != model.CategoryCurrencyMarket {
		t.Fatalf("Category = %v, want %v", rec.Category, model.CategoryCurrencyMarket)
	}

	// A later update carrying a pre-set category must not re-derive or
	// override the stored one.
	rec2 := record("USD", 43, 43.1)
	rec2.Category = model.CategoryCommodityMetal
	s.Update(batch(rec2))

	rec, _ = s.Get("USD")
	if rec.Category != model.CategoryCurrencyMarket {
		t.Errorf("Category = %v, want sticky %v", rec.Category, model.CategoryCurrencyMarket)
	}
}

func TestUpdateScenarioDualPriceFrame(t *testing.T) {
	s := New()

	// Feed sends USDTRY, buy 42,00, sell 42,10; the parser has already
	// normalized the symbol.
	s.Update(batch(record("USD", 42.0, 42.1)))

	rec, ok := s.Get("USD")
	if !ok {
		t.Fatal("USD not stored")
	}
	if rec.BuyPrice != 42.0 || rec.SellPrice != 42.1 {
		t.Errorf("prices = %v/%v, want 42.0/42.1", rec.BuyPrice, rec.SellPrice)
	}
	if rec.Category != model.CategoryCurrencyMarket {
		t.Errorf("Category = %v, want %v", rec.Category, model.CategoryCurrencyMarket)
	}
}

func TestFilteredReads(t *testing.T) {
	s := New()
	s.Update(batch(
		record("USD", 42, 42.1),
		record("GRAM", 4850, 4851),
		record("XAUUSD", 2650, 2651),
		record("GUMUSUSD", 31, 31.1),
	))

	if s.Size() != 4 {
		t.Errorf("Size = %d, want 4 (blacklist stays in the table)", s.Size())
	}

	for _, rec := range s.All() {
		if rec.Symbol == "XAUUSD" || rec.Symbol == "GUMUSUSD" {
			t.Errorf("blacklisted %q in All()", rec.Symbol)
		}
	}
	if len(s.All()) != 2 {
		t.Errorf("All() returned %d records, want 2", len(s.All()))
	}

	for _, sym := range s.Symbols() {
		if sym == "XAUUSD" || sym == "GUMUSUSD" {
			t.Errorf("blacklisted %q in Symbols()", sym)
		}
	}

	metals := s.CommodityMetals()
	if len(metals) != 1 || metals[0].Symbol != "GRAM" {
		t.Errorf("CommodityMetals = %v, want [GRAM]", metals)
	}

	currencies := s.CurrencyMarket()
	if len(currencies) != 1 || currencies[0].Symbol != "USD" {
		t.Errorf("CurrencyMarket = %v, want [USD]", currencies)
	}

	metalSyms := s.SymbolsByCategory(model.CategoryCommodityMetal)
	if len(metalSyms) != 1 || metalSyms[0] != "GRAM" {
		t.Errorf("SymbolsByCategory(metal) = %v, want [GRAM]", metalSyms)
	}

	// Blacklisted rows keep feeding change computation.
	if _, ok := s.Get("XAUUSD"); !ok {
		t.Error("XAUUSD missing from underlying table")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Update(batch(record("USD", 100, 101)))
	s.Clear()

	if s.Size() != 0 {
		t.Errorf("Size after Clear = %d, want 0", s.Size())
	}

	// Previous-price memory is gone too: next write has no baseline.
	s.Update(batch(record("USD", 110, 111)))
	rec, _ := s.Get("USD")
	if rec.ChangePercent != 0 {
		t.Errorf("ChangePercent after Clear = %v, want 0", rec.ChangePercent)
	}
}

func TestConcurrentReadersAndWriter(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s.Update(batch(record("USD", float64(100+i%10), float64(101+i%10))))
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				for _, rec := range s.All() {
					if rec.BuyPrice <= 0 || rec.SellPrice <= 0 {
						t.Errorf("observed partial record: %+v", rec)
						return
					}
				}
				s.Symbols()
				s.Size()
			}
		}()
	}

	wg.Wait()
}

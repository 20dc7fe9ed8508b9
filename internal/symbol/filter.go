package symbol

import (
	"strings"

	"github.com/Osman-ordu/ceptecash-backend/internal/model"
)

// blacklist holds USD/forex-quoted metal crosses that stay in the store for
// change bookkeeping but are hidden from every outward-facing view.
// GUMUSTRY is intentionally absent: the TRY silver quote is user-visible.
var blacklist = map[string]struct{}{
	"XAUUSD":   {},
	"XAGUSD":   {},
	"XAUXAG":   {},
	"GUMUSUSD": {},
}

// IsFiltered reports whether a symbol is suppressed from outward views.
func IsFiltered(sym string) bool {
	_, ok := blacklist[strings.ToUpper(sym)]
	return ok
}

// FilterRecords returns records with blacklisted symbols removed.
func FilterRecords(records []model.PriceRecord) []model.PriceRecord {
	out := make([]model.PriceRecord, 0, len(records))
	for _, r := range records {
		if !IsFiltered(r.Symbol) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSymbols returns symbols with blacklisted entries removed.
func FilterSymbols(symbols []string) []string {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if !IsFiltered(s) {
			out = append(out, s)
		}
	}
	return out
}

package symbol

import (
	"strings"

	"github.com/Osman-ordu/ceptecash-backend/internal/model"
)

// preciousMetalSymbols are exact-match commodity symbols: gold denominations
// (new and old mints), silver, and forex-format metals.
var preciousMetalSymbols = map[string]struct{}{
	"AYAR22": {},
	"AYAR14": {},
	"GRAM":   {},
	"CEYREK": {},
	"YARIM":  {},
	"ATA":    {},
	"HAS":    {},
	"GAU":    {},
	"GOLD":   {},

	"YARIM_ESKI":  {},
	"TEK_ESKI":    {},
	"TEK":         {},
	"GREMSE_ESKI": {},
	"GREMSE":      {},
	"CEYREK_ESKI": {},
	"ATA_ESKI":    {},
	"ATA5":        {},
	"ATA5_ESKI":   {},

	"GUMUSTRY": {},
	"GUMUS":    {},
	"SILVER":   {},

	"XAU": {},
	"XAG": {},
}

// metalKeywords match any symbol that embeds a metal family token,
// e.g. GOLDTRY or CEYREK_YENI.
var metalKeywords = []string{
	"GOLD",
	"SILVER",
	"XAU",
	"XAG",
	"GUMUS",
	"AYAR",
	"ATA",
	"CEYREK",
	"YARIM",
	"TEK",
	"GREMSE",
}

// Classify maps a symbol to its category. Exact metal symbols win, then
// metal keyword substrings, then the currency-market default.
func Classify(sym string) model.Category {
	upper := strings.ToUpper(sym)

	if _, ok := preciousMetalSymbols[upper]; ok {
		return model.CategoryCommodityMetal
	}

	for _, kw := range metalKeywords {
		if strings.Contains(upper, kw) {
			return model.CategoryCommodityMetal
		}
	}

	return model.CategoryCurrencyMarket
}

// IsCommodityMetal reports whether the symbol classifies as a precious metal.
func IsCommodityMetal(sym string) bool {
	return Classify(sym) == model.CategoryCommodityMetal
}

// IsCurrencyMarket reports whether the symbol classifies as a currency.
func IsCurrencyMarket(sym string) bool {
	return Classify(sym) == model.CategoryCurrencyMarket
}

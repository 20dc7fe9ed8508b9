package symbol

import "strings"

// labels maps symbols to Turkish display names.
var labels = map[string]string{
	// Base currencies (TRY quoted)
	"USD":    "Dolar",
	"USDTRY": "Dolar",
	"EUR":    "Euro",
	"EURTRY": "Euro",
	"GBP":    "İngiliz Sterlini",
	"GBPTRY": "İngiliz Sterlini",

	// Gold denominations
	"AYAR22": "22 Ayar Altın",
	"AYAR14": "14 Ayar Altın",
	"GRAM":   "Gram Altın",
	"CEYREK": "Çeyrek Altın",
	"YARIM":  "Yarım Altın",
	"ATA":    "Ata Lira",
	"HAS":    "Has Altın",
	"GAU":    "Gram Altın",

	"YARIM_ESKI":  "Yarım Altın (Eski)",
	"TEK_ESKI":    "Tek Altın (Eski)",
	"TEK":         "Tek Altın",
	"GREMSE_ESKI": "Gremse Altın (Eski)",
	"GREMSE":      "Gremse Altın",
	"CEYREK_ESKI": "Çeyrek Altın (Eski)",
	"ATA_ESKI":    "Ata Lira (Eski)",
	"ATA5":        "Ata 5'li",
	"ATA5_ESKI":   "Ata 5'li (Eski)",

	// Silver
	"GUMUSTRY": "Gümüş",
	"GUMUS":    "Gümüş",

	// USD based pairs
	"USDJPY": "Japon Yeni",
	"USDAUD": "Avustralya Doları",
	"USDCHF": "İsviçre Frangı",
	"USDSGD": "Singapur Doları",
	"USDSEK": "İsveç Kronu",
	"USDRUB": "Rus Rublesi",

	// EUR based pairs
	"EURUSD": "Euro",
	"EURGBP": "Euro/İngiliz Sterlini",
	"EURJPY": "Euro/Japon Yeni",

	// GBP based pairs
	"GBPUSD": "İngiliz Sterlini",
	"GBPJPY": "İngiliz Sterlini/Japon Yeni",

	// Other pairs
	"AUDUSD": "Avustralya Doları",
	"NZDUSD": "Yeni Zelanda Doları",
	"CADUSD": "Kanada Doları",

	// Forex-format metals (USD crosses of these are blacklisted)
	"XAU": "Altın",
	"XAG": "Gümüş",

	// Indexes
	"DXYUSD": "Dolar Endeksi",
	"DXY":    "Dolar Endeksi",

	// Single currencies
	"JPY": "Japon Yeni",
	"CHF": "İsviçre Frangı",
	"AUD": "Avustralya Doları",
	"SEK": "İsveç Kronu",
	"RUB": "Rus Rublesi",
	"SGD": "Singapur Doları",
	"CAD": "Kanada Doları",
	"NZD": "Yeni Zelanda Doları",
	"MXN": "Meksika Pesosu",
	"ZAR": "Güney Afrika Randı",
	"BRL": "Brezilya Reali",
	"INR": "Hindistan Rupisi",
	"CNY": "Çin Yuanı",
	"HKD": "Hong Kong Doları",
	"KRW": "Güney Kore Wonu",
	"NOK": "Norveç Kronu",

	"SARTRY": "Suudi Arabistan Riyali",
	"NOKTRY": "Norveç Kronu",
}

// Label resolves a human-readable Turkish label for a symbol.
//
// Resolution order: direct match, TRY suffix stripped, TRY suffix added,
// quote currency of a 6-character forex pair. Unresolvable symbols come
// back unchanged rather than as an empty label.
func Label(sym string) string {
	upper := strings.ToUpper(sym)

	if l, ok := labels[upper]; ok {
		return l
	}

	if strings.HasSuffix(upper, "TRY") && len(upper) > 3 {
		if l, ok := labels[strings.TrimSuffix(upper, "TRY")]; ok {
			return l
		}
	}

	if !strings.Contains(upper, "TRY") && len(upper) <= 3 {
		if l, ok := labels[upper+"TRY"]; ok {
			return l
		}
	}

	if len(upper) == 6 {
		if l, ok := labels[upper[3:]]; ok {
			return l
		}
	}

	return sym
}

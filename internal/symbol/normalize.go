package symbol

import "strings"

// Normalize strips a trailing "TRY" quote suffix when the remainder is
// non-empty, so USDTRY and USD key the same row. A bare "TRY" stays as is.
func Normalize(sym string) string {
	if strings.HasSuffix(sym, "TRY") && len(sym) > 3 {
		return strings.TrimSuffix(sym, "TRY")
	}
	return sym
}

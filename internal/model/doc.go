// Package model defines shared data types for the market feed pipeline.
//
// Conventions:
//   - Prices: float64 in quote currency (TRY unless the symbol is a forex pair)
//   - Timestamps: int64 milliseconds since Unix epoch
//   - Categories: wire-format strings, assigned once per symbol by the store
package model

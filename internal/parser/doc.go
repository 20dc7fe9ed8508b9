// Package parser turns raw upstream event payloads into normalized price
// record batches.
//
// Both parsers share the same contract: they never fail, unparseable input
// yields an empty batch, and no record with a non-finite or non-positive
// price ever leaves this package.
package parser

// Package symbol implements the pure symbol-level rules of the feed:
// normalization, classification into categories, display labels, and the
// outward-view blacklist.
//
// Everything here is stateless and side-effect free.
package symbol

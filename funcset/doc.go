// Package funcset collects basis-function handles into the ordered,
// deduplicated list a chromosome's function genes index into.
//
// A Set behaves like append-only, pointer-deduplicated slice: Push is
// idempotent on a handle already present, and Union performs a left-biased
// deduplicated concatenation. The package also exposes the named presets
// from the basis-function table (Basic, Extended, Trig, Hyp, All) and a
// string-driven builder for configuration-file-style function lists.
package funcset

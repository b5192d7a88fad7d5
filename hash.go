// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package observer

import "hash/maphash"

// Hash returns the seeded hash of the stored address. By construction
// this is the same value maphash.Comparable yields for the raw *T
// directly, the absent (nil) case included, so a Ptr hashes exactly
// as the pointer it wraps. Equal references always hash equal under
// the same seed.
func Hash[T any](seed maphash.Seed, p Ptr[T]) uint64 {
	return maphash.Comparable(seed, p.p)
}

// Swap exchanges the stored addresses of a and b. Package-level
// counterpart of the Swap method, for use as a function value in
// generic code.
func Swap[T any](a, b *Ptr[T]) {
	a.Swap(b)
}

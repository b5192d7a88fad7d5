// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package observer

import (
	"cmp"
	"unsafe"
)

// The comparison family operates on stored addresses only, never on
// pointee values. The two references may be differently typed, so the
// addresses are compared through their common machine representation.

// Equal reports whether a and b are both absent, or both hold the
// same address. Differently-typed views of the same value (as
// produced by As) compare equal.
func Equal[T, U any](a Ptr[T], b Ptr[U]) bool {
	return unsafe.Pointer(a.p) == unsafe.Pointer(b.p)
}

// Less reports whether a's address orders before b's. The order is
// raw address order: total, strict, and consistent within a process,
// with no meaning about the pointee values. The absent reference
// orders before every populated one.
func Less[T, U any](a Ptr[T], b Ptr[U]) bool {
	return uintptr(unsafe.Pointer(a.p)) < uintptr(unsafe.Pointer(b.p))
}

// Compare returns -1 if a orders before b, +1 if after, and 0 when
// they hold the same address (or are both absent), following the
// cmp.Compare convention so that the family plugs directly into
// slices.SortFunc and friends.
func Compare[T, U any](a Ptr[T], b Ptr[U]) int {
	return cmp.Compare(uintptr(unsafe.Pointer(a.p)), uintptr(unsafe.Pointer(b.p)))
}

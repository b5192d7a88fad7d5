// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package observer provides Ptr, a non-owning reference to a value
// whose lifetime is managed elsewhere.
//
// A Ptr[T] holds a single raw address and nothing else. It exists for
// code that needs to hold and pass around a "maybe points to
// something" handle without implying ownership: copying a Ptr copies
// the address, never the pointee, and discarding one never creates,
// extends, or ends the referent's lifetime. It is the documented
// alternative to passing bare *T around when the non-owning intent
// should be visible in the type.
//
// The zero value is the absent reference. Construct populated
// references with Of:
//
//	x := 42
//	r := observer.Of(&x)
//	if !r.IsZero() {
//	    fmt.Println(r.Deref()) // 42
//	}
//
// # Absent and populated
//
// A Ptr is in one of two states: absent (holding no address) or
// populated. Reset moves between them in place; Release returns the
// held address and clears to absent. None of the transitions touch
// the pointee — the type has no way to observe whether the referent
// is still alive, and does not try.
//
// # Dereference precondition
//
// Deref reads the pointee with no inserted check. Calling it on an
// absent reference panics with a nil pointer fault. This is a caller
// obligation, not a recoverable error: check IsZero first, or use Get
// and handle nil. Keeping the fast path check-free is the point of
// the type.
//
// # Comparison, ordering, hashing
//
// Ptr[T] is a comparable struct, so same-typed references work
// directly as map keys and with ==. The free functions Equal, Less,
// and Compare additionally span two reference types, comparing the
// stored addresses through their common machine representation; two
// differently-typed views of the same address (see As) compare equal.
// Ordering follows raw address order and carries no meaning about the
// pointee values — it exists for deterministic placement in ordered
// structures. Hash produces exactly the seeded hash of the stored raw
// address, for use with hash/maphash-based containers.
//
// # Concurrency
//
// A Ptr is a plain one-word value with no internal synchronization.
// Distinct Ptr values are independently safe to use from multiple
// goroutines; concurrent access to the pointee through Deref or Get
// is governed entirely by the pointee's own rules, which this package
// does not change.
//
// This package has no dependencies beyond the standard library.
package observer

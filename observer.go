// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package observer

// Ptr is a non-owning reference to a value of type T. It wraps a
// single raw address, which may be nil (the absent reference). The
// zero value is absent.
//
// Ptr has value semantics: copying one copies the address only, and
// two copies are thereafter independent.
type Ptr[T any] struct {
	p *T
}

// Of wraps the given address as a non-owning reference. A nil address
// is accepted and produces an absent reference; that is not an error.
// Of never takes ownership of anything.
func Of[T any](p *T) Ptr[T] {
	return Ptr[T]{p: p}
}

// Get returns the stored address, or nil when the reference is
// absent. This is also the escape hatch back to a raw *T for member
// access and interop.
func (p Ptr[T]) Get() *T { return p.p }

// IsZero reports whether the reference is absent.
func (p Ptr[T]) IsZero() bool { return p.p == nil }

// Deref returns the current value of the pointee, re-read at each
// call.
//
// Precondition: the reference must not be absent. Deref performs no
// check; on an absent reference it panics with a nil pointer fault.
// Callers that cannot guarantee the precondition must check IsZero
// first, or use Get and handle nil.
func (p Ptr[T]) Deref() T { return *p.p }

// Release returns the stored address and leaves the reference absent.
// On an absent reference it returns nil and is a no-op. The referent
// itself is untouched — Release gives up the handle, not the value.
func (p *Ptr[T]) Release() *T {
	q := p.p
	p.p = nil
	return q
}

// Reset replaces the stored address. Passing nil clears the reference
// to absent. The previously referenced value is untouched.
func (p *Ptr[T]) Reset(q *T) { p.p = q }

// Swap exchanges the stored addresses of p and q in place.
func (p *Ptr[T]) Swap(q *Ptr[T]) {
	p.p, q.p = q.p, p.p
}

// As returns a view of p under type U: the same address carried over,
// reinterpreted through view. view must be address-preserving — for a
// struct D embedding B, the canonical view is
//
//	observer.As(d, func(d *D) *B { return &d.B })
//
// Pairs of types with no such view simply cannot be written, so an
// incompatible conversion fails to compile at the call site. An
// absent p yields an absent result without invoking view.
func As[T, U any](p Ptr[T], view func(*T) *U) Ptr[U] {
	if p.p == nil {
		return Ptr[U]{}
	}
	return Ptr[U]{p: view(p.p)}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package observer_test

import (
	"hash/maphash"
	"testing"

	"github.com/bureau-foundation/observer"
)

func TestHashMatchesRawAddress(t *testing.T) {
	seed := maphash.MakeSeed()
	x := 42
	tests := []struct {
		name string
		ref  observer.Ptr[int]
	}{
		{name: "populated", ref: observer.Of(&x)},
		{name: "absent", ref: observer.Ptr[int]{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := observer.Hash(seed, tt.ref)
			want := maphash.Comparable(seed, tt.ref.Get())
			if got != want {
				t.Errorf("Hash = %#x, want %#x (hash of the raw address)", got, want)
			}
		})
	}
}

func TestEqualReferencesHashEqual(t *testing.T) {
	seed := maphash.MakeSeed()
	x := 42
	pairs := []struct {
		name string
		a, b observer.Ptr[int]
	}{
		{name: "same-address", a: observer.Of(&x), b: observer.Of(&x)},
		{name: "both-absent", a: observer.Ptr[int]{}, b: observer.Ptr[int]{}},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if !observer.Equal(tt.a, tt.b) {
				t.Fatal("test pair is not equal")
			}
			ha := observer.Hash(seed, tt.a)
			hb := observer.Hash(seed, tt.b)
			if ha != hb {
				t.Errorf("equal references hash differently: %#x vs %#x", ha, hb)
			}
		})
	}
}

func TestHashStableAcrossCalls(t *testing.T) {
	seed := maphash.MakeSeed()
	x := 42
	for _, ref := range []observer.Ptr[int]{observer.Of(&x), {}} {
		first := observer.Hash(seed, ref)
		for i := 0; i < 3; i++ {
			if got := observer.Hash(seed, ref); got != first {
				t.Fatalf("Hash changed between calls: %#x then %#x", first, got)
			}
		}
	}
}

func TestSwapFunction(t *testing.T) {
	x, y := 1, 2
	a := observer.Of(&x)
	b := observer.Of(&y)

	observer.Swap(&a, &b)
	if a.Get() != &y || b.Get() != &x {
		t.Errorf("after Swap: a = %p, b = %p, want %p, %p", a.Get(), b.Get(), &y, &x)
	}
	observer.Swap(&a, &b)
	if a.Get() != &x || b.Get() != &y {
		t.Error("applying Swap twice did not restore the original pairing")
	}
}

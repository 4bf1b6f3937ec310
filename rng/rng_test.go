// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestSeedRepeat(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		va, vb := ExpThr(a), ExpThr(b)
		if va != vb {
			t.Fatalf("draw %v differs across identically seeded streams: %v vs %v", i, va, vb)
		}
		if va < 0 || math.IsInf(va, 0) || math.IsNaN(va) {
			t.Fatalf("bad exponential threshold: %v", va)
		}
	}
}

func TestSourceUint64(t *testing.T) {
	a := NewSource(New(11))
	b := NewSource(New(11))
	hi := false
	for i := 0; i < 200; i++ {
		va, vb := a.Uint64(), b.Uint64()
		if va != vb {
			t.Fatalf("draw %v differs across identically seeded sources: %v vs %v", i, va, vb)
		}
		if va>>63 == 1 {
			hi = true
		}
	}
	if !hi {
		t.Errorf("Uint64 never set the top bit in 200 draws")
	}
}

func TestSourceDistuv(t *testing.T) {
	src := NewSource(New(7))
	nd := distuv.Normal{Mu: 2, Sigma: 0.5, Src: src}
	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += nd.Rand()
	}
	mean := sum / float64(n)
	// 6 standard errors of the mean
	if math.Abs(mean-2) > 6*0.5/math.Sqrt(float64(n)) {
		t.Errorf("normal mean through Source: %v, want ~2", mean)
	}
}

func TestExpThrMean(t *testing.T) {
	rnd := New(3)
	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += ExpThr(rnd)
	}
	mean := sum / float64(n)
	if math.Abs(mean-1) > 6/math.Sqrt(float64(n)) {
		t.Errorf("exponential threshold mean: %v, want ~1", mean)
	}
}

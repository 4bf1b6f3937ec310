// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rng holds the single random stream used for prior sampling and spike
simulation.  All draws go through an erand.Rand, so a simulation is fully
reproducible from its seed.  Source adapts the same stream to the
golang.org/x/exp/rand.Source interface used by the gonum distributions.
*/
package rng

import (
	"math"

	"github.com/emer/emergent/erand"
	"golang.org/x/exp/rand"
)

// New returns a new random stream with given seed
func New(seed int64) erand.Rand {
	return erand.NewSysRand(seed)
}

// Source is a golang.org/x/exp/rand.Source drawing from an erand.Rand
type Source struct {
	Rand erand.Rand
}

// NewSource returns a Source reading from the given stream
func NewSource(rnd erand.Rand) *Source {
	return &Source{Rand: rnd}
}

// Uint64 returns 64 random bits
func (src *Source) Uint64() uint64 {
	return src.Rand.Uint64(-1)
}

// Seed reseeds the underlying stream
func (src *Source) Seed(seed uint64) {
	src.Rand.Seed(int64(seed))
}

var _ rand.Source = (*Source)(nil)

// ExpThr returns a unit-rate exponential draw -log(U), U uniform on (0, 1],
// which is the integrated-intensity threshold for the next spike.
func ExpThr(rnd erand.Rand) float64 {
	return -math.Log(1 - rnd.Float64(-1))
}

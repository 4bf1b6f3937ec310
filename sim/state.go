// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/emer/emergent/erand"
	"github.com/memming/pyglm/rng"
)

// BinState is the per-neuron state of the spike generator.  Each neuron
// integrates its rate into Acc, and spikes when Acc exceeds an exponentially
// distributed threshold Thr, which is then subtracted and redrawn.  This
// generates an inhomogeneous Poisson process with the integrated rate.
type BinState struct {
	Acc   []float64 `desc:"integrated rate since the last spike"`
	Thr   []float64 `desc:"integrated rate needed for the next spike"`
	Count []int     `desc:"spikes in the current bin"`
	Spk   []bool    `desc:"neurons whose threshold was crossed on the last Crossed check"`
}

// NewBinState returns the state for n neurons with fresh thresholds
func NewBinState(n int, rnd erand.Rand) *BinState {
	bs := &BinState{
		Acc:   make([]float64, n),
		Thr:   make([]float64, n),
		Count: make([]int, n),
		Spk:   make([]bool, n),
	}
	for i := range bs.Thr {
		bs.Thr[i] = rng.ExpThr(rnd)
	}
	return bs
}

// NewBin clears the spike counts at the start of a bin
func (bs *BinState) NewBin() {
	for i := range bs.Count {
		bs.Count[i] = 0
	}
}

// Integrate adds rate * dt for each neuron to its accumulator
func (bs *BinState) Integrate(lam []float64, dt float64) {
	for i, l := range lam {
		bs.Acc[i] += l * dt
	}
}

// Crossed marks each neuron whose accumulator exceeds its threshold as
// spiking, counts the spike, and returns the number of spiking neurons
func (bs *BinState) Crossed() int {
	nspk := 0
	for i, a := range bs.Acc {
		bs.Spk[i] = a > bs.Thr[i]
		if bs.Spk[i] {
			bs.Count[i]++
			nspk++
		}
	}
	return nspk
}

// Reset subtracts the crossed threshold from the accumulator of each
// spiking neuron, keeping the excess (clamped at 0), and draws a new
// threshold for it
func (bs *BinState) Reset(rnd erand.Rand) {
	for i, spk := range bs.Spk {
		if !spk {
			continue
		}
		bs.Acc[i] -= bs.Thr[i]
		if bs.Acc[i] < 0 {
			bs.Acc[i] = 0
		}
		bs.Thr[i] = rng.ExpThr(rnd)
	}
}

// MaxCount returns the neuron with the most spikes in the current bin, and its count
func (bs *BinState) MaxCount() (neuron, count int) {
	for i, c := range bs.Count {
		if c > count {
			neuron, count = i, c
		}
	}
	return
}

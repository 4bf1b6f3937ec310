// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sim generates spike trains from a population of coupled point-process
neurons on a discrete time grid.

Each neuron integrates its instantaneous rate f(X[t, n]) into an accumulator
and spikes when the accumulator crosses an exponentially distributed threshold.
A spike in bin t adds Gain[pre, post] * Kernel(pre, post)[lag] to the input
X[t+1+lag, post] of every postsynaptic neuron, so spikes feed back on future
rates.  Several thresholds can be crossed in one bin, and the crossings are
resolved by repeated checks until no accumulator exceeds its threshold.  A
neuron exceeding Params.MaxSpikesPerBin spikes in one bin aborts the run.

All random draws come from the single erand.Rand passed to Run, in a fixed
order, so a run is exactly reproducible from its seed.
*/
package sim

import (
	"log/slog"
	"math"

	"github.com/emer/emergent/erand"
	"github.com/goki/ki/ints"
	"gonum.org/v1/gonum/mat"
)

// Input is everything needed to run a simulation
type Input struct {

	// exogenous input current, bins x N -- nil or empty for a zero length window
	X *mat.Dense

	// N x N connection gains, A * W elementwise
	Gain *mat.Dense

	// impulse responses of each connection
	Kern *Kernels

	// rate nonlinearity
	Rate func(x float64) float64

	// time span of X
	Window Window
}

// NBins returns the number of bins of input
func (in *Input) NBins() int {
	if in.X == nil || in.X.IsEmpty() {
		return 0
	}
	r, _ := in.X.Dims()
	return r
}

// Run simulates spikes for the input, returning the spike counts and the
// input current including the feedback from the spikes.  It fails with an
// *InstabilityError if any neuron exceeds the spike cap in a bin or has a
// non-finite rate, in which case no result is returned.
func Run(in *Input, sp *Params, rnd erand.Rand, log *slog.Logger) (*Result, error) {
	if log == nil {
		log = slog.Default()
	}
	nT := in.NBins()
	rs := &Result{Start: in.Window.Start, Dt: in.Window.Dt}
	if nT == 0 {
		rs.S = &mat.Dense{}
		rs.X = &mat.Dense{}
		return rs, nil
	}
	n := in.Kern.N
	dt := in.Window.Dt
	x := mat.DenseCopyOf(in.X)
	s := mat.NewDense(nT, n, nil)
	rs.Diag.Bkgd = rateRange(in.X, in.Rate)

	bs := NewBinState(n, rnd)
	lam := make([]float64, n)
	tm := NewTime(&in.Window)
	maxIter := n * (sp.MaxSpikesPerBin + 1)
	for t := 0; t < nT; t++ {
		if sp.LogInterval > 0 && t%sp.LogInterval == 0 {
			log.Info("simulating", "bin", t, "of", nT, "time", tm.Time)
		}
		xt := x.RawRowView(t)
		for i := range lam {
			lam[i] = in.Rate(xt[i])
			if math.IsNaN(lam[i]) || math.IsInf(lam[i], 0) {
				return nil, &InstabilityError{Bin: t, Neuron: i, Rate: lam[i]}
			}
		}
		bs.NewBin()
		bs.Integrate(lam, dt)
		tImp := ints.MinInt(nT-t-1, in.Kern.TImp)
		nspk := bs.Crossed()
		for iter := 0; nspk > 0 && iter < maxIter; iter++ {
			for pre, spk := range bs.Spk {
				if spk {
					in.propagate(x, t, tImp, pre)
				}
			}
			bs.Reset(rnd)
			nspk = bs.Crossed()
			if ni, cnt := bs.MaxCount(); cnt > sp.MaxSpikesPerBin {
				return nil, &InstabilityError{Bin: t, Neuron: ni, Count: cnt, Cap: sp.MaxSpikesPerBin}
			}
		}
		sr := s.RawRowView(t)
		for i, c := range bs.Count {
			sr[i] = float64(c)
		}
		tm.BinInc()
	}
	rs.S = s
	rs.X = x
	rs.Diag.Weff = in.Kern.Weff(in.Gain, dt)
	rs.Diag.Check(rs, in.Rate, sp.DevThresh, log)
	return rs, nil
}

// propagate adds the impulse responses of a spike from pre in bin t to the
// inputs of the following tImp bins
func (in *Input) propagate(x *mat.Dense, t, tImp, pre int) {
	for post := 0; post < in.Kern.N; post++ {
		g := in.Gain.At(pre, post)
		if g == 0 {
			continue
		}
		kern := in.Kern.Kernel(pre, post)
		for l := 0; l < tImp; l++ {
			x.Set(t+1+l, post, x.At(t+1+l, post)+g*kern[l])
		}
	}
}

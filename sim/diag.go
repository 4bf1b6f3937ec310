// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"log/slog"
	"math"

	"github.com/emer/etable/minmax"
	"github.com/memming/pyglm/data"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Diagnostics compare the sampled spike counts against the counts expected
// from the realized rates
type Diagnostics struct {
	Expected []float64  `desc:"expected spike count of each neuron: integral of its rate over the window"`
	Sampled  []float64  `desc:"sampled spike count of each neuron"`
	Deviant  []int      `desc:"neurons whose sampled count differs from expected by more than the threshold number of Poisson standard deviations"`
	Bkgd     minmax.F64 `desc:"range of rates from the exogenous input alone"`
	Rates    minmax.F64 `desc:"range of rates over the run, including feedback"`
	Weff     *mat.Dense `desc:"effective weight of each connection: gain times integrated impulse response"`
}

// Check computes the expected and sampled counts for rs, and records and
// logs each neuron whose sample deviates by more than thr standard deviations
func (dg *Diagnostics) Check(rs *Result, rate func(x float64) float64, thr float64, log *slog.Logger) {
	nT, n := rs.S.Dims()
	dg.Expected = make([]float64, n)
	dg.Sampled = make([]float64, n)
	dg.Deviant = nil
	dg.Rates = rateRange(rs.X, rate)
	lam := make([]float64, nT)
	for i := 0; i < n; i++ {
		for t := 0; t < nT; t++ {
			lam[t] = rate(rs.X.At(t, i))
		}
		dg.Expected[i] = data.Trapz(lam, rs.Dt)
		dg.Sampled[i] = floats.Sum(mat.Col(nil, i, rs.S))
		if math.Abs(dg.Sampled[i]-dg.Expected[i]) > thr*math.Sqrt(dg.Expected[i]) {
			dg.Deviant = append(dg.Deviant, i)
			log.Warn("sampled spike count differs from expected", "neuron", i, "sampled", dg.Sampled[i], "expected", dg.Expected[i], "sd", thr)
		}
	}
	log.Info("simulated", "bins", nT, "sampled", dg.Sampled, "expected", dg.Expected, "max_rate", dg.Rates.Max)
}

// rateRange returns the range of rates over all inputs in x
func rateRange(x *mat.Dense, rate func(x float64) float64) minmax.F64 {
	var mm minmax.F64
	mm.SetInfinity()
	if x == nil || x.IsEmpty() {
		return mm
	}
	r, c := x.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			mm.FitValInRange(rate(x.At(i, j)))
		}
	}
	return mm
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package population

import (
	"errors"
	"fmt"

	"github.com/emer/emergent/erand"
	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/network"
	"github.com/memming/pyglm/sim"
	"gonum.org/v1/gonum/mat"
)

// ErrDtMismatch is returned when simulating at a bin width other than the
// one the impulse responses were built for
var ErrDtMismatch = errors.New("simulation bin width differs from model bin width")

// Simulate generates spike counts for the window [start, stop) in bins of
// dt, with the variables in b.  Random draws come from rnd, or the
// population's own stream if nil.  The connectivity and weights are fixed
// for the whole window.
func (pp *Population) Simulate(b *Binding, start, stop, dt float64, rnd erand.Rand) (*sim.Result, error) {
	if rnd == nil {
		rnd = pp.Rand
	}
	w := sim.Window{Start: start, Stop: stop, Dt: dt}
	first, nT, err := w.Bins()
	if err != nil {
		return nil, err
	}
	if dt != pp.Config.Dt {
		return nil, fmt.Errorf("%w: %v, model %v", ErrDtMismatch, dt, pp.Config.Dt)
	}
	if err := b.Validate(pp.N); err != nil {
		return nil, err
	}
	pp.FunTimerStart("Simulate")
	defer pp.FunTimerStop("Simulate")

	in := &sim.Input{Rate: pp.GLM.Rate, Window: w, Kern: sim.NewKernels(pp.N, pp.GLM.Imp.TImp)}
	if nT > 0 {
		in.X = mat.NewDense(nT, pp.N, nil)
		errs := make([]error, pp.N)
		pp.ThrNeuronFun(func(n int) {
			errs[n] = pp.precompute(b, n, first, in)
		}, "Precompute")
		for n, err := range errs {
			if err != nil {
				return nil, fmt.Errorf("neuron %d: %w", n, err)
			}
		}
		pp.Log.Info("impulse kernels", "lags", in.Kern.TImp, "size", in.Kern.Size().HumanReadable())
	}
	in.Gain, err = pp.gain(b)
	if err != nil {
		return nil, err
	}

	pp.FunTimerStart("SimRun")
	rs, err := sim.Run(in, &pp.Config.Sim, rnd, pp.Log)
	pp.FunTimerStop("SimRun")
	if err != nil {
		return nil, err
	}
	if rs.NBins() > 0 {
		pp.Log.Info("rates", "max_bkgd", rs.Diag.Bkgd.Max, "max", rs.Diag.Rates.Max)
	}
	return rs, nil
}

// precompute sets column n of in.X to neuron n's bias and stimulus
// currents over the window, and the kernels onto neuron n
func (pp *Population) precompute(b *Binding, n, first int, in *sim.Input) error {
	sc, err := expr.Bind(pp.syms, pp.ExtractVars(b, n))
	if err != nil {
		return err
	}
	nT := in.NBins()
	for _, e := range []*expr.Expr{pp.GLM.Bias.IBias, pp.GLM.Bkgd.IStim} {
		v, err := sc.Eval(e)
		if err != nil {
			return err
		}
		switch {
		case len(v.Values) == 1:
			for t := 0; t < nT; t++ {
				in.X.Set(t, n, in.X.At(t, n)+v.Values[0])
			}
		case first >= 0 && first+nT <= len(v.Values):
			for t := 0; t < nT; t++ {
				in.X.Set(t, n, in.X.At(t, n)+v.Values[first+t])
			}
		default:
			return fmt.Errorf("%w: %s has %d bins, window is bins [%d, %d)", expr.ErrShape, e.Name, len(v.Values), first, first+nT)
		}
	}
	imp, err := sc.Eval(pp.GLM.Imp.Impulse)
	if err != nil {
		return err
	}
	in.Kern.SetPost(n, imp.Values)
	return nil
}

// gain returns the connection gains A * W elementwise
func (pp *Population) gain(b *Binding) (*mat.Dense, error) {
	sc, err := expr.Bind(pp.netSyms, expr.Binding{network.NS: b.Net})
	if err != nil {
		return nil, err
	}
	a, err := sc.Eval(pp.Net.Graph.A)
	if err != nil {
		return nil, err
	}
	w, err := sc.Eval(pp.Net.Weights.W)
	if err != nil {
		return nil, err
	}
	g := mat.NewDense(pp.N, pp.N, nil)
	for i := range w.Values {
		g.Set(i/pp.N, i%pp.N, a.Values[i]*w.Values[i])
	}
	return g, nil
}

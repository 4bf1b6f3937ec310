// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package glm is the point-process generalized linear model shared by every
neuron of a population.  A neuron's input current is the sum of a baseline
bias, a linear stimulus drive, and the impulse responses of presynaptic
spikes gated by the network's adjacency and weights; its firing rate is a
rate nonlinearity of that current.

A single Template holds the expressions for all of this, written against the
"glm" namespace of free parameters plus the index symbol n of the neuron
being evaluated.  Evaluating the same Template with a different binding
gives the values for a different neuron.
*/
package glm

import (
	"errors"
	"fmt"
	"math"

	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/memming/pyglm/data"
	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/network"
	"github.com/memming/pyglm/nlin"
	"gonum.org/v1/gonum/stat/distuv"
)

// NS is the namespace of GLM symbols
const NS = "glm"

// ErrNoData is returned when an expression needs observations that were never set
var ErrNoData = errors.New("glm: no data set")

// Template is the GLM shared by all N neurons of a population
type Template struct {
	N    int
	Dt   float64
	Bias *Bias
	Bkgd *Bkgd
	Imp  *Impulse
	Nlin nlin.Params

	data  *data.Set
	syms  *expr.Symbols
	lam   *expr.Expr
	state *expr.Expr
	logP  *expr.Expr
}

// New returns a new template for a population of n neurons at bin width dt,
// coupled through net
func New(gp *Params, n int, dt float64, net *network.Network) (*Template, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("glm: bin width %v must be > 0", dt)
	}
	imp, err := NewImpulse(gp.Imp, n, dt, net)
	if err != nil {
		return nil, err
	}
	tm := &Template{N: n, Dt: dt, Imp: imp, Nlin: gp.Nlin}
	tm.Bias = NewBias(gp.Bias)
	tm.Bkgd = NewBkgd(gp.Bkgd)

	tm.syms = expr.NewSymbols()
	tm.syms.Add("n", nil, "index of the neuron")
	tm.Bias.AddSymbols(tm.syms)
	tm.Bkgd.AddSymbols(tm.syms)
	tm.Imp.AddSymbols(tm.syms)

	tm.lam = expr.NewLeaf("lam", tm.rates)
	tm.logP = expr.NewLeaf("glm_logp", tm.logProb)

	tm.state = expr.NewGroup("")
	bias := tm.state.AddGroup("bias")
	bias.Add("I_bias", tm.Bias.IBias)
	bkgd := tm.state.AddGroup("bkgd")
	bkgd.Add("stim", tm.Bkgd.Stim)
	bkgd.Add("I_stim", tm.Bkgd.IStim)
	ir := tm.state.AddGroup("imp")
	ir.Add("ir", tm.Imp.Impulse)
	ir.Add("I_net", tm.Imp.INet)
	tm.state.Add("lam", tm.lam)
	return tm, nil
}

// Symbols returns the free parameters of one neuron's GLM
func (tm *Template) Symbols() *expr.Symbols {
	return tm.syms
}

// Sample draws one neuron's variables from the prior.  The index symbol n
// is left for the caller to set.
func (tm *Template) Sample(rnd erand.Rand) expr.Vars {
	vs := make(expr.Vars)
	tm.Bias.Sample(rnd, vs)
	tm.Bkgd.Sample(rnd, vs)
	tm.Imp.Sample(rnd, vs)
	return vs
}

// State returns the expressions of a neuron's state:
// bias: {I_bias}, bkgd: {stim, I_stim}, imp: {ir, I_net}, lam
func (tm *Template) State() *expr.Expr {
	return tm.state
}

// LogP returns the expression for the log probability of a neuron's
// variables and its observed spike counts
func (tm *Template) LogP() *expr.Expr {
	return tm.logP
}

// Lam returns the expression for a neuron's firing rate in each data bin
func (tm *Template) Lam() *expr.Expr {
	return tm.lam
}

// Rate returns the firing rate for input current x
func (tm *Template) Rate(x float64) float64 {
	return tm.Nlin.Rate(x)
}

// SetData conditions the template on observations d
func (tm *Template) SetData(d *data.Set) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.N != tm.N {
		return fmt.Errorf("glm: data has %d neurons, model has %d", d.N, tm.N)
	}
	if d.Dt != tm.Dt {
		return fmt.Errorf("glm: data bin width %v differs from model bin width %v", d.Dt, tm.Dt)
	}
	if err := tm.Bkgd.SetData(d); err != nil {
		return err
	}
	tm.Imp.SetData(d)
	tm.data = d
	return nil
}

// neuronIdx returns the bound neuron index, checked against n
func neuronIdx(sc *expr.Scope, n int) (int, error) {
	idx, err := sc.Int(NS, "n")
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= n {
		return 0, &expr.EvalError{NS: NS, Sym: "n", Err: fmt.Errorf("%w: neuron index %d out of range [0, %d)", expr.ErrShape, idx, n)}
	}
	return idx, nil
}

// addInto adds v to dst, broadcasting a scalar v
func addInto(dst []float64, v *etensor.Float64) error {
	switch len(v.Values) {
	case 1:
		for i := range dst {
			dst[i] += v.Values[0]
		}
	case len(dst):
		for i := range dst {
			dst[i] += v.Values[i]
		}
	default:
		return fmt.Errorf("%w: cannot add %d values to %d bins", expr.ErrShape, len(v.Values), len(dst))
	}
	return nil
}

func (tm *Template) rates(sc *expr.Scope) (*etensor.Float64, error) {
	if tm.data == nil {
		return nil, ErrNoData
	}
	x := make([]float64, tm.data.NBins())
	for _, e := range []*expr.Expr{tm.Bias.IBias, tm.Bkgd.IStim, tm.Imp.INet} {
		v, err := sc.Eval(e)
		if err != nil {
			return nil, err
		}
		if err := addInto(x, v); err != nil {
			return nil, err
		}
	}
	return expr.Vector(tm.Nlin.Rates(x, x)), nil
}

func (tm *Template) logProb(sc *expr.Scope) (*etensor.Float64, error) {
	if tm.data == nil {
		return nil, ErrNoData
	}
	lp := 0.0
	for _, e := range []*expr.Expr{tm.Bias.LogP, tm.Bkgd.LogP, tm.Imp.LogP} {
		v, err := sc.Eval(e)
		if err != nil {
			return nil, err
		}
		lp += v.Values[0]
	}
	n, err := neuronIdx(sc, tm.N)
	if err != nil {
		return nil, err
	}
	lam, err := sc.Eval(tm.lam)
	if err != nil {
		return nil, err
	}
	for t, l := range lam.Values {
		lp += poissonLogProb(l*tm.Dt, tm.data.S.At(t, n))
	}
	return expr.Scalar(lp), nil
}

// poissonLogProb is the log probability of k counts with mean mu,
// defined for mu == 0
func poissonLogProb(mu, k float64) float64 {
	if mu == 0 {
		if k == 0 {
			return 0
		}
		return math.Inf(-1)
	}
	return distuv.Poisson{Lambda: mu}.LogProb(k)
}

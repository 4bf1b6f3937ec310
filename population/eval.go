// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package population

import (
	"fmt"

	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/network"
)

// State is the evaluated state of the population: the network state, and
// the state of each neuron's GLM
type State struct {
	Net  *expr.State
	GLMs []*expr.State
}

// Equal returns true if both states have the same structure and
// bit-identical values
func (st *State) Equal(o *State) bool {
	if !st.Net.Equal(o.Net) || len(st.GLMs) != len(o.GLMs) {
		return false
	}
	for i, gs := range st.GLMs {
		if !gs.Equal(o.GLMs[i]) {
			return false
		}
	}
	return true
}

// NetLogP returns the log prior probability of the network variables
func (pp *Population) NetLogP(b *Binding) (float64, error) {
	v, err := expr.Eval(pp.Net.LogP(), pp.netSyms, expr.Binding{network.NS: b.Net})
	if err != nil {
		return 0, err
	}
	return expr.Float(v)
}

// NeuronLogP returns the log probability of neuron n's variables and
// observations, given the network variables
func (pp *Population) NeuronLogP(b *Binding, n int) (float64, error) {
	v, err := expr.Eval(pp.GLM.LogP(), pp.syms, pp.ExtractVars(b, n))
	if err != nil {
		return 0, fmt.Errorf("neuron %d: %w", n, err)
	}
	return expr.Float(v)
}

// ComputeLogP returns the log joint probability of all variables and the
// observations: the network term plus the term of each neuron
func (pp *Population) ComputeLogP(b *Binding) (float64, error) {
	if err := b.Validate(pp.N); err != nil {
		return 0, err
	}
	pp.FunTimerStart("ComputeLogP")
	defer pp.FunTimerStop("ComputeLogP")
	lp, err := pp.NetLogP(b)
	if err != nil {
		return 0, err
	}
	for n := 0; n < pp.N; n++ {
		nlp, err := pp.NeuronLogP(b, n)
		if err != nil {
			return 0, err
		}
		lp += nlp
	}
	return lp, nil
}

// EvalState evaluates the state expressions of the network and of each
// neuron's GLM
func (pp *Population) EvalState(b *Binding) (*State, error) {
	if err := b.Validate(pp.N); err != nil {
		return nil, err
	}
	pp.FunTimerStart("EvalState")
	defer pp.FunTimerStop("EvalState")
	ns, err := expr.EvalTree(pp.Net.State(), pp.netSyms, expr.Binding{network.NS: b.Net})
	if err != nil {
		return nil, err
	}
	st := &State{Net: ns, GLMs: make([]*expr.State, pp.N)}
	errs := make([]error, pp.N)
	pp.ThrNeuronFun(func(n int) {
		st.GLMs[n], errs[n] = expr.EvalTree(pp.GLM.State(), pp.syms, pp.ExtractVars(b, n))
	}, "EvalStateGLMs")
	for n, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("neuron %d: %w", n, err)
		}
	}
	return st, nil
}

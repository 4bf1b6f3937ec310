// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package network is the population-level model of connectivity: which neurons
project to which (Graph) and how strongly (Weights).  Its free parameters
live in the "net" namespace, and are shared by every neuron's GLM.
*/
package network

import (
	"fmt"

	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/memming/pyglm/data"
	"github.com/memming/pyglm/expr"
)

// NS is the namespace of network symbols
const NS = "net"

// Params are the network model parameters
type Params struct {
	Graph   GraphParams  `view:"inline" desc:"adjacency prior"`
	Weights WeightParams `view:"inline" desc:"weight prior"`
}

func (np *Params) Defaults() {
	np.Graph.Defaults()
	np.Weights.Defaults()
}

// Update must be called after any changes to parameters
func (np *Params) Update() {
	np.Graph.Update()
	np.Weights.Update()
}

// Network combines the graph and weight sub-models for N neurons
type Network struct {
	N       int
	Graph   *Graph
	Weights *Weights

	syms  *expr.Symbols
	state *expr.Expr
	logP  *expr.Expr
}

// New returns a new network model over n neurons
func New(np *Params, n int) *Network {
	nw := &Network{N: n}
	nw.Graph = NewGraph(np.Graph, n)
	nw.Weights = NewWeights(np.Weights, n)

	nw.syms = expr.NewSymbols()
	nw.Graph.AddSymbols(nw.syms)
	nw.Weights.AddSymbols(nw.syms)

	nw.state = expr.NewGroup("")
	nw.state.Add("A", nw.Graph.A)
	nw.state.Add("W", nw.Weights.W)
	nw.state.AddLeaf("W_eff", nw.effWeights)

	nw.logP = expr.NewLeaf("net_logp", func(sc *expr.Scope) (*etensor.Float64, error) {
		glp, err := sc.Eval(nw.Graph.LogP)
		if err != nil {
			return nil, err
		}
		wlp, err := sc.Eval(nw.Weights.LogP)
		if err != nil {
			return nil, err
		}
		return expr.Scalar(glp.Values[0] + wlp.Values[0]), nil
	})
	return nw
}

// Symbols returns the free parameters of the network
func (nw *Network) Symbols() *expr.Symbols {
	return nw.syms
}

// Sample draws a set of network variables from the prior
func (nw *Network) Sample(rnd erand.Rand) expr.Vars {
	vs := make(expr.Vars)
	nw.Graph.Sample(rnd, vs)
	nw.Weights.Sample(rnd, vs)
	return vs
}

// State returns the expressions of the network state: A, W, and the
// effective weights W_eff = A * W elementwise
func (nw *Network) State() *expr.Expr {
	return nw.state
}

// LogP returns the expression for the log prior probability of the network
func (nw *Network) LogP() *expr.Expr {
	return nw.logP
}

// SetData checks that the data describe the same number of neurons.
// The network priors do not depend on observations.
func (nw *Network) SetData(d *data.Set) error {
	if d.N != nw.N {
		return fmt.Errorf("network: data has %d neurons, network has %d", d.N, nw.N)
	}
	return nil
}

func (nw *Network) effWeights(sc *expr.Scope) (*etensor.Float64, error) {
	a, err := sc.Eval(nw.Graph.A)
	if err != nil {
		return nil, err
	}
	w, err := sc.Eval(nw.Weights.W)
	if err != nil {
		return nil, err
	}
	weff := expr.Clone(w)
	for i := range weff.Values {
		weff.Values[i] *= a.Values[i]
	}
	return weff, nil
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/goki/ki/kit"
	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/rng"
	"gonum.org/v1/gonum/stat/distuv"
)

// GraphTypes are the kinds of adjacency structure between neurons
type GraphTypes int32

//go:generate stringer -type=GraphTypes

var KiT_GraphTypes = kit.Enums.AddEnum(GraphTypesN, false, nil)

func (ev GraphTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *GraphTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

func (ev GraphTypes) MarshalText() ([]byte, error)  { return []byte(ev.String()), nil }
func (ev *GraphTypes) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

const (
	// Complete connects every neuron to every other neuron and itself
	Complete GraphTypes = iota

	// Empty has no connections: neurons are independent
	Empty

	// ErdosRenyi has each connection present independently with probability Rho.
	// The adjacency matrix is a free parameter.
	ErdosRenyi

	GraphTypesN
)

// GraphParams parameterize the adjacency prior
type GraphParams struct {
	Type GraphTypes `desc:"type of graph"`
	Rho  float64    `viewif:"Type=ErdosRenyi" def:"0.2" min:"0" max:"1" desc:"probability of each connection for ErdosRenyi graphs"`
}

func (gp *GraphParams) Defaults() {
	gp.Type = Complete
	gp.Rho = 0.2
}

// Update must be called after any changes to parameters
func (gp *GraphParams) Update() {
}

// Graph is the adjacency sub-model: A[pre, post] is 1 if pre projects to post
type Graph struct {
	GraphParams
	N int `desc:"number of neurons"`

	// A evaluates to the N x N adjacency matrix
	A *expr.Expr

	// LogP evaluates to the log prior probability of the adjacency matrix
	LogP *expr.Expr
}

// NewGraph returns a new graph over n neurons
func NewGraph(gp GraphParams, n int) *Graph {
	gr := &Graph{GraphParams: gp, N: n}
	gr.A = expr.NewLeaf("A", gr.adjacency)
	gr.LogP = expr.NewLeaf("graph_logp", gr.logP)
	return gr
}

// AddSymbols adds the free parameters of the graph, if any
func (gr *Graph) AddSymbols(ss *expr.Symbols) {
	if gr.Type == ErdosRenyi {
		ss.Add("A", []int{gr.N, gr.N}, "adjacency matrix, A[pre, post] in {0, 1}")
	}
}

// Sample draws the free parameters of the graph from the prior into vs
func (gr *Graph) Sample(rnd erand.Rand, vs expr.Vars) {
	if gr.Type != ErdosRenyi {
		return
	}
	bern := distuv.Bernoulli{P: gr.Rho, Src: rng.NewSource(rnd)}
	a := expr.Zeros(gr.N, gr.N)
	for i := range a.Values {
		a.Values[i] = bern.Rand()
	}
	vs["A"] = a
}

func (gr *Graph) adjacency(sc *expr.Scope) (*etensor.Float64, error) {
	switch gr.Type {
	case Complete:
		a := expr.Zeros(gr.N, gr.N)
		for i := range a.Values {
			a.Values[i] = 1
		}
		return a, nil
	case Empty:
		return expr.Zeros(gr.N, gr.N), nil
	default:
		return sc.Value(NS, "A")
	}
}

func (gr *Graph) logP(sc *expr.Scope) (*etensor.Float64, error) {
	if gr.Type != ErdosRenyi {
		return expr.Scalar(0), nil
	}
	a, err := sc.Value(NS, "A")
	if err != nil {
		return nil, err
	}
	bern := distuv.Bernoulli{P: gr.Rho}
	lp := 0.0
	for _, v := range a.Values {
		lp += bern.LogProb(v)
	}
	return expr.Scalar(lp), nil
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/rng"
	"gonum.org/v1/gonum/stat/distuv"
)

// WeightParams parameterize the Gaussian prior on connection weights.
// Self-connections have their own mean and sd, typically negative to
// produce refractoriness.
type WeightParams struct {
	Mu        float64 `def:"0" desc:"prior mean of weights between distinct neurons"`
	Sigma     float64 `def:"0.5" min:"0" desc:"prior standard deviation of weights between distinct neurons"`
	MuSelf    float64 `def:"-1" desc:"prior mean of self-connection weights"`
	SigmaSelf float64 `def:"0.25" min:"0" desc:"prior standard deviation of self-connection weights"`
}

func (wp *WeightParams) Defaults() {
	wp.Mu = 0
	wp.Sigma = 0.5
	wp.MuSelf = -1
	wp.SigmaSelf = 0.25
}

// Update must be called after any changes to parameters
func (wp *WeightParams) Update() {
}

// Prior returns the prior distribution of weight W[pre, post]
func (wp *WeightParams) Prior(pre, post int) distuv.Normal {
	if pre == post {
		return distuv.Normal{Mu: wp.MuSelf, Sigma: wp.SigmaSelf}
	}
	return distuv.Normal{Mu: wp.Mu, Sigma: wp.Sigma}
}

// Weights is the connection weight sub-model: W[pre, post] scales the
// impulse response of pre on post
type Weights struct {
	WeightParams
	N int `desc:"number of neurons"`

	// W evaluates to the N x N weight matrix
	W *expr.Expr

	// LogP evaluates to the log prior probability of the weights
	LogP *expr.Expr
}

// NewWeights returns new weights over n neurons
func NewWeights(wp WeightParams, n int) *Weights {
	wt := &Weights{WeightParams: wp, N: n}
	wt.W = expr.NewLeaf("W", func(sc *expr.Scope) (*etensor.Float64, error) {
		return sc.Value(NS, "W")
	})
	wt.LogP = expr.NewLeaf("weights_logp", wt.logP)
	return wt
}

// AddSymbols adds the weight matrix symbol
func (wt *Weights) AddSymbols(ss *expr.Symbols) {
	ss.Add("W", []int{wt.N, wt.N}, "weight matrix, W[pre, post]")
}

// Sample draws the weights from the prior into vs
func (wt *Weights) Sample(rnd erand.Rand, vs expr.Vars) {
	src := rng.NewSource(rnd)
	w := expr.Zeros(wt.N, wt.N)
	for pre := 0; pre < wt.N; pre++ {
		for post := 0; post < wt.N; post++ {
			nd := wt.Prior(pre, post)
			nd.Src = src
			w.Values[pre*wt.N+post] = nd.Rand()
		}
	}
	vs["W"] = w
}

func (wt *Weights) logP(sc *expr.Scope) (*etensor.Float64, error) {
	w, err := sc.Value(NS, "W")
	if err != nil {
		return nil, err
	}
	lp := 0.0
	for pre := 0; pre < wt.N; pre++ {
		for post := 0; post < wt.N; post++ {
			nd := wt.Prior(pre, post)
			lp += nd.LogProb(w.Values[pre*wt.N+post])
		}
	}
	return expr.Scalar(lp), nil
}

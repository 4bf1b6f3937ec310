// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/rng"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bias is the constant baseline current of a neuron
type Bias struct {
	BiasParams

	// IBias evaluates to the scalar bias current
	IBias *expr.Expr

	// LogP evaluates to the log prior probability of the bias
	LogP *expr.Expr
}

// NewBias returns a new bias sub-model
func NewBias(bp BiasParams) *Bias {
	bm := &Bias{BiasParams: bp}
	bm.IBias = expr.NewLeaf("I_bias", func(sc *expr.Scope) (*etensor.Float64, error) {
		return sc.Value(NS, "bias")
	})
	bm.LogP = expr.NewLeaf("bias_logp", func(sc *expr.Scope) (*etensor.Float64, error) {
		b, err := sc.Float(NS, "bias")
		if err != nil {
			return nil, err
		}
		return expr.Scalar(bm.prior().LogProb(b)), nil
	})
	return bm
}

func (bm *Bias) prior() distuv.Normal {
	return distuv.Normal{Mu: bm.Mu, Sigma: bm.Sigma}
}

// AddSymbols adds the bias symbol
func (bm *Bias) AddSymbols(ss *expr.Symbols) {
	ss.Add("bias", nil, "baseline bias current")
}

// Sample draws the bias from the prior into vs
func (bm *Bias) Sample(rnd erand.Rand, vs expr.Vars) {
	nd := bm.prior()
	nd.Src = rng.NewSource(rnd)
	vs["bias"] = expr.Scalar(nd.Rand())
}

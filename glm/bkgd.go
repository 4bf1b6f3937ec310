// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"fmt"

	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/memming/pyglm/data"
	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/rng"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bkgd is the stimulus drive: a linear filter w_stim applied to the stimulus
// row in effect at each time bin
type Bkgd struct {
	BkgdParams

	// Stim evaluates to the stimulus filter weights (empty if DStim is 0)
	Stim *expr.Expr

	// IStim evaluates to the stimulus current for each data bin, or the
	// scalar 0 when there is no stimulus
	IStim *expr.Expr

	// LogP evaluates to the log prior probability of the filter weights
	LogP *expr.Expr

	data *data.Set
}

// NewBkgd returns a new stimulus drive sub-model
func NewBkgd(bp BkgdParams) *Bkgd {
	bk := &Bkgd{BkgdParams: bp}
	bk.Stim = expr.NewLeaf("stim", func(sc *expr.Scope) (*etensor.Float64, error) {
		if bk.DStim == 0 {
			return expr.Zeros(0), nil
		}
		return sc.Value(NS, "w_stim")
	})
	bk.IStim = expr.NewLeaf("I_stim", bk.iStim)
	bk.LogP = expr.NewLeaf("bkgd_logp", func(sc *expr.Scope) (*etensor.Float64, error) {
		if bk.DStim == 0 {
			return expr.Scalar(0), nil
		}
		w, err := sc.Value(NS, "w_stim")
		if err != nil {
			return nil, err
		}
		nd := bk.prior()
		lp := 0.0
		for _, v := range w.Values {
			lp += nd.LogProb(v)
		}
		return expr.Scalar(lp), nil
	})
	return bk
}

func (bk *Bkgd) prior() distuv.Normal {
	return distuv.Normal{Mu: bk.Mu, Sigma: bk.Sigma}
}

// AddSymbols adds the stimulus filter symbol, if there is a stimulus
func (bk *Bkgd) AddSymbols(ss *expr.Symbols) {
	if bk.DStim > 0 {
		ss.Add("w_stim", []int{bk.DStim}, "stimulus filter weights")
	}
}

// Sample draws the filter weights from the prior into vs
func (bk *Bkgd) Sample(rnd erand.Rand, vs expr.Vars) {
	if bk.DStim == 0 {
		return
	}
	nd := bk.prior()
	nd.Src = rng.NewSource(rnd)
	w := expr.Zeros(bk.DStim)
	for i := range w.Values {
		w.Values[i] = nd.Rand()
	}
	vs["w_stim"] = w
}

// SetData checks the stimulus against the filter size and keeps d
func (bk *Bkgd) SetData(d *data.Set) error {
	if d.DStim() != bk.DStim {
		return fmt.Errorf("glm: data has %d stimulus features, model has %d", d.DStim(), bk.DStim)
	}
	bk.data = d
	return nil
}

func (bk *Bkgd) iStim(sc *expr.Scope) (*etensor.Float64, error) {
	if bk.DStim == 0 {
		return expr.Scalar(0), nil
	}
	if bk.data == nil {
		return nil, ErrNoData
	}
	w, err := sc.Value(NS, "w_stim")
	if err != nil {
		return nil, err
	}
	sr, _ := bk.data.Stim.Dims()
	drive := mat.NewVecDense(sr, nil)
	drive.MulVec(bk.data.Stim, mat.NewVecDense(bk.DStim, w.Values))
	nb := bk.data.NBins()
	is := expr.Zeros(nb)
	for t := 0; t < nb; t++ {
		is.Values[t] = drive.AtVec(bk.data.StimRow(t))
	}
	return is, nil
}

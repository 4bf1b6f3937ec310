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
	"github.com/memming/pyglm/network"
	"github.com/memming/pyglm/rng"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Impulse is the network input to a neuron: each presynaptic spike adds
// A[pre, post] * W[pre, post] * impulse[pre, lag] to the input of the
// postsynaptic neuron over the following TImp bins.  Each impulse response
// is a convex combination (w_ir on the simplex) of a raised cosine basis
// whose columns integrate to 1, so W is the integrated effect of one spike.
type Impulse struct {
	ImpParams
	N     int        `desc:"number of presynaptic neurons"`
	TImp  int        `desc:"number of lags in the impulse response"`
	Basis *mat.Dense `desc:"TImp x NBasis raised cosine basis"`

	// Impulse evaluates to the N x TImp impulse responses from each presynaptic neuron
	Impulse *expr.Expr

	// INet evaluates to the network input for each data bin
	INet *expr.Expr

	// LogP evaluates to the log prior probability of the basis weights
	LogP *expr.Expr

	net  *network.Network
	data *data.Set
}

// NewImpulse returns a new impulse response sub-model for n presynaptic
// neurons at bin width dt, with A and W taken from net
func NewImpulse(ip ImpParams, n int, dt float64, net *network.Network) (*Impulse, error) {
	tImp := int(ip.TMax/dt + 0.5)
	if tImp < 1 {
		return nil, fmt.Errorf("glm: impulse duration %v is less than one bin of %v", ip.TMax, dt)
	}
	if ip.NBasis < 1 || ip.NBasis > tImp {
		return nil, fmt.Errorf("glm: %d basis functions do not fit %d impulse lags", ip.NBasis, tImp)
	}
	im := &Impulse{ImpParams: ip, N: n, TImp: tImp, net: net}
	im.Basis = RaisedCosine(tImp, ip.NBasis, dt)
	im.Impulse = expr.NewLeaf("impulse", im.impulse)
	im.INet = expr.NewLeaf("I_net", im.iNet)
	im.LogP = expr.NewLeaf("imp_logp", im.logP)
	return im, nil
}

// AddSymbols adds the basis weight symbol
func (im *Impulse) AddSymbols(ss *expr.Symbols) {
	ss.Add("w_ir", []int{im.N, im.NBasis}, "impulse response basis weights, one simplex row per presynaptic neuron")
}

func (im *Impulse) prior(src rand.Source) *distmv.Dirichlet {
	alpha := make([]float64, im.NBasis)
	for i := range alpha {
		alpha[i] = im.Alpha
	}
	return distmv.NewDirichlet(alpha, src)
}

// Sample draws basis weights from the prior into vs
func (im *Impulse) Sample(rnd erand.Rand, vs expr.Vars) {
	dir := im.prior(rng.NewSource(rnd))
	w := expr.Zeros(im.N, im.NBasis)
	for pre := 0; pre < im.N; pre++ {
		dir.Rand(w.Values[pre*im.NBasis : (pre+1)*im.NBasis])
	}
	vs["w_ir"] = w
}

// SetData keeps d for the network input
func (im *Impulse) SetData(d *data.Set) {
	im.data = d
}

func (im *Impulse) impulse(sc *expr.Scope) (*etensor.Float64, error) {
	wv, err := sc.Value(NS, "w_ir")
	if err != nil {
		return nil, err
	}
	wir, err := expr.Dense(wv)
	if err != nil {
		return nil, err
	}
	imp := mat.NewDense(im.N, im.TImp, nil)
	imp.Mul(wir, im.Basis.T())
	return expr.FromDense(imp), nil
}

func (im *Impulse) iNet(sc *expr.Scope) (*etensor.Float64, error) {
	if im.data == nil {
		return nil, ErrNoData
	}
	post, err := neuronIdx(sc, im.N)
	if err != nil {
		return nil, err
	}
	imp, err := sc.Eval(im.Impulse)
	if err != nil {
		return nil, err
	}
	a, err := sc.Eval(im.net.Graph.A)
	if err != nil {
		return nil, err
	}
	w, err := sc.Eval(im.net.Weights.W)
	if err != nil {
		return nil, err
	}
	s := im.data.S
	nb := im.data.NBins()
	in := expr.Zeros(nb)
	for pre := 0; pre < im.N; pre++ {
		g := a.Values[pre*im.N+post] * w.Values[pre*im.N+post]
		if g == 0 {
			continue
		}
		ir := imp.Values[pre*im.TImp : (pre+1)*im.TImp]
		for t := 0; t < nb; t++ {
			ns := s.At(t, pre)
			if ns == 0 {
				continue
			}
			for l := 0; l < im.TImp && t+1+l < nb; l++ {
				in.Values[t+1+l] += g * ns * ir[l]
			}
		}
	}
	return in, nil
}

func (im *Impulse) logP(sc *expr.Scope) (*etensor.Float64, error) {
	w, err := sc.Value(NS, "w_ir")
	if err != nil {
		return nil, err
	}
	dir := im.prior(nil)
	lp := 0.0
	for pre := 0; pre < im.N; pre++ {
		lp += dir.LogProb(w.Values[pre*im.NBasis : (pre+1)*im.NBasis])
	}
	return expr.Scalar(lp), nil
}

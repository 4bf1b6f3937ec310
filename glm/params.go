// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"github.com/memming/pyglm/nlin"
)

// BiasParams parameterize the Gaussian prior on the baseline bias current
type BiasParams struct {
	Mu    float64 `def:"-3" desc:"prior mean of the bias, in log rate units for the Exp nonlinearity"`
	Sigma float64 `def:"0.5" min:"0" desc:"prior standard deviation of the bias"`
}

func (bp *BiasParams) Defaults() {
	bp.Mu = -3
	bp.Sigma = 0.5
}

// BkgdParams parameterize the linear stimulus filter
type BkgdParams struct {
	DStim int     `def:"0" min:"0" desc:"number of stimulus features -- 0 means no stimulus drive"`
	Mu    float64 `def:"0" desc:"prior mean of the stimulus filter weights"`
	Sigma float64 `def:"1" min:"0" desc:"prior standard deviation of the stimulus filter weights"`
}

func (bp *BkgdParams) Defaults() {
	bp.DStim = 0
	bp.Mu = 0
	bp.Sigma = 1
}

// ImpParams parameterize the impulse responses from presynaptic spikes
type ImpParams struct {
	TMax   float64 `def:"10" min:"0" desc:"duration of the impulse response -- sets the number of lags as TMax / Dt"`
	NBasis int     `def:"5" min:"1" desc:"number of raised cosine basis functions spanning the impulse response"`
	Alpha  float64 `def:"1" min:"0" desc:"concentration of the symmetric Dirichlet prior on each presynaptic neuron's basis weights"`
}

func (ip *ImpParams) Defaults() {
	ip.TMax = 10
	ip.NBasis = 5
	ip.Alpha = 1
}

// Params are the parameters of the GLM shared by all neurons
type Params struct {
	Bias BiasParams  `view:"inline" desc:"baseline bias"`
	Bkgd BkgdParams  `view:"inline" desc:"stimulus drive"`
	Imp  ImpParams   `view:"inline" desc:"impulse responses"`
	Nlin nlin.Params `view:"inline" desc:"rate nonlinearity"`
}

func (gp *Params) Defaults() {
	gp.Bias.Defaults()
	gp.Bkgd.Defaults()
	gp.Imp.Defaults()
	gp.Nlin.Defaults()
	gp.Update()
}

// Update must be called after any changes to parameters
func (gp *Params) Update() {
	gp.Nlin.Update()
}

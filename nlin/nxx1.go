// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlin

import "github.com/chewxy/math32"

// NXX1Params parameterize the noisy x/(x+1) rate function: x/(x+1) convolved
// with a gaussian noise kernel, which gives a smooth graded onset of firing
// just below threshold followed by a saturating, roughly linear regime.
// A piece-wise approximation stands in for the convolution lookup table:
// a sigmoid below zero, a linear interpolation just above zero, and a
// gain-corrected x/(x+1) above that.
type NXX1Params struct {
	Thr          float32 `def:"0" desc:"input level subtracted before applying the function -- shifts the firing onset"`
	Gain         float32 `def:"100,40,20" min:"0" desc:"gain (gamma) of the x/(x+1) function -- lower values give more graded responses"`
	NVar         float32 `def:"0.005,0.01" min:"0" desc:"variance of the gaussian noise kernel -- sets the curvature near threshold"`
	SigMult      float32 `def:"0.33" view:"-" json:"-" desc:"multiplier on the sigmoid used below threshold"`
	SigMultPow   float32 `def:"0.8" view:"-" json:"-" desc:"power for computing SigMultEff as a function of Gain * NVar"`
	SigGain      float32 `def:"3" view:"-" json:"-" desc:"gain multiplier on x for the sigmoid used below threshold"`
	InterpRange  float32 `def:"0.01" view:"-" json:"-" desc:"range above zero over which to interpolate"`
	GainCorRange float32 `def:"10" view:"-" json:"-" desc:"range in units of NVar over which gain correction applies"`
	GainCor      float32 `def:"0.1" view:"-" json:"-" desc:"gain correction multiplier"`

	SigGainNVar float32 `view:"-" json:"-" toml:"-" desc:"SigGain / NVar"`
	SigMultEff  float32 `view:"-" json:"-" toml:"-" desc:"SigMult * pow(Gain * NVar, SigMultPow)"`
	SigValAt0   float32 `view:"-" json:"-" toml:"-" desc:"0.5 * SigMultEff"`
	InterpVal   float32 `view:"-" json:"-" toml:"-" desc:"function value at InterpRange minus SigValAt0"`
}

func (xp *NXX1Params) Defaults() {
	xp.Thr = 0
	xp.Gain = 100
	xp.NVar = 0.005
	xp.SigMult = 0.33
	xp.SigMultPow = 0.8
	xp.SigGain = 3.0
	xp.InterpRange = 0.01
	xp.GainCorRange = 10.0
	xp.GainCor = 0.1
	xp.Update()
}

func (xp *NXX1Params) Update() {
	xp.SigGainNVar = xp.SigGain / xp.NVar
	xp.SigMultEff = xp.SigMult * math32.Pow(xp.Gain*xp.NVar, xp.SigMultPow)
	xp.SigValAt0 = 0.5 * xp.SigMultEff
	xp.InterpVal = xp.XX1GainCor(xp.InterpRange) - xp.SigValAt0
}

// XX1 is the basic x/(x+1) function
func (xp *NXX1Params) XX1(x float32) float32 { return x / (x + 1) }

// XX1GainCor is x/(x+1) with the gain reduced within GainCorRange
// to offset the effects of the noise convolution
func (xp *NXX1Params) XX1GainCor(x float32) float32 {
	gainCorFact := (xp.GainCorRange - (x / xp.NVar)) / xp.GainCorRange
	if gainCorFact < 0 {
		return xp.XX1(xp.Gain * x)
	}
	newGain := xp.Gain * (1 - xp.GainCor*gainCorFact)
	return xp.XX1(newGain * x)
}

// NoisyXX1 returns the noisy x/(x+1) value for x, in [0, 1).
// Accurate for NVar of .01 or less at the default gains.
func (xp *NXX1Params) NoisyXX1(x float32) float32 {
	switch {
	case x < 0:
		return xp.SigMultEff / (1 + math32.Exp(-(x * xp.SigGainNVar)))
	case x < xp.InterpRange:
		interp := 1 - ((xp.InterpRange - x) / xp.InterpRange)
		return xp.SigValAt0 + interp*xp.InterpVal
	default:
		return xp.XX1GainCor(x)
	}
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nlin provides the rate nonlinearities that map a neuron's summed
input current (log-intensity for the exponential case) to an instantaneous
firing rate.  The rate functions are concrete numeric functions applied
pointwise, both when simulating spikes and when evaluating the Poisson
likelihood of observed spike counts.
*/
package nlin

import (
	"math"

	"github.com/goki/ki/kit"
)

// Types are the available rate nonlinearities
type Types int

//go:generate stringer -type=Types

var KiT_Types = kit.Enums.AddEnum(TypesN, false, nil)

func (ev Types) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Types) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

func (ev Types) MarshalText() ([]byte, error)  { return []byte(ev.String()), nil }
func (ev *Types) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// The rate nonlinearities
const (
	// Exp is the canonical link for Poisson GLMs: rate = exp(Gain * x)
	Exp Types = iota

	// SoftPlus is the smooth rectifier log(1 + exp(Gain * x)), which grows
	// linearly instead of exponentially for large inputs
	SoftPlus

	// NXX1 is the saturating noisy x/(x+1) function, scaled by MaxRate
	NXX1

	TypesN
)

// softPlusLin is the input above which SoftPlus is computed as the identity,
// where log1p(exp(x)) == x to double precision.
const softPlusLin = 36

// Params select and parameterize the rate nonlinearity
type Params struct {
	Type    Types      `desc:"type of rate nonlinearity"`
	Gain    float64    `def:"1" min:"0" desc:"multiplier on the input current prior to the nonlinearity"`
	MaxRate float64    `viewif:"Type=NXX1" def:"1" min:"0" desc:"firing rate at saturation for the NXX1 function, in spikes per unit time"`
	XX1     NXX1Params `viewif:"Type=NXX1" view:"inline" desc:"noisy x/(x+1) parameters"`
}

func (np *Params) Defaults() {
	np.Type = Exp
	np.Gain = 1
	np.MaxRate = 1
	np.XX1.Defaults()
	np.Update()
}

// Update must be called after any changes to parameters
func (np *Params) Update() {
	np.XX1.Update()
}

// Rate returns the instantaneous firing rate for input current x
func (np *Params) Rate(x float64) float64 {
	gx := np.Gain * x
	switch np.Type {
	case SoftPlus:
		if gx > softPlusLin {
			return gx
		}
		return math.Log1p(math.Exp(gx))
	case NXX1:
		return np.MaxRate * float64(np.XX1.NoisyXX1(float32(gx)-np.XX1.Thr))
	default:
		return math.Exp(gx)
	}
}

// Rates applies Rate to each element of x, storing results in dst,
// which is allocated if nil, and returns it
func (np *Params) Rates(dst, x []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}
	for i, v := range x {
		dst[i] = np.Rate(v)
	}
	return dst
}

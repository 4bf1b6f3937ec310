// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// Params are the safety and reporting parameters of the spike simulator
type Params struct {
	MaxSpikesPerBin int     `def:"10" min:"1" desc:"maximum number of spikes any neuron may emit in one bin -- exceeding it aborts the simulation as numerically unstable, and indicates impulse weights that are too large for the bin width"`
	DevThresh       float64 `def:"3" min:"0" desc:"number of Poisson standard deviations by which a neuron's spike count may differ from its expected count before a warning is logged"`
	LogInterval     int     `def:"10000" min:"0" desc:"log progress every this many bins -- 0 disables progress logging"`
}

func (sp *Params) Defaults() {
	sp.MaxSpikesPerBin = 10
	sp.DevThresh = 3
	sp.LogInterval = 10000
}

// Update must be called after any changes to parameters
func (sp *Params) Update() {
	if sp.MaxSpikesPerBin < 1 {
		sp.MaxSpikesPerBin = 1
	}
}

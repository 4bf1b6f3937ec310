// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrBinAlign is returned for a window whose bounds are not whole bins
	ErrBinAlign = errors.New("window not aligned to bins")

	// ErrUnstable is matched by every InstabilityError
	ErrUnstable = errors.New("simulation numerically unstable")
)

// InstabilityError reports the bin and neuron where the simulation
// diverged: either too many spikes in one bin, or a non-finite rate
type InstabilityError struct {
	Bin    int
	Neuron int
	Count  int
	Rate   float64
	Cap    int
}

func (ie *InstabilityError) Error() string {
	if ie.Count > 0 {
		return fmt.Sprintf("sim: neuron %d fired %d spikes in bin %d, more than %d: decrease impulse weights or the bin width", ie.Neuron, ie.Count, ie.Bin, ie.Cap)
	}
	return fmt.Sprintf("sim: neuron %d has non-finite rate %v in bin %d", ie.Neuron, ie.Rate, ie.Bin)
}

func (ie *InstabilityError) Is(target error) bool {
	return target == ErrUnstable
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"math"
)

// binTol is the tolerance on a time being an exact multiple of the bin width
const binTol = 1.0e-9

// Window is the span of time to simulate, [Start, Stop) in bins of Dt.
// Start and Stop must be exact multiples of Dt.
type Window struct {
	Start float64
	Stop  float64
	Dt    float64
}

// Bins returns the index of the first bin (Start / Dt) and the number of
// bins in the window, or ErrBinAlign if Start or Stop fall inside a bin
func (w *Window) Bins() (first, nT int, err error) {
	if w.Dt <= 0 {
		return 0, 0, fmt.Errorf("%w: bin width %v must be > 0", ErrBinAlign, w.Dt)
	}
	if w.Stop < w.Start {
		return 0, 0, fmt.Errorf("%w: stop %v is before start %v", ErrBinAlign, w.Stop, w.Start)
	}
	fs, ok := binIdx(w.Start, w.Dt)
	if !ok {
		return 0, 0, fmt.Errorf("%w: start %v is not a multiple of %v", ErrBinAlign, w.Start, w.Dt)
	}
	fe, ok := binIdx(w.Stop, w.Dt)
	if !ok {
		return 0, 0, fmt.Errorf("%w: stop %v is not a multiple of %v", ErrBinAlign, w.Stop, w.Dt)
	}
	return fs, fe - fs, nil
}

func binIdx(t, dt float64) (int, bool) {
	r := t / dt
	ri := math.Round(r)
	if math.Abs(r-ri) > binTol*math.Max(1, math.Abs(r)) {
		return 0, false
	}
	return int(ri), true
}

// Time tracks the current bin of a running simulation
type Time struct {

	// current simulation time, at the start of the current bin
	Time float64

	// bin counter since the start of the window
	Bin int

	// simulation time at the start of the window
	Start float64

	// bin width
	Dt float64
}

// NewTime returns a new Time at the start of window w
func NewTime(w *Window) *Time {
	tm := &Time{Start: w.Start, Dt: w.Dt}
	tm.Reset()
	return tm
}

// Reset resets the counters back to the start of the window
func (tm *Time) Reset() {
	tm.Bin = 0
	tm.Time = tm.Start
}

// BinInc increments at the bin level
func (tm *Time) BinInc() {
	tm.Bin++
	tm.Time = tm.Start + float64(tm.Bin)*tm.Dt
}

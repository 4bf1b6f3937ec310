// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package data holds the observed, time-binned recordings a population is
conditioned on: spike counts for each neuron in each bin, an optional
covariate trajectory, and an optional stimulus design matrix sampled at its
own (coarser) bin width.
*/
package data

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalid is returned by Validate for inconsistent data
var ErrInvalid = errors.New("invalid data set")

// Set is a set of observations for a population of N neurons
type Set struct {
	S      *mat.Dense `desc:"spike counts, T/Dt bins x N neurons"`
	X      *mat.Dense `desc:"optional covariate trajectory, same shape as S"`
	N      int        `desc:"number of neurons"`
	Dt     float64    `desc:"bin width of S and X"`
	T      float64    `desc:"total duration of the recording"`
	Stim   *mat.Dense `desc:"optional stimulus design matrix, T/DtStim bins x DStim features"`
	DtStim float64    `desc:"bin width of the stimulus"`
}

// New returns a new Set for spike counts s (bins x neurons) at bin width dt
func New(s *mat.Dense, dt float64) *Set {
	ds := &Set{S: s, Dt: dt}
	if s != nil && !s.IsEmpty() {
		nb, n := s.Dims()
		ds.N = n
		ds.T = float64(nb) * dt
	}
	return ds
}

// SetStim sets the stimulus design matrix, sampled at bin width dtStim
func (ds *Set) SetStim(stim *mat.Dense, dtStim float64) {
	ds.Stim = stim
	ds.DtStim = dtStim
}

// NBins returns the number of spike count bins
func (ds *Set) NBins() int {
	if ds.S == nil || ds.S.IsEmpty() {
		return 0
	}
	r, _ := ds.S.Dims()
	return r
}

// DStim returns the number of stimulus features, 0 if no stimulus
func (ds *Set) DStim() int {
	if ds.Stim == nil || ds.Stim.IsEmpty() {
		return 0
	}
	_, c := ds.Stim.Dims()
	return c
}

// stimTol absorbs rounding in t*Dt/DtStim so bins on a stimulus boundary
// land in the new row
const stimTol = 1e-9

// StimRow returns the stimulus row in effect during spike bin t
func (ds *Set) StimRow(t int) int {
	return int(math.Floor(float64(t)*ds.Dt/ds.DtStim + stimTol))
}

// Validate checks that all parts of the set have consistent shapes
func (ds *Set) Validate() error {
	if ds.Dt <= 0 {
		return fmt.Errorf("%w: bin width %v must be > 0", ErrInvalid, ds.Dt)
	}
	nb := ds.NBins()
	if nb == 0 {
		return fmt.Errorf("%w: no spike counts", ErrInvalid)
	}
	_, n := ds.S.Dims()
	if n != ds.N {
		return fmt.Errorf("%w: S has %d neurons, N is %d", ErrInvalid, n, ds.N)
	}
	if want := int(math.Round(ds.T / ds.Dt)); want != nb {
		return fmt.Errorf("%w: S has %d bins, T / Dt is %d", ErrInvalid, nb, want)
	}
	if ds.X != nil {
		xr, xc := ds.X.Dims()
		if xr != nb || xc != n {
			return fmt.Errorf("%w: X is %dx%d, S is %dx%d", ErrInvalid, xr, xc, nb, n)
		}
	}
	if ds.DStim() > 0 {
		if ds.DtStim <= 0 {
			return fmt.Errorf("%w: stimulus bin width %v must be > 0", ErrInvalid, ds.DtStim)
		}
		sr, _ := ds.Stim.Dims()
		if last := ds.StimRow(nb - 1); last >= sr {
			return fmt.Errorf("%w: stimulus has %d rows, needs %d to cover T", ErrInvalid, sr, last+1)
		}
	}
	return nil
}

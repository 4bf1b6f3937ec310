// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/memming/pyglm/data"
	"gonum.org/v1/gonum/mat"
)

// Kernels holds the impulse responses of every connection,
// organized as [pre][post][lag]
type Kernels struct {
	N    int
	TImp int
	Vals []float64
}

// NewKernels returns zero kernels for n neurons with tImp lags
func NewKernels(n, tImp int) *Kernels {
	return &Kernels{N: n, TImp: tImp, Vals: make([]float64, n*n*tImp)}
}

// SetPost sets the kernels onto postsynaptic neuron post from imp,
// which is N pre x TImp lags, row major
func (kn *Kernels) SetPost(post int, imp []float64) {
	for pre := 0; pre < kn.N; pre++ {
		copy(kn.Kernel(pre, post), imp[pre*kn.TImp:(pre+1)*kn.TImp])
	}
}

// Kernel returns the impulse response of pre onto post
func (kn *Kernels) Kernel(pre, post int) []float64 {
	st := (pre*kn.N + post) * kn.TImp
	return kn.Vals[st : st+kn.TImp]
}

// Size returns the memory used by the kernel values
func (kn *Kernels) Size() datasize.ByteSize {
	return datasize.ByteSize(uintptr(len(kn.Vals)) * unsafe.Sizeof(float64(0)))
}

// Weff returns the effective weight of each connection: its gain times
// the integral of its impulse response over lags of width dt
func (kn *Kernels) Weff(gain *mat.Dense, dt float64) *mat.Dense {
	weff := mat.NewDense(kn.N, kn.N, nil)
	for pre := 0; pre < kn.N; pre++ {
		for post := 0; post < kn.N; post++ {
			weff.Set(pre, post, gain.At(pre, post)*data.Trapz(kn.Kernel(pre, post), dt))
		}
	}
	return weff
}

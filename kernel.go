// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/floats"
)

// Kernel provides the vector operations used by the iterative methods.
// All slices passed to a Kernel must have the same length.
type Kernel[T Scalar] interface {
	// Dot returns the real part of the inner product xᴴ*y.
	Dot(x, y []T) float64

	// Axpy computes y += alpha*x.
	Axpy(alpha float64, x, y []T)

	// Scal computes x *= alpha.
	Scal(alpha float64, x []T)
}

// DefaultKernel returns the gonum implementation of Kernel for T.
func DefaultKernel[T Scalar]() Kernel[T] {
	var (
		zero T
		k    any
	)
	switch any(zero).(type) {
	case float32:
		k = Float32Kernel{}
	case float64:
		k = Float64Kernel{}
	case complex128:
		k = Complex128Kernel{}
	}
	return k.(Kernel[T])
}

// Float64Kernel implements Kernel[float64] using gonum/floats.
type Float64Kernel struct{}

func (Float64Kernel) Dot(x, y []float64) float64 { return floats.Dot(x, y) }

func (Float64Kernel) Axpy(alpha float64, x, y []float64) { floats.AddScaled(y, alpha, x) }

func (Float64Kernel) Scal(alpha float64, x []float64) { floats.Scale(alpha, x) }

// Float32Kernel implements Kernel[float32] using gonum/blas/blas32. Dot
// accumulates in float64.
type Float32Kernel struct{}

func vec32(x []float32) blas32.Vector {
	return blas32.Vector{N: len(x), Inc: 1, Data: x}
}

func (Float32Kernel) Dot(x, y []float32) float64 { return blas32.DDot(vec32(x), vec32(y)) }

func (Float32Kernel) Axpy(alpha float64, x, y []float32) {
	blas32.Axpy(float32(alpha), vec32(x), vec32(y))
}

func (Float32Kernel) Scal(alpha float64, x []float32) { blas32.Scal(float32(alpha), vec32(x)) }

// Complex128Kernel implements Kernel[complex128] using gonum/blas/cblas128.
type Complex128Kernel struct{}

func vec128(x []complex128) cblas128.Vector {
	return cblas128.Vector{N: len(x), Inc: 1, Data: x}
}

func (Complex128Kernel) Dot(x, y []complex128) float64 {
	return real(cblas128.Dotc(vec128(x), vec128(y)))
}

func (Complex128Kernel) Axpy(alpha float64, x, y []complex128) {
	cblas128.Axpy(complex(alpha, 0), vec128(x), vec128(y))
}

func (Complex128Kernel) Scal(alpha float64, x []complex128) { cblas128.Dscal(alpha, vec128(x)) }

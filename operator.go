// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned by NewJacobi when the diagonal has a zero entry.
var ErrSingular = errors.New("krylov: singular diagonal")

// Operator is a linear operator acting on vectors of T. The operators passed
// to Solve must be symmetric, and a preconditioner must also be positive
// definite. Neither property is verified.
type Operator[T Scalar] interface {
	// Dims returns the dimensions of the operator.
	Dims() (r, c int)

	// MulVec computes A*x and stores the result into dst.
	// The lengths of dst and x are equal to the dimensions.
	MulVec(dst, x []T)
}

// MatrixOps describes an N×N operator
// by its matrix-vector product.
type MatrixOps[T Scalar] struct {
	// N is the dimension of the
	// operator.
	N int

	// Compute A*x and store the result
	// into dst.
	// It must be non-nil.
	MatVec func(dst, x []T)
}

// Dims implements the Operator interface.
func (m MatrixOps[T]) Dims() (r, c int) { return m.N, m.N }

// MulVec implements the Operator interface.
func (m MatrixOps[T]) MulVec(dst, x []T) { m.MatVec(dst, x) }

// Identity is the N×N identity operator. It is the default preconditioner.
type Identity[T Scalar] struct {
	N int
}

// Dims implements the Operator interface.
func (id Identity[T]) Dims() (r, c int) { return id.N, id.N }

// MulVec implements the Operator interface.
func (id Identity[T]) MulVec(dst, x []T) {
	if len(dst) != len(x) {
		panic("krylov: slice length mismatch")
	}
	copy(dst, x)
}

// Jacobi is the diagonal preconditioner
//  M = diag(A)^{-1}.
type Jacobi[T Scalar] struct {
	inv []T
}

// NewJacobi returns the Jacobi preconditioner for an operator with the given
// diagonal. The diagonal of an SPD operator is positive; NewJacobi only checks
// that no entry is zero.
func NewJacobi[T Scalar](diag []T) (*Jacobi[T], error) {
	inv := make([]T, len(diag))
	for i, d := range diag {
		if d == 0 {
			return nil, ErrSingular
		}
		inv[i] = 1 / d
	}
	return &Jacobi[T]{inv: inv}, nil
}

// Dims implements the Operator interface.
func (j *Jacobi[T]) Dims() (r, c int) { return len(j.inv), len(j.inv) }

// MulVec implements the Operator interface.
func (j *Jacobi[T]) MulVec(dst, x []T) {
	if len(dst) != len(j.inv) || len(x) != len(j.inv) {
		panic("krylov: slice length mismatch")
	}
	for i, v := range x {
		dst[i] = j.inv[i] * v
	}
}

// SymOperator adapts a gonum symmetric matrix to an Operator.
type SymOperator struct {
	mat.Symmetric
}

// MulVec implements the Operator interface.
func (s SymOperator) MulVec(dst, x []float64) {
	n := s.SymmetricDim()
	d := mat.NewVecDense(n, dst)
	d.MulVec(s.Symmetric, mat.NewVecDense(n, x))
}

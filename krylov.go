// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package krylov provides the preconditioned Conjugate Gradient method for
// symmetric linear systems, optionally constrained to a trust region
// (Steihaug-Toint CG).
package krylov

// Scalar is the element type of the vectors handled by the package.
type Scalar interface {
	float32 | float64 | complex128
}

// Operation specifies the type of operation.
type Operation uint64

// Operations commanded by Method.Iterate.
const (
	NoOperation Operation = 0

	// Multiply A*x where x is stored
	// in Context.Src and the result will
	// be stored in Context.Dst.
	MatVec Operation = 1 << (iota - 1)

	// Apply the preconditioner
	//  z = M r,
	// where r is stored in Context.Src,
	// and store z in Context.Dst.
	Precondition

	// Check convergence using the
	// residual norm in Context.ResidualNorm.
	// The first such operation after
	// Method.Init reports the initial
	// residual norm. The caller sets
	// Context.Converged before calling
	// Method.Iterate again.
	CheckResidualNorm

	// EndIteration indicates that Method
	// has finished what it considers to
	// be one iteration. If
	// Context.Converged is true, the
	// iterative process must be
	// terminated, and Method.Init must
	// be called before calling
	// Method.Iterate again.
	EndIteration
)

// Method is an iterative method that produces a sequence of vectors converging
// to the vector x satisfying a system of linear equations
//  A x = b,
// where A is a symmetric dim×dim operator, and x and b are vectors of
// dimension dim.
//
// Method uses a reverse-communication interface between the iterative algorithm
// and the caller. Method acts as a client that commands the caller to perform
// needed operations via Operation returned from Iterate methods. This provides
// independence of Method on representation of the operator A, and enables
// automation of common operations like checking for convergence and maintaining
// statistics.
type Method[T Scalar] interface {
	// Init initializes the method for solving a dim×dim linear system.
	Init(dim int)

	// Iterate retrieves data from Context, updates it, and returns the next
	// operation. The caller must perform the Operation using data in
	// Context, and depending on the state call Iterate again.
	Iterate(*Context[T]) (Operation, error)
}

// Context mediates the communication between a Method and the caller. It must
// not be modified or accessed apart from the commanded Operations.
type Context[T Scalar] struct {
	// X is the current approximate solution. On the first call to
	// Method.Iterate, X must be the zero vector.
	X []T
	// Residual is the current residual b-A*x. On the first call to
	// Method.Iterate, Residual must contain b.
	Residual []T
	// ResidualNorm is the norm of the current residual in the inner
	// product induced by the preconditioner. Method must update it when
	// it commands CheckResidualNorm.
	ResidualNorm float64
	// Converged indicates to Method that the ResidualNorm satisfies the
	// stopping criterion, or that the iterate reached the trust-region
	// boundary, as a result of CheckResidualNorm operation.
	Converged bool
	// OnBoundary is set by Method when the last step was cut short at
	// the trust-region boundary.
	OnBoundary bool

	// Curvature, Alpha and Step describe the last step: pᵀAp along the
	// search direction, the unconstrained step length and the step length
	// actually taken. Method updates them before commanding
	// CheckResidualNorm.
	Curvature, Alpha, Step float64

	// Src and Dst are the source and destination vectors for various
	// Operations.
	Src, Dst []T
}

func reuse[T Scalar](v []T, n int) []T {
	if cap(v) < n {
		return make([]T, n)
	}
	v = v[:n]
	clear(v)
	return v
}

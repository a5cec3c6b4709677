// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDimensionMismatch is returned when the operator, the preconditioner
	// and the right-hand side do not agree on the dimension of the system.
	ErrDimensionMismatch = errors.New("krylov: dimension mismatch")

	// ErrZeroCurvature is returned when pᵀAp is exactly zero along a search
	// direction and no trust region is available to take a step to.
	ErrZeroCurvature = errors.New("krylov: zero curvature breakdown")
)

// Settings holds various settings for
// solving a linear system.
type Settings[T Scalar] struct {
	// ATol and RTol specify the
	// absolute and relative tolerance
	// of the stopping criterion
	//  |r_i| <= ATol + RTol * |r_0|,
	// where the norms are induced by
	// the preconditioner.
	// They must not be negative. If
	// both are zero, they will be set
	// to 1e-8 and 1e-6, respectively.
	ATol, RTol float64

	// MaxIterations is the limit on the
	// number of iterations.
	// If it is zero, it will be set to
	// twice the dimension of the system.
	MaxIterations int

	// Preconditioner is a symmetric
	// positive definite approximation
	// of the inverse of A. It is applied
	// as z = M r.
	// If it is nil, the identity will
	// be used.
	Preconditioner Operator[T]

	// Observer, if not nil, is called
	// once after every iteration.
	Observer func(Iteration)
}

// DefaultSettings returns the default settings for a system of dimension dim.
func DefaultSettings[T Scalar](dim int) Settings[T] {
	var s Settings[T]
	defaultSettings(&s, dim)
	return s
}

func defaultSettings[T Scalar](s *Settings[T], dim int) {
	if s.ATol == 0 && s.RTol == 0 {
		s.ATol = 1e-8
		s.RTol = 1e-6
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 2 * dim
	}
	if s.Preconditioner == nil {
		s.Preconditioner = Identity[T]{N: dim}
	}
}

// Iteration is the diagnostic record of one iteration.
type Iteration struct {
	// Index is the 1-based iteration number.
	Index int
	// ResidualNorm is the residual norm after the iteration.
	ResidualNorm float64
	// Curvature is pᵀAp along the search direction.
	Curvature float64
	// Alpha is the unconstrained step length. It is +Inf if Curvature is zero.
	Alpha float64
	// Step is the step length actually taken.
	Step float64
}

// Status describes how a solve terminated.
type Status int

const (
	// ZeroSolution means that x = 0 solves the system exactly.
	ZeroSolution Status = iota + 1
	// TrustRegionBoundary means that the iterate was stopped on the
	// trust-region boundary.
	TrustRegionBoundary
	// IterationLimit means that the iteration limit was reached.
	IterationLimit
	// ToleranceReached means that the stopping criterion was satisfied.
	ToleranceReached
)

func (s Status) String() string {
	switch s {
	case ZeroSolution:
		return "x = 0 is a zero-residual solution"
	case TrustRegionBoundary:
		return "on trust-region boundary"
	case IterationLimit:
		return "maximum number of iterations exceeded"
	case ToleranceReached:
		return "solution good enough given atol and rtol"
	}
	return "unknown"
}

// Result holds the result of an iterative solve.
type Result[T Scalar] struct {
	// X is the approximate solution.
	X []T
	// Stats holds the statistics of the
	// solve.
	Stats Stats
}

// Stats holds statistics about an iterative solve.
type Stats struct {
	// Iterations is the number of
	// iterations done by Method.
	Iterations int
	// MatVec is the number of MatVec
	// operations commanded by Method.
	MatVec int
	// Precondition is the number of
	// Precondition operations commanded
	// by Method.
	Precondition int
	// ResidualNorm is the final norm of
	// the residual.
	ResidualNorm float64
	// Residuals is the history of
	// residual norms, starting with the
	// initial one. Its length is
	// Iterations+1.
	Residuals []float64
	// Converged reports whether the
	// stopping criterion was satisfied
	// or the trust-region boundary was
	// reached.
	Converged bool
	// Inconsistent is reserved for
	// detecting inconsistent systems.
	// It is always false.
	Inconsistent bool
	// Status tells how the solve
	// terminated.
	Status Status
	// StartTime is an approximate time
	// when the solve was started.
	StartTime time.Time
	// Runtime is an approximate duration
	// of the solve.
	Runtime time.Duration
}

// Solve solves the system of n linear equations
//  A*x = b,
// where the n×n symmetric operator A is represented by a. The dimension of the
// problem n is determined by the length of b. The initial approximation is the
// zero vector.
//
// method is an iterative method used for finding an approximate solution of the
// linear system. It must not be nil.
//
// settings provide means for adjusting the iterative process. Zero values of
// the fields mean default values.
//
// Solve returns an error wrapping ErrDimensionMismatch and an empty Result if
// the dimensions of a, settings.Preconditioner and b do not agree. Errors
// returned by method are passed to the caller together with the partial
// result. Reaching the iteration limit is not an error, it is reported by
// Stats.Status.
func Solve[T Scalar](a Operator[T], b []T, method Method[T], settings Settings[T]) (Result[T], error) {
	stats := Stats{StartTime: time.Now()}

	if a == nil {
		panic("krylov: nil operator")
	}
	if method == nil {
		panic("krylov: nil method")
	}
	dim := len(b)
	if err := checkDims("operator", a, dim); err != nil {
		return Result[T]{}, err
	}
	if settings.Preconditioner != nil {
		if err := checkDims("preconditioner", settings.Preconditioner, dim); err != nil {
			return Result[T]{}, err
		}
	}

	defaultSettings(&settings, dim)
	switch {
	case !(settings.ATol >= 0) || !(settings.RTol >= 0):
		panic("krylov: invalid tolerance")
	case settings.MaxIterations < 0:
		panic("krylov: negative iteration limit")
	}

	ctx := &Context[T]{
		X:        make([]T, dim),
		Residual: make([]T, dim),
	}
	copy(ctx.Residual, b) // r = b

	var err error
	if dim == 0 {
		stats.Residuals = []float64{0}
		ctx.Converged = true
	} else {
		err = iterate(a, ctx, settings, method, &stats)
	}

	stats.Converged = ctx.Converged
	if err == nil {
		stats.Status = status(ctx, &stats, settings.MaxIterations)
	}
	stats.Runtime = time.Since(stats.StartTime)
	return Result[T]{
		X:     ctx.X,
		Stats: stats,
	}, err
}

func checkDims[T Scalar](name string, op Operator[T], dim int) error {
	r, c := op.Dims()
	if r != c {
		return fmt.Errorf("%s is %d×%d, not square: %w", name, r, c, ErrDimensionMismatch)
	}
	if r != dim {
		return fmt.Errorf("%s is %d×%d, right-hand side has length %d: %w", name, r, c, dim, ErrDimensionMismatch)
	}
	return nil
}

// status maps the final state of a successful solve to a Status. The
// boundary takes precedence over the iteration limit, which takes
// precedence over the tolerance.
func status[T Scalar](ctx *Context[T], stats *Stats, maxIter int) Status {
	switch {
	case len(stats.Residuals) == 1 && stats.Residuals[0] == 0:
		return ZeroSolution
	case ctx.OnBoundary:
		return TrustRegionBoundary
	case stats.Iterations >= maxIter:
		return IterationLimit
	}
	return ToleranceReached
}

func iterate[T Scalar](a Operator[T], ctx *Context[T], settings Settings[T], method Method[T], stats *Stats) error {
	var tol float64

	method.Init(len(ctx.X))

	for {
		op, err := method.Iterate(ctx)
		if err != nil {
			return err
		}

		switch op {
		case NoOperation:

		case MatVec:
			a.MulVec(ctx.Dst, ctx.Src)
			stats.MatVec++

		case Precondition:
			settings.Preconditioner.MulVec(ctx.Dst, ctx.Src)
			stats.Precondition++

		case CheckResidualNorm:
			if stats.Residuals == nil {
				tol = settings.ATol + settings.RTol*ctx.ResidualNorm
				stats.Residuals = make([]float64, 0, min(settings.MaxIterations, len(ctx.X))+1)
			} else if settings.Observer != nil {
				settings.Observer(Iteration{
					Index:        len(stats.Residuals),
					ResidualNorm: ctx.ResidualNorm,
					Curvature:    ctx.Curvature,
					Alpha:        ctx.Alpha,
					Step:         ctx.Step,
				})
			}
			stats.Residuals = append(stats.Residuals, ctx.ResidualNorm)
			ctx.Converged = ctx.OnBoundary || ctx.ResidualNorm <= tol

		case EndIteration:
			stats.Iterations = len(stats.Residuals) - 1
			stats.ResidualNorm = ctx.ResidualNorm
			if ctx.Converged || stats.Iterations >= settings.MaxIterations {
				return nil
			}

		default:
			panic("krylov: invalid operation")
		}
	}
}

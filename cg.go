// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import "math"

// CG implements the Conjugate Gradient iterative method with preconditioning
// for solving the system of linear equations
//  Ax = b,
// where A is a symmetric positive definite operator.
//
// If Radius is positive, CG computes the Steihaug-Toint approximate solution
// of the trust-region subproblem: the iteration stops as soon as a step would
// leave the ball |x| <= Radius or the curvature pᵀAp along the search
// direction is not positive, and x is moved to the boundary of the ball. A
// then only needs to be symmetric.
//
// CG needs MatVec and Precondition operations.
type CG[T Scalar] struct {
	// Radius is the trust-region radius.
	// If it is not positive, the
	// iteration is unconstrained.
	Radius float64

	// Kernel provides the vector
	// operations. If it is nil,
	// DefaultKernel will be used.
	Kernel Kernel[T]

	k      Kernel[T]
	resume int

	gamma, gammaNext float64

	z  []T
	p  []T
	ap []T
}

// Init implements the Method interface.
func (cg *CG[T]) Init(dim int) {
	if dim <= 0 {
		panic("krylov: dimension not positive")
	}

	cg.k = cg.Kernel
	if cg.k == nil {
		cg.k = DefaultKernel[T]()
	}
	cg.z = reuse(cg.z, dim)
	cg.p = reuse(cg.p, dim)
	cg.ap = reuse(cg.ap, dim)
	cg.resume = 1
}

// Iterate implements the Method interface.
func (cg *CG[T]) Iterate(ctx *Context[T]) (Operation, error) {
	k := cg.k
	switch cg.resume {
	case 1:
		ctx.OnBoundary = false
		ctx.Src = ctx.Residual
		ctx.Dst = cg.z
		cg.resume = 2
		return Precondition, nil
		// Compute z_0 = M r_0.
	case 2:
		cg.gamma = k.Dot(ctx.Residual, cg.z) // γ = r_0 · z_0
		copy(cg.p, cg.z)                     // p_0 = z_0
		ctx.ResidualNorm = math.Sqrt(cg.gamma)
		ctx.Src = nil
		ctx.Dst = nil
		ctx.Converged = false
		cg.resume = 3
		return CheckResidualNorm, nil
	case 3:
		if ctx.Converged {
			cg.resume = 0 // Calling Iterate again without Init will panic.
			return EndIteration, nil
		}
		fallthrough
	case 4:
		ctx.Src = cg.p
		ctx.Dst = cg.ap
		cg.resume = 5
		return MatVec, nil
		// Compute Ap_i.
	case 5:
		pAp := k.Dot(cg.p, cg.ap)
		alpha := math.Inf(1)
		if pAp != 0 {
			alpha = cg.gamma / pAp // α = γ_i / (p_i · Ap_i)
		}
		step := alpha
		if cg.Radius > 0 {
			_, sigma, err := ToBoundary(k, ctx.X, cg.p, cg.Radius)
			if err != nil {
				cg.resume = 0
				return NoOperation, err
			}
			if !(pAp > 0) || alpha > sigma {
				step = sigma
				ctx.OnBoundary = true
			}
		} else if pAp == 0 {
			cg.resume = 0
			return NoOperation, ErrZeroCurvature
		}
		k.Axpy(step, cg.p, ctx.X)          // x_{i+1} = x_i + α p_i
		k.Axpy(-step, cg.ap, ctx.Residual) // r_{i+1} = r_i - α Ap_i

		ctx.Curvature = pAp
		ctx.Alpha = alpha
		ctx.Step = step
		ctx.Src = ctx.Residual
		ctx.Dst = cg.z
		cg.resume = 6
		return Precondition, nil
		// Compute z_{i+1} = M r_{i+1}.
	case 6:
		cg.gammaNext = k.Dot(ctx.Residual, cg.z)
		ctx.ResidualNorm = math.Sqrt(cg.gammaNext)
		ctx.Src = nil
		ctx.Dst = nil
		ctx.Converged = false
		cg.resume = 7
		return CheckResidualNorm, nil
	case 7:
		if ctx.Converged {
			cg.resume = 0 // Calling Iterate again without Init will panic.
			return EndIteration, nil
		}
		beta := cg.gammaNext / cg.gamma // β = γ_{i+1} / γ_i
		cg.gamma = cg.gammaNext
		k.Scal(beta, cg.p)
		k.Axpy(1, cg.z, cg.p) // p_{i+1} = z_{i+1} + β p_i
		cg.resume = 4
		return EndIteration, nil

	default:
		panic("krylov: CG.Init not called")
	}
}

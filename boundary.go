// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"errors"
	"math"
)

// ErrDegenerateBoundary is returned by ToBoundary when the boundary
// intersection has no two distinct real solutions.
var ErrDegenerateBoundary = errors.New("krylov: degenerate trust-region boundary intersection")

// ToBoundary computes the step lengths lo < hi such that
//  |x + σ p| = radius
// for σ ∈ {lo, hi}, that is, the roots of the quadratic
//  (pᵀp) σ² + 2 (xᵀp) σ + (xᵀx - radius²) = 0.
// If x is strictly inside the ball of the given radius, lo < 0 < hi.
//
// ToBoundary returns ErrDegenerateBoundary if radius or pᵀp are not positive,
// or if the discriminant of the quadratic is not positive.
func ToBoundary[T Scalar](k Kernel[T], x, p []T, radius float64) (lo, hi float64, err error) {
	if !(radius > 0) {
		return 0, 0, ErrDegenerateBoundary
	}
	pp := k.Dot(p, p)
	if !(pp > 0) {
		return 0, 0, ErrDegenerateBoundary
	}
	xp := k.Dot(x, p)
	c := k.Dot(x, x) - radius*radius

	// Quarter of the discriminant.
	disc := xp*xp - pp*c
	if !(disc > 0) {
		return 0, 0, ErrDegenerateBoundary
	}
	// Avoid cancellation between -xp and the square root.
	q := -(xp + math.Copysign(math.Sqrt(disc), xp))
	lo, hi = q/pp, c/q
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/vladimir-ch/krylov/internal/dok"
)

type testCase struct {
	name string
	n    int
	a    Operator[float64]
	diag []float64
	tol  float64
}

// randomSPD returns a dense n×n diagonally dominant symmetric matrix with
// positive diagonal.
func randomSPD(n int, rnd *rand.Rand) testCase {
	a := make([]float64, n*n)
	lda := n
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a[i*lda+j] = rnd.Float64()
		}
	}
	diag := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i*lda+i] += float64(n)
		diag[i] = a[i*lda+i]
	}
	bi := blas64.Implementation()
	return testCase{
		name: fmt.Sprintf("randomSPD%d", n),
		n:    n,
		a: MatrixOps[float64]{
			N: n,
			MatVec: func(dst, x []float64) {
				bi.Dsymv(blas.Upper, n, 1, a, lda, x, 1, 0, dst, 1)
			},
		},
		diag: diag,
		tol:  1e-10,
	}
}

// laplace1D assembles the finite-difference Laplacian on n interior nodes of
// [0, 1] with a variable positive coefficient k.
func laplace1D(n int, k func(x float64) float64) *dok.DOK[float64] {
	h := 1 / float64(n+1)
	m := dok.New[float64](n, n)
	for e := 0; e <= n; e++ {
		// Element between nodes e-1 and e.
		ke := k((float64(e)+0.5)*h) / (h * h)
		if e > 0 {
			m.AddAt(e-1, e-1, ke)
		}
		if e < n {
			m.AddAt(e, e, ke)
		}
		if e > 0 && e < n {
			m.AddAt(e-1, e, -ke)
			m.AddAt(e, e-1, -ke)
		}
	}
	return m
}

func laplaceCase(n int) testCase {
	m := laplace1D(n, func(x float64) float64 { return 1 + 100*x*x })
	return testCase{
		name: fmt.Sprintf("laplace%d", n),
		n:    n,
		a:    m.Triplet(),
		diag: m.Diagonal(),
		tol:  1e-7,
	}
}

// residual returns |b - A*x|_2.
func residual(a Operator[float64], x, b []float64) float64 {
	r := make([]float64, len(b))
	a.MulVec(r, x)
	var s float64
	for i := range r {
		d := b[i] - r[i]
		s += d * d
	}
	return math.Sqrt(s)
}

func ones(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	return x
}

// diagOp is a diagonal operator, possibly indefinite.
func diagOp[T Scalar](d ...T) MatrixOps[T] {
	return MatrixOps[T]{
		N: len(d),
		MatVec: func(dst, x []T) {
			for i := range x {
				dst[i] = d[i] * x[i]
			}
		},
	}
}

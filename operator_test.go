// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestIdentity(t *testing.T) {
	id := Identity[float64]{N: 3}
	r, c := id.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)

	dst := make([]float64, 3)
	id.MulVec(dst, []float64{1, 2, 3})
	assert.Equal(t, []float64{1, 2, 3}, dst)
	assert.Panics(t, func() { id.MulVec(dst, []float64{1}) })
}

func TestJacobi(t *testing.T) {
	j, err := NewJacobi([]float64{2, 4, 0.5})
	require.NoError(t, err)
	r, c := j.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)

	dst := make([]float64, 3)
	j.MulVec(dst, []float64{1, 1, 1})
	assert.Equal(t, []float64{0.5, 0.25, 2}, dst)

	_, err = NewJacobi([]float64{1, 0})
	assert.ErrorIs(t, err, ErrSingular)
}

func TestSymOperator(t *testing.T) {
	op := SymOperator{mat.NewSymDense(2, []float64{
		2, 1,
		1, 3,
	})}
	r, c := op.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)

	dst := make([]float64, 2)
	op.MulVec(dst, []float64{1, -1})
	assert.Equal(t, []float64{1, -2}, dst)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings[float64](5)
	assert.Equal(t, 1e-8, s.ATol)
	assert.Equal(t, 1e-6, s.RTol)
	assert.Equal(t, 10, s.MaxIterations)
	assert.Equal(t, Identity[float64]{N: 5}, s.Preconditioner)
	assert.Nil(t, s.Observer)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "unknown", Status(0).String())
	for _, s := range []Status{ZeroSolution, TrustRegionBoundary, IterationLimit, ToleranceReached} {
		assert.NotEqual(t, "unknown", s.String())
	}
}

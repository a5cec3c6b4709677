// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triplet implements a sparse matrix in coordinate (triplet) format.
package triplet

type Scalar interface {
	float32 | float64 | complex128
}

type triplet[T Scalar] struct {
	i, j int
	v    T
}

// Matrix is an r×c sparse matrix stored as a list of (i, j, v) triplets.
// Duplicate entries are summed.
type Matrix[T Scalar] struct {
	r, c int
	data []triplet[T]
}

func New[T Scalar](r, c int) *Matrix[T] {
	return &Matrix[T]{
		r: r,
		c: c,
	}
}

func (m *Matrix[T]) Dims() (r, c int) {
	return m.r, m.c
}

// NNZ returns the number of stored entries.
func (m *Matrix[T]) NNZ() int {
	return len(m.data)
}

func (m *Matrix[T]) Append(i, j int, v T) {
	if i < 0 || m.r <= i {
		panic("row index out of range")
	}
	if j < 0 || m.c <= j {
		panic("column index out of range")
	}
	m.data = append(m.data, triplet[T]{i, j, v})
}

// MulVec computes dst = A*x. Entries are accumulated in the order in which
// they were appended.
func (m *Matrix[T]) MulVec(dst, x []T) {
	if m.c != len(x) {
		panic("dimension mismatch")
	}
	if m.r != len(dst) {
		panic("dimension mismatch")
	}
	clear(dst)
	for _, aij := range m.data {
		dst[aij.i] += aij.v * x[aij.j]
	}
}

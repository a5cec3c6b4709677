// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dok implements a dictionary-of-keys sparse matrix used for
// assembling operators entry by entry.
package dok

import (
	"cmp"
	"slices"

	"github.com/vladimir-ch/krylov/internal/triplet"
)

type DOK[T triplet.Scalar] struct {
	Rows, Cols int

	data map[index]T
}

type index struct {
	row, col int
}

func New[T triplet.Scalar](r, c int) *DOK[T] {
	return &DOK[T]{
		Rows: r,
		Cols: c,
		data: make(map[index]T),
	}
}

func (m *DOK[T]) Dims() (r, c int) {
	return m.Rows, m.Cols
}

func (m *DOK[T]) At(i, j int) T {
	m.check(i, j)
	return m.data[index{i, j}]
}

func (m *DOK[T]) SetAt(i, j int, v T) {
	m.check(i, j)
	m.data[index{i, j}] = v
}

// AddAt adds v to the entry at (i, j).
func (m *DOK[T]) AddAt(i, j int, v T) {
	m.check(i, j)
	m.data[index{i, j}] += v
}

func (m *DOK[T]) check(i, j int) {
	if i < 0 || m.Rows <= i {
		panic("row index out of range")
	}
	if j < 0 || m.Cols <= j {
		panic("column index out of range")
	}
}

// Diagonal returns the main diagonal of m.
func (m *DOK[T]) Diagonal() []T {
	d := make([]T, min(m.Rows, m.Cols))
	for i := range d {
		d[i] = m.data[index{i, i}]
	}
	return d
}

// Triplet returns m in coordinate format with the entries in row-major order,
// so that the matrix-vector product does not depend on map iteration order.
func (m *DOK[T]) Triplet() *triplet.Matrix[T] {
	keys := make([]index, 0, len(m.data))
	for ij := range m.data {
		keys = append(keys, ij)
	}
	slices.SortFunc(keys, func(a, b index) int {
		if c := cmp.Compare(a.row, b.row); c != 0 {
			return c
		}
		return cmp.Compare(a.col, b.col)
	})
	t := triplet.New[T](m.Rows, m.Cols)
	for _, ij := range keys {
		t.Append(ij.row, ij.col, m.data[ij])
	}
	return t
}

func (m *DOK[T]) MulVec(dst, x []T) {
	if m.Cols != len(x) {
		panic("dimension mismatch")
	}
	if m.Rows != len(dst) {
		panic("dimension mismatch")
	}
	clear(dst)
	for ij, aij := range m.data {
		dst[ij.row] += aij * x[ij.col]
	}
}

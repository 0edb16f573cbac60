// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test fixtures and utilities.
//
// Purpose:
//   - Provide small, deterministic helpers for constructing operands.
//   - Force the generic (non-*Dense) kernel paths via the hide wrapper.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matrixkit/matrix"
)

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing kernels under test onto their interface fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense allocates an r×c *Dense and fills it row-major from vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: %d values for a %dx%d matrix", len(vals), r, c)
	}
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// MustIdentity returns the n×n identity or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads one element or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// InDelta fails the test unless |got-want| <= tol.
func InDelta(t *testing.T, want, got, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s: got %v, want %v (tol %v)", label, got, want, tol)
	}
}

// AssertAllClose fails the test unless got and want share a shape and agree
// elementwise within tol.
func AssertAllClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	if want.Rows() != got.Rows() || want.Cols() != got.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			want.Rows(), want.Cols(), got.Rows(), got.Cols())
	}
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w := MustAt(t, want, i, j)
			g := MustAt(t, got, i, j)
			if math.Abs(w-g) > tol {
				t.Fatalf("element (%d,%d): got %v, want %v (tol %v)", i, j, g, w, tol)
			}
		}
	}
}

// relTol scales a relative tolerance by the magnitude of the reference value,
// with a floor of the tolerance itself for near-zero references.
func relTol(ref, rel float64) float64 {
	scale := math.Abs(ref)
	if scale < 1 {
		scale = 1
	}

	return rel * scale
}

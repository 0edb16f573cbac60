// SPDX-License-Identifier: MIT
// Package matrix: Gaussian elimination kernels.
//
// Purpose:
//   - Determinant via row reduction of a private copy to upper-triangular
//     form with partial pivoting, tracking sign flips.
//   - Inverse via Gauss-Jordan elimination on an augmented [A|I] buffer,
//     reading A⁻¹ off the right half.
//
// Both routines share ONE internal row-reduction primitive (rowReduce)
// parameterized by "stop at triangular" vs "continue to reduced form", so
// pivot selection and the numerical-stability threshold are guaranteed
// identical between them.

package matrix

import (
	"fmt"
	"math"
)

// PivotEpsilon is the magnitude below which a pivot is treated as zero:
// elimination stops and the matrix is considered numerically singular.
// It is a design constant shared by Determinant and Inverse, not a
// user-configurable knob.
const PivotEpsilon = 1e-12

// reduceMode selects how far rowReduce carries the elimination.
type reduceMode int

const (
	// reduceTriangular stops at upper-triangular form: pivots are left in
	// place and only rows below the pivot are eliminated (determinant path).
	reduceTriangular reduceMode = iota

	// reduceDiagonal normalizes each pivot row and eliminates the pivot
	// column from every other row, yielding reduced row-echelon form on the
	// left block (Gauss-Jordan / inverse path).
	reduceDiagonal
)

// pivotRow returns the row r in [col, n) maximizing |buf[r*width+col]|.
// Deterministic: on ties the smallest row index wins (strict > comparison).
// Complexity: O(n-col).
func pivotRow(buf []float64, n, width, col int) int {
	piv := col
	for r := col + 1; r < n; r++ {
		if math.Abs(buf[r*width+col]) > math.Abs(buf[piv*width+col]) {
			piv = r
		}
	}

	return piv
}

// swapRows exchanges two full rows of a flat row-major buffer.
// Complexity: O(width).
func swapRows(buf []float64, width, a, b int) {
	rowA := buf[a*width : (a+1)*width]
	rowB := buf[b*width : (b+1)*width]
	for c := 0; c < width; c++ {
		rowA[c], rowB[c] = rowB[c], rowA[c]
	}
}

// rowReduce eliminates the leading n columns of an n×width row-major buffer
// in place and reports the accumulated determinant of that n×n block.
//
// Implementation:
//   - Stage 1: For column i = 0..n-1, select the partial pivot (max |value|
//     over rows [i,n)); a pivot magnitude below PivotEpsilon means the block
//     is numerically singular and elimination stops immediately.
//   - Stage 2: Swap the pivot row into place (each swap flips the sign
//     multiplier), then eliminate per mode:
//     reduceTriangular: multiply the running product by the pivot and
//     subtract factor*(row i) from every row r > i for columns c ≥ i;
//     reduceDiagonal:   divide row i by the pivot across the full width,
//     then subtract E[r][i]*(row i) from every row r ≠ i, skipping rows
//     whose leading entry is already below PivotEpsilon.
//
// Inputs:
//   - buf  : flat row-major working buffer, len(buf) == n*width; mutated.
//   - n    : number of rows == order of the leading block to reduce.
//   - width: row stride; width ≥ n (width == 2n for the augmented inverse).
//   - mode : reduceTriangular or reduceDiagonal.
//
// Returns:
//   - float64: determinant of the leading block, i.e. the product of pivots
//     times the swap sign in triangular mode; meaningless (1.0·sign) in
//     diagonal mode, where pivots are normalized away.
//   - bool   : false if a pivot fell below PivotEpsilon; buf is then left in
//     a partially reduced state and must be discarded by the caller.
//
// Determinism:
//   - Fixed column order, deterministic pivot tie-breaking, fixed row loops.
//
// Complexity:
//   - Time O(n²·width), Space O(1) beyond the caller's buffer.
func rowReduce(buf []float64, n, width int, mode reduceMode) (float64, bool) {
	det := 1.0  // running product of pivots (triangular mode)
	sign := 1.0 // flips on every row swap
	var (
		i, r, c     int     // loop iterators
		piv         int     // pivot row index for the current column
		pivot       float64 // pivot value after the swap
		factor      float64 // elimination multiplier for the current row
		base, baseI int     // flat row offsets
	)
	for i = 0; i < n; i++ {
		// Partial pivoting: largest |value| in column i over rows [i,n).
		piv = pivotRow(buf, n, width, i)
		if math.Abs(buf[piv*width+i]) < PivotEpsilon {
			// Numerically singular block; do not continue degenerate elimination.
			return 0.0, false
		}
		if piv != i {
			swapRows(buf, width, i, piv)
			sign = -sign
		}

		baseI = i * width
		pivot = buf[baseI+i]

		if mode == reduceTriangular {
			det *= pivot
			// Eliminate column i from every row below the pivot.
			for r = i + 1; r < n; r++ {
				base = r * width
				factor = buf[base+i] / pivot
				for c = i; c < width; c++ {
					buf[base+c] -= factor * buf[baseI+c]
				}
			}

			continue
		}

		// reduceDiagonal: normalize row i across the full width.
		for c = 0; c < width; c++ {
			buf[baseI+c] /= pivot
		}
		// Eliminate column i from every other row.
		for r = 0; r < n; r++ {
			if r == i {
				continue
			}
			base = r * width
			factor = buf[base+i]
			if math.Abs(factor) < PivotEpsilon {
				continue // entry already ~0, nothing to subtract
			}
			for c = 0; c < width; c++ {
				buf[base+c] -= factor * buf[baseI+c]
			}
		}
	}

	return det * sign, true
}

// flatSquareCopy snapshots a square matrix into a fresh flat n×n slice.
// Fast-path copies *Dense backing storage; fallback reads via At.
// Complexity: O(n²).
func flatSquareCopy(m Matrix, n int) ([]float64, error) {
	work := make([]float64, n*n)

	// Fast-path: contiguous copy from Dense storage.
	if d, ok := m.(*Dense); ok {
		copy(work, d.data)

		return work, nil
	}

	// Fallback: generic interface reads with fixed i→j order.
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			work[i*n+j] = v
		}
	}

	return work, nil
}

// Determinant computes det(A) by reducing a private copy of A to
// upper-triangular form with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); snapshot into a flat working copy
//     (the input is never mutated).
//   - Stage 2: rowReduce in triangular mode; the determinant is the product
//     of the pivots times the row-swap sign.
//
// Behavior highlights:
//   - A pivot magnitude below PivotEpsilon makes the matrix numerically
//     singular: the result is exactly 0.0 with a nil error. A genuine zero
//     determinant is therefore an ordinary success, distinguishable from the
//     ErrNonSquare failure path.
//   - A 0×0 matrix has determinant 1.0 (the empty product; the elimination
//     loop vacuously runs zero times).
//
// Inputs:
//   - m: non-nil square matrix of order n ≥ 0.
//
// Returns:
//   - float64: det(A), exact up to floating-point rounding for
//     well-conditioned inputs; no post-hoc rounding is applied.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (rows ≠ cols).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy, released on all paths.
func Determinant(m Matrix) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	// Empty matrix: the pivot loop runs zero times, leaving the empty product.
	n := m.Rows()
	if n == 0 {
		return 1.0, nil
	}

	// Work on a private copy; the input stays untouched.
	work, err := flatSquareCopy(m, n)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	det, ok := rowReduce(work, n, n, reduceTriangular)
	if !ok {
		// Numerically singular: determinant is exactly zero, not an error.
		return 0.0, nil
	}

	return det, nil
}

// Inverse computes A⁻¹ by Gauss-Jordan elimination with partial pivoting on
// an augmented [A|I] buffer.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); build an ephemeral n×2n buffer with
//     the input on the left and the identity on the right.
//   - Stage 2: rowReduce in diagonal mode; the left block becomes I and the
//     right block becomes A⁻¹, extracted into a fresh n×n Dense.
//
// Behavior highlights:
//   - Pivot selection and PivotEpsilon are identical to Determinant's (one
//     shared primitive), so "Determinant says 0.0" and "Inverse says
//     ErrSingular" agree on the same inputs.
//   - On any failure no result is produced; the augmented buffer is
//     function-scoped and reclaimed on every exit path. The input is never
//     mutated and the output is fully computed before being handed back.
//
// Inputs:
//   - m: non-nil square matrix of order n ≥ 1.
//
// Returns:
//   - Matrix: fresh n×n Dense holding A⁻¹.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (rows ≠ cols),
//     ErrSingular (pivot magnitude < PivotEpsilon during elimination),
//     ErrInvalidDimensions (0×0 input has no inverse representation here).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented buffer.
func Inverse(m Matrix) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	if n == 0 {
		return nil, matrixErrorf(opInverse, ErrInvalidDimensions)
	}

	// Build the augmented buffer E = [A|I], row stride 2n.
	width := 2 * n
	aug := make([]float64, n*width)
	var i, j int
	if d, ok := m.(*Dense); ok {
		// Fast-path: copy each row of A contiguously, then place the 1.
		for i = 0; i < n; i++ {
			copy(aug[i*width:i*width+n], d.data[i*n:(i+1)*n])
			aug[i*width+n+i] = 1.0
		}
	} else {
		// Fallback: generic interface reads with fixed i→j order.
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				aug[i*width+j] = v
			}
			aug[i*width+n+i] = 1.0
		}
	}

	// Full Gauss-Jordan reduction; a failed pivot means singular input.
	if _, ok := rowReduce(aug, n, width, reduceDiagonal); !ok {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// Extract the right half (columns n..2n-1) into a fresh Dense.
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i*width+n:(i+1)*width])
	}

	return inv, nil
}

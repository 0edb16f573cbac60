// SPDX-License-Identifier: MIT

// Package matrix is a dense-matrix arithmetic toolbox over row-major
// float64 storage.
//
// The matrix package provides:
//
//   - Dense, a contiguous row-major implementation of the Matrix interface,
//     with checked element access and deep cloning.
//   - Elementwise kernels (Add, Sub, Scale), the standard matrix product
//     (Mul) and Transpose, all returning freshly allocated results.
//   - Determinant via row reduction to upper-triangular form with partial
//     pivoting, and Inverse via Gauss-Jordan elimination on an augmented
//     [A|I] buffer. Both share one pivoting policy and epsilon threshold.
//   - Uniform Random fill and a line-oriented text format (Read/Write,
//     LoadFile/SaveFile) that round-trips float64 values exactly.
//
// All operations are synchronous, never mutate their inputs, and report
// failures through package-level sentinel errors matched with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix

// Package matrixkit is a dense-matrix arithmetic toolbox for row-major
// float64 matrices — create, combine, invert, persist.
//
// 🚀 What is matrixkit?
//
//	A small, deterministic library plus CLI that brings together:
//		• Dense storage: contiguous row-major matrices with checked access
//		• Elementwise ops: Add, Sub, Scale — plus Mul and Transpose
//		• Determinant: row reduction to triangular form with partial pivoting
//		• Inverse: Gauss-Jordan elimination on an augmented [A|I] buffer
//		• Text persistence: a plain "rows cols" + values format that
//		  round-trips float64 exactly
//		• Random fills: uniform [min,max] with reproducible seeding
//
// ✨ Why choose matrixkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest failures – typed sentinel errors, never a silently wrong result
//   - Pure Go core – deterministic, allocation-conscious kernels
//   - One pivoting policy – determinant and inverse share the same
//     elimination primitive and epsilon threshold
//
// Everything is organized under two packages and one command:
//
//	matrix/              — storage, kernels, persistence, random fills
//	internal/matrixtool/ — cobra commands, interactive shell, session state
//	cmd/matrixtool/      — the toolbox binary
//
// Dive into the package examples for usage patterns.
//
//	go get github.com/katalvlaran/matrixkit/matrix
package matrixkit

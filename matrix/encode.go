// SPDX-License-Identifier: MIT
// Package matrix: line-oriented text persistence.
//
// The format is deliberately plain: the first line holds "rows cols"
// (space-separated), followed by rows lines of cols space-separated decimal
// values. Writing uses the shortest representation that parses back to the
// identical float64, so Read(Write(M)) == M exactly. Reading fails cleanly
// on short or malformed input: no matrix is produced.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	opWrite = "Write"
	opRead  = "Read"
)

// Write serializes m to w in the text format.
//
// Errors: ErrNilMatrix (nil input); underlying writer errors are wrapped.
// Complexity: O(r*c).
func Write(w io.Writer, m Matrix) error {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWrite, err)
	}

	// Buffer so each element write is cheap; Flush reports deferred errors.
	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	if _, err := fmt.Fprintf(bw, "%d %d\n", rows, cols); err != nil {
		return matrixErrorf(opWrite, err)
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return matrixErrorf(opWrite, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if j > 0 {
				if err = bw.WriteByte(' '); err != nil {
					return matrixErrorf(opWrite, err)
				}
			}
			// 'g' with precision -1: shortest string that round-trips exactly.
			if _, err = bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return matrixErrorf(opWrite, err)
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return matrixErrorf(opWrite, err)
		}
	}

	if err = bw.Flush(); err != nil {
		return matrixErrorf(opWrite, err)
	}

	return nil
}

// Read parses a matrix from r in the text format. Whitespace is free-form
// (the reader scans tokens, not lines); trailing content after the last
// expected value is ignored.
//
// Errors: ErrBadFormat (short input or a token that is not a number),
// ErrInvalidDimensions (non-positive header counts).
// Complexity: O(r*c).
func Read(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// nextToken pulls one whitespace-delimited token or fails with ErrBadFormat.
	nextToken := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", matrixErrorf(opRead, err)
			}

			return "", matrixErrorf(opRead, fmt.Errorf("unexpected end of input: %w", ErrBadFormat))
		}

		return sc.Text(), nil
	}

	// Header: rows cols.
	var dims [2]int
	for d := 0; d < 2; d++ {
		tok, err := nextToken()
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, matrixErrorf(opRead, fmt.Errorf("header %q: %w", tok, ErrBadFormat))
		}
		dims[d] = n
	}

	m, err := NewDense(dims[0], dims[1])
	if err != nil {
		return nil, matrixErrorf(opRead, err)
	}

	// Body: rows*cols decimal values in row-major order.
	for idx := range m.data {
		tok, err := nextToken()
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, matrixErrorf(opRead, fmt.Errorf("value %q: %w", tok, ErrBadFormat))
		}
		m.data[idx] = v
	}

	return m, nil
}

// SaveFile writes m to path in the text format, truncating any existing file.
func SaveFile(path string, m Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return matrixErrorf(opWrite, err)
	}

	if err = Write(f, m); err != nil {
		_ = f.Close() // best effort; the write error wins

		return err
	}

	if err = f.Close(); err != nil {
		return matrixErrorf(opWrite, err)
	}

	return nil
}

// LoadFile reads a matrix from path in the text format.
func LoadFile(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, matrixErrorf(opRead, err)
	}
	defer f.Close()

	return Read(f)
}

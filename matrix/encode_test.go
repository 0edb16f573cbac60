// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixkit/matrix"
)

// rowsOf extracts a matrix into [][]float64 for go-cmp diffs.
func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// --- Write ---------------------------------------------------------------------

func TestWrite_Format(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2.5, -3, 0, 10, 0.125})
	var buf bytes.Buffer
	require.NoError(t, matrix.Write(&buf, m))
	require.Equal(t, "2 3\n1 2.5 -3\n0 10 0.125\n", buf.String())
}

func TestWrite_Nil_Err(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := matrix.Write(&buf, nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
	require.Zero(t, buf.Len())
}

// --- Read ----------------------------------------------------------------------

func TestRead_Basic(t *testing.T) {
	t.Parallel()

	m, err := matrix.Read(strings.NewReader("2 2\n1 2\n3 4\n"))
	require.NoError(t, err)
	AssertAllClose(t, NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4}), m, 0)
}

func TestRead_Malformed_Err(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", matrix.ErrBadFormat},
		{"header short", "3", matrix.ErrBadFormat},
		{"header junk", "two 2\n1 2\n", matrix.ErrBadFormat},
		{"body short", "2 2\n1 2 3\n", matrix.ErrBadFormat},
		{"body junk", "2 2\n1 2\n3 x\n", matrix.ErrBadFormat},
		{"zero rows", "0 2\n", matrix.ErrInvalidDimensions},
		{"negative cols", "2 -1\n", matrix.ErrInvalidDimensions},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.Read(strings.NewReader(tc.in))
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
			if m != nil {
				t.Fatalf("malformed input must produce no matrix, got %v", m)
			}
		})
	}
}

func TestRead_TrailingContentIgnored(t *testing.T) {
	t.Parallel()

	m, err := matrix.Read(strings.NewReader("1 1\n5\ngarbage afterwards"))
	require.NoError(t, err)
	require.Equal(t, 5.0, MustAt(t, m, 0, 0))
}

// --- Round trip -------------------------------------------------------------------

func TestRoundTrip_Exact(t *testing.T) {
	t.Parallel()

	// Values chosen to stress formatting: negatives, tiny, huge, non-terminating
	// binary fractions. The round trip must be bit-exact.
	m := NewFilledDense(t, 3, 3, []float64{
		1.0 / 3.0, -2.718281828459045, 6.02214076e23,
		5e-324, math.Pi, -0.1,
		12345678901234.5678, 0, math.MaxFloat64,
	})

	var buf bytes.Buffer
	require.NoError(t, matrix.Write(&buf, m))
	back, err := matrix.Read(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(rowsOf(t, m), rowsOf(t, back)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// --- Files ----------------------------------------------------------------------

func TestSaveLoadFile_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "m.txt")
	m := NewFilledDense(t, 2, 2, []float64{4, 3, 6, 3})
	require.NoError(t, matrix.SaveFile(path, m))

	back, err := matrix.LoadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(rowsOf(t, m), rowsOf(t, back)); diff != "" {
		t.Fatalf("file round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Missing_Err(t *testing.T) {
	t.Parallel()

	_, err := matrix.LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixkit/matrix"
)

// --- NewDense ----------------------------------------------------------------

func TestNewDense_ZeroFilled(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			require.Zero(t, MustAt(t, m, i, j))
		}
	}
}

func TestNewDense_InvalidDims_Err(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {2, -5}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		if !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Fatalf("NewDense(%d,%d): want ErrInvalidDimensions, got %v", dims[0], dims[1], err)
		}
	}
}

// --- At / Set ------------------------------------------------------------------

func TestDense_SetAt_Roundtrip(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 42.5))
	require.Equal(t, 42.5, MustAt(t, m, 1, 2))
}

func TestDense_AtSet_OutOfRange_Err(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		if _, err := m.At(idx[0], idx[1]); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("At(%d,%d): want ErrOutOfRange, got %v", idx[0], idx[1], err)
		}
		if err := m.Set(idx[0], idx[1], 1); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("Set(%d,%d): want ErrOutOfRange, got %v", idx[0], idx[1], err)
		}
	}
}

// --- Clone ---------------------------------------------------------------------

func TestDense_Clone_Independent(t *testing.T) {
	t.Parallel()

	orig := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	dup := orig.Clone()

	// Mutating the clone must not leak into the original.
	require.NoError(t, dup.Set(0, 0, -9))
	require.Equal(t, 1.0, MustAt(t, orig, 0, 0))
	require.Equal(t, -9.0, MustAt(t, dup, 0, 0))

	// And the other way around.
	require.NoError(t, orig.Set(1, 1, 7))
	require.Equal(t, 4.0, MustAt(t, dup, 1, 1))
}

// --- NewIdentity -----------------------------------------------------------------

func TestNewIdentity_Diagonal(t *testing.T) {
	t.Parallel()

	id := MustIdentity(t, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(t, want, MustAt(t, id, i, j))
		}
	}
}

// --- NewDenseFromRows ---------------------------------------------------------------

func TestNewDenseFromRows_CopiesData(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	// The source slice stays owned by the caller; mutating it must not alias.
	rows[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewDenseFromRows_Ragged_Err(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("want ErrBadShape, got %v", err)
	}
}

func TestNewDenseFromRows_Empty_Err(t *testing.T) {
	t.Parallel()

	for _, rows := range [][][]float64{nil, {}, {{}}} {
		_, err := matrix.NewDenseFromRows(rows)
		if !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Fatalf("want ErrInvalidDimensions, got %v", err)
		}
	}
}

// --- String ----------------------------------------------------------------------

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, -3, 0})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

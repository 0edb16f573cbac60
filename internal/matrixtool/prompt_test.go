// SPDX-License-Identifier: MIT

package matrixtool

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPrompter(in string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer

	return NewPrompter(strings.NewReader(in), &out), &out
}

func TestPrompter_ReadInt_RejectsJunkAndReprompts(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("abc 1.5 3")
	n, err := p.ReadInt("n: ")
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Contains(t, out.String(), "Invalid input, expected an integer")
}

func TestPrompter_ReadPositiveInt_RejectsNonPositive(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("-1 0 4")
	n, err := p.ReadPositiveInt("rows: ")
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Contains(t, out.String(), "Value must be positive")
}

func TestPrompter_ReadFloat_RejectsJunkAndReprompts(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("oops 2.5")
	v, err := p.ReadFloat("v: ")
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	require.Contains(t, out.String(), "Invalid input, expected a number")
}

func TestPrompter_EOF_IsInputClosed(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("")
	_, err := p.ReadInt("n: ")
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("want ErrInputClosed, got %v", err)
	}
}

func TestPrompter_ReadMatrix(t *testing.T) {
	t.Parallel()

	// Shape, then cells in row-major order; junk along the way is re-prompted.
	p, out := newTestPrompter("2 2 1 2 x 3 4")
	m, err := p.ReadMatrix()
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	want := []float64{1, 2, 3, 4}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i*2+j], v)
		}
	}
	require.Contains(t, out.String(), "A[1][0] = ")
	require.Contains(t, out.String(), "Invalid input")
}

func TestPrompter_ReadMatrix_EOFMidway(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("2 2 1 2")
	_, err := p.ReadMatrix()
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("want ErrInputClosed, got %v", err)
	}
}

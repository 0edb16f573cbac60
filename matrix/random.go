// SPDX-License-Identifier: MIT
// Package matrix: uniform random fill.

package matrix

import (
	"math"
	"math/rand"
	"time"
)

const opRandom = "Random"

// Random creates an r×c Dense filled with uniform values in [minV, maxV].
// Bounds given in reverse order are swapped rather than rejected. A nil rng
// falls back to a time-seeded source; pass a seeded *rand.Rand for
// reproducible fills.
//
// Errors: ErrInvalidDimensions (non-positive shape), ErrNaNInf (non-finite bounds).
// Complexity: O(r*c).
func Random(rows, cols int, minV, maxV float64, rng *rand.Rand) (*Dense, error) {
	// Bounds must be finite; NaN/Inf would poison every entry.
	if math.IsNaN(minV) || math.IsInf(minV, 0) || math.IsNaN(maxV) || math.IsInf(maxV, 0) {
		return nil, matrixErrorf(opRandom, ErrNaNInf)
	}
	// Swap reversed bounds instead of failing.
	if maxV < minV {
		minV, maxV = maxV, minV
	}

	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	span := maxV - minV
	for idx := range m.data {
		m.data[idx] = minV + span*rng.Float64()
	}

	return m, nil
}

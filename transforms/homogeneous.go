// SPDX-License-Identifier: MIT

package transforms

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// R2T lifts an n×n rotation into the (n+1)×(n+1) homogeneous matrix with a
// zero translation column and a [0 … 0 1] last row.
//
// Errors: ErrNonSquare when r is not square.
// Complexity: O(n²).
func R2T(r mat.Matrix) (*mat.Dense, error) {
	n, c := r.Dims()
	if n != c {
		return nil, fmt.Errorf("R2T: %dx%d: %w", n, c, ErrNonSquare)
	}

	return RT2Tr(r, make([]float64, n))
}

// RT2Tr assembles the homogeneous matrix [[R, t], [0, 1]] from an n×n
// rotation block and an n-element translation.
//
// Errors: ErrNonSquare for a non-square r, ErrDimensionMismatch when
// len(t) != n.
// Complexity: O(n²).
func RT2Tr(r mat.Matrix, t []float64) (*mat.Dense, error) {
	n, c := r.Dims()
	if n != c {
		return nil, fmt.Errorf("RT2Tr: %dx%d: %w", n, c, ErrNonSquare)
	}
	if len(t) != n {
		return nil, fmt.Errorf("RT2Tr: translation len %d for %dx%d: %w", len(t), n, n, ErrDimensionMismatch)
	}

	out := mat.NewDense(n+1, n+1, nil)
	out.Slice(0, n, 0, n).(*mat.Dense).Copy(r) // rotation block
	for i := 0; i < n; i++ {
		out.Set(i, n, t[i]) // translation column
	}
	out.Set(n, n, 1)

	return out, nil
}

// T2R returns a copy of the upper-left (n-1)×(n-1) block of an n×n
// homogeneous matrix, i.e. t with its last row and column deleted.
//
// Errors: ErrNonSquare, or ErrDimensionMismatch when t is smaller than 2×2.
func T2R(t mat.Matrix) (*mat.Dense, error) {
	n, c := t.Dims()
	if n != c {
		return nil, fmt.Errorf("T2R: %dx%d: %w", n, c, ErrNonSquare)
	}
	if n < 2 {
		return nil, fmt.Errorf("T2R: %dx%d: %w", n, c, ErrDimensionMismatch)
	}

	out := mat.NewDense(n-1, n-1, nil)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			out.Set(i, j, t.At(i, j))
		}
	}

	return out, nil
}

// TranslOf returns the translation column of an n×n homogeneous matrix
// (the first n-1 entries of its last column).
func TranslOf(t mat.Matrix) ([]float64, error) {
	n, c := t.Dims()
	if n != c {
		return nil, fmt.Errorf("TranslOf: %dx%d: %w", n, c, ErrNonSquare)
	}
	if n < 2 {
		return nil, fmt.Errorf("TranslOf: %dx%d: %w", n, c, ErrDimensionMismatch)
	}

	v := make([]float64, n-1)
	for i := range v {
		v[i] = t.At(i, n-1)
	}

	return v, nil
}

// Round returns a copy of m with every entry rounded half away from zero to
// the given number of decimal places.
//
// Complexity: O(r·c).
func Round(m mat.Matrix, decimals int) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 {
		return scalar.Round(v, decimals)
	}, m)

	return out
}

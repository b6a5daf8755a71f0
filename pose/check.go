// SPDX-License-Identifier: MIT

package pose

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PlanarKind tags the variant held by a Planar.
type PlanarKind uint8

const (
	// PlanarInvalid is the zero kind, or a matrix of unsupported shape.
	PlanarInvalid PlanarKind = iota
	PlanarSO2
	PlanarSE2
	PlanarMatrix2 // raw 2×2 matrix, not yet validated
	PlanarMatrix3 // raw 3×3 matrix, not yet validated
)

// String implements fmt.Stringer.
func (k PlanarKind) String() string {
	switch k {
	case PlanarSO2:
		return "SO2"
	case PlanarSE2:
		return "SE2"
	case PlanarMatrix2:
		return "matrix 2x2"
	case PlanarMatrix3:
		return "matrix 3x3"
	default:
		return "invalid"
	}
}

// Planar is a closed variant over {SO2, SE2, 2×2 matrix, 3×3 matrix}.
// Build it with PlanarOfSO2, PlanarOfSE2 or PlanarOfMatrix; exactly one
// payload field is meaningful for a given kind.
type Planar struct {
	kind PlanarKind
	so2  SO2
	se2  SE2
	m    mat.Matrix
}

// PlanarOfSO2 wraps an SO2.
func PlanarOfSO2(p SO2) Planar { return Planar{kind: PlanarSO2, so2: p} }

// PlanarOfSE2 wraps an SE2.
func PlanarOfSE2(p SE2) Planar { return Planar{kind: PlanarSE2, se2: p} }

// PlanarOfMatrix wraps a raw matrix, tagging it by shape. Shapes other than
// 2×2 and 3×3 (and nil) produce PlanarInvalid.
func PlanarOfMatrix(m mat.Matrix) Planar {
	if m == nil {
		return Planar{}
	}
	switch r, c := m.Dims(); {
	case r == 2 && c == 2:
		return Planar{kind: PlanarMatrix2, m: m}
	case r == 3 && c == 3:
		return Planar{kind: PlanarMatrix3, m: m}
	default:
		return Planar{}
	}
}

// Kind returns the variant tag.
func (p Planar) Kind() PlanarKind { return p.kind }

// SO2 returns the SO2 payload when Kind() == PlanarSO2.
func (p Planar) SO2() (SO2, bool) { return p.so2, p.kind == PlanarSO2 }

// SE2 returns the SE2 payload when Kind() == PlanarSE2.
func (p Planar) SE2() (SE2, bool) { return p.se2, p.kind == PlanarSE2 }

// Check validates p and returns a fresh SO2 or SE2 variant: pose variants are
// re-validated element by element and copied; 2×2 matrices become SO2; 3×3
// matrices become SE2.
//
// Errors: ErrEmptyPose, ErrInvalidMatrix (and its shape siblings) and
// ErrInvalidArgs for PlanarInvalid.
func Check(p Planar, opts ...Option) (Planar, error) {
	o := gatherOptions(opts...)

	switch p.kind {
	case PlanarSO2:
		if p.so2.Len() == 0 {
			return Planar{}, fmt.Errorf("Check: SO2: %w", ErrEmptyPose)
		}
		for i, m := range p.so2.c.mats {
			if err := validateRotation(m, 2, o.eps); err != nil {
				return Planar{}, fmt.Errorf("Check: SO2[%d]: %w", i, err)
			}
		}
		return PlanarOfSO2(p.so2.New()), nil

	case PlanarSE2:
		if p.se2.Len() == 0 {
			return Planar{}, fmt.Errorf("Check: SE2: %w", ErrEmptyPose)
		}
		for i, m := range p.se2.c.mats {
			if err := validateHomogeneous(m, 2, o.eps); err != nil {
				return Planar{}, fmt.Errorf("Check: SE2[%d]: %w", i, err)
			}
		}
		return PlanarOfSE2(p.se2.New()), nil

	case PlanarMatrix2:
		so2, err := SO2FromMatrix(p.m, opts...)
		if err != nil {
			return Planar{}, fmt.Errorf("Check: %w", err)
		}
		return PlanarOfSO2(so2), nil

	case PlanarMatrix3:
		se2, err := SE2FromMatrix(p.m, opts...)
		if err != nil {
			return Planar{}, fmt.Errorf("Check: %w", err)
		}
		return PlanarOfSE2(se2), nil

	default:
		return Planar{}, fmt.Errorf("Check: accepts SO2, SE2, 2x2 or 3x3 matrix: %w", ErrInvalidArgs)
	}
}

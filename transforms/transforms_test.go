// SPDX-License-Identifier: MIT
package transforms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigid/transforms"
)

const tol = 1e-12

// TestRot2Quarter checks the 90° planar rotation maps x onto y.
func TestRot2Quarter(t *testing.T) {
	r := transforms.Rot2(math.Pi / 2)
	want := mat.NewDense(2, 2, []float64{0, -1, 1, 0})
	require.True(t, mat.EqualApprox(r, want, tol), "got\n%v", mat.Formatted(r))
}

// TestAxisRotationsOrthonormal checks RᵀR = I and det R = 1 for each axis builder.
func TestAxisRotationsOrthonormal(t *testing.T) {
	builders := map[string]func(float64) *mat.Dense{
		"x": transforms.RotX,
		"y": transforms.RotY,
		"z": transforms.RotZ,
	}
	for name, build := range builders {
		build := build
		t.Run(name, func(t *testing.T) {
			for _, theta := range []float64{0, 0.3, math.Pi / 2, -2.1, math.Pi} {
				r := build(theta)
				var p mat.Dense
				p.Mul(r.T(), r)
				require.True(t, mat.EqualApprox(&p, transforms.Identity(3), tol))
				require.InDelta(t, 1.0, mat.Det(r), tol)
			}
		})
	}
}

// TestRotZMatchesRot2 ensures the z rotation embeds the planar rotation.
func TestRotZMatchesRot2(t *testing.T) {
	rz := transforms.RotZ(0.7)
	r2 := transforms.Rot2(0.7)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, r2.At(i, j), rz.At(i, j))
		}
	}
}

// TestHomogeneousRoundTrip covers RT2Tr → T2R / TranslOf.
func TestHomogeneousRoundTrip(t *testing.T) {
	r := transforms.Rot2(0.4)
	T, err := transforms.RT2Tr(r, []float64{1, 2})
	require.NoError(t, err)

	rows, cols := T.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, []float64{0, 0, 1}, mat.Row(nil, 2, T))

	back, err := transforms.T2R(T)
	require.NoError(t, err)
	require.True(t, mat.Equal(r, back))

	tr, err := transforms.TranslOf(T)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, tr)
}

// TestR2TZeroTranslation checks the lift adds a zero column.
func TestR2TZeroTranslation(t *testing.T) {
	T, err := transforms.R2T(transforms.Identity(3))
	require.NoError(t, err)
	require.True(t, mat.Equal(transforms.Identity(4), T))
}

// TestShapeErrors covers the sentinel errors.
func TestShapeErrors(t *testing.T) {
	rect := mat.NewDense(2, 3, nil)

	_, err := transforms.R2T(rect)
	require.ErrorIs(t, err, transforms.ErrNonSquare)

	_, err = transforms.RT2Tr(transforms.Identity(2), []float64{1})
	require.ErrorIs(t, err, transforms.ErrDimensionMismatch)

	_, err = transforms.T2R(rect)
	require.ErrorIs(t, err, transforms.ErrNonSquare)

	_, err = transforms.TranslOf(mat.NewDense(1, 1, nil))
	require.ErrorIs(t, err, transforms.ErrDimensionMismatch)
}

// TestRoundAbsorbsNoise verifies 15-decimal rounding removes trig residue.
func TestRoundAbsorbsNoise(t *testing.T) {
	r := transforms.Round(transforms.Rot2(math.Pi/2), 15)
	require.Equal(t, 0.0, r.At(0, 0))
	require.Equal(t, 1.0, r.At(1, 0))
	require.Equal(t, -1.0, r.At(0, 1))
}

func TestDegRad(t *testing.T) {
	require.InDelta(t, math.Pi, transforms.DegToRad(180), tol)
	require.InDelta(t, 90.0, transforms.RadToDeg(math.Pi/2), tol)
}

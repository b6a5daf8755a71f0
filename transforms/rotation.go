// SPDX-License-Identifier: MIT

package transforms

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Degrees-to-radians factors. Kept as constants so the conversion is a
// single multiply at every call site.
const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 { return deg * degToRad }

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 { return rad * radToDeg }

// Rot2 returns the 2×2 rotation by theta radians:
//
//	[cos θ  -sin θ]
//	[sin θ   cos θ]
//
// Complexity: O(1).
func Rot2(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)

	return mat.NewDense(2, 2, []float64{
		c, -s,
		s, c,
	})
}

// RotX returns the 3×3 rotation by theta radians about the x axis.
func RotX(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)

	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// RotY returns the 3×3 rotation by theta radians about the y axis.
func RotY(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)

	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// RotZ returns the 3×3 rotation by theta radians about the z axis.
func RotZ(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)

	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// Identity returns the n×n identity matrix. n must be positive.
func Identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id
}

// SPDX-License-Identifier: MIT
// Package pose_test contains test helpers.
//
// Purpose:
//   - Small must-constructors that fail the test on error.
//   - Shared tolerances and angle fixtures.

package pose_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigid/pose"
)

// approx is the tolerance for comparisons that pass through atan2 or a
// re-rounding step.
const approx = 1e-12

// angleFixtures spans all four quadrants, both signs and the ±π boundary.
var angleFixtures = []float64{0, 0.3, 1, math.Pi / 2, 2.5, math.Pi, -0.7, -math.Pi / 2, -3}

func mustSO2(t *testing.T, theta float64, unit pose.Unit) pose.SO2 {
	t.Helper()
	p, err := pose.SO2FromAngle(theta, unit)
	if err != nil {
		t.Fatalf("SO2FromAngle(%g, %s): %v", theta, unit, err)
	}

	return p
}

func mustSO2s(t *testing.T, thetas ...float64) pose.SO2 {
	t.Helper()
	p, err := pose.SO2FromAngles(thetas, pose.Rad)
	if err != nil {
		t.Fatalf("SO2FromAngles(%v): %v", thetas, err)
	}

	return p
}

func mustSE2(t *testing.T, x, y, theta float64, unit pose.Unit) pose.SE2 {
	t.Helper()
	p, err := pose.SE2FromXYTheta(x, y, theta, unit)
	if err != nil {
		t.Fatalf("SE2FromXYTheta(%g, %g, %g): %v", x, y, theta, err)
	}

	return p
}

func mustAxis(t *testing.T, build func(float64, pose.Unit) (pose.SO3, error), theta float64, unit pose.Unit) pose.SO3 {
	t.Helper()
	p, err := build(theta, unit)
	if err != nil {
		t.Fatalf("axis rotation(%g): %v", theta, err)
	}

	return p
}

// mustAt unwraps an At result; it takes the pair directly so calls read as
// mustAt(p.At(0)).
func mustAt(m *mat.Dense, err error) *mat.Dense {
	if err != nil {
		panic(err)
	}

	return m
}

func dense(r, c int, vals ...float64) *mat.Dense {
	return mat.NewDense(r, c, vals)
}

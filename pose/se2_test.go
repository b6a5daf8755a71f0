// SPDX-License-Identifier: MIT
package pose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/rigid/pose"
)

// TestSE2PureTranslation checks SE2(1,2,0): translation and homogeneous form.
func TestSE2PureTranslation(t *testing.T) {
	p := mustSE2(t, 1, 2, 0, pose.Rad)

	require.Equal(t, []r2.Vec{{X: 1, Y: 2}}, p.Transl())
	require.True(t, mat.Equal(dense(3, 3,
		1, 0, 1,
		0, 1, 2,
		0, 0, 1,
	), p.TMatrix()[0]))

	v := p.TranslVec()[0]
	require.Equal(t, 1.0, v.AtVec(0))
	require.Equal(t, 2.0, v.AtVec(1))
}

// TestSE2ValidAndUnitDeterminant checks every constructed element passes
// IsValidSE2 and has det ≈ 1.
func TestSE2ValidAndUnitDeterminant(t *testing.T) {
	xs := make([]float64, len(angleFixtures))
	ys := make([]float64, len(angleFixtures))
	for i := range angleFixtures {
		xs[i], ys[i] = float64(i)-3, 2*float64(i)
	}
	p, err := pose.NewSE2(pose.SE2Args{X: xs, Y: ys, Theta: angleFixtures})
	require.NoError(t, err)
	require.Equal(t, len(angleFixtures), p.Len())

	for i, m := range p.All() {
		require.Truef(t, pose.IsValidSE2(m), "element %d", i)
	}
	for _, d := range p.Det() {
		require.InDelta(t, 1.0, d, pose.DefaultEpsilon)
	}
}

// TestSE2InverseRoundTrip checks inv(inv(p)) ≈ p and p·inv(p) ≈ I.
func TestSE2InverseRoundTrip(t *testing.T) {
	for _, th := range angleFixtures {
		p := mustSE2(t, 1.5, -2.25, th, pose.Rad)

		require.Truef(t, p.Inv().Inv().EqualApprox(p, approx), "theta=%g", th)

		id, err := p.Mul(p.Inv())
		require.NoError(t, err)
		require.Truef(t, id.EqualApprox(pose.IdentitySE2(), approx), "theta=%g", th)
	}
}

// TestSE2DoubleInverseOffGrid checks inv(inv(p)) ≈ p for translations that
// are not exactly representable, where the second rounding can move the
// last digit.
func TestSE2DoubleInverseOffGrid(t *testing.T) {
	for _, th := range angleFixtures {
		for _, xy := range [][2]float64{{0.1, 0.2}, {-3.7, 1e-3}, {123.456, -78.9}} {
			p := mustSE2(t, xy[0], xy[1], th, pose.Rad)
			require.Truef(t, p.Inv().Inv().EqualApprox(p, pose.DefaultEpsilon*1e3),
				"x=%g y=%g theta=%g", xy[0], xy[1], th)
		}
	}
}

// TestSE2InverseValues checks the closed form −Rᵀt on a quarter turn.
func TestSE2InverseValues(t *testing.T) {
	inv := mustSE2(t, 1, 0, 90, pose.Deg).Inv()

	tr := inv.Transl()[0]
	require.InDelta(t, 0.0, tr.X, approx)
	require.InDelta(t, 1.0, tr.Y, approx)

	a, err := inv.Rotation().Angle()
	require.NoError(t, err)
	require.InDelta(t, -math.Pi/2, a, approx)
	require.Equal(t, pose.Deg, inv.Unit())
}

// TestSE2CompositionIdentity checks p·I == p and I·p == p.
func TestSE2CompositionIdentity(t *testing.T) {
	id := pose.IdentitySE2()
	p := mustSE2(t, 3, -1, 0.8, pose.Rad)

	right, err := p.Mul(id)
	require.NoError(t, err)
	require.True(t, right.Equal(p))

	left, err := id.Mul(p)
	require.NoError(t, err)
	require.True(t, left.Equal(p))
}

// TestSE2Composition checks t1 + R1·t2 and angle addition.
func TestSE2Composition(t *testing.T) {
	a := mustSE2(t, 1, 0, 90, pose.Deg)
	b := mustSE2(t, 1, 0, 0, pose.Deg)

	ab, err := a.Mul(b)
	require.NoError(t, err)
	tr := ab.Transl()[0]
	require.InDelta(t, 1.0, tr.X, approx)
	require.InDelta(t, 1.0, tr.Y, approx)
	require.InDelta(t, math.Pi/2, ab.Angles()[0], approx)

	_, err = a.Mul(pose.SE2{})
	require.ErrorIs(t, err, pose.ErrEmptyPose)
}

// TestSE2Broadcast checks a length-1 operand against a longer one.
func TestSE2Broadcast(t *testing.T) {
	many, err := pose.NewSE2(pose.SE2Args{X: []float64{1, 2, 3}, Y: []float64{0, 0, 0}, Theta: []float64{90}, Unit: pose.Deg})
	require.NoError(t, err)
	require.Equal(t, 3, many.Len())
	for _, a := range many.Angles() {
		require.InDelta(t, math.Pi/2, a, approx)
	}

	shift := mustSE2(t, 0, 5, 0, pose.Rad)
	out, err := shift.Mul(many)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	for i, tr := range out.Transl() {
		require.InDelta(t, float64(i+1), tr.X, approx)
		require.InDelta(t, 5.0, tr.Y, approx)
	}

	two, err := pose.NewSE2(pose.SE2Args{X: []float64{1, 2}, Y: []float64{0, 0}})
	require.NoError(t, err)
	_, err = many.Mul(two)
	require.ErrorIs(t, err, pose.ErrShapeMismatch)
}

// TestSE2XYT checks [x, y, θ] extraction in both units.
func TestSE2XYT(t *testing.T) {
	p := mustSE2(t, 3, 4, 90, pose.Deg)

	deg, err := p.XYT(pose.Deg)
	require.NoError(t, err)
	require.InDelta(t, 3.0, deg[0].AtVec(0), approx)
	require.InDelta(t, 4.0, deg[0].AtVec(1), approx)
	require.InDelta(t, 90.0, deg[0].AtVec(2), 1e-9)

	rad, err := p.XYT(pose.Rad)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, rad[0].AtVec(2), approx)

	_, err = p.XYT("turns")
	require.ErrorIs(t, err, pose.ErrInvalidUnit)
}

// TestSE2Interp covers endpoints, midpoint and argument errors.
func TestSE2Interp(t *testing.T) {
	p1 := mustSE2(t, 0, 0, 0, pose.Rad)
	p2 := mustSE2(t, 2, 4, 1, pose.Rad)

	at0, err := p1.Interp(p2, 0)
	require.NoError(t, err)
	require.True(t, at0.EqualApprox(p1, approx))

	at1, err := p1.Interp(p2, 1)
	require.NoError(t, err)
	require.True(t, at1.EqualApprox(p2, approx))

	mid, err := p1.Interp(p2, 0.5)
	require.NoError(t, err)
	tr := mid.Transl()[0]
	require.InDelta(t, 1.0, tr.X, approx)
	require.InDelta(t, 2.0, tr.Y, approx)
	require.InDelta(t, 0.5, mid.Angles()[0], approx)

	_, err = p1.Interp(p2, 2)
	require.ErrorIs(t, err, pose.ErrInterpParam)
}

// TestSE2FromMatrix covers accepted and rejected homogeneous matrices.
func TestSE2FromMatrix(t *testing.T) {
	tests := []struct {
		name    string
		m       mat.Matrix
		wantErr error
	}{
		{"quarter turn with offset", dense(3, 3, 0, -1, 1, 1, 0, 2, 0, 0, 1), nil},
		{"bad last row", dense(3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 2), pose.ErrInvalidMatrix},
		{"projective row", dense(3, 3, 1, 0, 0, 0, 1, 0, 1, 0, 1), pose.ErrInvalidMatrix},
		{"shear block", dense(3, 3, 1, 1, 0, 0, 1, 0, 0, 0, 1), pose.ErrInvalidMatrix},
		{"2x2", dense(2, 2, 1, 0, 0, 1), pose.ErrBadShape},
		{"inf", dense(3, 3, 1, 0, math.Inf(-1), 0, 1, 0, 0, 0, 1), pose.ErrNaNInf},
		{"nil", nil, pose.ErrNilMatrix},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p, err := pose.SE2FromMatrix(tc.m)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, mat.Equal(tc.m, mustAt(p.At(0))))
			require.Equal(t, []r2.Vec{{X: 1, Y: 2}}, p.Transl())
		})
	}
}

// TestSE2ArgumentShapes covers every call shape and the list rules.
func TestSE2ArgumentShapes(t *testing.T) {
	so2 := mustSO2s(t, 0.1, 0.2)
	se2 := mustSE2(t, 1, 1, 1, pose.Rad)
	quarter := dense(2, 2, 0, -1, 1, 0)
	shear := dense(2, 2, 1, 1, 0, 1)

	tests := []struct {
		name    string
		args    pose.SE2Args
		wantErr error
		wantLen int
	}{
		{"identity", pose.SE2Args{}, nil, 1},
		{"xy", pose.SE2Args{X: []float64{1, 2}, Y: []float64{3, 4}}, nil, 2},
		{"xy theta per element", pose.SE2Args{X: []float64{1, 2}, Y: []float64{3, 4}, Theta: []float64{0.1, 0.2}}, nil, 2},
		{"xy rot", pose.SE2Args{X: []float64{1}, Y: []float64{3}, Rot: []mat.Matrix{quarter}}, nil, 1},
		{"rot only", pose.SE2Args{Rot: []mat.Matrix{quarter, quarter}}, nil, 2},
		{"theta only", pose.SE2Args{Theta: []float64{0, 1, 2}}, nil, 3},
		{"from so2", pose.SE2Args{SO2: &so2}, nil, 2},
		{"copy", pose.SE2Args{SE2: &se2}, nil, 1},

		{"x alone", pose.SE2Args{X: []float64{1}}, pose.ErrInvalidArgs, 0},
		{"so2 and se2", pose.SE2Args{SO2: &so2, SE2: &se2}, pose.ErrInvalidArgs, 0},
		{"theta and rot", pose.SE2Args{Theta: []float64{1}, Rot: []mat.Matrix{quarter}}, pose.ErrInvalidArgs, 0},
		{"empty lists", pose.SE2Args{X: []float64{}, Y: []float64{}}, pose.ErrInvalidArgs, 0},
		{"x y mismatch", pose.SE2Args{X: []float64{1}, Y: []float64{1, 2}}, pose.ErrLengthMismatch, 0},
		{"theta mismatch", pose.SE2Args{X: []float64{1, 2}, Y: []float64{1, 2}, Theta: []float64{1, 2, 3}}, pose.ErrLengthMismatch, 0},
		{"rot mismatch", pose.SE2Args{X: []float64{1, 2}, Y: []float64{1, 2}, Rot: []mat.Matrix{quarter}}, pose.ErrLengthMismatch, 0},
		{"shear rot", pose.SE2Args{Rot: []mat.Matrix{shear}}, pose.ErrInvalidMatrix, 0},
		{"nil rot", pose.SE2Args{Rot: []mat.Matrix{nil}}, pose.ErrNilMatrix, 0},
		{"nan x", pose.SE2Args{X: []float64{math.NaN()}, Y: []float64{0}}, pose.ErrNaNInf, 0},
		{"bad unit", pose.SE2Args{Unit: "grad"}, pose.ErrInvalidUnit, 0},
		{"empty so2", pose.SE2Args{SO2: &pose.SO2{}}, pose.ErrEmptyPose, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p, err := pose.NewSE2(tc.args)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantLen, p.Len())
			require.Len(t, p.Transl(), tc.wantLen)
			require.Equal(t, tc.wantLen, p.Rotation().Len())
		})
	}
}

// TestSE2InvalidArgsListsShapes checks the message names the call shapes.
func TestSE2InvalidArgsListsShapes(t *testing.T) {
	_, err := pose.NewSE2(pose.SE2Args{X: []float64{1}})
	require.ErrorIs(t, err, pose.ErrInvalidArgs)
	for _, shape := range []string{"SE2(x, y)", "SE2(x, y, theta)", "SE2(so2)", "SE2(rot)"} {
		require.Contains(t, err.Error(), shape)
	}
}

// TestSE2FromMatrixSplitsViews checks the rotation and translation views
// are read from the stored homogeneous matrix.
func TestSE2FromMatrixSplitsViews(t *testing.T) {
	c, sn := math.Cos(0.7), math.Sin(0.7)
	p, err := pose.SE2FromMatrix(dense(3, 3,
		c, -sn, 4.5,
		sn, c, -1.25,
		0, 0, 1,
	))
	require.NoError(t, err)

	require.Equal(t, []r2.Vec{{X: 4.5, Y: -1.25}}, p.Transl())
	m := mustAt(p.At(0))
	require.True(t, mat.EqualApprox(m.Slice(0, 2, 0, 2), mustAt(p.Rotation().At(0)), approx))
	require.InDelta(t, 0.7, p.Angles()[0], approx)
}

// TestSE2RotationViewsAgree checks the rotation part and the homogeneous
// matrices stay in lockstep after every operation.
func TestSE2RotationViewsAgree(t *testing.T) {
	p, err := pose.NewSE2(pose.SE2Args{X: []float64{1, -2}, Y: []float64{0.5, 3}, Theta: []float64{0.4, -2.9}})
	require.NoError(t, err)

	q, err := p.Mul(p.Inv())
	require.NoError(t, err)

	for _, v := range []pose.SE2{p, p.Inv(), q, p.New()} {
		rot := v.Rotation()
		tr := v.Transl()
		for i, m := range v.All() {
			r := mustAt(rot.At(i))
			require.True(t, mat.Equal(r, m.(*mat.Dense).Slice(0, 2, 0, 2)))
			require.Equal(t, tr[i].X, m.At(0, 2))
			require.Equal(t, tr[i].Y, m.At(1, 2))
		}
	}
}

// TestSE2AccessAndNotImplemented checks bounds and explicit unsupported signals.
func TestSE2AccessAndNotImplemented(t *testing.T) {
	p := pose.IdentitySE2()

	_, err := p.At(3)
	require.ErrorIs(t, err, pose.ErrOutOfRange)

	_, err = p.SE3()
	require.ErrorIs(t, err, pose.ErrNotImplemented)
	_, err = p.Log()
	require.ErrorIs(t, err, pose.ErrNotImplemented)

	require.Contains(t, p.String(), "SE2 len=1")
}

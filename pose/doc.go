// Package pose provides value types for rigid-body transformations:
// planar and spatial rotations (SO2, SO3) and rigid motions (SE2, SE3),
// stored as orthogonal / homogeneous matrices.
//
// 🚀 What is a pose value?
//
//	An ordered, immutable collection of matrices of one fixed shape. A single
//	rotation is a collection of length one; a trajectory is a longer one.
//	Group operations work element-wise and broadcast a length-1 operand.
//
// ✨ Guarantees:
//   - Every constructor validates its argument combination against the
//     documented call shapes before building anything (ErrInvalidArgs).
//   - Supplied matrices must be orthogonal with det = 1 (rotations), and
//     homogeneous rigid motions must end in [0 … 0 1].
//   - Every stored matrix is rounded to Decimals (15) places at insertion.
//   - Values never change after construction; accessors return copies, so
//     concurrent reads are safe.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rigid/pose"
//
//	r, _ := pose.SO2FromAngle(90, pose.Deg)
//	a, _ := r.Angle()                  // π/2
//
//	T, _ := pose.SE2FromXYTheta(1, 2, 30, pose.Deg)
//	id, _ := T.Mul(T.Inv())            // identity (within rounding)
//
//	walk, _ := pose.NewSE2(pose.SE2Args{
//	    X: []float64{0, 1, 2}, Y: []float64{0, 0, 0}, Theta: []float64{0},
//	})
//	moved, _ := T.Mul(walk)            // T broadcast over three poses
//
// Not provided (ErrNotImplemented): group logarithm, eigen decomposition,
// SE2→SE3 embedding and SE3 interpolation.
package pose

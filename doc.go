// Package rigid is a small toolkit for rigid-body transformations: planar
// and spatial rotations and rigid motions, kept valid after every operation.
//
// 🚀 What is in rigid?
//
//	A pure-Go library built on gonum matrices that brings together:
//		• Value types: SO2, SE2, SO3, SE3 as ordered, immutable collections
//		• Construction: angles, angle lists, matrices, other pose values
//		• Validation: orthogonality, unit determinant, homogeneous last row
//		• Group operations: compose (with broadcasting), inverse, interpolation
//		• Conversions: SO2 ↔ SE2 and SO3 ↔ SE3 lifts and downcasts
//
// ✨ Why rigid?
//
//   - Explicit – every constructor takes one documented call shape and
//     reports anything else as ErrInvalidArgs
//   - Stable – stored matrices are rounded to 15 decimals, so cos(π/2) is 0
//   - Immutable – values are safe for concurrent reads
//   - Honest – unsupported operations return ErrNotImplemented
//
// Everything is organized under two packages and a CLI:
//
//	transforms/ : elementary rotations, homogeneous embedding, rounding
//	pose/       : SO2, SE2, SO3, SE3, validators and the Check dispatcher
//	cmd/rigid/  : command-line front end (internal/cli holds its commands)
//
// Quick example:
//
//	T, _ := pose.SE2FromXYTheta(1, 2, 90, pose.Deg)
//	fmt.Println(T.Transl())      // [{1 2}]
//	back, _ := T.Mul(T.Inv())    // identity within rounding
//
//	go get github.com/katalvlaran/rigid
package rigid

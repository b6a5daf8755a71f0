// Package transforms holds the elementary numeric builders used by the pose
// package: planar and axis rotation matrices, homogeneous lifts and block
// extraction, unit conversion and the fixed-decimal rounding step.
//
// ⚙️ What lives here:
//
//   - Rot2(θ)                   : 2×2 planar rotation
//   - RotX(θ), RotY(θ), RotZ(θ) : 3×3 elementary rotations
//   - R2T(R)                    : n×n rotation → (n+1)×(n+1) homogeneous, zero translation
//   - RT2Tr(R, t)               : rotation + translation → homogeneous
//   - T2R(T), TranslOf(T)       : homogeneous → rotation block / translation column
//   - Round(M, d)               : copy of M with every entry rounded to d decimals
//
// Every function is pure: inputs are never mutated and each call returns a
// freshly allocated *mat.Dense. Angles are always radians here; unit handling
// belongs to the caller.
//
//	import "github.com/katalvlaran/rigid/transforms"
//
//	r := transforms.Rot2(math.Pi / 2)  // [[0 -1] [1 0]]
//	T, _ := transforms.RT2Tr(r, []float64{1, 2})
package transforms

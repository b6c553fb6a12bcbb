// Package transform builds model matrices from scale, Euler rotation and
// translation values.
package transform

import "github.com/Faultbox/deskscene/pkg/math"

// Compose builds a model matrix from per-axis scale, XYZ Euler rotation in
// degrees and a translation. The composition order is fixed:
//
//	Translate * RotateZ * RotateY * RotateX * Scale
//
// i.e. scale is applied first, then the X, Y and Z rotations in that order,
// then the translation. This ordering is load-bearing for every placement in
// the scene; callers needing a different orientation must pre-compose their
// rotations externally.
func Compose(scale, rotationDeg, position math.Vec3) math.Mat4 {
	m := math.Translate(position)
	m = m.Mul(math.RotateZ(math.Radians(rotationDeg.Z)))
	m = m.Mul(math.RotateY(math.Radians(rotationDeg.Y)))
	m = m.Mul(math.RotateX(math.Radians(rotationDeg.X)))
	return m.Mul(math.Scale(scale))
}

// AboutPivot builds a model matrix that rotates a mesh about a world-space
// pivot: translate to the pivot, spin about Z by zAngleDeg, offset along the
// rotated frame by armOffset, then scale. Used for the clock hands, which
// rotate about the clock center with the hand extending outward from it.
func AboutPivot(pivot math.Vec3, zAngleDeg float32, armOffset, scale math.Vec3) math.Mat4 {
	m := math.Translate(pivot)
	m = m.Mul(math.RotateZ(math.Radians(zAngleDeg)))
	m = m.Mul(math.Translate(armOffset))
	return m.Mul(math.Scale(scale))
}

// Package math provides vector types for projection geometry.
package math

import "math"

// Vec3 is a 3D direction vector.
type Vec3 struct {
	X, Y, Z float64
}

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

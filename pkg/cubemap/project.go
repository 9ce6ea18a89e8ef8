package cubemap

import (
	gomath "math"

	"github.com/Faultbox/cubepano/pkg/math"
)

// FaceCoordinate is the result of projecting a spherical angle onto
// the cube: the selected face and a texel position with X and Y
// clamped into [0, side-1].
type FaceCoordinate struct {
	Face Face
	X    int
	Y    int
}

// Project maps a spherical angle to a texel on one of the six faces of
// a cube map with the given side length.
//
// The face is the one whose principal axis has the largest-magnitude
// component of the view direction; exact ties are broken X, then Y,
// then Z, so results are identical across runs. The direction is then
// projected gnomonically onto the face plane, rescaled to pixel space,
// rounded to the nearest texel and clamped against round-off at the
// face seams.
func Project(a SphericalAngle, side int) FaceCoordinate {
	sinPhi, cosPhi := gomath.Sincos(a.Phi)
	sinTheta, cosTheta := gomath.Sincos(a.Theta)

	dir := math.Vec3{
		X: sinPhi * cosTheta,
		Y: sinPhi * sinTheta,
		Z: cosPhi,
	}

	face, uv := projectToFace(dir)
	return FaceCoordinate{
		Face: face,
		X:    texel(uv.X, side),
		Y:    texel(uv.Y, side),
	}
}

// projectToFace selects the dominant-axis face for a direction and
// returns the normalized in-face coordinates in [-1, 1]. The switch
// covers every direction: one branch is always taken, and the dominant
// component is non-zero whenever its branch divides by it.
func projectToFace(d math.Vec3) (Face, math.Vec2) {
	a := d.Abs()

	switch {
	case a.X >= a.Y && a.X >= a.Z:
		if d.X >= 0 {
			return FacePosX, math.Vec2{X: d.Y / a.X, Y: -d.Z / a.X}
		}
		return FaceNegX, math.Vec2{X: -d.Y / a.X, Y: -d.Z / a.X}
	case a.Y >= a.Z:
		if d.Y >= 0 {
			return FacePosY, math.Vec2{X: -d.X / a.Y, Y: -d.Z / a.Y}
		}
		return FaceNegY, math.Vec2{X: d.X / a.Y, Y: -d.Z / a.Y}
	default:
		if d.Z >= 0 {
			return FacePosZ, math.Vec2{X: d.Y / a.Z, Y: d.X / a.Z}
		}
		return FaceNegZ, math.Vec2{X: d.Y / a.Z, Y: -d.X / a.Z}
	}
}

// texel rescales a normalized coordinate u in [-1, 1] to a pixel index
// in [0, side-1], rounding to the nearest texel. Values that land just
// outside the range through floating round-off are clamped back in.
func texel(u float64, side int) int {
	p := int(gomath.Round((u + 1) / 2 * float64(side-1)))
	if p < 0 {
		return 0
	}
	if p >= side {
		return side - 1
	}
	return p
}

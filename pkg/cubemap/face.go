// Package cubemap converts a six-face cube map into an equirectangular panorama.
//
// The coordinate convention is fixed: Z is up. A spherical angle
// (theta, phi) with longitude theta in [0, 2*pi] and colatitude phi in
// [0, pi] maps to the unit direction
//
//	(sin(phi)*cos(theta), sin(phi)*sin(theta), cos(phi))
//
// so phi=0 points at the +Z face, phi=pi at the -Z face, and
// theta=0, pi/2, pi, 3*pi/2 at the +X, +Y, -X and -Y faces.
// Swapping the convention changes which face lands in which region of
// the panorama, so it must not be altered independently of the face
// bindings chosen by the caller.
package cubemap

import "fmt"

// Face identifies one of the six cube-map faces by its principal axis.
type Face uint8

// Face constants.
const (
	FacePosX Face = iota // +X
	FaceNegX             // -X
	FacePosY             // +Y
	FaceNegY             // -Y
	FacePosZ             // +Z
	FaceNegZ             // -Z

	faceCount = 6
)

// String returns a human-readable face name.
func (f Face) String() string {
	switch f {
	case FacePosX:
		return "+X"
	case FaceNegX:
		return "-X"
	case FacePosY:
		return "+Y"
	case FaceNegY:
		return "-Y"
	case FacePosZ:
		return "+Z"
	case FaceNegZ:
		return "-Z"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// Faces lists all six faces in declaration order.
func Faces() [faceCount]Face {
	return [faceCount]Face{FacePosX, FaceNegX, FacePosY, FaceNegY, FacePosZ, FaceNegZ}
}

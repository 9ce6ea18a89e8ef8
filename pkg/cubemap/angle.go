package cubemap

import "math"

// SphericalAngle is a longitude/colatitude pair derived from a
// destination pixel. Theta is in [0, 2*pi], Phi in [0, pi].
type SphericalAngle struct {
	Theta float64
	Phi   float64
}

// AngleAt maps destination pixel (i, j) of a w by h panorama to its
// spherical angle. Pure function; callers must guarantee w, h >= 2,
// which always holds for panorama dimensions (4S, 2S) with S >= 1.
func AngleAt(i, j, w, h int) SphericalAngle {
	return SphericalAngle{
		Theta: float64(j) / float64(w-1) * 2 * math.Pi,
		Phi:   float64(i) / float64(h-1) * math.Pi,
	}
}

package math

// Vec2 is a 2D vector, used for normalized in-face coordinates.
type Vec2 struct {
	X, Y float64
}

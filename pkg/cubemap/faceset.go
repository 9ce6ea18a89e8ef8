package cubemap

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// Face set validation errors.
var (
	ErrMissingFace  = errors.New("face set is missing a face")
	ErrNotSquare    = errors.New("face image is not square")
	ErrSideMismatch = errors.New("face images have different side lengths")
	ErrZeroSide     = errors.New("face image has zero size")
	ErrNilFaceSet   = errors.New("nil face set")
)

// FaceSet holds the six cube-map face images, keyed by their semantic
// direction rather than by position. It is validated at construction
// and read-only afterwards.
type FaceSet struct {
	faces [faceCount]*image.RGBA
	side  int
}

// NewFaceSet builds a validated FaceSet from an explicit direction to
// image mapping. All six faces must be present, square, and share the
// same side length. Images are converted to RGBA up front so that
// rasterization is a plain buffer read.
func NewFaceSet(faces map[Face]image.Image) (*FaceSet, error) {
	set := &FaceSet{}

	for _, f := range Faces() {
		img, ok := faces[f]
		if !ok || img == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingFace, f)
		}

		b := img.Bounds()
		w, h := b.Dx(), b.Dy()
		if w != h {
			return nil, fmt.Errorf("%w: %s is %dx%d", ErrNotSquare, f, w, h)
		}
		if w == 0 {
			return nil, fmt.Errorf("%w: %s", ErrZeroSide, f)
		}

		if set.side == 0 {
			set.side = w
		} else if w != set.side {
			return nil, fmt.Errorf("%w: %s is %d, expected %d", ErrSideMismatch, f, w, set.side)
		}

		set.faces[f] = toRGBA(img)
	}

	return set, nil
}

// Side returns the shared side length S of the face images.
func (s *FaceSet) Side() int {
	return s.side
}

// Image returns the image bound to the given face.
func (s *FaceSet) Image(f Face) *image.RGBA {
	return s.faces[f]
}

// toRGBA normalizes any image to a zero-origin RGBA buffer.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

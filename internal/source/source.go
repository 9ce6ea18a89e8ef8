// Package source loads the six cube-map face images from disk and
// binds them to their semantic directions.
package source

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/cubepano/internal/logger"
	"github.com/Faultbox/cubepano/pkg/cubemap"
)

// Source errors.
var (
	ErrMissingImage = errors.New("missing or invalid face image")
	ErrDecodeImage  = errors.New("unable to decode face image")
)

// FaceNames holds the file name of each semantic face. Names are
// resolved relative to the input folder.
type FaceNames struct {
	Left   string
	Front  string
	Right  string
	Back   string
	Bottom string
	Top    string
}

// DefaultFaceNames returns the conventional face file names.
func DefaultFaceNames() FaceNames {
	return FaceNames{
		Left:   "left.jpg",
		Front:  "front.jpg",
		Right:  "right.jpg",
		Back:   "back.jpg",
		Bottom: "bottom.jpg",
		Top:    "top.jpg",
	}
}

// Load reads the six face images from dir and builds a validated
// FaceSet. The semantic directions bind to cube axes as the panorama
// layout expects: left=-Y, front=-X, right=+X, back=+Y, bottom=-Z,
// top=+Z. Any missing file, decode failure, or face-size mismatch is
// reported before any conversion work starts.
func Load(dir string, names FaceNames) (*cubemap.FaceSet, error) {
	bindings := []struct {
		face cubemap.Face
		name string
	}{
		{cubemap.FaceNegY, names.Left},
		{cubemap.FaceNegX, names.Front},
		{cubemap.FacePosX, names.Right},
		{cubemap.FacePosY, names.Back},
		{cubemap.FaceNegZ, names.Bottom},
		{cubemap.FacePosZ, names.Top},
	}

	faces := make(map[cubemap.Face]image.Image, len(bindings))
	for _, b := range bindings {
		path := filepath.Join(dir, b.name)
		img, err := loadImage(path)
		if err != nil {
			return nil, err
		}
		logger.Info("face image loaded",
			zap.String("path", path),
			zap.Stringer("face", b.face))
		faces[b.face] = img
	}

	return cubemap.NewFaceSet(faces)
}

// loadImage reads and decodes a single face image.
func loadImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrMissingImage, path)
	}

	// TGA has no magic bytes, so it cannot self-register with
	// image.Decode and is dispatched on extension instead.
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingImage, path, err)
		}
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecodeImage, path, err)
		}
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingImage, path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeImage, path, err)
	}
	logger.Debug("face image decoded", zap.String("path", path), zap.String("format", format))

	return img, nil
}

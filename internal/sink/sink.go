// Package sink encodes the finished panorama and persists it to disk.
package sink

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Sink errors.
var (
	ErrEmptyImage        = errors.New("the image is empty, nothing to save")
	ErrMissingFolder     = errors.New("destination folder does not exist")
	ErrNotWritable       = errors.New("destination folder is not writable")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// DefaultJPEGQuality is used when the caller passes a quality outside 1-100.
const DefaultJPEGQuality = 85

// Save encodes img and writes it to path. The format is chosen by
// extension: .jpg/.jpeg or .png. The destination folder is validated
// before encoding starts so failures surface without wasted work.
func Save(img image.Image, path string, jpegQuality int) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}

	dir := filepath.Dir(path)
	if err := verifyFolder(dir); err != nil {
		return err
	}

	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}

	var encode func(f *os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
		}
	case ".png":
		encode = func(f *os.File) error {
			return png.Encode(f, img)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := encode(f); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return nil
}

// verifyFolder checks that the destination folder exists and accepts
// new files. Permission bits alone are unreliable across platforms, so
// writability is probed with a throwaway file.
func verifyFolder(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrMissingFolder, dir)
	}

	probe, err := os.CreateTemp(dir, ".cubepano-*")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotWritable, dir)
	}
	probe.Close()
	os.Remove(probe.Name())

	return nil
}

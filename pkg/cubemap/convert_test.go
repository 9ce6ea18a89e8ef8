package cubemap

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"
)

// Scenario colors: semantic directions bound the way the CLI binds
// them (front=-X, back=+Y, left=-Y, right=+X, top=+Z, bottom=-Z).
var (
	red    = color.RGBA{R: 255, A: 255}
	blue   = color.RGBA{B: 255, A: 255}
	green  = color.RGBA{G: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black  = color.RGBA{A: 255}
)

func scenarioFaceSet(t *testing.T, side int) *FaceSet {
	t.Helper()
	set, err := NewFaceSet(map[Face]image.Image{
		FaceNegX: solidFace(side, red),    // front
		FacePosY: solidFace(side, blue),   // back
		FaceNegY: solidFace(side, green),  // left
		FacePosX: solidFace(side, yellow), // right
		FacePosZ: solidFace(side, white),  // top
		FaceNegZ: solidFace(side, black),  // bottom
	})
	if err != nil {
		t.Fatalf("NewFaceSet failed: %v", err)
	}
	return set
}

func TestConvertDimensions(t *testing.T) {
	for _, side := range []int{1, 3, 100} {
		img, err := Convert(scenarioFaceSet(t, side))
		if err != nil {
			t.Fatalf("Convert failed for side %d: %v", side, err)
		}
		if img.Bounds().Dx() != 4*side || img.Bounds().Dy() != 2*side {
			t.Errorf("side %d: expected %dx%d, got %dx%d",
				side, 4*side, 2*side, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
}

func TestConvertSolidFaces(t *testing.T) {
	// The reference scenario: S=100, six solid faces, 400x200 output.
	img, err := Convert(scenarioFaceSet(t, 100))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	tests := []struct {
		name string
		j, i int
		want color.RGBA
	}{
		{"front_center", 200, 100, red},
		{"right_seam", 0, 100, yellow},
		{"back_quarter", 100, 100, blue},
		{"left_quarter", 300, 100, green},
		{"top_pole", 200, 0, white},
		{"bottom_pole", 200, 199, black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.j, tt.i); got != tt.want {
				t.Errorf("pixel (%d, %d): expected %v, got %v", tt.j, tt.i, tt.want, got)
			}
		})
	}
}

// gradientFaceSet builds faces with smoothly varying textures so seam
// artifacts show up as byte differences.
func gradientFaceSet(t *testing.T, side int) *FaceSet {
	t.Helper()
	faces := make(map[Face]image.Image, 6)
	for _, f := range Faces() {
		img := image.NewRGBA(image.Rect(0, 0, side, side))
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				img.SetRGBA(x, y, color.RGBA{
					R: uint8(x * 255 / (side - 1)),
					G: uint8(y * 255 / (side - 1)),
					B: uint8(f) * 40,
					A: 255,
				})
			}
		}
		faces[f] = img
	}
	set, err := NewFaceSet(faces)
	if err != nil {
		t.Fatalf("NewFaceSet failed: %v", err)
	}
	return set
}

func TestConvertSeamContinuity(t *testing.T) {
	// theta=0 and theta=2*pi are the same longitude: the first and last
	// columns must sample identical texels.
	set := gradientFaceSet(t, 64)
	img, err := Convert(set)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	for i := 0; i < h; i++ {
		left := img.RGBAAt(0, i)
		right := img.RGBAAt(w-1, i)
		if left != right {
			t.Fatalf("seam mismatch at row %d: %v vs %v", i, left, right)
		}
	}
}

func TestConvertDeterministicAcrossWorkers(t *testing.T) {
	set := gradientFaceSet(t, 50)

	ref, err := Convert(set, WithWorkers(1))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	for _, workers := range []int{2, 3, 7, 64, 1000} {
		img, err := Convert(set, WithWorkers(workers))
		if err != nil {
			t.Fatalf("Convert with %d workers failed: %v", workers, err)
		}
		if !bytes.Equal(ref.Pix, img.Pix) {
			t.Errorf("output differs with %d workers", workers)
		}
	}
}

func TestConvertNilFaceSet(t *testing.T) {
	_, err := Convert(nil)
	if !errors.Is(err, ErrNilFaceSet) {
		t.Errorf("expected ErrNilFaceSet, got %v", err)
	}
}

func TestConvertZeroValueFaceSet(t *testing.T) {
	// A FaceSet constructed without NewFaceSet has side 0 and must be
	// rejected up front, not panic partway into rasterization.
	_, err := Convert(&FaceSet{})
	if !errors.Is(err, ErrZeroSide) {
		t.Errorf("expected ErrZeroSide, got %v", err)
	}
}

func TestConvertProgress(t *testing.T) {
	set := scenarioFaceSet(t, 16)

	var mu sync.Mutex
	calls := 0
	maxDone := 0
	var total int

	_, err := Convert(set, WithWorkers(4), WithProgress(func(done, tot int) {
		mu.Lock()
		calls++
		if done > maxDone {
			maxDone = done
		}
		total = tot
		mu.Unlock()
	}))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	w := 4 * 16
	if calls != w {
		t.Errorf("expected %d progress calls, got %d", w, calls)
	}
	if maxDone != w || total != w {
		t.Errorf("expected final progress %d/%d, got %d/%d", w, w, maxDone, total)
	}
}

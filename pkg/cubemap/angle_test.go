package cubemap

import (
	"math"
	"testing"
)

func TestAngleAtCorners(t *testing.T) {
	w, h := 400, 200

	topLeft := AngleAt(0, 0, w, h)
	if topLeft.Theta != 0 || topLeft.Phi != 0 {
		t.Errorf("expected (0, 0), got (%v, %v)", topLeft.Theta, topLeft.Phi)
	}

	bottomRight := AngleAt(h-1, w-1, w, h)
	if bottomRight.Theta != 2*math.Pi {
		t.Errorf("expected theta 2*pi, got %v", bottomRight.Theta)
	}
	if bottomRight.Phi != math.Pi {
		t.Errorf("expected phi pi, got %v", bottomRight.Phi)
	}
}

func TestAngleAtCenter(t *testing.T) {
	w, h := 400, 200
	a := AngleAt(h/2, w/2, w, h)

	wantTheta := float64(w/2) / float64(w-1) * 2 * math.Pi
	wantPhi := float64(h/2) / float64(h-1) * math.Pi

	if a.Theta != wantTheta {
		t.Errorf("expected theta %v, got %v", wantTheta, a.Theta)
	}
	if a.Phi != wantPhi {
		t.Errorf("expected phi %v, got %v", wantPhi, a.Phi)
	}
}

func TestAngleAtMonotonic(t *testing.T) {
	w, h := 8, 4

	prev := -1.0
	for j := 0; j < w; j++ {
		a := AngleAt(0, j, w, h)
		if a.Theta <= prev {
			t.Fatalf("theta not increasing at j=%d: %v <= %v", j, a.Theta, prev)
		}
		prev = a.Theta
	}

	prev = -1.0
	for i := 0; i < h; i++ {
		a := AngleAt(i, 0, w, h)
		if a.Phi <= prev {
			t.Fatalf("phi not increasing at i=%d: %v <= %v", i, a.Phi, prev)
		}
		prev = a.Phi
	}
}

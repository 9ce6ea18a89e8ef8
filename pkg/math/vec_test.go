package math

import "testing"

func TestVec3Abs(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"mixed_signs", Vec3{-1, 2, -3}, Vec3{1, 2, 3}},
		{"all_negative", Vec3{-0.5, -4, -9}, Vec3{0.5, 4, 9}},
		{"zero", Vec3{}, Vec3{}},
		{"already_positive", Vec3{1, 2, 3}, Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Abs(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

package x11

import (
	"math"
	"testing"
)

func TestClampCoord(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int16
	}{
		{"zero", 0, 0},
		{"negative in range", -250, -250},
		{"max", math.MaxInt16, math.MaxInt16},
		{"above max", 40000, math.MaxInt16},
		{"below min", -40000, math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampCoord(tt.in); got != tt.want {
				t.Errorf("ClampCoord(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want uint16
	}{
		{"normal", 640, 640},
		{"one", 1, 1},
		{"zero floors to one", 0, 1},
		{"negative floors to one", -30, 1},
		{"max", math.MaxInt16, math.MaxInt16},
		{"just above int16", math.MaxInt16 + 1, math.MaxInt16},
		{"inside uint16 range", 33000, math.MaxInt16},
		{"above max", 1 << 20, math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampSize(tt.in); got != tt.want {
				t.Errorf("ClampSize(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// xwindow.Configure replaces any size that is not positive as an int16 with 1,
// so every clamped size has to survive that conversion unchanged.
func TestClampSize_SurvivesInt16Configure(t *testing.T) {
	for _, in := range []int{1, 640, math.MaxInt16, math.MaxInt16 + 1, 33000, math.MaxUint16, 1 << 20} {
		got := ClampSize(in)
		if int16(got) <= 0 {
			t.Fatalf("ClampSize(%d) = %d, which xwindow would send as width 1", in, got)
		}
		if in >= math.MaxInt16 && got != math.MaxInt16 {
			t.Fatalf("ClampSize(%d) = %d, want saturation at %d", in, got, math.MaxInt16)
		}
	}
}

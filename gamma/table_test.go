package gamma

import (
	"math"
	"testing"
)

func TestRoundTripAllBytes(t *testing.T) {
	tbl := Default()

	// The single-hop round trip is exact for every 8-bit value.
	for v := 0; v < 256; v++ {
		got := tbl.FromLinear(tbl.ToLinear(uint8(v)))
		if got != uint8(v) {
			t.Errorf("FromLinear(ToLinear(%d)) = %d", v, got)
		}
	}
}

func TestToLinearMonotonic(t *testing.T) {
	tbl := Default()

	prev := tbl.ToLinear(0)
	for v := 1; v < 256; v++ {
		cur := tbl.ToLinear(uint8(v))
		if cur <= prev {
			t.Fatalf("ToLinear not increasing at %d: %v <= %v", v, cur, prev)
		}
		prev = cur
	}
}

func TestToLinearEndpoints(t *testing.T) {
	tbl := Default()

	if got := tbl.ToLinear(0); got != 0 {
		t.Errorf("ToLinear(0) = %v, want 0", got)
	}
	if got := tbl.ToLinear(255); got != 1 {
		t.Errorf("ToLinear(255) = %v, want 1", got)
	}
	if got := tbl.ToLinear(128); math.Abs(got-math.Pow(128.0/255, 2.2)) > 1e-12 {
		t.Errorf("ToLinear(128) = %v", got)
	}
}

func TestFromLinearClampsOutOfRange(t *testing.T) {
	tbl := Default()

	tests := []struct {
		in   float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{1, 255},
		{1.5, 255},
		{42, 255},
	}

	for _, tt := range tests {
		if got := tbl.FromLinear(tt.in); got != tt.want {
			t.Errorf("FromLinear(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different tables")
	}
	if got := Default().Exponent(); got != DefaultExponent {
		t.Errorf("Exponent() = %v, want %v", got, DefaultExponent)
	}
}

func TestCustomExponent(t *testing.T) {
	linear := New(1.0)

	// Exponent 1 degenerates to plain scaling.
	for _, v := range []uint8{0, 1, 64, 128, 200, 255} {
		want := float64(v) / 255
		if got := linear.ToLinear(v); math.Abs(got-want) > 1e-12 {
			t.Errorf("ToLinear(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestAlphaRoundTripAllBytes(t *testing.T) {
	for a := 0; a < 256; a++ {
		got := LinearToAlpha(AlphaToLinear(uint8(a)))
		if got != uint8(a) {
			t.Errorf("LinearToAlpha(AlphaToLinear(%d)) = %d", a, got)
		}
	}
}

func TestLinearToAlphaClamps(t *testing.T) {
	if got := LinearToAlpha(-1); got != 0 {
		t.Errorf("LinearToAlpha(-1) = %d, want 0", got)
	}
	if got := LinearToAlpha(2); got != 255 {
		t.Errorf("LinearToAlpha(2) = %d, want 255", got)
	}
}

func BenchmarkToLinear(b *testing.B) {
	tbl := Default()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += tbl.ToLinear(uint8(i))
	}
	_ = sink
}

func BenchmarkFromLinear(b *testing.B) {
	tbl := Default()
	var sink uint8
	for i := 0; i < b.N; i++ {
		sink += tbl.FromLinear(float64(i%256) / 255)
	}
	_ = sink
}

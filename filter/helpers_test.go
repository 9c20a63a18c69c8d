package filter

import "github.com/gogpu/imagefx"

// Test helper functions shared across filter tests.

// createTestPixmap creates a 4-channel pixmap filled with the given color.
func createTestPixmap(w, h int, color imagefx.RGBA) *imagefx.Pixmap {
	p := imagefx.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetPixel(x, y, color)
		}
	}
	return p
}

// createOpaqueTestPixmap creates a 3-channel pixmap filled with the given color.
func createOpaqueTestPixmap(w, h int, color imagefx.RGBA) *imagefx.Pixmap {
	p := imagefx.NewOpaquePixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetPixel(x, y, color)
		}
	}
	return p
}

// colorApproxEqual compares two colors with tolerance.
func colorApproxEqual(a, b imagefx.RGBA, tolerance float64) bool {
	return absf(a.R-b.R) < tolerance &&
		absf(a.G-b.G) < tolerance &&
		absf(a.B-b.B) < tolerance &&
		absf(a.A-b.A) < tolerance
}

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// byteDiff returns the absolute difference of two bytes as an int.
func byteDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

// Package gamma converts between 8-bit gamma-encoded samples and linear
// light.
//
// Display pixels store intensity non-linearly (a power curve approximating
// monitor response), but averaging, convolution and any other arithmetic on
// color must happen on physically proportional values. A Table precomputes
// the decode direction as a 256-entry lookup; the encode direction is
// computed analytically since it runs once per output sample rather than
// once per kernel tap.
//
// Alpha is always stored linearly and never passes through a Table; use
// AlphaToLinear and LinearToAlpha for it.
package gamma

import (
	"math"
	"sync"
)

// DefaultExponent roughly approximates monitors.
const DefaultExponent = 2.2

// Table converts between gamma-encoded bytes and linear light values.
// A Table is immutable after construction and safe for unsynchronized
// concurrent reads.
type Table struct {
	exponent float64
	invExp   float64
	toLinear [256]float64
}

// New builds a conversion table for the given gamma exponent.
// Entry i of the decode table is (i/255)^exponent, so values are
// monotonically increasing with toLinear[0] == 0 and toLinear[255] == 1.
func New(exponent float64) *Table {
	t := &Table{
		exponent: exponent,
		invExp:   1 / exponent,
	}
	for i := 0; i < 256; i++ {
		t.toLinear[i] = math.Pow(float64(i)/255, exponent)
	}
	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the shared table for DefaultExponent. It is built exactly
// once and may be read from any number of goroutines.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = New(DefaultExponent)
	})
	return defaultTable
}

// Exponent returns the gamma exponent the table was built with.
func (t *Table) Exponent() float64 {
	return t.exponent
}

// ToLinear converts a gamma-encoded value between 0 and 255 to a linear
// value between 0.0 and 1.0.
func (t *Table) ToLinear(s uint8) float64 {
	return t.toLinear[s]
}

// FromLinear converts a linear value to a gamma-encoded value between 0
// and 255. The input is nominally in [0, 1] but weighted sums may land
// outside it; out-of-range results are clamped.
//
// Not worth a look-up table: this is called once per output sample, not
// once per kernel tap.
func (t *Table) FromLinear(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	encoded := int(math.Pow(v, t.invExp) * 255.9)
	if encoded > 255 {
		return 255
	}
	return uint8(encoded)
}

// AlphaToLinear converts a linear alpha byte to a value between 0.0 and
// 1.0. Alpha is never gamma-encoded, so this is plain scaling.
func AlphaToLinear(a uint8) float64 {
	return float64(a) / 255
}

// LinearToAlpha converts a value between 0.0 and 1.0 to a linear alpha
// byte, clamping out-of-range input. No gamma conversion is applied.
func LinearToAlpha(v float64) uint8 {
	a := int(v * 255.9)
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a)
}

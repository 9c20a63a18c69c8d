// Package filter implements gamma-aware image filters over imagefx pixmaps.
//
// The centerpiece is a separable convolution engine:
//   - Gaussian and box kernel construction (1D cross-sections, odd length)
//   - ConvolveOp: two 1D passes that together form a full 2D convolution
//   - Blur, Glow and MakeShadow built on top of it
//
// Color channels are decoded to linear light before the weighted sum and
// re-encoded after it, and every color contribution is weighted by the
// source alpha at the same tap, so transparent neighborhoods cannot bleed
// their (undefined) color into visible pixels. Image boundaries clamp to
// the nearest edge pixel.
package filter

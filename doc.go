// Package imagefx provides gamma-aware image effects for Go.
//
// # Overview
//
// imagefx implements the pixel-buffer side of an image manipulation
// pipeline: a channel-aware Pixmap buffer and, in the filter sub-package,
// a separable convolution engine used for Gaussian blur, glow, and shadow
// generation. All color arithmetic is performed in linear light and
// weighted by source alpha, so blurring near transparent regions does not
// bleed background color into visible pixels.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/imagefx"
//	    "github.com/gogpu/imagefx/filter"
//	)
//
//	pm := imagefx.FromImage(img)
//	blurred, err := filter.Blur(pm, 5)
//	if err != nil {
//	    // handle it
//	}
//	out := blurred.ToImage()
//
// # Buffer Contract
//
// A Pixmap is row-major and pixel-interleaved with one byte per channel
// and no padding. Four-channel buffers store alpha first (linear, never
// gamma-encoded) followed by gamma-encoded R, G, B. Three-channel buffers
// are fully opaque gamma-encoded R, G, B. Decoding, encoding, geometric
// transforms and compositing live with the caller; this module only reads
// and produces buffers.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pixmap, RGBA
//   - gamma: lookup-table conversion between gamma-encoded bytes and linear light
//   - filter: kernel construction and the two-pass convolution engine
package imagefx

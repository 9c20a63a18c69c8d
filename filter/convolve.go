package filter

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/imagefx"
	"github.com/gogpu/imagefx/gamma"
)

// ErrEvenKernel is returned when a convolution kernel has even length.
// An even kernel has no center tap, so the operation is rejected before
// any work rather than silently re-centered.
var ErrEvenKernel = errors.New("kernel length must be odd")

// ConvolveOp convolves a 1D kernel with an image in two passes. The kernel
// is the horizontal or vertical cross-section of the 2D kernel through its
// center; because a Gaussian is linearly decomposable, the two passes
// together are equivalent to a full 2D convolution at a fraction of the
// cost.
//
// Each pass convolves along rows and writes its output transposed, so the
// second pass effectively runs vertically and restores the original
// orientation. Both passes only ever walk memory along rows.
type ConvolveOp struct {
	// Kernel holds the convolution weights. Must have an odd length.
	// Conventionally normalized to sum to 1.0.
	Kernel []float64

	// Brightness scales every color channel. 1.0 leaves brightness
	// unchanged (a pure blur); values above 1.0 brighten and clip to the
	// channel maximum. Applied once per pass, so it compounds across the
	// two passes of Filter. Alpha is never scaled.
	Brightness float64

	// Gamma is the conversion table consulted for every color sample.
	// nil means gamma.Default().
	Gamma *gamma.Table

	// Parallel fans the row loop of each pass out across CPUs. Output
	// rows never alias, so no synchronization beyond the final wait is
	// needed. Off by default: the op is then a pure synchronous
	// buffer-to-buffer transform.
	Parallel bool
}

// NewConvolveOp creates a convolution op for the given kernel and
// brightness, using the default gamma table.
func NewConvolveOp(kernel []float64, brightness float64) *ConvolveOp {
	return &ConvolveOp{
		Kernel:     kernel,
		Brightness: brightness,
	}
}

// Filter convolves the kernel with src, both horizontally and vertically,
// and returns a newly allocated pixmap of the same dimensions and channel
// count. src is never mutated.
//
// Preconditions are checked before any pixel work: the kernel length must
// be odd (ErrEvenKernel) and src must have 3 or 4 channels
// (imagefx.ErrChannels).
func (op *ConvolveOp) Filter(src *imagefx.Pixmap) (*imagefx.Pixmap, error) {
	if len(op.Kernel)%2 == 0 {
		return nil, errors.Wrapf(ErrEvenKernel, "got %d", len(op.Kernel))
	}
	if c := src.Channels(); c != imagefx.OpaqueChannels && c != imagefx.AlphaChannels {
		return nil, errors.Wrapf(imagefx.ErrChannels, "got %d", c)
	}

	tbl := op.Gamma
	if tbl == nil {
		tbl = gamma.Default()
	}

	// Apply the kernel twice, once in each direction. Each convolve call
	// both applies the kernel horizontally and transposes the image.
	return op.convolve(op.convolve(src, tbl), tbl), nil
}

// convolve applies the kernel along every row of src and writes the result
// transposed: the returned pixmap has src's dimensions swapped.
//
// For each output sample the kernel window is clamped to the row, so
// off-image taps repeat the nearest edge pixel. Color taps are decoded to
// linear light and weighted by the tap's alpha as well as the kernel
// weight; the sum is renormalized by the total weight actually present in
// the window, which keeps transparent neighbors from dragging visible
// color toward black. A fully transparent window leaves the raw sum
// untouched rather than dividing by zero. Alpha taps are already linear
// and accumulate directly, with no alpha weighting and no brightness.
func (op *ConvolveOp) convolve(src *imagefx.Pixmap, tbl *gamma.Table) *imagefx.Pixmap {
	width := src.Width()
	height := src.Height()
	channels := src.Channels()

	var dst *imagefx.Pixmap
	if channels == imagefx.OpaqueChannels {
		dst = imagefx.NewOpaquePixmap(height, width)
	} else {
		dst = imagefx.NewPixmap(height, width)
	}

	srcData := src.Data()
	dstData := dst.Data()
	srcStride := src.Stride()
	dstStride := dst.Stride()

	filterRadius := KernelCenter(len(op.Kernel))
	hasAlpha := channels == imagefx.AlphaChannels

	convolveRow := func(y int) {
		rowBase := y * srcStride
		for x := 0; x < width; x++ {
			for b := 0; b < channels; b++ {
				isAlpha := hasAlpha && b == 0

				var sum, denominator float64
				for i, k := range op.Kernel {
					// Treat off-image taps as their closest pixel in the row.
					tapX := x - filterRadius + i
					if tapX < 0 {
						tapX = 0
					} else if tapX > width-1 {
						tapX = width - 1
					}

					tapBase := rowBase + tapX*channels

					if isAlpha {
						// Alpha is linear already; accumulate the raw byte.
						sum += float64(srcData[tapBase]) * k
						continue
					}

					alphaWeight := 255.0
					if hasAlpha {
						alphaWeight = float64(srcData[tapBase])
					}
					weight := alphaWeight * k
					sum += tbl.ToLinear(srcData[tapBase+b]) * weight
					denominator += weight
				}

				var result uint8
				if isAlpha {
					result = clampUint8(sum)
				} else {
					// Renormalize by the alpha weight present in the window
					// and apply brightness. A window with no visible pixels
					// keeps the raw sum (which is then zero anyway).
					if denominator != 0 {
						sum *= op.Brightness / denominator
					}
					result = tbl.FromLinear(sum)
				}

				// Write transposed into the destination image.
				dstData[x*dstStride+y*channels+b] = result
			}
		}
	}

	if op.Parallel && height > 1 {
		workers := runtime.GOMAXPROCS(0)
		chunk := (height + workers - 1) / workers

		var g errgroup.Group
		g.SetLimit(workers)
		for start := 0; start < height; start += chunk {
			start := start
			end := start + chunk
			if end > height {
				end = height
			}
			g.Go(func() error {
				for y := start; y < end; y++ {
					convolveRow(y)
				}
				return nil
			})
		}
		// Row tasks never fail; Wait only synchronizes.
		_ = g.Wait()
	} else {
		for y := 0; y < height; y++ {
			convolveRow(y)
		}
	}

	return dst
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8,
// rounding to nearest.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

package filter

import "github.com/gogpu/imagefx"

// Blur blurs an image using a high-quality two-pass Gaussian algorithm.
// The radius is one standard deviation of the Gaussian. A radius <= 0
// returns an unchanged copy.
//
// Good stuff about blurring: http://www.jhlabs.com/ip/blurring.html
func Blur(src *imagefx.Pixmap, radius float64) (*imagefx.Pixmap, error) {
	imagefx.Logger().Debug("blurring image", "radius", radius)

	op := NewConvolveOp(CachedGaussianKernel(radius), 1.0)
	return op.Filter(src)
}

// Glow brightens an image and blurs it, clipping to the channel maximum.
// A brightness of 1.0 makes Glow behave like Blur. The brightness factor
// is applied in each of the two convolution passes, so the effective
// brightening compounds; clipping to white is the intended saturation
// effect.
func Glow(src *imagefx.Pixmap, brightness, radius float64) (*imagefx.Pixmap, error) {
	imagefx.Logger().Debug("glowing image", "brightness", brightness, "radius", radius)

	op := NewConvolveOp(CachedGaussianKernel(radius), brightness)
	return op.Filter(src)
}

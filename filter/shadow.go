package filter

import (
	"github.com/pkg/errors"

	"github.com/gogpu/imagefx"
)

// MakeShadow returns the shadow of the input image. The shadow is based
// only on the alpha channel: the source's alpha is spread into an opaque
// gray image, blurred with the convolution engine, and turned into a black
// image whose alpha follows the blurred gray. The result has the same
// dimensions as the source and holds just the shadow; offsetting and
// compositing it under the original is up to the caller.
//
// src must be a 4-channel pixmap, since its alpha channel is what casts
// the shadow. darkness controls shadow opacity: 0.0 means no shadow,
// 1.0 the darkest.
func MakeShadow(src *imagefx.Pixmap, radius, darkness float64) (*imagefx.Pixmap, error) {
	if src.Channels() != imagefx.AlphaChannels {
		return nil, errors.Wrap(imagefx.ErrChannels, "shadow requires an alpha channel")
	}

	imagefx.Logger().Debug("making shadow", "radius", radius, "darkness", darkness)

	width := src.Width()
	height := src.Height()
	srcData := src.Data()

	// Make an opaque image where gray = alpha of the original.
	gray := imagefx.NewPixmap(width, height)
	grayData := gray.Data()
	for i := 0; i < len(srcData); i += imagefx.AlphaChannels {
		a := srcData[i]
		grayData[i+0] = 255
		grayData[i+1] = a
		grayData[i+2] = a
		grayData[i+3] = a
	}

	// Blur that.
	blurred, err := Blur(gray, radius)
	if err != nil {
		return nil, err
	}

	// Make a semi-transparent image where the color is black and the
	// alpha is based on the blurred gray above.
	shadow := imagefx.NewPixmap(width, height)
	shadowData := shadow.Data()
	blurredData := blurred.Data()
	for i := 0; i < len(shadowData); i += imagefx.AlphaChannels {
		// Darken or lighten the shadow.
		alpha := float64(blurredData[i+1]) * darkness
		shadowData[i] = clampUint8(alpha)
	}

	return shadow, nil
}

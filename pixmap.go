package imagefx

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Channel counts supported by Pixmap.
const (
	// OpaqueChannels is a 3-channel buffer: gamma-encoded R, G, B, fully opaque.
	OpaqueChannels = 3
	// AlphaChannels is a 4-channel buffer: linear alpha first, then
	// gamma-encoded R, G, B.
	AlphaChannels = 4
)

// ErrChannels is returned when a buffer's channel count is not 3 or 4.
var ErrChannels = errors.New("channel count must be 3 or 4")

// ErrBufferSize is returned when a buffer's byte length does not match its
// declared dimensions.
var ErrBufferSize = errors.New("buffer length must equal width*height*channels")

// Pixmap represents a rectangular pixel buffer.
//
// Storage is row-major and pixel-interleaved, one byte per channel, no
// padding. A 4-channel pixmap stores alpha in channel 0 (linear, never
// gamma-encoded) and gamma-encoded R, G, B in channels 1-3. A 3-channel
// pixmap stores gamma-encoded R, G, B and is fully opaque.
type Pixmap struct {
	width    int
	height   int
	channels int
	data     []uint8
}

// NewPixmap creates a new 4-channel pixmap with the given dimensions.
// All pixels start transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:    width,
		height:   height,
		channels: AlphaChannels,
		data:     make([]uint8, width*height*AlphaChannels),
	}
}

// NewOpaquePixmap creates a new 3-channel pixmap with the given dimensions.
// All pixels start black.
func NewOpaquePixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:    width,
		height:   height,
		channels: OpaqueChannels,
		data:     make([]uint8, width*height*OpaqueChannels),
	}
}

// FromBytes wraps a caller-allocated buffer in a Pixmap. This is the
// boundary contract for collaborators (decoders, compositors) that supply
// raw pixel data. The buffer is not copied; the caller must not mutate it
// while a filter is reading it.
//
// The channel count must be 3 or 4 and len(data) must equal
// width*height*channels.
func FromBytes(data []uint8, width, height, channels int) (*Pixmap, error) {
	if channels != OpaqueChannels && channels != AlphaChannels {
		return nil, errors.Wrapf(ErrChannels, "got %d", channels)
	}
	if width < 0 || height < 0 || len(data) != width*height*channels {
		return nil, errors.Wrapf(ErrBufferSize, "got %d bytes for %dx%dx%d",
			len(data), width, height, channels)
	}
	return &Pixmap{
		width:    width,
		height:   height,
		channels: channels,
		data:     data,
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Channels returns the number of channels per pixel (3 or 4).
func (p *Pixmap) Channels() int {
	return p.channels
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * p.channels
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{
		width:    p.width,
		height:   p.height,
		channels: p.channels,
		data:     data,
	}
}

// SetPixel sets the color of a single pixel. For 3-channel pixmaps the
// alpha component is ignored. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * p.channels
	if p.channels == AlphaChannels {
		p.data[i+0] = uint8(clamp255(c.A * 255))
		i++
	}
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
}

// GetPixel returns the color of a single pixel. 3-channel pixmaps always
// report alpha 1. Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * p.channels
	a := 1.0
	if p.channels == AlphaChannels {
		a = float64(p.data[i]) / 255
		i++
	}
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: a,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.SetPixel(x, y, c)
		}
	}
}

// ToImage converts the pixmap to a non-premultiplied image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			i := (y*p.width + x) * p.channels
			o := y*img.Stride + x*4
			if p.channels == AlphaChannels {
				img.Pix[o+3] = p.data[i]
				i++
			} else {
				img.Pix[o+3] = 255
			}
			img.Pix[o+0] = p.data[i+0]
			img.Pix[o+1] = p.data[i+1]
			img.Pix[o+2] = p.data[i+2]
		}
	}
	return img
}

// FromImage creates a 4-channel pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

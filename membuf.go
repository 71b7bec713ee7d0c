package imaging

import (
	"image"
	"image/color"
)

// Gray8 is an in-memory 8-bit grayscale sample buffer.
type Gray8 struct {
	width, height int
	pix           []uint8
}

// NewGray8 creates an 8-bit grayscale buffer of the given size.
func NewGray8(width, height int) *Gray8 {
	width, height = max(width, 0), max(height, 0)
	return &Gray8{width: width, height: height, pix: make([]uint8, width*height)}
}

// Format reports FormatGray8.
func (p *Gray8) Format() PixelFormat { return FormatGray8 }

// Width returns the width of the buffer in pixels.
func (p *Gray8) Width() int { return p.width }

// Height returns the height of the buffer in pixels.
func (p *Gray8) Height() int { return p.height }

// Channels returns 1.
func (p *Gray8) Channels() int { return 1 }

// MaxSample returns 255.
func (p *Gray8) MaxSample(int) int { return 255 }

// Sample returns the gray value at (x, y), or 0 outside the bounds.
func (p *Gray8) Sample(_, x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return int(p.pix[y*p.width+x])
}

// SetSample stores a gray value at (x, y), clamped to [0, 255].
func (p *Gray8) SetSample(_, x, y, value int) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = uint8(clampSample(value, 255))
}

// NewCompatible creates a Gray8 buffer of the given size.
func (p *Gray8) NewCompatible(width, height int) SampleBuffer {
	return NewGray8(width, height)
}

// Pix returns the raw pixel data, one byte per pixel in row-major order.
func (p *Gray8) Pix() []uint8 { return p.pix }

// ColorModel implements the image.Image interface.
func (p *Gray8) ColorModel() color.Model { return color.GrayModel }

// Bounds implements the image.Image interface.
func (p *Gray8) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements the image.Image interface.
func (p *Gray8) At(x, y int) color.Color {
	return color.Gray{Y: uint8(p.Sample(0, x, y))}
}

// Gray16 is an in-memory 16-bit grayscale sample buffer.
type Gray16 struct {
	width, height int
	pix           []uint16
}

// NewGray16 creates a 16-bit grayscale buffer of the given size.
func NewGray16(width, height int) *Gray16 {
	width, height = max(width, 0), max(height, 0)
	return &Gray16{width: width, height: height, pix: make([]uint16, width*height)}
}

// Format reports FormatGray16.
func (p *Gray16) Format() PixelFormat { return FormatGray16 }

// Width returns the width of the buffer in pixels.
func (p *Gray16) Width() int { return p.width }

// Height returns the height of the buffer in pixels.
func (p *Gray16) Height() int { return p.height }

// Channels returns 1.
func (p *Gray16) Channels() int { return 1 }

// MaxSample returns 65535.
func (p *Gray16) MaxSample(int) int { return 65535 }

// Sample returns the gray value at (x, y), or 0 outside the bounds.
func (p *Gray16) Sample(_, x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return int(p.pix[y*p.width+x])
}

// SetSample stores a gray value at (x, y), clamped to [0, 65535].
func (p *Gray16) SetSample(_, x, y, value int) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = uint16(clampSample(value, 65535))
}

// NewCompatible creates a Gray16 buffer of the given size.
func (p *Gray16) NewCompatible(width, height int) SampleBuffer {
	return NewGray16(width, height)
}

// ColorModel implements the image.Image interface.
func (p *Gray16) ColorModel() color.Model { return color.Gray16Model }

// Bounds implements the image.Image interface.
func (p *Gray16) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements the image.Image interface.
func (p *Gray16) At(x, y int) color.Color {
	return color.Gray16{Y: uint16(p.Sample(0, x, y))}
}

// RGB24 is an in-memory 24-bit truecolor sample buffer with three 8-bit
// channels (0 = red, 1 = green, 2 = blue).
type RGB24 struct {
	width, height int
	pix           []uint8 // 3 bytes per pixel, interleaved RGB
}

// NewRGB24 creates a 24-bit RGB buffer of the given size.
func NewRGB24(width, height int) *RGB24 {
	width, height = max(width, 0), max(height, 0)
	return &RGB24{width: width, height: height, pix: make([]uint8, width*height*3)}
}

// Format reports FormatRGB24.
func (p *RGB24) Format() PixelFormat { return FormatRGB24 }

// Width returns the width of the buffer in pixels.
func (p *RGB24) Width() int { return p.width }

// Height returns the height of the buffer in pixels.
func (p *RGB24) Height() int { return p.height }

// Channels returns 3.
func (p *RGB24) Channels() int { return 3 }

// MaxSample returns 255.
func (p *RGB24) MaxSample(int) int { return 255 }

// Sample returns the sample at (x, y) in the given channel, or 0 outside
// the bounds.
func (p *RGB24) Sample(channel, x, y int) int {
	if channel < 0 || channel > 2 || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return int(p.pix[(y*p.width+x)*3+channel])
}

// SetSample stores a sample at (x, y) in the given channel, clamped to
// [0, 255].
func (p *RGB24) SetSample(channel, x, y, value int) {
	if channel < 0 || channel > 2 || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[(y*p.width+x)*3+channel] = uint8(clampSample(value, 255))
}

// NewCompatible creates an RGB24 buffer of the given size.
func (p *RGB24) NewCompatible(width, height int) SampleBuffer {
	return NewRGB24(width, height)
}

// Pix returns the raw pixel data, three bytes per pixel in row-major order.
func (p *RGB24) Pix() []uint8 { return p.pix }

// ColorModel implements the image.Image interface.
func (p *RGB24) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements the image.Image interface.
func (p *RGB24) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements the image.Image interface.
func (p *RGB24) At(x, y int) color.Color {
	return color.RGBA{
		R: uint8(p.Sample(0, x, y)),
		G: uint8(p.Sample(1, x, y)),
		B: uint8(p.Sample(2, x, y)),
		A: 255,
	}
}

// RGB48 is an in-memory 48-bit truecolor sample buffer with three 16-bit
// channels (0 = red, 1 = green, 2 = blue).
type RGB48 struct {
	width, height int
	pix           []uint16 // 3 words per pixel, interleaved RGB
}

// NewRGB48 creates a 48-bit RGB buffer of the given size.
func NewRGB48(width, height int) *RGB48 {
	width, height = max(width, 0), max(height, 0)
	return &RGB48{width: width, height: height, pix: make([]uint16, width*height*3)}
}

// Format reports FormatRGB48.
func (p *RGB48) Format() PixelFormat { return FormatRGB48 }

// Width returns the width of the buffer in pixels.
func (p *RGB48) Width() int { return p.width }

// Height returns the height of the buffer in pixels.
func (p *RGB48) Height() int { return p.height }

// Channels returns 3.
func (p *RGB48) Channels() int { return 3 }

// MaxSample returns 65535.
func (p *RGB48) MaxSample(int) int { return 65535 }

// Sample returns the sample at (x, y) in the given channel, or 0 outside
// the bounds.
func (p *RGB48) Sample(channel, x, y int) int {
	if channel < 0 || channel > 2 || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return int(p.pix[(y*p.width+x)*3+channel])
}

// SetSample stores a sample at (x, y) in the given channel, clamped to
// [0, 65535].
func (p *RGB48) SetSample(channel, x, y, value int) {
	if channel < 0 || channel > 2 || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[(y*p.width+x)*3+channel] = uint16(clampSample(value, 65535))
}

// NewCompatible creates an RGB48 buffer of the given size.
func (p *RGB48) NewCompatible(width, height int) SampleBuffer {
	return NewRGB48(width, height)
}

// ColorModel implements the image.Image interface.
func (p *RGB48) ColorModel() color.Model { return color.RGBA64Model }

// Bounds implements the image.Image interface.
func (p *RGB48) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements the image.Image interface.
func (p *RGB48) At(x, y int) color.Color {
	return color.RGBA64{
		R: uint16(p.Sample(0, x, y)),
		G: uint16(p.Sample(1, x, y)),
		B: uint16(p.Sample(2, x, y)),
		A: 65535,
	}
}

// Paletted8 is an in-memory 8-bit paletted sample buffer. The single
// channel holds palette indices; the palette itself is shared between a
// buffer and its NewCompatible offspring.
type Paletted8 struct {
	width, height int
	pix           []uint8
	palette       color.Palette
}

// NewPaletted8 creates an 8-bit paletted buffer of the given size. The
// palette must have between 1 and 256 entries; larger palettes are
// truncated to 256, and a nil palette yields a single-entry black one.
func NewPaletted8(width, height int, palette color.Palette) *Paletted8 {
	width, height = max(width, 0), max(height, 0)
	if len(palette) == 0 {
		palette = color.Palette{color.Black}
	}
	if len(palette) > 256 {
		palette = palette[:256]
	}
	return &Paletted8{
		width:   width,
		height:  height,
		pix:     make([]uint8, width*height),
		palette: palette,
	}
}

// Format reports FormatPaletted8.
func (p *Paletted8) Format() PixelFormat { return FormatPaletted8 }

// Width returns the width of the buffer in pixels.
func (p *Paletted8) Width() int { return p.width }

// Height returns the height of the buffer in pixels.
func (p *Paletted8) Height() int { return p.height }

// Channels returns 1.
func (p *Paletted8) Channels() int { return 1 }

// MaxSample returns the largest valid palette index.
func (p *Paletted8) MaxSample(int) int { return len(p.palette) - 1 }

// Palette returns the palette of the buffer.
func (p *Paletted8) Palette() color.Palette { return p.palette }

// Sample returns the palette index at (x, y), or 0 outside the bounds.
func (p *Paletted8) Sample(_, x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return int(p.pix[y*p.width+x])
}

// SetSample stores a palette index at (x, y), clamped to the palette range.
func (p *Paletted8) SetSample(_, x, y, value int) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = uint8(clampSample(value, len(p.palette)-1))
}

// NewCompatible creates a Paletted8 buffer of the given size sharing the
// same palette.
func (p *Paletted8) NewCompatible(width, height int) SampleBuffer {
	return NewPaletted8(width, height, p.palette)
}

// ColorModel implements the image.Image interface.
func (p *Paletted8) ColorModel() color.Model { return p.palette }

// Bounds implements the image.Image interface.
func (p *Paletted8) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements the image.Image interface.
func (p *Paletted8) At(x, y int) color.Color {
	return p.palette[p.Sample(0, x, y)]
}

// Bilevel is an in-memory 1-bit black/white sample buffer with packed
// rows. Sample value 0 is black, 1 is white.
type Bilevel struct {
	width, height int
	stride        int // bytes per row
	pix           []uint8
}

// NewBilevel creates a bilevel buffer of the given size, initially all
// black.
func NewBilevel(width, height int) *Bilevel {
	width, height = max(width, 0), max(height, 0)
	stride := (width + 7) / 8
	return &Bilevel{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]uint8, stride*height),
	}
}

// Format reports FormatBilevel.
func (p *Bilevel) Format() PixelFormat { return FormatBilevel }

// Width returns the width of the buffer in pixels.
func (p *Bilevel) Width() int { return p.width }

// Height returns the height of the buffer in pixels.
func (p *Bilevel) Height() int { return p.height }

// Channels returns 1.
func (p *Bilevel) Channels() int { return 1 }

// MaxSample returns 1.
func (p *Bilevel) MaxSample(int) int { return 1 }

// Sample returns 1 for white and 0 for black at (x, y); 0 outside the
// bounds.
func (p *Bilevel) Sample(_, x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	if p.pix[y*p.stride+x/8]&(0x80>>uint(x%8)) != 0 {
		return 1
	}
	return 0
}

// SetSample stores a bilevel value at (x, y); any value > 0 is white.
func (p *Bilevel) SetSample(_, x, y, value int) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	mask := uint8(0x80 >> uint(x%8))
	if value > 0 {
		p.pix[y*p.stride+x/8] |= mask
	} else {
		p.pix[y*p.stride+x/8] &^= mask
	}
}

// NewCompatible creates a Bilevel buffer of the given size.
func (p *Bilevel) NewCompatible(width, height int) SampleBuffer {
	return NewBilevel(width, height)
}

// IsBlack reports whether the pixel at (x, y) is black.
func (p *Bilevel) IsBlack(x, y int) bool { return p.Sample(0, x, y) == 0 }

// SetBlack makes the pixel at (x, y) black.
func (p *Bilevel) SetBlack(x, y int) { p.SetSample(0, x, y, 0) }

// SetWhite makes the pixel at (x, y) white.
func (p *Bilevel) SetWhite(x, y int) { p.SetSample(0, x, y, 1) }

// Clear fills the whole buffer with white or black.
func (p *Bilevel) Clear(white bool) {
	var fill uint8
	if white {
		fill = 0xFF
	}
	for i := range p.pix {
		p.pix[i] = fill
	}
}

// ColorModel implements the image.Image interface.
func (p *Bilevel) ColorModel() color.Model { return color.GrayModel }

// Bounds implements the image.Image interface.
func (p *Bilevel) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements the image.Image interface.
func (p *Bilevel) At(x, y int) color.Color {
	if p.Sample(0, x, y) != 0 {
		return color.Gray{Y: 255}
	}
	return color.Gray{Y: 0}
}

// Compile-time interface checks.
var (
	_ SampleBuffer  = (*Gray8)(nil)
	_ SampleBuffer  = (*Gray16)(nil)
	_ SampleBuffer  = (*RGB24)(nil)
	_ SampleBuffer  = (*RGB48)(nil)
	_ SampleBuffer  = (*Paletted8)(nil)
	_ BilevelBuffer = (*Bilevel)(nil)

	_ image.Image = (*Gray8)(nil)
	_ image.Image = (*Gray16)(nil)
	_ image.Image = (*RGB24)(nil)
	_ image.Image = (*RGB48)(nil)
	_ image.Image = (*Paletted8)(nil)
	_ image.Image = (*Bilevel)(nil)
)

package imaging

// PixelFormat identifies the pixel encoding of a sample buffer. Operations
// dispatch on this closed set rather than on concrete buffer types, so
// custom SampleBuffer implementations take part in every operation that
// supports their declared format.
type PixelFormat uint8

const (
	// FormatBilevel is 1-bit black/white: one channel, max sample 1.
	FormatBilevel PixelFormat = iota

	// FormatGray8 is 8-bit grayscale: one channel, max sample 255.
	FormatGray8

	// FormatGray16 is 16-bit grayscale: one channel, max sample 65535.
	FormatGray16

	// FormatPaletted8 is 8-bit paletted: one index channel whose max sample
	// is the palette size minus one.
	FormatPaletted8

	// FormatRGB24 is 24-bit truecolor: three channels, max sample 255 each.
	FormatRGB24

	// FormatRGB48 is 48-bit truecolor: three channels, max sample 65535 each.
	FormatRGB48
)

// String returns a string representation of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case FormatBilevel:
		return "Bilevel"
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatPaletted8:
		return "Paletted8"
	case FormatRGB24:
		return "RGB24"
	case FormatRGB48:
		return "RGB48"
	default:
		return "Unknown"
	}
}

// Channels returns the number of channels for the format.
func (f PixelFormat) Channels() int {
	switch f {
	case FormatRGB24, FormatRGB48:
		return 3
	default:
		return 1
	}
}

// SampleBuffer is the pixel-storage abstraction every operation consumes:
// a rectangular grid of integer samples, addressed by channel and position.
// Samples are always in [0, MaxSample(channel)].
//
// Reads outside the buffer bounds return 0 and writes outside the bounds
// are ignored; written values are clamped into the valid sample range.
type SampleBuffer interface {
	// Format reports the pixel encoding of the buffer.
	Format() PixelFormat

	// Width returns the width of the buffer in pixels.
	Width() int

	// Height returns the height of the buffer in pixels.
	Height() int

	// Channels returns the number of channels per pixel.
	Channels() int

	// MaxSample returns the largest valid sample value for a channel.
	MaxSample(channel int) int

	// Sample returns the sample at (x, y) in the given channel.
	Sample(channel, x, y int) int

	// SetSample stores a sample at (x, y) in the given channel.
	SetSample(channel, x, y, value int)

	// NewCompatible creates a new buffer with the same pixel encoding and
	// channel layout but the given dimensions.
	NewCompatible(width, height int) SampleBuffer
}

// BilevelBuffer extends SampleBuffer with the black/white capability set
// of 1-bit images, letting operations write bilevel output efficiently.
type BilevelBuffer interface {
	SampleBuffer

	// IsBlack reports whether the pixel at (x, y) is black.
	IsBlack(x, y int) bool

	// SetBlack makes the pixel at (x, y) black.
	SetBlack(x, y int)

	// SetWhite makes the pixel at (x, y) white.
	SetWhite(x, y int)

	// Clear fills the whole buffer with white or black.
	Clear(white bool)
}

// clampSample clamps v into [0, maxVal].
func clampSample(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

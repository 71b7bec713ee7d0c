package imaging

import "image/color"

// ColorQuantizer maps an 8-bit RGB triple to a quantized triple and a
// palette index. Error-diffusion and ordered dithering delegate color
// reduction to this capability.
type ColorQuantizer interface {
	// QuantizeRGB returns the quantized triple closest to (r, g, b) and
	// the index of that triple in the quantizer's palette.
	QuantizeRGB(r, g, b int) (qr, qg, qb, index int)

	// Palette returns the palette of all quantized colors, or nil when the
	// quantizer produces more colors than a palette can hold.
	Palette() color.Palette
}

// UniformQuantizer reduces each RGB channel independently to a fixed
// number of bits, producing an implicit uniform palette.
type UniformQuantizer struct {
	bits    [3]int
	levels  [3]int
	shift   [3]uint
	palette color.Palette
}

// NewUniformQuantizer creates a quantizer keeping the given number of bits
// per channel (each 1 to 8). A palette is materialized when the total
// number of colors fits in 256 entries; otherwise Palette returns nil and
// the quantizer can only feed truecolor output.
func NewUniformQuantizer(rBits, gBits, bBits int) (*UniformQuantizer, error) {
	q := &UniformQuantizer{bits: [3]int{rBits, gBits, bBits}}
	total := 1
	for c, bits := range q.bits {
		if bits < 1 || bits > 8 {
			return nil, configErrorf("uniform quantizer: %d bits per channel, must be 1 to 8", bits)
		}
		q.levels[c] = 1 << bits
		q.shift[c] = uint(8 - bits)
		total *= q.levels[c]
	}
	if total <= 256 {
		q.palette = make(color.Palette, 0, total)
		for ri := 0; ri < q.levels[0]; ri++ {
			for gi := 0; gi < q.levels[1]; gi++ {
				for bi := 0; bi < q.levels[2]; bi++ {
					q.palette = append(q.palette, color.RGBA{
						R: uint8(ri * 255 / (q.levels[0] - 1)),
						G: uint8(gi * 255 / (q.levels[1] - 1)),
						B: uint8(bi * 255 / (q.levels[2] - 1)),
						A: 255,
					})
				}
			}
		}
	}
	return q, nil
}

// QuantizeRGB implements the ColorQuantizer interface.
func (q *UniformQuantizer) QuantizeRGB(r, g, b int) (qr, qg, qb, index int) {
	ri := clampSample(r, 255) >> q.shift[0]
	gi := clampSample(g, 255) >> q.shift[1]
	bi := clampSample(b, 255) >> q.shift[2]
	qr = ri * 255 / (q.levels[0] - 1)
	qg = gi * 255 / (q.levels[1] - 1)
	qb = bi * 255 / (q.levels[2] - 1)
	index = (ri*q.levels[1]+gi)*q.levels[2] + bi
	return qr, qg, qb, index
}

// Palette implements the ColorQuantizer interface.
func (q *UniformQuantizer) Palette() color.Palette { return q.palette }

// PaletteQuantizer maps colors to the nearest entry of a fixed palette by
// squared distance in RGB space.
type PaletteQuantizer struct {
	palette color.Palette
	rgb     [][3]int
}

// NewPaletteQuantizer creates a quantizer over the given palette, which
// must have between 1 and 256 entries.
func NewPaletteQuantizer(palette color.Palette) (*PaletteQuantizer, error) {
	if len(palette) == 0 || len(palette) > 256 {
		return nil, configErrorf("palette quantizer: %d entries, must be 1 to 256", len(palette))
	}
	q := &PaletteQuantizer{
		palette: palette,
		rgb:     make([][3]int, len(palette)),
	}
	for i, c := range palette {
		r, g, b, _ := c.RGBA()
		q.rgb[i] = [3]int{int(r >> 8), int(g >> 8), int(b >> 8)}
	}
	return q, nil
}

// QuantizeRGB implements the ColorQuantizer interface.
func (q *PaletteQuantizer) QuantizeRGB(r, g, b int) (qr, qg, qb, index int) {
	best := -1
	bestDist := int(^uint(0) >> 1)
	for i, e := range q.rgb {
		dr, dg, db := r-e[0], g-e[1], b-e[2]
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	e := q.rgb[best]
	return e[0], e[1], e[2], best
}

// Palette implements the ColorQuantizer interface.
func (q *PaletteQuantizer) Palette() color.Palette { return q.palette }

var (
	_ ColorQuantizer = (*UniformQuantizer)(nil)
	_ ColorQuantizer = (*PaletteQuantizer)(nil)
)

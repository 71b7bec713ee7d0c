package imaging

// ErrorDiffusion quantizes a grayscale or RGB image to fewer levels while
// propagating the per-pixel quantization error to not-yet-processed
// neighbors according to a diffusion template.
//
// Grayscale (Gray8) input is reduced to 1 to 7 bits: 1-bit output goes to
// a Bilevel buffer, deeper reductions to a Gray8 buffer whose levels are
// spread back over the full 8-bit range. RGB24 input requires a
// ColorQuantizer and produces either truecolor output with the quantized
// triples or paletted output with the quantizer's palette indices.
//
// Error propagation uses truncating integer division per template entry,
// matching the classic integer formulation of the algorithm; the small
// systematic bias this introduces is part of the contract.
type ErrorDiffusion struct {
	operation
	template  *DiffusionTemplate
	grayBits  int
	quantizer ColorQuantizer
	paletted  bool
}

// NewErrorDiffusion creates an error-diffusion operation with the
// Floyd-Steinberg template and 1-bit grayscale output.
func NewErrorDiffusion() *ErrorDiffusion {
	return &ErrorDiffusion{grayBits: 1}
}

// SetTemplate selects the diffusion template. Passing nil restores the
// Floyd-Steinberg default.
func (e *ErrorDiffusion) SetTemplate(t *DiffusionTemplate) { e.template = t }

// SetGrayscaleBits sets the output depth for grayscale input, from 1 to 7
// bits.
func (e *ErrorDiffusion) SetGrayscaleBits(bits int) error {
	if bits < 1 || bits > 7 {
		return configErrorf("error diffusion: %d grayscale output bits, must be 1 to 7", bits)
	}
	e.grayBits = bits
	return nil
}

// SetQuantizer installs the color quantizer used for RGB input.
func (e *ErrorDiffusion) SetQuantizer(q ColorQuantizer) { e.quantizer = q }

// SetPalettedOutput selects paletted (true) or truecolor (false) output
// for RGB input. The default is truecolor.
func (e *ErrorDiffusion) SetPalettedOutput(enabled bool) { e.paletted = enabled }

func (e *ErrorDiffusion) activeTemplate() *DiffusionTemplate {
	if e.template != nil {
		return e.template
	}
	return FloydSteinberg
}

// Dither quantizes src, allocating the output buffer matching the
// configured reduction: Bilevel for 1-bit grayscale, Gray8 for deeper
// grayscale, Paletted8 or RGB24 for color.
func (e *ErrorDiffusion) Dither(src SampleBuffer) (SampleBuffer, error) {
	if err := e.check(src); err != nil {
		return nil, err
	}
	w, h := src.Width(), src.Height()
	var dst SampleBuffer
	switch {
	case src.Format() == FormatGray8 && e.grayBits == 1:
		dst = NewBilevel(w, h)
	case src.Format() == FormatGray8:
		dst = NewGray8(w, h)
	case e.paletted:
		palette := e.quantizer.Palette()
		if len(palette) == 0 {
			return nil, configErrorf("error diffusion: quantizer has no palette for paletted output")
		}
		dst = NewPaletted8(w, h, palette)
	default:
		dst = NewRGB24(w, h)
	}
	if err := e.run(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// DitherInto quantizes src into dst. The output buffer must match the
// configured reduction in format and the input in resolution.
func (e *ErrorDiffusion) DitherInto(src, dst SampleBuffer) error {
	if err := e.check(src); err != nil {
		return err
	}
	if dst == nil {
		return missingErrorf("error diffusion: no output image")
	}
	var want PixelFormat
	switch {
	case src.Format() == FormatGray8 && e.grayBits == 1:
		want = FormatBilevel
	case src.Format() == FormatGray8:
		want = FormatGray8
	case e.paletted:
		want = FormatPaletted8
	default:
		want = FormatRGB24
	}
	if dst.Format() != want {
		return incompatibleErrorf("error diffusion: output format %v, want %v", dst.Format(), want)
	}
	if dst.Width() != src.Width() || dst.Height() != src.Height() {
		return incompatibleErrorf("error diffusion: output is %dx%d, input %dx%d",
			dst.Width(), dst.Height(), src.Width(), src.Height())
	}
	return e.run(src, dst)
}

func (e *ErrorDiffusion) check(src SampleBuffer) error {
	if src == nil {
		return missingErrorf("error diffusion: no input image")
	}
	switch src.Format() {
	case FormatGray8:
		return nil
	case FormatRGB24:
		if e.quantizer == nil {
			return missingErrorf("error diffusion: RGB input needs a quantizer")
		}
		return nil
	default:
		return incompatibleErrorf("error diffusion: unsupported pixel format %v", src.Format())
	}
}

// errorRows is the rolling buffer of an error-diffusion run: one window of
// template.Rows() rows, each widened by the template's horizontal reach so
// propagated error falling outside the image lands in border columns.
type errorRows struct {
	stride int
	left   int
	rows   int
	buf    []int
}

func newErrorRows(t *DiffusionTemplate, width int) *errorRows {
	stride := width + t.left + t.right
	return &errorRows{
		stride: stride,
		left:   t.left,
		rows:   t.rows,
		buf:    make([]int, stride*t.rows),
	}
}

// fill copies one source row into a buffer row; border columns stay zero.
func (r *errorRows) fill(bufRow int, width int, sample func(x int) int) {
	base := bufRow*r.stride + r.left
	for x := 0; x < width; x++ {
		r.buf[base+x] = sample(x)
	}
}

// shift discards the top row and zeroes the freed bottom row.
func (r *errorRows) shift() {
	copy(r.buf, r.buf[r.stride:])
	bottom := (r.rows - 1) * r.stride
	for i := bottom; i < len(r.buf); i++ {
		r.buf[i] = 0
	}
}

func (e *ErrorDiffusion) run(src, dst SampleBuffer) error {
	e.resetAbort()
	t := e.activeTemplate()
	Logger().Debug("error diffusion",
		"image", [2]int{src.Width(), src.Height()},
		"templateRows", t.rows, "format", src.Format())
	if src.Format() == FormatGray8 {
		return e.runGray(t, src, dst)
	}
	return e.runRGB(t, src, dst)
}

func (e *ErrorDiffusion) runGray(t *DiffusionTemplate, src, dst SampleBuffer) error {
	w, h := src.Width(), src.Height()
	rows := newErrorRows(t, w)
	offsets, nums, dens := templateOffsets(t, rows.stride)

	nextSrc := 0
	for r := 0; r < t.rows && nextSrc < h; r++ {
		y := nextSrc
		rows.fill(r, w, func(x int) int { return src.Sample(0, x, y) })
		nextSrc++
	}

	bits := e.grayBits
	var bw BilevelBuffer
	var lut []int
	if bits == 1 {
		// Only white pixels need to be written afterwards.
		bw = dst.(BilevelBuffer)
		bw.Clear(false)
	} else {
		levels := 1 << bits
		lut = make([]int, levels)
		for i := range lut {
			lut[i] = i * 255 / (levels - 1)
		}
	}
	shift := uint(8 - bits)

	for y := 0; y < h; y++ {
		if e.aborted() {
			return failedErrorf("error diffusion: aborted")
		}
		for x := 0; x < w; x++ {
			pos := rows.left + x
			clamped := clampSample(rows.buf[pos], 255)
			var out int
			if bits == 1 {
				if clamped >= 128 {
					out = 255
					bw.SetWhite(x, y)
				}
			} else {
				out = lut[clamped>>shift]
				dst.SetSample(0, x, y, out)
			}
			if qe := clamped - out; qe != 0 {
				for i, off := range offsets {
					rows.buf[pos+off] += qe * nums[i] / dens[i]
				}
			}
		}
		rows.shift()
		if nextSrc < h {
			y2 := nextSrc
			rows.fill(t.rows-1, w, func(x int) int { return src.Sample(0, x, y2) })
			nextSrc++
		}
		e.reportProgress(y+1, h)
	}
	return nil
}

func (e *ErrorDiffusion) runRGB(t *DiffusionTemplate, src, dst SampleBuffer) error {
	w, h := src.Width(), src.Height()
	var chans [3]*errorRows
	for c := range chans {
		chans[c] = newErrorRows(t, w)
	}
	offsets, nums, dens := templateOffsets(t, chans[0].stride)

	nextSrc := 0
	for r := 0; r < t.rows && nextSrc < h; r++ {
		y := nextSrc
		for c := range chans {
			ch := c
			chans[c].fill(r, w, func(x int) int { return src.Sample(ch, x, y) })
		}
		nextSrc++
	}

	for y := 0; y < h; y++ {
		if e.aborted() {
			return failedErrorf("error diffusion: aborted")
		}
		for x := 0; x < w; x++ {
			pos := chans[0].left + x
			cr := clampSample(chans[0].buf[pos], 255)
			cg := clampSample(chans[1].buf[pos], 255)
			cb := clampSample(chans[2].buf[pos], 255)
			qr, qg, qb, index := e.quantizer.QuantizeRGB(cr, cg, cb)
			if e.paletted {
				dst.SetSample(0, x, y, index)
			} else {
				dst.SetSample(0, x, y, qr)
				dst.SetSample(1, x, y, qg)
				dst.SetSample(2, x, y, qb)
			}
			for c, qe := range [3]int{cr - qr, cg - qg, cb - qb} {
				if qe == 0 {
					continue
				}
				buf := chans[c].buf
				for i, off := range offsets {
					buf[pos+off] += qe * nums[i] / dens[i]
				}
			}
		}
		for c := range chans {
			chans[c].shift()
		}
		if nextSrc < h {
			y2 := nextSrc
			for c := range chans {
				ch := c
				chans[c].fill(t.rows-1, w, func(x int) int { return src.Sample(ch, x, y2) })
			}
			nextSrc++
		}
		e.reportProgress(y+1, h)
	}
	return nil
}

// templateOffsets flattens the template entries into buffer-relative index
// offsets with their error fractions.
func templateOffsets(t *DiffusionTemplate, stride int) (offsets, nums, dens []int) {
	offsets = make([]int, len(t.entries))
	nums = make([]int, len(t.entries))
	dens = make([]int, len(t.entries))
	for i, e := range t.entries {
		offsets[i] = e.DY*stride + e.DX
		nums[i] = e.Numerator
		dens[i] = e.Denominator
	}
	return offsets, nums, dens
}

package imaging

// ThresholdMatrix is an immutable 2D table of thresholds in [0, 255],
// tiled across the image by ordered dithering. A pixel at (x, y) always
// compares against the same threshold as the pixel at (x+width, y) or
// (x, y+height).
type ThresholdMatrix struct {
	width, height int
	thresholds    []int
}

// NewThresholdMatrix creates a threshold matrix from row-major values.
// Both dimensions must be at least 1, the value slice must hold at least
// width*height entries, and every threshold must be in [0, 255].
func NewThresholdMatrix(width, height int, thresholds []int) (*ThresholdMatrix, error) {
	if width < 1 || height < 1 {
		return nil, configErrorf("threshold matrix: size %dx%d, both dimensions must be >= 1", width, height)
	}
	if len(thresholds) < width*height {
		return nil, configErrorf("threshold matrix: %d values, need %d", len(thresholds), width*height)
	}
	m := &ThresholdMatrix{width: width, height: height, thresholds: make([]int, width*height)}
	copy(m.thresholds, thresholds)
	for i, t := range m.thresholds {
		if t < 0 || t > 255 {
			return nil, configErrorf("threshold matrix: value %d at index %d outside [0, 255]", t, i)
		}
	}
	return m, nil
}

// newRankMatrix builds a threshold matrix from dispersion ranks 0..n-1,
// spreading the thresholds evenly over the sample range.
func newRankMatrix(width, height int, ranks []int) *ThresholdMatrix {
	n := width * height
	thresholds := make([]int, n)
	for i, r := range ranks {
		thresholds[i] = (2*r + 1) * 255 / (2 * n)
	}
	m, err := NewThresholdMatrix(width, height, thresholds)
	if err != nil {
		panic(err)
	}
	return m
}

// Size returns the matrix width and height.
func (m *ThresholdMatrix) Size() (width, height int) { return m.width, m.height }

// Threshold returns the threshold for pixel (x, y), tiling the matrix
// across the plane.
func (m *ThresholdMatrix) Threshold(x, y int) int {
	x %= m.width
	if x < 0 {
		x += m.width
	}
	y %= m.height
	if y < 0 {
		y += m.height
	}
	return m.thresholds[y*m.width+x]
}

// Predefined threshold matrices.
var (
	// Matrix3x3 is a 3x3 dispersed-dot matrix.
	Matrix3x3 = newRankMatrix(3, 3, []int{
		0, 7, 3,
		6, 5, 2,
		4, 1, 8,
	})

	// Bayer4x4 is the order-4 Bayer dispersed-dot matrix.
	Bayer4x4 = newRankMatrix(4, 4, []int{
		0, 8, 2, 10,
		12, 4, 14, 6,
		3, 11, 1, 9,
		15, 7, 13, 5,
	})

	// Bayer8x8 is the order-8 Bayer dispersed-dot matrix.
	Bayer8x8 = newRankMatrix(8, 8, []int{
		0, 32, 8, 40, 2, 34, 10, 42,
		48, 16, 56, 24, 50, 18, 58, 26,
		12, 44, 4, 36, 14, 46, 6, 38,
		60, 28, 52, 20, 62, 30, 54, 22,
		3, 35, 11, 43, 1, 33, 9, 41,
		51, 19, 59, 27, 49, 17, 57, 25,
		15, 47, 7, 39, 13, 45, 5, 37,
		63, 31, 55, 23, 61, 29, 53, 21,
	})
)

// OrderedDither reduces the depth of an image by comparing each sample
// against a tiled threshold matrix. It is cheaper than error diffusion and
// needs no neighborhood state, at the cost of a visible regular pattern.
//
// Gray8 input at 1 bit produces a Bilevel buffer; deeper grayscale
// reductions produce Gray8 with the quantized levels spread over the full
// range. RGB24 input is reduced per channel, each channel reading the
// matrix at a different phase so the three dither signals are independent.
type OrderedDither struct {
	operation
	matrix *ThresholdMatrix
	bits   int
}

// NewOrderedDither creates an ordered-dither operation with the Bayer4x4
// matrix and 1-bit output.
func NewOrderedDither() *OrderedDither {
	return &OrderedDither{matrix: Bayer4x4, bits: 1}
}

// SetMatrix selects the threshold matrix.
func (o *OrderedDither) SetMatrix(m *ThresholdMatrix) { o.matrix = m }

// SetBits sets the output depth per channel, from 1 to 7 bits.
func (o *OrderedDither) SetBits(bits int) error {
	if bits < 1 || bits > 7 {
		return configErrorf("ordered dither: %d output bits, must be 1 to 7", bits)
	}
	o.bits = bits
	return nil
}

// Apply dithers src, allocating the output buffer: Bilevel for 1-bit
// grayscale, otherwise a buffer of the input format.
func (o *OrderedDither) Apply(src SampleBuffer) (SampleBuffer, error) {
	if err := o.check(src); err != nil {
		return nil, err
	}
	var dst SampleBuffer
	if src.Format() == FormatGray8 && o.bits == 1 {
		dst = NewBilevel(src.Width(), src.Height())
	} else {
		dst = src.NewCompatible(src.Width(), src.Height())
	}
	if err := o.run(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// ApplyInto dithers src into dst.
func (o *OrderedDither) ApplyInto(src, dst SampleBuffer) error {
	if err := o.check(src); err != nil {
		return err
	}
	if dst == nil {
		return missingErrorf("ordered dither: no output image")
	}
	want := src.Format()
	if want == FormatGray8 && o.bits == 1 {
		want = FormatBilevel
	}
	if dst.Format() != want {
		return incompatibleErrorf("ordered dither: output format %v, want %v", dst.Format(), want)
	}
	if dst.Width() != src.Width() || dst.Height() != src.Height() {
		return incompatibleErrorf("ordered dither: output is %dx%d, input %dx%d",
			dst.Width(), dst.Height(), src.Width(), src.Height())
	}
	return o.run(src, dst)
}

func (o *OrderedDither) check(src SampleBuffer) error {
	if src == nil {
		return missingErrorf("ordered dither: no input image")
	}
	if o.matrix == nil {
		return missingErrorf("ordered dither: no threshold matrix")
	}
	switch src.Format() {
	case FormatGray8, FormatRGB24:
		return nil
	default:
		return incompatibleErrorf("ordered dither: unsupported pixel format %v", src.Format())
	}
}

func (o *OrderedDither) run(src, dst SampleBuffer) error {
	o.resetAbort()
	w, h := src.Width(), src.Height()
	m := o.matrix
	levels := 1 << o.bits
	channels := src.Channels()
	mw, mh := m.Size()

	Logger().Debug("ordered dither", "image", [2]int{w, h},
		"matrix", [2]int{mw, mh}, "bits", o.bits)

	bilevel, _ := dst.(BilevelBuffer)
	toBilevel := src.Format() == FormatGray8 && o.bits == 1
	if toBilevel {
		bilevel.Clear(false)
	}

	for y := 0; y < h; y++ {
		if o.aborted() {
			return failedErrorf("ordered dither: aborted")
		}
		for x := 0; x < w; x++ {
			for c := 0; c < channels; c++ {
				// Independent dither signal per channel: read the matrix
				// at a channel-dependent phase.
				t := m.Threshold(x+c*mw/3, y+c*mh/3)
				v := src.Sample(c, x, y)
				scaled := v * (levels - 1)
				level := scaled / 255
				if scaled%255 > t {
					level++
				}
				if toBilevel {
					if level > 0 {
						bilevel.SetWhite(x, y)
					}
					continue
				}
				dst.SetSample(c, x, y, level*255/(levels-1))
			}
		}
		o.reportProgress(y+1, h)
	}
	return nil
}

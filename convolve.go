package imaging

// Kernel is an immutable convolution kernel: an odd-width by odd-height
// integer coefficient matrix plus a divisor and bias. The convolved sum is
// divided by the divisor (truncating integer division) and offset by the
// bias before clamping to the valid sample range.
type Kernel struct {
	name          string
	width, height int
	div, bias     int
	coeffs        []int // row-major, top-to-bottom
}

// NewKernel creates a convolution kernel. Width and height must be odd and
// positive, the divisor must be non-zero, and coeffs must hold at least
// width*height values.
func NewKernel(name string, width, height int, coeffs []int, div, bias int) (*Kernel, error) {
	if width < 1 || width%2 == 0 {
		return nil, configErrorf("kernel %q: width %d must be odd and positive", name, width)
	}
	if height < 1 || height%2 == 0 {
		return nil, configErrorf("kernel %q: height %d must be odd and positive", name, height)
	}
	if len(coeffs) < width*height {
		return nil, configErrorf("kernel %q: %d coefficients, need %d", name, len(coeffs), width*height)
	}
	if div == 0 {
		return nil, configErrorf("kernel %q: divisor must be non-zero", name)
	}
	k := &Kernel{
		name:   name,
		width:  width,
		height: height,
		div:    div,
		bias:   bias,
		coeffs: make([]int, width*height),
	}
	copy(k.coeffs, coeffs)
	return k, nil
}

func mustKernel(name string, width, height int, coeffs []int, div, bias int) *Kernel {
	k, err := NewKernel(name, width, height, coeffs, div, bias)
	if err != nil {
		panic(err)
	}
	return k
}

// Name returns the name of the kernel.
func (k *Kernel) Name() string { return k.name }

// Size returns the kernel width and height.
func (k *Kernel) Size() (width, height int) { return k.width, k.height }

// Divisor returns the kernel divisor.
func (k *Kernel) Divisor() int { return k.div }

// Bias returns the kernel bias.
func (k *Kernel) Bias() int { return k.bias }

// Coefficients returns a copy of the coefficient matrix in row-major order.
func (k *Kernel) Coefficients() []int {
	c := make([]int, len(k.coeffs))
	copy(c, k.coeffs)
	return c
}

// Predefined convolution kernels.
var (
	// Blur is a 3x3 uniform averaging kernel.
	Blur = mustKernel("Blur", 3, 3, []int{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}, 9, 0)

	// Sharpen is a 3x3 sharpening kernel.
	Sharpen = mustKernel("Sharpen", 3, 3, []int{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	}, 1, 0)

	// EdgeDetection is a 3x3 Laplacian edge-detection kernel.
	EdgeDetection = mustKernel("Edge detection", 3, 3, []int{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}, 1, 0)

	// Emboss is a 3x3 embossing kernel biased to mid-gray.
	Emboss = mustKernel("Emboss", 3, 3, []int{
		-1, -1, 0,
		-1, 1, 1,
		0, 1, 1,
	}, 1, 128)

	// PsychedelicDistillation is a 5x5 high-boost kernel with a strongly
	// amplified center.
	PsychedelicDistillation = mustKernel("Psychedelic distillation", 5, 5, []int{
		0, -1, -2, -1, 0,
		-1, -4, -5, -4, -1,
		-2, -5, 40, -5, -2,
		-1, -4, -5, -4, -1,
		0, -1, -2, -1, 0,
	}, 8, 0)

	// Lithograph is a 5x5 extreme edge-enhancement kernel.
	Lithograph = mustKernel("Lithograph", 5, 5, []int{
		-1, -1, -1, -1, -1,
		-1, -1, -1, -1, -1,
		-1, -1, 25, -1, -1,
		-1, -1, -1, -1, -1,
		-1, -1, -1, -1, -1,
	}, 1, 0)

	// SobelHorizontal is the 3x3 horizontal Sobel gradient kernel.
	SobelHorizontal = mustKernel("Horizontal Sobel", 3, 3, []int{
		1, 2, 1,
		0, 0, 0,
		-1, -2, -1,
	}, 1, 0)

	// SobelVertical is the 3x3 vertical Sobel gradient kernel.
	SobelVertical = mustKernel("Vertical Sobel", 3, 3, []int{
		1, 0, -1,
		2, 0, -2,
		1, 0, -1,
	}, 1, 0)

	// PrewittHorizontal is the 3x3 horizontal Prewitt gradient kernel.
	PrewittHorizontal = mustKernel("Horizontal Prewitt", 3, 3, []int{
		1, 1, 1,
		0, 0, 0,
		-1, -1, -1,
	}, 1, 0)

	// PrewittVertical is the 3x3 vertical Prewitt gradient kernel.
	PrewittVertical = mustKernel("Vertical Prewitt", 3, 3, []int{
		1, 0, -1,
		1, 0, -1,
		1, 0, -1,
	}, 1, 0)
)

// Convolver applies a convolution kernel to every channel of an image,
// using edge-replication padding at the borders.
//
// Supported input formats: Gray8, Gray16, RGB24, RGB48.
type Convolver struct {
	operation
	kernel *Kernel
}

// NewConvolver creates a convolution operation for the given kernel.
func NewConvolver(k *Kernel) *Convolver {
	return &Convolver{kernel: k}
}

// SetKernel replaces the kernel.
func (c *Convolver) SetKernel(k *Kernel) { c.kernel = k }

// Apply convolves src, allocating a compatible output buffer.
func (c *Convolver) Apply(src SampleBuffer) (SampleBuffer, error) {
	if err := c.check(src); err != nil {
		return nil, err
	}
	dst := src.NewCompatible(src.Width(), src.Height())
	if err := c.run(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// ApplyInto convolves src into dst, which must have the same pixel format
// and resolution as src.
func (c *Convolver) ApplyInto(src, dst SampleBuffer) error {
	if err := c.check(src); err != nil {
		return err
	}
	if dst == nil {
		return missingErrorf("convolve: no output image")
	}
	if dst.Format() != src.Format() || dst.Width() != src.Width() || dst.Height() != src.Height() {
		return incompatibleErrorf("convolve: output %v %dx%d does not match input %v %dx%d",
			dst.Format(), dst.Width(), dst.Height(), src.Format(), src.Width(), src.Height())
	}
	return c.run(src, dst)
}

func (c *Convolver) check(src SampleBuffer) error {
	if c.kernel == nil {
		return missingErrorf("convolve: no kernel")
	}
	if src == nil {
		return missingErrorf("convolve: no input image")
	}
	switch src.Format() {
	case FormatGray8, FormatGray16, FormatRGB24, FormatRGB48:
		return nil
	default:
		return incompatibleErrorf("convolve: unsupported pixel format %v", src.Format())
	}
}

func (c *Convolver) run(src, dst SampleBuffer) error {
	c.resetAbort()
	k := c.kernel
	w, h := src.Width(), src.Height()
	channels := src.Channels()
	px, py := k.width/2, k.height/2
	pw := w + 2*px

	Logger().Debug("convolve", "kernel", k.name, "size", [2]int{k.width, k.height},
		"image", [2]int{w, h})

	// Zero coefficients contribute nothing; collect only the non-zero
	// cells as (padded-buffer offset, coefficient) pairs.
	type cell struct {
		offset int
		coeff  int
	}
	cells := make([]cell, 0, k.width*k.height)
	for ky := 0; ky < k.height; ky++ {
		for kx := 0; kx < k.width; kx++ {
			if co := k.coeffs[ky*k.width+kx]; co != 0 {
				cells = append(cells, cell{offset: ky*pw + kx, coeff: co})
			}
		}
	}

	padded := make([]int, pw*(h+2*py))
	total := channels * h
	done := 0
	for ch := 0; ch < channels; ch++ {
		// Edge-replicated copy of the channel.
		for yy := 0; yy < h+2*py; yy++ {
			sy := clampSample(yy-py, h-1)
			row := padded[yy*pw:]
			for xx := 0; xx < pw; xx++ {
				row[xx] = src.Sample(ch, clampSample(xx-px, w-1), sy)
			}
		}
		maxVal := dst.MaxSample(ch)
		for y := 0; y < h; y++ {
			if c.aborted() {
				return failedErrorf("convolve: aborted")
			}
			base := y * pw
			for x := 0; x < w; x++ {
				sum := 0
				for _, ce := range cells {
					sum += ce.coeff * padded[base+x+ce.offset]
				}
				dst.SetSample(ch, x, y, clampSample(sum/k.div+k.bias, maxVal))
			}
			done++
			c.reportProgress(done, total)
		}
	}
	return nil
}

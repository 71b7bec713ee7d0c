package imaging

import "math"

// contributor is one (source index, weight) pair of a contributor list.
type contributor struct {
	index  int
	weight float64
}

// Resampler rescales an image to an arbitrary target resolution using a
// reconstruction filter, with two-pass separable filtering: a horizontal
// pass into an intermediate buffer of size dstWidth x srcHeight, then a
// vertical pass into the output. Per-output-coordinate contributor lists
// are computed once per axis and reused across rows and columns.
//
// Supported input formats: Gray8, Gray16, RGB24, RGB48. Paletted and
// bilevel buffers are rejected because their samples cannot be blended.
type Resampler struct {
	operation
	dstWidth  int
	dstHeight int
	filter    *Filter
}

// ResampleOption configures a Resampler during creation.
type ResampleOption func(*Resampler)

// WithFilter selects the reconstruction filter. When not set, the
// Resampler uses the Triangle filter.
func WithFilter(f *Filter) ResampleOption {
	return func(r *Resampler) { r.filter = f }
}

// NewResampler creates a resampler targeting the given output resolution.
// Both dimensions must be at least 1.
func NewResampler(width, height int, opts ...ResampleOption) (*Resampler, error) {
	if width < 1 || height < 1 {
		return nil, configErrorf("resample target %dx%d, both dimensions must be >= 1", width, height)
	}
	r := &Resampler{dstWidth: width, dstHeight: height}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// SetFilter selects the reconstruction filter. Passing nil restores the
// Triangle default.
func (r *Resampler) SetFilter(f *Filter) { r.filter = f }

// Resample rescales src to the target resolution, allocating a compatible
// output buffer.
func (r *Resampler) Resample(src SampleBuffer) (SampleBuffer, error) {
	if src == nil {
		return nil, missingErrorf("resample: no input image")
	}
	if err := r.check(src); err != nil {
		return nil, err
	}
	dst := src.NewCompatible(r.dstWidth, r.dstHeight)
	if err := r.run(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// ResampleInto rescales src into dst, which must have the same pixel
// format as src and the target resolution.
func (r *Resampler) ResampleInto(src, dst SampleBuffer) error {
	if src == nil {
		return missingErrorf("resample: no input image")
	}
	if dst == nil {
		return missingErrorf("resample: no output image")
	}
	if err := r.check(src); err != nil {
		return err
	}
	if dst.Format() != src.Format() {
		return incompatibleErrorf("resample: output format %v does not match input %v", dst.Format(), src.Format())
	}
	if dst.Width() != r.dstWidth || dst.Height() != r.dstHeight {
		return incompatibleErrorf("resample: output is %dx%d, want %dx%d",
			dst.Width(), dst.Height(), r.dstWidth, r.dstHeight)
	}
	return r.run(src, dst)
}

func (r *Resampler) check(src SampleBuffer) error {
	switch src.Format() {
	case FormatGray8, FormatGray16, FormatRGB24, FormatRGB48:
	default:
		return incompatibleErrorf("resample: unsupported pixel format %v", src.Format())
	}
	if src.Width() < 1 || src.Height() < 1 {
		return incompatibleErrorf("resample: empty input image")
	}
	if src.Width() == r.dstWidth && src.Height() == r.dstHeight {
		return configErrorf("resample: target resolution %dx%d equals the input resolution",
			r.dstWidth, r.dstHeight)
	}
	return nil
}

func (r *Resampler) run(src, dst SampleBuffer) error {
	r.resetAbort()
	f := r.filter
	if f == nil {
		f = Triangle()
	}
	srcW, srcH := src.Width(), src.Height()
	channels := src.Channels()

	Logger().Debug("resample",
		"from", [2]int{srcW, srcH}, "to", [2]int{r.dstWidth, r.dstHeight},
		"filter", f.Name())

	horiz := contributors(srcW, r.dstWidth, f)
	vert := contributors(srcH, r.dstHeight, f)

	// Per-channel intermediate buffers of size dstWidth x srcHeight.
	inter := make([][]int, channels)
	for c := range inter {
		inter[c] = make([]int, r.dstWidth*srcH)
	}

	totalRows := srcH + r.dstHeight
	done := 0

	// Pass 1: horizontal, src -> intermediate.
	for y := 0; y < srcH; y++ {
		if r.aborted() {
			return failedErrorf("resample: aborted")
		}
		for c := 0; c < channels; c++ {
			maxVal := src.MaxSample(c)
			row := inter[c][y*r.dstWidth:]
			for x := 0; x < r.dstWidth; x++ {
				var sum float64
				for _, e := range horiz[x] {
					sum += e.weight * float64(src.Sample(c, e.index, y))
				}
				row[x] = clampSample(int(math.Floor(sum+0.5)), maxVal)
			}
		}
		done++
		r.reportProgress(done, totalRows)
	}

	// Pass 2: vertical, intermediate -> dst.
	for y := 0; y < r.dstHeight; y++ {
		if r.aborted() {
			return failedErrorf("resample: aborted")
		}
		for c := 0; c < channels; c++ {
			maxVal := dst.MaxSample(c)
			for x := 0; x < r.dstWidth; x++ {
				var sum float64
				for _, e := range vert[y] {
					sum += e.weight * float64(inter[c][e.index*r.dstWidth+x])
				}
				dst.SetSample(c, x, y, clampSample(int(math.Floor(sum+0.5)), maxVal))
			}
		}
		done++
		r.reportProgress(done, totalRows)
	}
	return nil
}

// contributors computes, for every output coordinate along one axis, the
// list of source indices and filter weights contributing to it. When
// downsampling, the filter support is widened by the inverse scale factor
// and the weights divided by it, so the kernel keeps covering enough
// source samples to avoid aliasing while preserving energy. Out-of-range
// source indices are reflected at the boundaries; zero weights are
// omitted.
func contributors(srcLen, dstLen int, f *Filter) [][]contributor {
	var scale float64
	if srcLen == 1 || dstLen == 1 {
		// The (dstLen-1)/(srcLen-1) mapping is undefined when either
		// axis collapses to a single coordinate.
		scale = float64(dstLen) / float64(srcLen)
	} else {
		scale = float64(dstLen-1) / float64(srcLen-1)
	}
	radius := f.Radius()
	lists := make([][]contributor, dstLen)

	if scale < 1 {
		// Downsampling: widened support, renormalized weights.
		width := radius / scale
		fscale := 1 / scale
		for i := 0; i < dstLen; i++ {
			center := float64(i) / scale
			left := int(math.Ceil(center - width))
			right := int(math.Floor(center + width))
			list := make([]contributor, 0, right-left+1)
			for j := left; j <= right; j++ {
				w := f.Weight((center-float64(j))/fscale) / fscale
				if w == 0 {
					continue
				}
				list = append(list, contributor{index: mirrorIndex(j, srcLen), weight: w})
			}
			lists[i] = list
		}
		return lists
	}

	// Upsampling: the support is the plain filter radius.
	for i := 0; i < dstLen; i++ {
		center := float64(i) / scale
		left := int(math.Ceil(center - radius))
		right := int(math.Floor(center + radius))
		list := make([]contributor, 0, right-left+1)
		for j := left; j <= right; j++ {
			w := f.Weight(center - float64(j))
			if w == 0 {
				continue
			}
			list = append(list, contributor{index: mirrorIndex(j, srcLen), weight: w})
		}
		lists[i] = list
	}
	return lists
}

// mirrorIndex mirrors an out-of-range source index back into [0, n-1].
func mirrorIndex(j, n int) int {
	for j < 0 || j >= n {
		if j < 0 {
			j = -j
		} else {
			j = 2*n - 1 - j
		}
	}
	return j
}

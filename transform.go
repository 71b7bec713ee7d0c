package imaging

import "math"

// SampleMode selects how a geometric transform reads source pixels.
type SampleMode uint8

const (
	// SampleNearest selects the closest source pixel.
	SampleNearest SampleMode = iota

	// SampleBilinear interpolates linearly between the four neighboring
	// source pixels.
	SampleBilinear
)

// String returns a string representation of the sample mode.
func (m SampleMode) String() string {
	switch m {
	case SampleNearest:
		return "Nearest"
	case SampleBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// AffineTransform applies an affine transformation to an image by inverse
// mapping: the output canvas is sized to the transformed bounding box of
// the source, and every output pixel is mapped back into the source and
// sampled there. Pixels mapping outside the source take the background
// value.
//
// All pixel formats are supported. Paletted and bilevel buffers always use
// nearest sampling, since their samples cannot be blended.
type AffineTransform struct {
	operation
	m          Affine
	mode       SampleMode
	background int
}

// NewAffineTransform creates a transform operation for an arbitrary
// affine matrix, defaulting to bilinear sampling and a background of 0.
func NewAffineTransform(m Affine) *AffineTransform {
	return &AffineTransform{m: m, mode: SampleBilinear}
}

// NewRotation creates a transform rotating the image by the given angle in
// radians, counter-clockwise.
func NewRotation(radians float64) *AffineTransform {
	return NewAffineTransform(AffineRotation(radians))
}

// NewShear creates a transform shearing the image by the factors
// (shearX, shearY).
func NewShear(shearX, shearY float64) *AffineTransform {
	return NewAffineTransform(AffineShear(shearX, shearY))
}

// SetSampleMode selects nearest or bilinear sampling.
func (t *AffineTransform) SetSampleMode(mode SampleMode) { t.mode = mode }

// SetBackground sets the sample value written where the inverse mapping
// falls outside the source image. It is clamped per channel.
func (t *AffineTransform) SetBackground(value int) { t.background = value }

// Apply transforms src, allocating a compatible output buffer sized to
// the transformed bounds.
func (t *AffineTransform) Apply(src SampleBuffer) (SampleBuffer, error) {
	if src == nil {
		return nil, missingErrorf("transform: no input image")
	}
	w, h := src.Width(), src.Height()
	if w < 1 || h < 1 {
		return nil, incompatibleErrorf("transform: empty input image")
	}

	// Transformed bounding box of the source rectangle.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}} {
		x, y := t.m.Apply(corner[0], corner[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	// The epsilon keeps float noise in rotations by multiples of pi/2
	// from growing the canvas by a row or column.
	outW := max(int(math.Ceil(maxX-minX-1e-9)), 1)
	outH := max(int(math.Ceil(maxY-minY-1e-9)), 1)

	full := AffineTranslation(-minX, -minY).Mul(t.m)
	inv, ok := full.Invert()
	if !ok {
		return nil, configErrorf("transform: singular matrix")
	}

	mode := t.mode
	switch src.Format() {
	case FormatPaletted8, FormatBilevel:
		mode = SampleNearest
	}

	Logger().Debug("transform", "from", [2]int{w, h}, "to", [2]int{outW, outH},
		"mode", mode)

	dst := src.NewCompatible(outW, outH)
	t.resetAbort()
	channels := src.Channels()
	for y := 0; y < outH; y++ {
		if t.aborted() {
			return nil, failedErrorf("transform: aborted")
		}
		for x := 0; x < outW; x++ {
			sx, sy := inv.Apply(float64(x)+0.5, float64(y)+0.5)
			if mode == SampleNearest {
				ix, iy := int(math.Floor(sx)), int(math.Floor(sy))
				for c := 0; c < channels; c++ {
					dst.SetSample(c, x, y, t.sampleOr(src, c, ix, iy))
				}
				continue
			}
			fx, fy := sx-0.5, sy-0.5
			x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
			tx, ty := fx-float64(x0), fy-float64(y0)
			for c := 0; c < channels; c++ {
				v00 := float64(t.sampleOr(src, c, x0, y0))
				v10 := float64(t.sampleOr(src, c, x0+1, y0))
				v01 := float64(t.sampleOr(src, c, x0, y0+1))
				v11 := float64(t.sampleOr(src, c, x0+1, y0+1))
				v0 := v00 + (v10-v00)*tx
				v1 := v01 + (v11-v01)*tx
				dst.SetSample(c, x, y, int(math.Floor(v0+(v1-v0)*ty+0.5)))
			}
		}
		t.reportProgress(y+1, outH)
	}
	return dst, nil
}

// sampleOr reads a source sample, substituting the background value
// outside the image.
func (t *AffineTransform) sampleOr(src SampleBuffer, c, x, y int) int {
	if x < 0 || x >= src.Width() || y < 0 || y >= src.Height() {
		return clampSample(t.background, src.MaxSample(c))
	}
	return src.Sample(c, x, y)
}

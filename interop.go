package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage copies a standard library image into a sample buffer, picking
// the closest supported pixel encoding: Gray8/Gray16 for grayscale,
// Paletted8 for paletted, RGB48 for 16-bit color, RGB24 for everything
// else. Alpha is discarded.
func FromImage(img image.Image) SampleBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		dst := NewGray8(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetSample(0, x, y, int(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y))
			}
		}
		return dst
	case *image.Gray16:
		dst := NewGray16(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetSample(0, x, y, int(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y))
			}
		}
		return dst
	case *image.Paletted:
		palette := make(color.Palette, len(src.Palette))
		copy(palette, src.Palette)
		dst := NewPaletted8(w, h, palette)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetSample(0, x, y, int(src.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y)))
			}
		}
		return dst
	case *image.RGBA64:
		dst := NewRGB48(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := src.RGBA64At(bounds.Min.X+x, bounds.Min.Y+y)
				dst.SetSample(0, x, y, int(c.R))
				dst.SetSample(1, x, y, int(c.G))
				dst.SetSample(2, x, y, int(c.B))
			}
		}
		return dst
	}

	dst := NewRGB24(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			dst.SetSample(0, x, y, int(r>>8))
			dst.SetSample(1, x, y, int(g>>8))
			dst.SetSample(2, x, y, int(b>>8))
		}
	}
	return dst
}

// DrawKernel adapts a reconstruction filter to a golang.org/x/image/draw
// kernel, so the package's filters can drive the standard scaler:
//
//	scaler := imaging.DrawKernel(imaging.Lanczos3())
//	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
//
// The standard scaler only evaluates the kernel at non-negative distances,
// which every predefined filter is symmetric over.
func DrawKernel(f *Filter) *draw.Kernel {
	return &draw.Kernel{Support: f.Radius(), At: f.Weight}
}

// Command imagingdemo demonstrates the imaging library: it decodes an
// image (PNG, JPEG, BMP or TIFF), applies one operation and encodes the
// result.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/imaging"
)

var filters = map[string]func() *imaging.Filter{
	"box":      imaging.Box,
	"triangle": imaging.Triangle,
	"hermite":  imaging.Hermite,
	"bell":     imaging.Bell,
	"bspline":  imaging.BSpline,
	"lanczos3": imaging.Lanczos3,
	"mitchell": imaging.Mitchell,
}

var templates = map[string]*imaging.DiffusionTemplate{
	"floyd-steinberg":     imaging.FloydSteinberg,
	"stucki":              imaging.Stucki,
	"burkes":              imaging.Burkes,
	"sierra":              imaging.Sierra,
	"jarvis-judice-ninke": imaging.JarvisJudiceNinke,
	"stevenson-arce":      imaging.StevensonArce,
}

var kernels = map[string]*imaging.Kernel{
	"blur":        imaging.Blur,
	"sharpen":     imaging.Sharpen,
	"edge":        imaging.EdgeDetection,
	"emboss":      imaging.Emboss,
	"psychedelic": imaging.PsychedelicDistillation,
	"lithograph":  imaging.Lithograph,
}

var matrices = map[string]*imaging.ThresholdMatrix{
	"3x3":    imaging.Matrix3x3,
	"bayer4": imaging.Bayer4x4,
	"bayer8": imaging.Bayer8x8,
}

func main() {
	var (
		in       = flag.String("in", "", "input image (png, jpg, bmp, tiff)")
		out      = flag.String("out", "out.png", "output image")
		op       = flag.String("op", "resize", "operation: resize, convolve, dither, ordered, rotate, shear")
		width    = flag.Int("width", 0, "target width (resize)")
		height   = flag.Int("height", 0, "target height (resize)")
		filter   = flag.String("filter", "triangle", "reconstruction filter (resize)")
		kernel   = flag.String("kernel", "sharpen", "convolution kernel (convolve)")
		template = flag.String("template", "floyd-steinberg", "diffusion template (dither)")
		matrix   = flag.String("matrix", "bayer4", "threshold matrix (ordered)")
		bits     = flag.Int("bits", 1, "output bits per channel (dither, ordered)")
		angle    = flag.Float64("angle", 45, "rotation angle in degrees (rotate)")
		shearX   = flag.Float64("shearx", 0.5, "horizontal shear factor (shear)")
		shearY   = flag.Float64("sheary", 0, "vertical shear factor (shear)")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := decode(*in)
	if err != nil {
		log.Fatalf("decode %s: %v", *in, err)
	}

	dst, err := run(src, *op, options{
		width: *width, height: *height, filter: *filter, kernel: *kernel,
		template: *template, matrix: *matrix, bits: *bits,
		angle: *angle, shearX: *shearX, shearY: *shearY,
	})
	if err != nil {
		log.Fatalf("%s: %v", *op, err)
	}

	if err := encode(*out, dst); err != nil {
		log.Fatalf("encode %s: %v", *out, err)
	}
	log.Printf("%s: %dx%d -> %s (%dx%d)", *op, src.Width(), src.Height(),
		*out, dst.Width(), dst.Height())
}

type options struct {
	width, height  int
	filter         string
	kernel         string
	template       string
	matrix         string
	bits           int
	angle          float64
	shearX, shearY float64
}

func run(src imaging.SampleBuffer, op string, o options) (imaging.SampleBuffer, error) {
	switch op {
	case "resize":
		mk, ok := filters[o.filter]
		if !ok {
			return nil, fmt.Errorf("unknown filter %q", o.filter)
		}
		r, err := imaging.NewResampler(o.width, o.height, imaging.WithFilter(mk()))
		if err != nil {
			return nil, err
		}
		return r.Resample(src)
	case "convolve":
		k, ok := kernels[o.kernel]
		if !ok {
			return nil, fmt.Errorf("unknown kernel %q", o.kernel)
		}
		return imaging.NewConvolver(k).Apply(src)
	case "dither":
		t, ok := templates[o.template]
		if !ok {
			return nil, fmt.Errorf("unknown template %q", o.template)
		}
		ed := imaging.NewErrorDiffusion()
		ed.SetTemplate(t)
		if src.Format() == imaging.FormatRGB24 {
			q, err := imaging.NewUniformQuantizer(o.bits, o.bits, o.bits)
			if err != nil {
				return nil, err
			}
			ed.SetQuantizer(q)
		} else if err := ed.SetGrayscaleBits(o.bits); err != nil {
			return nil, err
		}
		return ed.Dither(src)
	case "ordered":
		m, ok := matrices[o.matrix]
		if !ok {
			return nil, fmt.Errorf("unknown matrix %q", o.matrix)
		}
		od := imaging.NewOrderedDither()
		od.SetMatrix(m)
		if err := od.SetBits(o.bits); err != nil {
			return nil, err
		}
		return od.Apply(src)
	case "rotate":
		return imaging.NewRotation(o.angle * math.Pi / 180).Apply(src)
	case "shear":
		return imaging.NewShear(o.shearX, o.shearY).Apply(src)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

func decode(path string) (imaging.SampleBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return imaging.FromImage(img), nil
}

func encode(path string, buf imaging.SampleBuffer) error {
	img, ok := buf.(image.Image)
	if !ok {
		return fmt.Errorf("buffer %T is not an image.Image", buf)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, nil)
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}

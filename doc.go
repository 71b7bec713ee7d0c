// Package imaging provides CPU raster-image processing over multi-channel
// integer sample buffers.
//
// # Overview
//
// imaging is a Pure Go image-processing library in the GoGPU ecosystem. It
// operates on in-memory sample buffers of several pixel encodings (bilevel,
// 8/16-bit grayscale, 8-bit paletted, 24/48-bit RGB) and provides:
//
//   - Resampling to arbitrary resolutions with pluggable reconstruction
//     filters (Box, Triangle, Hermite, Bell, B-spline, Lanczos3, Mitchell)
//   - Error-diffusion dithering with configurable diffusion templates
//     (Floyd-Steinberg, Stucki, Burkes, Sierra, Jarvis-Judice-Ninke,
//     Stevenson-Arce)
//   - Ordered and clustered-dot dithering from threshold matrices or
//     spot functions
//   - Convolution filtering with predefined and custom kernels
//   - Affine geometric transforms (rotation, shearing)
//
// # Quick Start
//
//	import "github.com/gogpu/imaging"
//
//	// Load an image into a sample buffer
//	src := imaging.FromImage(img)
//
//	// Resample to 320x200 with a Lanczos3 filter
//	r, _ := imaging.NewResampler(320, 200, imaging.WithFilter(imaging.Lanczos3()))
//	dst, err := r.Resample(src)
//
//	// Dither to 1-bit with Floyd-Steinberg
//	ed := imaging.NewErrorDiffusion()
//	bw, err := ed.Dither(src)
//
// # Sample Buffers
//
// All operations consume the SampleBuffer interface: channel-indexed integer
// sample access plus dimensions and per-channel maximum values. The package
// ships in-memory implementations for every supported encoding (Gray8,
// Gray16, RGB24, RGB48, Paletted8, Bilevel); all of them also implement
// image.Image for interoperability with the standard library.
//
// # Operations
//
// Operations follow a configure-then-run contract: construct the operation,
// adjust parameters, then run it against a source buffer. Each operation
// either allocates its own output or writes into a caller-supplied buffer
// via the *Into variant. Configuration problems are reported as soon as they
// can be detected; all remaining validation happens before any output pixel
// is written.
//
// Processing is single-threaded and synchronous. An optional progress
// callback receives a monotonically increasing fraction in [0, 1]; Abort
// may be called from another goroutine to request an early stop, which is
// checked between rows.
package imaging

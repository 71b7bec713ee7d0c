package imaging

import (
	"errors"
	"testing"
)

func TestNewKernelValidation(t *testing.T) {
	coeffs9 := []int{0, 0, 0, 0, 1, 0, 0, 0, 0}
	tests := []struct {
		name          string
		width, height int
		coeffs        []int
		div           int
	}{
		{"even width", 2, 3, coeffs9, 1},
		{"even height", 3, 4, coeffs9, 1},
		{"zero width", 0, 3, coeffs9, 1},
		{"short data", 3, 3, []int{1, 2, 3}, 1},
		{"nil data", 3, 3, nil, 1},
		{"zero divisor", 3, 3, coeffs9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKernel("bad", tt.width, tt.height, tt.coeffs, tt.div, 0); !errors.Is(err, ErrConfiguration) {
				t.Errorf("NewKernel = %v, want configuration error", err)
			}
		})
	}
}

func TestKernelAccessors(t *testing.T) {
	k, err := NewKernel("test", 3, 1, []int{1, 2, 3}, 6, 7)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := k.Size(); w != 3 || h != 1 {
		t.Errorf("Size() = %dx%d, want 3x1", w, h)
	}
	if k.Divisor() != 6 || k.Bias() != 7 || k.Name() != "test" {
		t.Errorf("accessors = (%d, %d, %q)", k.Divisor(), k.Bias(), k.Name())
	}
	c := k.Coefficients()
	c[0] = 99 // must not affect the kernel
	if k.Coefficients()[0] != 1 {
		t.Error("Coefficients() exposes internal state")
	}
}

// An all-zero-except-center kernel with divisor 1 and bias 0 is the
// identity: the output equals the input, including at the borders.
func TestConvolveIdentity(t *testing.T) {
	identity, err := NewKernel("identity", 3, 3, []int{0, 0, 0, 0, 1, 0, 0, 0, 0}, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	src := newGray8From(t, [][]int{
		{12, 200, 7},
		{0, 255, 33},
		{64, 17, 99},
	})
	dst, err := NewConvolver(identity).Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	if !rowsEqual(gray8Rows(dst), gray8Rows(src)) {
		t.Errorf("identity convolution = %v, want %v", gray8Rows(dst), gray8Rows(src))
	}
}

// Sharpening a constant field is a no-op: edge replication guarantees
// identical neighbors even at the borders.
func TestConvolveSharpenFlat(t *testing.T) {
	src := NewRGB24(5, 5)
	for c := 0; c < 3; c++ {
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				src.SetSample(c, x, y, 100)
			}
		}
	}
	dst, err := NewConvolver(Sharpen).Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	for c := 0; c < 3; c++ {
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				if got := dst.Sample(c, x, y); got != 100 {
					t.Fatalf("channel %d at (%d,%d) = %d, want 100", c, x, y, got)
				}
			}
		}
	}
}

func TestConvolveBlurGradient(t *testing.T) {
	src := newGray8From(t, [][]int{{0, 90, 180}})
	dst, err := NewConvolver(Blur).Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	// Vertical replication makes each column contribute three identical
	// rows; horizontal replication extends the outer columns.
	want := [][]int{{30, 90, 150}}
	if got := gray8Rows(dst); !rowsEqual(got, want) {
		t.Errorf("blur = %v, want %v", got, want)
	}
}

func TestConvolveEmbossBias(t *testing.T) {
	src := NewGray8(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetSample(0, x, y, 100)
		}
	}
	dst, err := NewConvolver(Emboss).Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	// The Emboss coefficients sum to 1, so a flat field becomes the
	// field plus the bias of 128.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := dst.Sample(0, x, y); got != 228 {
				t.Errorf("at (%d,%d) = %d, want 228", x, y, got)
			}
		}
	}
}

func TestConvolveValidation(t *testing.T) {
	src := NewGray8(3, 3)

	if _, err := NewConvolver(nil).Apply(src); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("nil kernel = %v, want missing-parameter error", err)
	}
	if _, err := NewConvolver(Blur).Apply(nil); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("nil input = %v, want missing-parameter error", err)
	}
	if _, err := NewConvolver(Blur).Apply(NewBilevel(3, 3)); !errors.Is(err, ErrIncompatible) {
		t.Errorf("bilevel input = %v, want incompatible error", err)
	}
	if err := NewConvolver(Blur).ApplyInto(src, NewGray8(2, 2)); !errors.Is(err, ErrIncompatible) {
		t.Errorf("mismatched output = %v, want incompatible error", err)
	}
}

func TestPredefinedKernels(t *testing.T) {
	tests := []struct {
		kernel *Kernel
		w, h   int
		div    int
		bias   int
	}{
		{Blur, 3, 3, 9, 0},
		{Sharpen, 3, 3, 1, 0},
		{EdgeDetection, 3, 3, 1, 0},
		{Emboss, 3, 3, 1, 128},
		{PsychedelicDistillation, 5, 5, 8, 0},
		{Lithograph, 5, 5, 1, 0},
		{SobelHorizontal, 3, 3, 1, 0},
		{SobelVertical, 3, 3, 1, 0},
		{PrewittHorizontal, 3, 3, 1, 0},
		{PrewittVertical, 3, 3, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.kernel.Name(), func(t *testing.T) {
			w, h := tt.kernel.Size()
			if w != tt.w || h != tt.h {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
			if tt.kernel.Divisor() != tt.div || tt.kernel.Bias() != tt.bias {
				t.Errorf("divisor/bias = %d/%d, want %d/%d",
					tt.kernel.Divisor(), tt.kernel.Bias(), tt.div, tt.bias)
			}
		})
	}
}

// Gradient kernels on a constant field yield the bias alone (the
// coefficients cancel out).
func TestGradientKernelsCancel(t *testing.T) {
	src := NewGray8(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetSample(0, x, y, 77)
		}
	}
	for _, k := range []*Kernel{SobelHorizontal, SobelVertical, PrewittHorizontal, PrewittVertical, EdgeDetection} {
		dst, err := NewConvolver(k).Apply(src)
		if err != nil {
			t.Fatalf("%s: %v", k.Name(), err)
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				if got := dst.Sample(0, x, y); got != 0 {
					t.Fatalf("%s at (%d,%d) = %d, want 0", k.Name(), x, y, got)
				}
			}
		}
	}
}

func BenchmarkConvolveBlur(b *testing.B) {
	src := NewGray8(256, 256)
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			src.SetSample(0, x, y, (x+y)%256)
		}
	}
	conv := NewConvolver(Blur)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conv.Apply(src); err != nil {
			b.Fatal(err)
		}
	}
}

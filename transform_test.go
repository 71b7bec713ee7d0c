package imaging

import (
	"errors"
	"math"
	"testing"
)

func TestAffineCompose(t *testing.T) {
	m := AffineTranslation(3, -2).Mul(AffineScale(2, 2))
	x, y := m.Apply(5, 7)
	if x != 13 || y != 12 {
		t.Errorf("Apply(5,7) = (%v,%v), want (13,12)", x, y)
	}
}

func TestAffineInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Affine
	}{
		{"identity", AffineIdentity()},
		{"translation", AffineTranslation(4.5, -1.25)},
		{"scale", AffineScale(3, 0.5)},
		{"rotation", AffineRotation(0.7)},
		{"shear", AffineShear(0.3, -0.6)},
		{"composite", AffineRotation(1.1).Mul(AffineScale(2, 3)).Mul(AffineTranslation(-7, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("matrix reported singular")
			}
			for _, p := range [][2]float64{{0, 0}, {1, 0}, {-3.5, 8}} {
				fx, fy := tt.m.Apply(p[0], p[1])
				bx, by := inv.Apply(fx, fy)
				if math.Abs(bx-p[0]) > 1e-9 || math.Abs(by-p[1]) > 1e-9 {
					t.Errorf("round trip of (%v,%v) = (%v,%v)", p[0], p[1], bx, by)
				}
			}
		})
	}
}

func TestAffineInvertSingular(t *testing.T) {
	if _, ok := AffineScale(0, 1).Invert(); ok {
		t.Error("zero-scale matrix inverted")
	}
}

func TestTransformRotateQuarter(t *testing.T) {
	src := newGray8From(t, [][]int{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	op := NewRotation(math.Pi / 2)
	op.SetSampleMode(SampleNearest)
	dst, err := op.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{5, 3, 1},
		{6, 4, 2},
	}
	if got := gray8Rows(dst); !rowsEqual(got, want) {
		t.Errorf("rotate pi/2 = %v, want %v", got, want)
	}
}

func TestTransformRotateHalf(t *testing.T) {
	src := newGray8From(t, [][]int{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	op := NewRotation(math.Pi)
	op.SetSampleMode(SampleNearest)
	dst, err := op.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{6, 5},
		{4, 3},
		{2, 1},
	}
	if got := gray8Rows(dst); !rowsEqual(got, want) {
		t.Errorf("rotate pi = %v, want %v", got, want)
	}
}

// Identity bilinear sampling must reproduce the source exactly: every
// output center maps back onto a source center.
func TestTransformIdentityBilinear(t *testing.T) {
	src := newGray8From(t, [][]int{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	dst, err := NewAffineTransform(AffineIdentity()).Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	if !rowsEqual(gray8Rows(dst), gray8Rows(src)) {
		t.Errorf("identity = %v, want %v", gray8Rows(dst), gray8Rows(src))
	}
}

func TestTransformShearBackground(t *testing.T) {
	src := newGray8From(t, [][]int{
		{10, 20, 30},
		{40, 50, 60},
	})
	op := NewShear(1, 0)
	op.SetSampleMode(SampleNearest)
	op.SetBackground(99)
	dst, err := op.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{10, 20, 30, 99, 99},
		{99, 40, 50, 60, 99},
	}
	if got := gray8Rows(dst); !rowsEqual(got, want) {
		t.Errorf("shear = %v, want %v", got, want)
	}
}

func TestTransformScaleNearest(t *testing.T) {
	src := newGray8From(t, [][]int{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	op := NewAffineTransform(AffineScale(2, 2))
	op.SetSampleMode(SampleNearest)
	dst, err := op.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{1, 1, 2, 2},
		{1, 1, 2, 2},
		{3, 3, 4, 4},
		{3, 3, 4, 4},
		{5, 5, 6, 6},
		{5, 5, 6, 6},
	}
	if got := gray8Rows(dst); !rowsEqual(got, want) {
		t.Errorf("scale 2x = %v, want %v", got, want)
	}
}

// Paletted input is transformed index-wise with forced nearest sampling,
// and the output shares the source palette.
func TestTransformPalettedNearest(t *testing.T) {
	src := NewPaletted8(2, 2, nil)
	op := NewRotation(math.Pi / 2)
	dst, err := op.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := dst.(*Paletted8)
	if !ok {
		t.Fatalf("output is %T, want *Paletted8", dst)
	}
	if len(p.Palette()) != 1 {
		t.Errorf("output palette has %d entries, want 1", len(p.Palette()))
	}
}

func TestTransformValidation(t *testing.T) {
	if _, err := NewRotation(1).Apply(nil); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("nil input = %v, want missing-parameter error", err)
	}
	if _, err := NewRotation(1).Apply(NewGray8(0, 0)); !errors.Is(err, ErrIncompatible) {
		t.Errorf("empty input = %v, want incompatible error", err)
	}
	if _, err := NewAffineTransform(AffineScale(0, 0)).Apply(NewGray8(2, 2)); !errors.Is(err, ErrConfiguration) {
		t.Errorf("singular matrix = %v, want configuration error", err)
	}
}

func TestSampleModeString(t *testing.T) {
	tests := []struct {
		mode SampleMode
		want string
	}{
		{SampleNearest, "Nearest"},
		{SampleBilinear, "Bilinear"},
		{SampleMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("SampleMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

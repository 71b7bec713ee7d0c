package imaging

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewUniformQuantizerValidation(t *testing.T) {
	for _, bits := range [][3]int{{0, 1, 1}, {1, 9, 1}, {1, 1, -1}} {
		if _, err := NewUniformQuantizer(bits[0], bits[1], bits[2]); !errors.Is(err, ErrConfiguration) {
			t.Errorf("NewUniformQuantizer(%v) = %v, want configuration error", bits, err)
		}
	}
}

func TestUniformQuantizerRGB(t *testing.T) {
	q, err := NewUniformQuantizer(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		r, g, b          int
		qr, qg, qb, want int
	}{
		{0, 0, 0, 0, 0, 0, 0},
		{255, 255, 255, 255, 255, 255, 7},
		{255, 0, 255, 255, 0, 255, 5},
		{127, 127, 127, 0, 0, 0, 0},       // just below the midpoint
		{128, 128, 128, 255, 255, 255, 7}, // at the midpoint
		{300, -5, 128, 255, 0, 255, 5},    // out-of-range input is clamped
	}
	for _, tt := range tests {
		qr, qg, qb, index := q.QuantizeRGB(tt.r, tt.g, tt.b)
		if qr != tt.qr || qg != tt.qg || qb != tt.qb || index != tt.want {
			t.Errorf("QuantizeRGB(%d,%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				tt.r, tt.g, tt.b, qr, qg, qb, index, tt.qr, tt.qg, tt.qb, tt.want)
		}
	}
}

func TestUniformQuantizerPalette(t *testing.T) {
	q, err := NewUniformQuantizer(2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	p := q.Palette()
	if len(p) != 64 {
		t.Fatalf("palette has %d entries, want 64", len(p))
	}
	// The index returned by QuantizeRGB must address the matching palette
	// entry.
	qr, qg, qb, index := q.QuantizeRGB(170, 85, 0)
	r, g, b, _ := p[index].RGBA()
	if int(r>>8) != qr || int(g>>8) != qg || int(b>>8) != qb {
		t.Errorf("palette[%d] = (%d,%d,%d), quantized to (%d,%d,%d)",
			index, r>>8, g>>8, b>>8, qr, qg, qb)
	}

	// 3+3+3 bits is 512 colors, too many for a palette.
	wide, err := NewUniformQuantizer(3, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if wide.Palette() != nil {
		t.Error("512-color quantizer should have a nil palette")
	}
}

func TestNewPaletteQuantizerValidation(t *testing.T) {
	if _, err := NewPaletteQuantizer(nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("empty palette = %v, want configuration error", err)
	}
	big := make(color.Palette, 257)
	for i := range big {
		big[i] = color.Gray{Y: uint8(i)}
	}
	if _, err := NewPaletteQuantizer(big); !errors.Is(err, ErrConfiguration) {
		t.Errorf("257-entry palette = %v, want configuration error", err)
	}
}

func TestPaletteQuantizerNearest(t *testing.T) {
	palette := color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{255, 255, 255, 255},
	}
	q, err := NewPaletteQuantizer(palette)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		r, g, b int
		want    int
	}{
		{10, 10, 10, 0},
		{200, 30, 20, 1},
		{60, 250, 40, 2},
		{240, 240, 230, 3},
	}
	for _, tt := range tests {
		qr, qg, qb, index := q.QuantizeRGB(tt.r, tt.g, tt.b)
		if index != tt.want {
			t.Errorf("QuantizeRGB(%d,%d,%d) index = %d, want %d", tt.r, tt.g, tt.b, index, tt.want)
		}
		wr, wg, wb, _ := palette[tt.want].RGBA()
		if qr != int(wr>>8) || qg != int(wg>>8) || qb != int(wb>>8) {
			t.Errorf("QuantizeRGB(%d,%d,%d) = (%d,%d,%d), want palette entry %d",
				tt.r, tt.g, tt.b, qr, qg, qb, tt.want)
		}
	}
	if got := len(q.Palette()); got != 4 {
		t.Errorf("Palette() has %d entries, want 4", got)
	}
}

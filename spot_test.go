package imaging

import (
	"errors"
	"math"
	"testing"
)

func TestSpotFunctionValues(t *testing.T) {
	tests := []struct {
		name string
		fn   SpotFunction
		x, y float64
		want float64
	}{
		{"round center", RoundSpot{}, 0, 0, 1},
		{"round corner", RoundSpot{}, 1, 1, -1},
		{"round edge", RoundSpot{}, 1, 0, 0},
		{"diamond center", DiamondSpot{}, 0, 0, 1},
		{"diamond corner", DiamondSpot{}, 1, 1, -1},
		{"diamond edge midpoint", DiamondSpot{}, 1, 0, 0},
		{"diamond inner", DiamondSpot{}, 0.25, 0.25, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn.Spot(tt.x, tt.y); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Spot(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if !(RoundSpot{}).Balanced() {
		t.Error("RoundSpot must be balanced")
	}
	if (DiamondSpot{}).Balanced() {
		t.Error("DiamondSpot must be unbalanced")
	}
}

func TestSpotFunctionSymmetry(t *testing.T) {
	for _, fn := range []SpotFunction{RoundSpot{}, DiamondSpot{}} {
		for _, p := range [][2]float64{{0.3, 0.7}, {0.9, 0.1}, {0.5, 0.5}} {
			v := fn.Spot(p[0], p[1])
			for _, q := range [][2]float64{
				{-p[0], p[1]}, {p[0], -p[1]}, {-p[0], -p[1]}, {p[1], p[0]},
			} {
				if got := fn.Spot(q[0], q[1]); got != v {
					t.Errorf("%T: Spot(%v,%v) = %v, Spot(%v,%v) = %v",
						fn, p[0], p[1], v, q[0], q[1], got)
				}
			}
		}
	}
}

func TestSpotMatrixValidation(t *testing.T) {
	if _, err := SpotMatrix(4, nil); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("nil spot function = %v, want missing-parameter error", err)
	}
	if _, err := SpotMatrix(0, RoundSpot{}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("order 0 = %v, want configuration error", err)
	}
}

// An unbalanced spot function gets rank-based thresholds: the compiled
// matrix is a permutation of the evenly spaced rank values.
func TestSpotMatrixDiamondRanks(t *testing.T) {
	const order = 4
	m, err := SpotMatrix(order, DiamondSpot{})
	if err != nil {
		t.Fatal(err)
	}
	n := order * order
	want := map[int]int{}
	for r := 0; r < n; r++ {
		want[(2*r+1)*255/(2*n)]++
	}
	got := map[int]int{}
	for y := 0; y < order; y++ {
		for x := 0; x < order; x++ {
			got[m.Threshold(x, y)]++
		}
	}
	for v, c := range want {
		if got[v] != c {
			t.Errorf("threshold %d appears %d times, want %d", v, got[v], c)
		}
	}
}

// The center cells of the diamond matrix have the highest spot values
// and therefore the highest thresholds: the dot grows from the middle.
func TestSpotMatrixDiamondGrowsFromCenter(t *testing.T) {
	m, err := SpotMatrix(4, DiamondSpot{})
	if err != nil {
		t.Fatal(err)
	}
	center := m.Threshold(1, 1) + m.Threshold(2, 1) + m.Threshold(1, 2) + m.Threshold(2, 2)
	corner := m.Threshold(0, 0) + m.Threshold(3, 0) + m.Threshold(0, 3) + m.Threshold(3, 3)
	if center <= corner {
		t.Errorf("center thresholds %d not above corner thresholds %d", center, corner)
	}
}

func TestSpotMatrixRoundBalanced(t *testing.T) {
	m, err := SpotMatrix(5, RoundSpot{})
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := 255, 0
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			v := m.Threshold(x, y)
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	// Balanced compilation scales the value range onto [0, 254].
	if lo != 0 || hi != 254 {
		t.Errorf("threshold range [%d, %d], want [0, 254]", lo, hi)
	}
	// The center sample holds the maximum of 1 - x^2 - y^2.
	if m.Threshold(2, 2) != 254 {
		t.Errorf("center threshold = %d, want 254", m.Threshold(2, 2))
	}
}

// A single-cell matrix of a balanced function is flat and maps to the
// midpoint threshold.
func TestSpotMatrixOrderOne(t *testing.T) {
	m, err := SpotMatrix(1, RoundSpot{})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Threshold(0, 0); got != 127 {
		t.Errorf("Threshold(0,0) = %d, want 127", got)
	}
}

// A spot matrix drives ordered dithering like any other threshold
// matrix: a mid-gray field yields a clustered dot pattern with half of
// each tile white.
func TestSpotMatrixDithering(t *testing.T) {
	m, err := SpotMatrix(4, DiamondSpot{})
	if err != nil {
		t.Fatal(err)
	}
	src := NewGray8(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetSample(0, x, y, 128)
		}
	}
	o := NewOrderedDither()
	o.SetMatrix(m)
	dst, err := o.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	white := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			white += dst.Sample(0, x, y)
		}
	}
	if white != 32 {
		t.Errorf("%d white pixels, want 32", white)
	}
}

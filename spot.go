package imaging

import (
	"math"
	"sort"
)

// SpotFunction describes the dot-growth pattern of clustered-dot dithering
// as a function over normalized coordinates in [-1, 1]^2. Compiling a spot
// function over a grid yields a threshold matrix whose dots grow along the
// function's level sets.
type SpotFunction interface {
	// Spot evaluates the function at the normalized position (x, y).
	Spot(x, y float64) float64

	// Balanced reports whether the value distribution is symmetric enough
	// to map directly to threshold levels. Unbalanced functions are
	// re-ranked by value instead.
	Balanced() bool
}

// DiamondSpot is a spot function whose dots grow as diamonds, using a
// piecewise quadratic of the L1 distance from the center.
type DiamondSpot struct{}

// Spot implements the SpotFunction interface.
func (DiamondSpot) Spot(x, y float64) float64 {
	s := math.Abs(x) + math.Abs(y)
	if s <= 1 {
		return 1 - s*s
	}
	s = 2 - s
	return s*s - 1
}

// Balanced implements the SpotFunction interface.
func (DiamondSpot) Balanced() bool { return false }

// RoundSpot is a spot function whose dots grow as circles: 1 - x^2 - y^2.
type RoundSpot struct{}

// Spot implements the SpotFunction interface.
func (RoundSpot) Spot(x, y float64) float64 { return 1 - x*x - y*y }

// Balanced implements the SpotFunction interface.
func (RoundSpot) Balanced() bool { return true }

// SpotMatrix compiles a spot function into an order-by-order threshold
// matrix by sampling it at the cell centers of a normalized [-1, 1]^2
// grid. Balanced functions are scaled directly into [0, 254]; unbalanced
// ones are sorted by value and assigned rank-based thresholds, so an
// uneven value distribution still produces evenly spaced dot growth.
func SpotMatrix(order int, fn SpotFunction) (*ThresholdMatrix, error) {
	if fn == nil {
		return nil, missingErrorf("spot matrix: no spot function")
	}
	if order < 1 {
		return nil, configErrorf("spot matrix: order %d must be >= 1", order)
	}
	n := order * order
	values := make([]float64, n)
	for y := 0; y < order; y++ {
		cy := (2*float64(y)+1)/float64(order) - 1
		for x := 0; x < order; x++ {
			cx := (2*float64(x)+1)/float64(order) - 1
			values[y*order+x] = fn.Spot(cx, cy)
		}
	}

	thresholds := make([]int, n)
	if fn.Balanced() {
		lo, hi := values[0], values[0]
		for _, v := range values[1:] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if hi == lo {
			for i := range thresholds {
				thresholds[i] = 127
			}
		} else {
			for i, v := range values {
				thresholds[i] = int((v - lo) / (hi - lo) * 254)
			}
		}
		m, err := NewThresholdMatrix(order, order, thresholds)
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	// Rank-based assignment: higher spot values dither to white later.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })
	for rank, i := range idx {
		thresholds[i] = (2*rank + 1) * 255 / (2 * n)
	}
	m, err := NewThresholdMatrix(order, order, thresholds)
	if err != nil {
		return nil, err
	}
	return m, nil
}

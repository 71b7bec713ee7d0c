package imaging

import "math"

// Filter is a reconstruction filter for resampling: a scalar weighting
// function over the signed distance (in source-pixel units) from the sample
// center, together with a sampling radius beyond which the weight is zero.
//
// Construct one of the predefined filters with Box, Triangle, Hermite,
// Bell, BSpline, Lanczos3 or Mitchell, or build a custom filter with
// NewFilter. Each call returns a fresh instance, so adjusting the radius of
// one filter never affects another.
type Filter struct {
	name   string
	radius float64
	weight func(d float64) float64
}

// NewFilter creates a custom reconstruction filter from a weighting
// function and its recommended sampling radius.
func NewFilter(name string, radius float64, weight func(d float64) float64) *Filter {
	return &Filter{name: name, radius: radius, weight: weight}
}

// Name returns the name of the filter.
func (f *Filter) Name() string { return f.name }

// Radius returns the current sampling radius of the filter.
func (f *Filter) Radius() float64 { return f.radius }

// SetRadius changes the sampling radius. The radius must be positive.
func (f *Filter) SetRadius(radius float64) error {
	if radius <= 0 {
		return configErrorf("filter radius must be > 0, got %g", radius)
	}
	f.radius = radius
	return nil
}

// Weight evaluates the filter at the given signed distance.
func (f *Filter) Weight(d float64) float64 { return f.weight(d) }

// Box returns the box filter: weight 1 within (-0.5, 0.5], 0 elsewhere.
// Recommended radius 0.5. Resampling with it reproduces nearest-neighbor
// behavior at integer upscale ratios.
func Box() *Filter {
	return NewFilter("Box", 0.5, func(d float64) float64 {
		if d > -0.5 && d <= 0.5 {
			return 1
		}
		return 0
	})
}

// Triangle returns the triangle (linear/tent) filter, radius 1. It is the
// default filter of the Resampler.
func Triangle() *Filter {
	return NewFilter("Triangle", 1, func(d float64) float64 {
		d = math.Abs(d)
		if d < 1 {
			return 1 - d
		}
		return 0
	})
}

// Hermite returns the Hermite cubic filter, radius 1.
func Hermite() *Filter {
	return NewFilter("Hermite", 1, func(d float64) float64 {
		d = math.Abs(d)
		if d < 1 {
			return (2*d-3)*d*d + 1
		}
		return 0
	})
}

// Bell returns the Bell (piecewise quadratic) filter, radius 1.5.
func Bell() *Filter {
	return NewFilter("Bell", 1.5, func(d float64) float64 {
		d = math.Abs(d)
		if d < 0.5 {
			return 0.75 - d*d
		}
		if d < 1.5 {
			d -= 1.5
			return 0.5 * d * d
		}
		return 0
	})
}

// BSpline returns the cubic B-spline filter, radius 2.
func BSpline() *Filter {
	return NewFilter("BSpline", 2, func(d float64) float64 {
		d = math.Abs(d)
		if d < 1 {
			return 0.5*d*d*d - d*d + 2.0/3.0
		}
		if d < 2 {
			d = 2 - d
			return d * d * d / 6
		}
		return 0
	})
}

// Lanczos3 returns the three-lobed Lanczos filter, radius 3.
func Lanczos3() *Filter {
	return NewFilter("Lanczos3", 3, func(d float64) float64 {
		d = math.Abs(d)
		if d < 3 {
			return sinc(d) * sinc(d/3)
		}
		return 0
	})
}

// Mitchell returns the Mitchell-Netravali cubic filter with B = C = 1/3,
// radius 2. The B and C coefficients are fixed.
func Mitchell() *Filter {
	const b = 1.0 / 3.0
	const c = 1.0 / 3.0
	return NewFilter("Mitchell", 2, func(d float64) float64 {
		d = math.Abs(d)
		if d < 1 {
			return ((12-9*b-6*c)*d*d*d + (-18+12*b+6*c)*d*d + (6 - 2*b)) / 6
		}
		if d < 2 {
			return ((-b-6*c)*d*d*d + (6*b+30*c)*d*d + (-12*b-48*c)*d + (8*b + 24*c)) / 6
		}
		return 0
	})
}

// sinc is the normalized sinc function sin(pi*x)/(pi*x), with sinc(0) = 1.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

package imaging

import "math"

// Affine is a 2D affine transformation matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// covering translation, rotation, scaling and shearing.
type Affine struct {
	a, b, c float64 // first row: x' = ax + by + c
	d, e, f float64 // second row: y' = dx + ey + f
}

// AffineIdentity returns the identity transformation.
func AffineIdentity() Affine {
	return Affine{a: 1, e: 1}
}

// AffineTranslation returns a transformation shifting points by (tx, ty).
func AffineTranslation(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// AffineScale returns a transformation scaling by (sx, sy) around the
// origin. Negative factors flip the plane.
func AffineScale(sx, sy float64) Affine {
	return Affine{a: sx, e: sy}
}

// AffineRotation returns a transformation rotating by angle (in radians)
// around the origin. Positive angles rotate counter-clockwise.
func AffineRotation(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{a: cos, b: -sin, d: sin, e: cos}
}

// AffineShear returns a transformation shearing by the factors (sx, sy):
// sx skews along the x-axis, sy along the y-axis.
func AffineShear(sx, sy float64) Affine {
	return Affine{a: 1, b: sx, d: sy, e: 1}
}

// Mul returns the composition of the two transforms, applying other first.
func (m Affine) Mul(other Affine) Affine {
	return Affine{
		a: m.a*other.a + m.b*other.d,
		b: m.a*other.b + m.b*other.e,
		c: m.a*other.c + m.b*other.f + m.c,
		d: m.d*other.a + m.e*other.d,
		e: m.d*other.b + m.e*other.e,
		f: m.d*other.c + m.e*other.f + m.f,
	}
}

// Invert returns the inverse transformation. The second result is false
// when the matrix is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.a*m.e - m.b*m.d
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		a: m.e * inv,
		b: -m.b * inv,
		c: (m.b*m.f - m.c*m.e) * inv,
		d: -m.d * inv,
		e: m.a * inv,
		f: (m.c*m.d - m.a*m.f) * inv,
	}, true
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}

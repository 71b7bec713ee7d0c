package imaging

// TemplateEntry describes one arrow of a diffusion template: the fraction
// Numerator/Denominator of the quantization error at pixel (x, y) is added
// to the pixel at (x+DX, y+DY).
type TemplateEntry struct {
	DX, DY      int
	Numerator   int
	Denominator int
}

// DiffusionTemplate is an immutable set of template entries together with
// the derived geometry of the rolling error buffer: the maximum horizontal
// reach to the left and right and the number of rows the template spans.
//
// The fractions of a template are expected, but not enforced, to sum to 1:
// a template that distributes less than the full error loses contrast, one
// that distributes more oscillates.
type DiffusionTemplate struct {
	entries     []TemplateEntry
	left, right int // max negative / positive DX
	rows        int // max DY + 1
}

// NewDiffusionTemplate creates a diffusion template. Every entry must have
// DY >= 0 and non-zero numerator and denominator; entries with DY == 0
// must have DX > 0, since pixels to the left in the current row are
// already quantized.
func NewDiffusionTemplate(entries []TemplateEntry) (*DiffusionTemplate, error) {
	if len(entries) == 0 {
		return nil, configErrorf("diffusion template: no entries")
	}
	t := &DiffusionTemplate{entries: make([]TemplateEntry, len(entries))}
	copy(t.entries, entries)
	for i, e := range t.entries {
		if e.DY < 0 {
			return nil, configErrorf("diffusion template entry %d: dy %d must be >= 0", i, e.DY)
		}
		if e.DY == 0 && e.DX <= 0 {
			return nil, configErrorf("diffusion template entry %d: dx %d must be > 0 when dy is 0", i, e.DX)
		}
		if e.Numerator == 0 || e.Denominator == 0 {
			return nil, configErrorf("diffusion template entry %d: zero numerator or denominator", i)
		}
		if -e.DX > t.left {
			t.left = -e.DX
		}
		if e.DX > t.right {
			t.right = e.DX
		}
		if e.DY+1 > t.rows {
			t.rows = e.DY + 1
		}
	}
	return t, nil
}

func mustTemplate(entries []TemplateEntry) *DiffusionTemplate {
	t, err := NewDiffusionTemplate(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Entries returns a copy of the template entries.
func (t *DiffusionTemplate) Entries() []TemplateEntry {
	e := make([]TemplateEntry, len(t.entries))
	copy(e, t.entries)
	return e
}

// LeftColumns returns the maximum reach of the template to the left.
func (t *DiffusionTemplate) LeftColumns() int { return t.left }

// RightColumns returns the maximum reach of the template to the right.
func (t *DiffusionTemplate) RightColumns() int { return t.right }

// Rows returns the number of rows the template spans, including the
// current one.
func (t *DiffusionTemplate) Rows() int { return t.rows }

// Predefined diffusion templates. All of them distribute exactly the full
// quantization error.
var (
	// FloydSteinberg is the classic four-neighbor template (1/16ths).
	FloydSteinberg = mustTemplate([]TemplateEntry{
		{1, 0, 7, 16},
		{-1, 1, 3, 16},
		{0, 1, 5, 16},
		{1, 1, 1, 16},
	})

	// Stucki distributes over twelve neighbors in three rows (1/42nds).
	Stucki = mustTemplate([]TemplateEntry{
		{1, 0, 8, 42}, {2, 0, 4, 42},
		{-2, 1, 2, 42}, {-1, 1, 4, 42}, {0, 1, 8, 42}, {1, 1, 4, 42}, {2, 1, 2, 42},
		{-2, 2, 1, 42}, {-1, 2, 2, 42}, {0, 2, 4, 42}, {1, 2, 2, 42}, {2, 2, 1, 42},
	})

	// Burkes distributes over seven neighbors in two rows (1/32nds).
	Burkes = mustTemplate([]TemplateEntry{
		{1, 0, 8, 32}, {2, 0, 4, 32},
		{-2, 1, 2, 32}, {-1, 1, 4, 32}, {0, 1, 8, 32}, {1, 1, 4, 32}, {2, 1, 2, 32},
	})

	// Sierra distributes over ten neighbors in three rows (1/32nds).
	Sierra = mustTemplate([]TemplateEntry{
		{1, 0, 5, 32}, {2, 0, 3, 32},
		{-2, 1, 2, 32}, {-1, 1, 4, 32}, {0, 1, 5, 32}, {1, 1, 4, 32}, {2, 1, 2, 32},
		{-1, 2, 2, 32}, {0, 2, 3, 32}, {1, 2, 2, 32},
	})

	// JarvisJudiceNinke distributes over twelve neighbors in three rows
	// (1/48ths).
	JarvisJudiceNinke = mustTemplate([]TemplateEntry{
		{1, 0, 7, 48}, {2, 0, 5, 48},
		{-2, 1, 3, 48}, {-1, 1, 5, 48}, {0, 1, 7, 48}, {1, 1, 5, 48}, {2, 1, 3, 48},
		{-2, 2, 1, 48}, {-1, 2, 3, 48}, {0, 2, 5, 48}, {1, 2, 3, 48}, {2, 2, 1, 48},
	})

	// StevensonArce distributes over twelve neighbors in four rows on a
	// hexagonal-like pattern (1/200ths).
	StevensonArce = mustTemplate([]TemplateEntry{
		{2, 0, 32, 200},
		{-3, 1, 12, 200}, {-1, 1, 26, 200}, {1, 1, 30, 200}, {3, 1, 16, 200},
		{-2, 2, 12, 200}, {0, 2, 26, 200}, {2, 2, 12, 200},
		{-3, 3, 5, 200}, {-1, 3, 12, 200}, {1, 3, 12, 200}, {3, 3, 5, 200},
	})
)

package table

import "fmt"

// ToEnd marks a Span as open-ended: the span runs to the end of its axis.
// Open ends resolve against the table's declared shape, not against
// populated cells, so resolution is deterministic.
const ToEnd = -1

// Span selects a run of indices on one axis: inclusive Start, exclusive
// End. End == ToEnd means "rest of the axis".
type Span struct {
	Start, End int
}

// At selects the single index i.
func At(i int) Span { return Span{Start: i, End: i + 1} }

// All selects the whole axis.
func All() Span { return Span{Start: 0, End: ToEnd} }

// Range selects [start, end) on the axis.
func Range(start, end int) Span { return Span{Start: start, End: end} }

// resolve maps the span onto an axis of length n, returning inclusive
// start and exclusive end. Empty, inverted, or out-of-range spans fail
// with ErrOutOfBounds — never a silent clamp.
func (s Span) resolve(n int) (int, int, error) {
	end := s.End
	if end == ToEnd {
		end = n
	}
	if s.Start < 0 || end > n || s.Start >= end {
		return 0, 0, fmt.Errorf("%w: span [%d:%d) on axis of length %d", ErrOutOfBounds, s.Start, end, n)
	}

	return s.Start, end, nil
}

// Region is a normalized inclusive rectangle of cell coordinates inside
// one Table. It is the handle every selection-based operation hangs off;
// a single index and a span resolve to the same type, so all operations
// share one addressing path.
type Region struct {
	t *Table

	// Inclusive bounds, already validated against the table shape:
	// RowStart ≤ RowEnd, ColStart ≤ ColEnd.
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// Select resolves a two-axis range expression into a Region, validating
// it against the table's declared shape. Returns ErrOutOfBounds if any
// resolved index lies outside [0, rows) × [0, cols).
func (t *Table) Select(rows, cols Span) (*Region, error) {
	r0, r1, err := rows.resolve(t.rows)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	c0, c1, err := cols.resolve(t.cols)
	if err != nil {
		return nil, fmt.Errorf("cols: %w", err)
	}

	return &Region{
		t:        t,
		RowStart: r0,
		RowEnd:   r1 - 1,
		ColStart: c0,
		ColEnd:   c1 - 1,
	}, nil
}

// Rows reports the region height in cells.
func (r *Region) Rows() int { return r.RowEnd - r.RowStart + 1 }

// Cols reports the region width in cells.
func (r *Region) Cols() int { return r.ColEnd - r.ColStart + 1 }

// Size reports the number of cells covered by the region.
func (r *Region) Size() int { return r.Rows() * r.Cols() }

// Values returns a copy of the raw stored values inside the region,
// row-major. Unset and absorbed cells are nil. Reads never diverge from
// what Assign wrote, regardless of formatting calls in between.
func (r *Region) Values() [][]any {
	out := make([][]any, r.Rows())
	for i := range out {
		out[i] = make([]any, r.Cols())
		for j := range out[i] {
			out[i][j] = r.t.cells[r.RowStart+i][r.ColStart+j].value
		}
	}

	return out
}

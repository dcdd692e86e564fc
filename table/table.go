package table

import "fmt"

// coord addresses one cell.
type coord struct {
	row, col int
}

// span carries a merge origin's extent and formatting.
type span struct {
	rows, cols int
	hAlign     string
	vAlign     string
	vShift     string
}

// cell is one slot of the store. Invariant: a cell is at most one of
// origin (span != nil) or absorbed (origin != nil); absorbed cells hold
// no value.
type cell struct {
	value  any
	span   *span  // non-nil when this cell is the origin of a merge
	origin *coord // non-nil when this cell is absorbed by a merge
}

// trim describes one end of a rule segment: off, default length, or an
// exact LaTeX length.
type trim struct {
	on     bool
	length string
}

// rule is a horizontal line segment rendered immediately before row
// `row` (row == table rows means after the last row). Columns are
// [colStart, colEnd) in store coordinates.
type rule struct {
	row      int
	colStart int
	colEnd   int
	left     trim
	right    trim
}

// highlight marks one cell for style wrapping at render time.
type highlight struct {
	row, col int
	style    Style
}

// Table is a fixed-shape grid of raw values plus formatting metadata.
// It renders to a LaTeX tabular (optionally wrapped in a floating table
// environment) and satisfies tex.Renderer and tex.PackageProvider.
type Table struct {
	rows, cols int

	alignment   []string
	floatFormat string
	caption     string
	label       string
	position    string
	asFloat     bool
	outerRules  bool

	cells      [][]cell
	rules      []rule
	highlights []highlight
}

// New constructs an empty rows×cols table. Shape is fixed: there is no
// resize operation. Returns ErrInvalidShape for non-positive dimensions
// and ErrBadAlignment when WithAlignment gave neither 1 nor cols values.
func New(rows, cols int, opts ...Option) (*Table, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidShape, rows, cols)
	}
	t := &Table{
		rows:        rows,
		cols:        cols,
		alignment:   []string{AlignCenter},
		floatFormat: DefaultFloatFormat,
		position:    DefaultPosition,
		asFloat:     true,
		outerRules:  true,
		cells:       make([][]cell, rows),
	}
	for i := range t.cells {
		t.cells[i] = make([]cell, cols)
	}
	for _, opt := range opts {
		opt(t)
	}
	switch len(t.alignment) {
	case cols:
	case 1:
		uniform := t.alignment[0]
		t.alignment = make([]string, cols)
		for j := range t.alignment {
			t.alignment[j] = uniform
		}
	default:
		return nil, fmt.Errorf("%w: got %d for %d columns", ErrBadAlignment, len(t.alignment), cols)
	}

	return t, nil
}

// Rows reports the declared row count.
func (t *Table) Rows() int { return t.rows }

// Cols reports the declared column count.
func (t *Table) Cols() int { return t.cols }

// SetCaption replaces the caption of the floating wrapper.
func (t *Table) SetCaption(caption string) { t.caption = caption }

// Data returns a deep copy of the raw value store, row-major. Unset and
// absorbed cells are nil. The copy never diverges from what Assign
// wrote; formatting calls do not touch it.
func (t *Table) Data() [][]any {
	out := make([][]any, t.rows)
	for i := range out {
		out[i] = make([]any, t.cols)
		for j := range out[i] {
			out[i][j] = t.cells[i][j].value
		}
	}

	return out
}

// Assign writes into the region.
//
//   - 1×1 region: sets the single cell's value.
//   - larger region, 2D array value of exactly the region's shape:
//     element-wise assignment (ErrShapeMismatch otherwise).
//   - single-row or single-column region, 1D slice value of the matching
//     length: element-wise assignment along that axis.
//   - larger region, scalar value: implicit multicell with default
//     formatting — the top-left cell becomes the origin holding the
//     scalar, the rest of the region is absorbed.
//
// Writing into a cell absorbed by an existing merge fails with
// ErrAddressingConflict before any cell is modified.
func (r *Region) Assign(value any) error {
	if m, ok := asMatrix(value); ok {
		return r.t.assignMatrix(r, m)
	}
	if vec, ok := asVector(value); ok {
		return r.t.assignMatrix(r, orientVector(vec, r))
	}
	if r.Size() == 1 {
		return r.t.setValue(r.RowStart, r.ColStart, value)
	}

	return r.t.merge(r, value, defaultSpanFor(r))
}

// Multicell merges the region into a single cell holding value. Fails
// with ErrMergeConflict if any selected cell already belongs to a merge.
// On success the top-left origin stores the value and span; the other
// cells are absorbed and hold no independent value.
func (r *Region) Multicell(value any, opts ...MergeOption) error {
	sp := defaultSpanFor(r)
	for _, opt := range opts {
		opt(sp)
	}

	return r.t.merge(r, value, sp)
}

// AddRule schedules a horizontal rule below the region's last row,
// spanning the region's columns. Multiple rules on the same row are
// independent segments rendered in insertion order.
func (r *Region) AddRule(opts ...RuleOption) {
	r.t.addRule(r.RowEnd+1, r, opts)
}

// AddRuleAbove schedules a horizontal rule above the region's first row.
func (r *Region) AddRuleAbove(opts ...RuleOption) {
	r.t.addRule(r.RowStart, r, opts)
}

// HighlightBest scans the originating (non-absorbed) cells of the region
// in row-major order, coerces values to numeric comparison keys
// (non-numeric cells are skipped — they cannot be "best"), and marks the
// extremal cell for style wrapping at render time: Low picks the
// minimum, High the maximum. Ties: the first cell encountered wins.
// The raw value is unchanged. Returns ErrEmptySelection when the region
// holds no numeric cell.
func (r *Region) HighlightBest(dir Direction, style Style) error {
	bestRow, bestCol := -1, -1
	var best float64
	for i := r.RowStart; i <= r.RowEnd; i++ {
		for j := r.ColStart; j <= r.ColEnd; j++ {
			c := &r.t.cells[i][j]
			if c.origin != nil {
				continue
			}
			v, ok := toFloat(c.value)
			if !ok {
				continue
			}
			if bestRow < 0 || (dir == Low && v < best) || (dir == High && v > best) {
				bestRow, bestCol, best = i, j, v
			}
		}
	}
	if bestRow < 0 {
		return fmt.Errorf("%w: rows %d-%d, cols %d-%d", ErrEmptySelection,
			r.RowStart, r.RowEnd, r.ColStart, r.ColEnd)
	}
	r.t.highlights = append(r.t.highlights, highlight{row: bestRow, col: bestCol, style: style})

	return nil
}

// defaultSpanFor builds the merge metadata for a region with default
// formatting.
func defaultSpanFor(r *Region) *span {
	return &span{
		rows:   r.Rows(),
		cols:   r.Cols(),
		hAlign: DefaultHAlign,
		vAlign: DefaultVAlign,
	}
}

// setValue writes one cell, rejecting writes into absorbed cells.
func (t *Table) setValue(row, col int, value any) error {
	c := &t.cells[row][col]
	if c.origin != nil {
		return fmt.Errorf("%w: (%d,%d) absorbed by merge at (%d,%d)",
			ErrAddressingConflict, row, col, c.origin.row, c.origin.col)
	}
	c.value = value

	return nil
}

// assignMatrix writes element-wise after validating shape and targets,
// so a failed assignment leaves the store untouched.
func (t *Table) assignMatrix(r *Region, m [][]any) error {
	if len(m) != r.Rows() {
		return fmt.Errorf("%w: got %d rows, selection has %d", ErrShapeMismatch, len(m), r.Rows())
	}
	for i, row := range m {
		if len(row) != r.Cols() {
			return fmt.Errorf("%w: row %d has %d columns, selection has %d",
				ErrShapeMismatch, i, len(row), r.Cols())
		}
	}
	for i := r.RowStart; i <= r.RowEnd; i++ {
		for j := r.ColStart; j <= r.ColEnd; j++ {
			if c := &t.cells[i][j]; c.origin != nil {
				return fmt.Errorf("%w: (%d,%d) absorbed by merge at (%d,%d)",
					ErrAddressingConflict, i, j, c.origin.row, c.origin.col)
			}
		}
	}
	for i := range m {
		for j := range m[i] {
			t.cells[r.RowStart+i][r.ColStart+j].value = m[i][j]
		}
	}

	return nil
}

// merge turns the region into a single merged cell. Validation first:
// no cell may already be an origin or absorbed (no overlapping merges).
func (t *Table) merge(r *Region, value any, sp *span) error {
	for i := r.RowStart; i <= r.RowEnd; i++ {
		for j := r.ColStart; j <= r.ColEnd; j++ {
			if c := &t.cells[i][j]; c.span != nil || c.origin != nil {
				return fmt.Errorf("%w: cell (%d,%d)", ErrMergeConflict, i, j)
			}
		}
	}
	originAt := coord{row: r.RowStart, col: r.ColStart}
	for i := r.RowStart; i <= r.RowEnd; i++ {
		for j := r.ColStart; j <= r.ColEnd; j++ {
			t.cells[i][j] = cell{origin: &originAt}
		}
	}
	t.cells[originAt.row][originAt.col] = cell{value: value, span: sp}

	return nil
}

func (t *Table) addRule(beforeRow int, r *Region, opts []RuleOption) {
	ru := rule{
		row:      beforeRow,
		colStart: r.ColStart,
		colEnd:   r.ColEnd + 1,
	}
	for _, opt := range opts {
		opt(&ru)
	}
	t.rules = append(t.rules, ru)
}

// asMatrix recognizes the supported rectangular array-like kinds for
// element-wise assignment.
func asMatrix(v any) ([][]any, bool) {
	switch m := v.(type) {
	case [][]any:
		return m, true
	case [][]float64:
		return convertMatrix(m), true
	case [][]int:
		return convertMatrix(m), true
	case [][]string:
		return convertMatrix(m), true
	default:
		return nil, false
	}
}

// asVector recognizes the supported 1D slice kinds for assignment along
// a single-row or single-column region.
func asVector(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []float64:
		return convertVector(s), true
	case []int:
		return convertVector(s), true
	case []string:
		return convertVector(s), true
	default:
		return nil, false
	}
}

// orientVector lays a 1D slice out as a row or column matrix to match
// the region's axis. Shape validation happens in assignMatrix.
func orientVector(vec []any, r *Region) [][]any {
	if r.Rows() == 1 {
		return [][]any{vec}
	}
	out := make([][]any, len(vec))
	for i, v := range vec {
		out[i] = []any{v}
	}

	return out
}

func convertVector[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}

	return out
}

func convertMatrix[T any](m [][]T) [][]any {
	out := make([][]any, len(m))
	for i, row := range m {
		out[i] = make([]any, len(row))
		for j, v := range row {
			out[i][j] = v
		}
	}

	return out
}

// toFloat coerces the common numeric kinds to a comparison key.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

package table

import "errors"

// Sentinel errors for table construction and region-based mutation.
// All are raised at the violating call, never deferred to render time.
var (
	// ErrInvalidShape indicates a table constructed with fewer than one
	// row or one column.
	ErrInvalidShape = errors.New("table: shape must have at least one row and one column")

	// ErrBadAlignment indicates the alignment count is neither 1 nor the
	// number of columns.
	ErrBadAlignment = errors.New("table: alignment count must be 1 or match the column count")

	// ErrOutOfBounds indicates a selection resolves outside the declared
	// table shape. Selections never clamp or wrap silently.
	ErrOutOfBounds = errors.New("table: selection out of bounds")

	// ErrShapeMismatch indicates an element-wise assignment whose array
	// shape differs from the selected region's shape.
	ErrShapeMismatch = errors.New("table: assigned array shape does not match selection shape")

	// ErrMergeConflict indicates a multicell declaration overlapping a
	// cell that is already an origin or absorbed by another merge.
	ErrMergeConflict = errors.New("table: selection overlaps an existing merged region")

	// ErrEmptySelection indicates a highlight over a region containing no
	// numeric (comparable) cell.
	ErrEmptySelection = errors.New("table: no comparable value in selection")

	// ErrAddressingConflict indicates a direct value write into a cell
	// absorbed by a merged region.
	ErrAddressingConflict = errors.New("table: cell is absorbed by a merged region")
)

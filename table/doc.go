// Package table builds LaTeX tabular environments from a fixed-shape
// cell grid addressed through rectangular region selections.
//
// What:
//
//   - Table owns a rows×cols store of raw values plus formatting metadata
//     (merges, rules, highlights). Shape is fixed at construction.
//   - Select resolves a pair of axis Spans into a validated Region; every
//     mutation — Assign, Multicell, AddRule, HighlightBest — goes through
//     that one addressing path.
//   - Multicell merges a region into a single cell: the top-left origin
//     keeps the value and span, the remaining cells are absorbed and
//     never render independently.
//   - AddRule schedules \cmidrule segments with optional end trims,
//     rendered in insertion order immediately before their target row.
//   - HighlightBest wraps the extremal numeric value of a region in a
//     style command at render time, leaving the raw value untouched.
//   - Render emits the tabular body (and the floating table wrapper
//     unless disabled); Data exposes the raw store for introspection.
//
// Why:
//
//   - Result tables (benchmarks, ablations) want merged headers, grouped
//     midrules and "best value in bold" without hand-editing LaTeX.
//   - Keeping raw values separate from rendered form lets the same table
//     be restyled and re-rendered without touching the data.
//
// Errors:
//
//   - ErrInvalidShape: construction with fewer than one row or column.
//   - ErrBadAlignment: alignment count is neither 1 nor the column count.
//   - ErrOutOfBounds: a selection resolves outside the declared shape.
//   - ErrShapeMismatch: element-wise assignment shape ≠ region shape.
//   - ErrMergeConflict: overlapping multicell declarations.
//   - ErrEmptySelection: no numeric cell to highlight in a region.
//   - ErrAddressingConflict: direct write into an absorbed cell.
//
// All violations surface synchronously at the mutating call; rendering
// itself cannot fail and defensively skips absorbed cells. Render is
// pure and idempotent. A Table is not safe for concurrent mutation:
// one goroutine builds, then renders.
package table

// Package table: option types, enums and defaults for Table construction
// and region operations.
package table

// Column alignment shorthands. Any other LaTeX column spec (e.g.
// "p{3cm}") is accepted verbatim as a custom alignment.
const (
	AlignLeft   = "l"
	AlignCenter = "c"
	AlignRight  = "r"
)

// Vertical alignment shorthands for multirow merges. VAlignInherit ('*')
// keeps the alignment of the other cells in the row; see the LaTeX
// multirow documentation.
const (
	VAlignInherit = "*"
	VAlignTop     = "t"
	VAlignBottom  = "b"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultFloatFormat formats numeric cell values lacking an explicit
	// string override.
	DefaultFloatFormat = "%.2f"

	// DefaultPosition is the float placement option of the wrapping
	// table environment.
	DefaultPosition = "h!"

	// DefaultHAlign is the horizontal alignment of multicolumn merges.
	DefaultHAlign = AlignCenter

	// DefaultVAlign is the vertical alignment of multirow merges.
	DefaultVAlign = VAlignInherit
)

// Direction selects what counts as the "best" value for HighlightBest.
type Direction int

const (
	// Low picks the minimum value.
	Low Direction = iota
	// High picks the maximum value.
	High
)

// Style names the command wrapped around a highlighted value at render
// time. Bold and Italic map to \textbf and \textit; any other style name
// is emitted as \<style>{...}.
type Style string

const (
	// Bold wraps the value in \textbf.
	Bold Style = "bold"
	// Italic wraps the value in \textit.
	Italic Style = "italic"
)

// Option configures a Table at construction.
type Option func(*Table)

// WithAlignment sets column alignments. A single value applies to every
// column; otherwise the count must match the column count.
func WithAlignment(aligns ...string) Option {
	return func(t *Table) { t.alignment = aligns }
}

// WithFloatFormat sets the fmt verb applied to float cell values
// (default "%.2f").
func WithFloatFormat(format string) Option {
	return func(t *Table) { t.floatFormat = format }
}

// WithCaption sets the caption of the floating table environment.
func WithCaption(caption string) Option {
	return func(t *Table) { t.caption = caption }
}

// WithLabel sets the cross-reference label, emitted as \label{table:...}.
func WithLabel(label string) Option {
	return func(t *Table) { t.label = label }
}

// WithPosition sets the float placement option (default "h!").
func WithPosition(position string) Option {
	return func(t *Table) { t.position = position }
}

// WithoutFloat renders the bare tabular without the floating table
// wrapper (no \centering, caption or label).
func WithoutFloat() Option {
	return func(t *Table) { t.asFloat = false }
}

// WithoutOuterRules drops the booktabs \toprule and \bottomrule.
func WithoutOuterRules() Option {
	return func(t *Table) { t.outerRules = false }
}

// MergeOption configures a Multicell declaration.
type MergeOption func(*span)

// WithHAlign sets the horizontal alignment of the merged cell
// (default AlignCenter).
func WithHAlign(align string) MergeOption {
	return func(s *span) { s.hAlign = align }
}

// WithVAlign sets the vertical alignment of a multirow merge
// (default VAlignInherit).
func WithVAlign(align string) MergeOption {
	return func(s *span) { s.vAlign = align }
}

// WithVShift sets the vertical shift of the text in a multirow merge;
// any valid LaTeX length.
func WithVShift(length string) MergeOption {
	return func(s *span) { s.vShift = length }
}

// RuleOption configures trims on a horizontal rule segment.
type RuleOption func(*rule)

// WithTrimLeft trims the left end of the rule by the LaTeX default
// amount.
func WithTrimLeft() RuleOption {
	return func(r *rule) { r.left.on = true }
}

// WithTrimLeftLength trims the left end by an exact LaTeX length,
// e.g. ".3em".
func WithTrimLeftLength(length string) RuleOption {
	return func(r *rule) { r.left = trim{on: true, length: length} }
}

// WithTrimRight trims the right end of the rule by the LaTeX default
// amount.
func WithTrimRight() RuleOption {
	return func(r *rule) { r.right.on = true }
}

// WithTrimRightLength trims the right end by an exact LaTeX length.
func WithTrimRightLength(length string) RuleOption {
	return func(r *rule) { r.right = trim{on: true, length: length} }
}

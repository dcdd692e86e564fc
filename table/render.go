package table

import (
	"fmt"
	"strings"

	"github.com/gotexdev/gotex/tex"
)

// Render produces the LaTeX source of the table. For each row it first
// emits the rules scheduled before that row (in insertion order), then
// the row's cells left to right: an absorbed cell emits nothing (its
// origin's span marker accounts for it), an origin emits a
// multicolumn/multirow marker sized to its span, a plain cell emits its
// formatted value. Unless WithoutFloat was given, the tabular is wrapped
// in a floating table environment with \centering, caption and label.
//
// Render is pure: it never fails and never mutates the table, so two
// calls without a mutation in between yield identical strings.
func (t *Table) Render() string {
	tabular := tex.NewEnvironment("tabular", tex.WithParams(strings.Join(t.alignment, "")))
	if t.outerRules {
		tabular.AddText(`\toprule`)
	}
	for i := 0; i <= t.rows; i++ {
		for _, ru := range t.rules {
			if ru.row == i {
				tabular.AddText(renderRule(ru))
			}
		}
		if i == t.rows {
			break
		}
		tabular.AddText(t.renderRow(i))
	}
	if t.outerRules {
		tabular.AddText(`\bottomrule`)
	}
	if !t.asFloat {
		return tabular.Render()
	}

	float := tex.NewEnvironment("table", tex.WithOptions(t.position))
	float.AddText(`\centering`)
	if t.caption != "" {
		float.Add(tex.NewCommand("caption", t.caption))
	}
	if t.label != "" {
		float.Add(tex.NewCommand("label", "table:"+t.label))
	}
	float.New(tabular)

	return float.Render()
}

// Packages reports the LaTeX packages the rendered table requires.
func (t *Table) Packages() map[string]string {
	pkgs := map[string]string{"booktabs": ""}
	for i := range t.cells {
		for j := range t.cells[i] {
			if t.cells[i][j].span != nil {
				pkgs["multicol"] = ""
				pkgs["multirow"] = ""

				return pkgs
			}
		}
	}

	return pkgs
}

// renderRow emits one tabular line. Cells absorbed by an origin in the
// same row vanish entirely (the \multicolumn span swallows their
// separators); cells absorbed from an earlier row keep an empty slot so
// the column count stays constant under \multirow.
func (t *Table) renderRow(i int) string {
	parts := make([]string, 0, t.cols)
	for j := 0; j < t.cols; j++ {
		c := &t.cells[i][j]
		if c.origin != nil {
			if c.origin.row == i {
				continue
			}
			parts = append(parts, "")
			continue
		}
		parts = append(parts, t.renderCell(i, j, c))
	}

	return strings.Join(parts, " & ") + `\\`
}

// renderCell formats one originating cell: value formatting, highlight
// wrappers in insertion order, then span markers.
func (t *Table) renderCell(i, j int, c *cell) string {
	s := t.formatValue(c.value)
	for _, h := range t.highlights {
		if h.row == i && h.col == j {
			s = wrapStyle(h.style, s)
		}
	}
	if c.span != nil {
		if c.span.rows > 1 {
			shift := ""
			if c.span.vShift != "" {
				shift = "[" + c.span.vShift + "]"
			}
			s = fmt.Sprintf(`\multirow{%d}{%s}%s{%s}`, c.span.rows, c.span.vAlign, shift, s)
		}
		if c.span.cols > 1 {
			s = fmt.Sprintf(`\multicolumn{%d}{%s}{%s}`, c.span.cols, c.span.hAlign, s)
		}
	}

	return s
}

// formatValue renders a raw value: nil is empty, floats pass through the
// table's float format, everything else prints verbatim.
func (t *Table) formatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf(t.floatFormat, n)
	case float32:
		return fmt.Sprintf(t.floatFormat, n)
	default:
		return fmt.Sprint(v)
	}
}

func wrapStyle(style Style, s string) string {
	switch style {
	case Bold:
		return `\textbf{` + s + `}`
	case Italic:
		return `\textit{` + s + `}`
	default:
		return `\` + string(style) + `{` + s + `}`
	}
}

// renderRule emits one \cmidrule segment. Trims render right end first,
// then left, each with its optional exact length; the column span is
// 1-based inclusive.
func renderRule(ru rule) string {
	var b strings.Builder
	b.WriteString(`\cmidrule`)
	if trims := renderTrims(ru); trims != "" {
		b.WriteString("(" + trims + ")")
	}
	fmt.Fprintf(&b, "{%d-%d}", ru.colStart+1, ru.colEnd)

	return b.String()
}

func renderTrims(ru rule) string {
	var b strings.Builder
	if ru.right.on {
		b.WriteString("r")
		if ru.right.length != "" {
			b.WriteString("{" + ru.right.length + "}")
		}
	}
	if ru.left.on {
		b.WriteString("l")
		if ru.left.length != "" {
			b.WriteString("{" + ru.left.length + "}")
		}
	}

	return b.String()
}

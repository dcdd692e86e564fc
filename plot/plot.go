package plot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gotexdev/gotex/tex"
)

// ErrLengthMismatch indicates a series whose x and y slices differ in
// length.
var ErrLengthMismatch = errors.New("plot: x and y must have the same length")

// Defaults for axis geometry and series styling.
const (
	DefaultWidth     = `.8\textwidth`
	DefaultHeight    = `.45\textwidth`
	DefaultGrid      = "major"
	DefaultLineWidth = "1.5pt"
	DefaultMarkSize  = "2pt"
	DefaultPosition  = "h!"
)

// series is one x/y data set with its \addplot options.
type series struct {
	x, y    []float64
	options []string
}

// Plot is a pgfplots figure under construction.
type Plot struct {
	width    string
	height   string
	grid     string
	marks    bool
	markSize string
	lines    bool
	lineWidth string
	position string
	caption  string
	label    string
	asFloat  bool
	axisX    string
	axisY    string
	kwOpts   [][2]string

	series []series
}

// Option configures a Plot at construction.
type Option func(*Plot)

// WithWidth sets the axis width (default .8\textwidth).
func WithWidth(width string) Option { return func(p *Plot) { p.width = width } }

// WithHeight sets the axis height (default .45\textwidth).
func WithHeight(height string) Option { return func(p *Plot) { p.height = height } }

// WithGrid sets the pgfplots grid mode, e.g. "major", "minor", "both".
func WithGrid(grid string) Option { return func(p *Plot) { p.grid = grid } }

// WithoutGrid disables the grid.
func WithoutGrid() Option { return func(p *Plot) { p.grid = "none" } }

// WithMarks draws marks at the default size on every series.
func WithMarks() Option { return func(p *Plot) { p.marks = true } }

// WithMarkSize draws marks at an explicit size, e.g. "1pt".
func WithMarkSize(size string) Option {
	return func(p *Plot) {
		p.marks = true
		p.markSize = size
	}
}

// WithoutLines draws marks only (line width 0pt).
func WithoutLines() Option { return func(p *Plot) { p.lines = false } }

// WithLineWidth sets an explicit line width for every series.
func WithLineWidth(width string) Option {
	return func(p *Plot) {
		p.lines = true
		p.lineWidth = width
	}
}

// WithAxisOption passes an extra key=value option to the axis
// environment, e.g. ("xlabel", "epoch").
func WithAxisOption(key, value string) Option {
	return func(p *Plot) { p.kwOpts = append(p.kwOpts, [2]string{key, value}) }
}

// WithAxisLines selects which axis lines to draw, e.g. ("bottom", "left").
func WithAxisLines(x, y string) Option {
	return func(p *Plot) {
		p.axisX = x
		p.axisY = y
	}
}

// WithPosition sets the float placement option (default "h!").
func WithPosition(position string) Option { return func(p *Plot) { p.position = position } }

// WithCaption sets the figure caption.
func WithCaption(caption string) Option { return func(p *Plot) { p.caption = caption } }

// WithLabel sets the figure label, emitted as \label{figure:...}.
func WithLabel(label string) Option { return func(p *Plot) { p.label = label } }

// WithoutFloat renders the bare tikzpicture without the floating figure
// wrapper.
func WithoutFloat() Option { return func(p *Plot) { p.asFloat = false } }

// New creates an empty plot.
func New(opts ...Option) *Plot {
	p := &Plot{
		width:    DefaultWidth,
		height:   DefaultHeight,
		grid:     DefaultGrid,
		markSize: DefaultMarkSize,
		lines:    true,
		lineWidth: DefaultLineWidth,
		position: DefaultPosition,
		asFloat:  true,
		axisX:    "bottom",
		axisY:    "left",
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// AddPlot appends one data series. The options are raw pgfplots
// \addplot options (e.g. "blue", "dashed") applied before the plot-wide
// line/mark defaults.
func (p *Plot) AddPlot(x, y []float64, options ...string) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	p.series = append(p.series, series{x: x, y: y, options: options})

	return nil
}

// Len reports the number of series added so far.
func (p *Plot) Len() int { return len(p.series) }

// Render produces the LaTeX source of the figure. Pure and idempotent:
// coordinates are inlined, nothing is written to disk.
func (p *Plot) Render() string {
	axis := tex.NewEnvironment("axis",
		tex.WithOptions(
			`grid style={dashed,gray!50}`,
			`axis y line*=`+p.axisY,
			`axis x line*=`+p.axisX,
			`axis line style={-latex}`,
		),
		tex.WithKwOption("width", p.width),
		tex.WithKwOption("height", p.height),
		tex.WithKwOption("grid", p.grid),
	)
	for _, kv := range p.kwOpts {
		tex.WithKwOption(kv[0], kv[1])(axis)
	}
	if !p.marks {
		tex.WithOptions("no marks")(axis)
	}
	for _, s := range p.series {
		axis.AddText(p.renderSeries(s))
	}

	picture := tex.NewEnvironment("tikzpicture")
	picture.New(axis)
	if !p.asFloat {
		return picture.Render()
	}

	figure := tex.NewEnvironment("figure", tex.WithOptions(p.position))
	figure.AddText(`\centering`)
	figure.New(picture)
	if p.caption != "" {
		figure.Add(tex.NewCommand("caption", p.caption))
	}
	if p.label != "" {
		figure.Add(tex.NewCommand("label", "figure:"+p.label))
	}

	return figure.Render()
}

// Packages reports the LaTeX packages the rendered figure requires.
func (p *Plot) Packages() map[string]string {
	return map[string]string{
		"tikz":          "",
		"pgfplots":      "",
		"pgfplotstable": "",
	}
}

func (p *Plot) renderSeries(s series) string {
	opts := make([]string, 0, len(s.options)+2)
	opts = append(opts, s.options...)
	lineWidth := "0pt"
	if p.lines {
		lineWidth = p.lineWidth
	}
	markSize := "0pt"
	if p.marks {
		markSize = p.markSize
	}
	opts = append(opts, "line width="+lineWidth, "mark size="+markSize)

	var b strings.Builder
	b.WriteString(`\addplot+[` + strings.Join(opts, ", ") + `] coordinates {`)
	for i := range s.x {
		b.WriteString("(" + formatCoord(s.x[i]) + "," + formatCoord(s.y[i]) + ")")
	}
	b.WriteString("};")

	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

package color

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/gotexdev/gotex/tex"
)

// Sentinel errors for color construction and colormap sampling.
var (
	// ErrChannelRange indicates an rgb channel outside [0, 1].
	ErrChannelRange = errors.New("color: rgb channels must lie in [0, 1]")
	// ErrTooFewAnchors indicates a colormap built from fewer than two anchors.
	ErrTooFewAnchors = errors.New("color: colormap needs at least two anchor colors")
	// ErrBadAnchorPositions indicates anchor positions that are unsorted,
	// out of [0,1], or do not match the anchor count.
	ErrBadAnchorPositions = errors.New("color: invalid anchor positions")
	// ErrUnsupportedModel indicates a color model with no rgb conversion.
	ErrUnsupportedModel = errors.New("color: unsupported color model")
	// ErrBadSampleCount indicates a palette sampled with n < 1.
	ErrBadSampleCount = errors.New("color: sample count must be at least 1")
)

// colorCount numbers unnamed colors (color1, color2, ...) so every
// definition stays unique within a document.
var colorCount uint64

// Color is an rgb color with the TeX name used to reference it.
type Color struct {
	R, G, B float64

	name string
}

// ColorOption configures a Color at construction.
type ColorOption func(*Color)

// WithName sets the TeX color name instead of the automatic colorN.
func WithName(name string) ColorOption {
	return func(c *Color) { c.name = name }
}

// New creates an rgb color with channels in [0, 1]. Unnamed colors get
// an automatically numbered name.
func New(r, g, b float64, opts ...ColorOption) (Color, error) {
	for _, ch := range [3]float64{r, g, b} {
		if ch < 0 || ch > 1 {
			return Color{}, fmt.Errorf("%w: got (%g, %g, %g)", ErrChannelRange, r, g, b)
		}
	}
	c := Color{R: r, G: g, B: b}
	for _, opt := range opts {
		opt(&c)
	}
	if c.name == "" {
		c.name = fmt.Sprintf("color%d", atomic.AddUint64(&colorCount, 1))
	}

	return c, nil
}

// Name reports the TeX name of the color.
func (c Color) Name() string { return c.name }

// Definition emits the preamble command defining the color:
// \definecolor{name}{rgb}{r,g,b}. The command carries the xcolor
// package requirement.
func (c Color) Definition() *tex.Command {
	spec := formatChannel(c.R) + "," + formatChannel(c.G) + "," + formatChannel(c.B)

	return tex.NewCommand("definecolor", c.name, "rgb", spec).
		AddPackage("xcolor", "dvipsnames")
}

// Text wraps a fragment in \textcolor{name}{text}.
func (c Color) Text(text string) *tex.Command {
	return Textcolor(c.name, text)
}

// Textcolor wraps text in \textcolor for any color name, predefined or
// user-defined.
func Textcolor(name, text string) *tex.Command {
	return tex.NewCommand("textcolor", name, text).
		AddPackage("xcolor", "dvipsnames")
}

func formatChannel(ch float64) string {
	return strconv.FormatFloat(ch, 'g', -1, 64)
}

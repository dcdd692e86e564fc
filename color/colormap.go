package color

import (
	"fmt"
	"math"
)

// Model names the color model anchor triples are expressed in.
type Model string

const (
	// Modelrgb is rgb with channels in [0, 1].
	Modelrgb Model = "rgb"
	// ModelRGB is RGB with integer channels in [0, 255].
	ModelRGB Model = "RGB"
	// ModelHSB is hue/saturation/brightness with all channels in [0, 1];
	// the hue channel wraps around 1.
	ModelHSB Model = "hsb"
	// ModelHSB360 is hue in degrees [0, 360), saturation and brightness
	// in [0, 1]; the hue channel wraps around 360.
	ModelHSB360 Model = "Hsb"
)

// LinearColorMap maps a scalar in [0, 1] to a color by interpolating
// linearly, channel-wise, between anchor colors. Hue channels wrap
// around their model's period, so an anchor pair may cross the hue seam.
type LinearColorMap struct {
	anchors   [][3]float64
	positions []float64
	model     Model
}

// MapOption configures a LinearColorMap at construction.
type MapOption func(*LinearColorMap)

// WithModel sets the color model of the anchors (default ModelHSB).
func WithModel(m Model) MapOption {
	return func(cm *LinearColorMap) { cm.model = m }
}

// WithAnchorPositions places the anchors at explicit positions in
// [0, 1] instead of evenly spaced; must be sorted, start at 0 and end
// at 1, one per anchor.
func WithAnchorPositions(positions ...float64) MapOption {
	return func(cm *LinearColorMap) { cm.positions = positions }
}

// NewLinearColorMap builds a colormap from two or more anchor triples.
func NewLinearColorMap(anchors [][3]float64, opts ...MapOption) (*LinearColorMap, error) {
	if len(anchors) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewAnchors, len(anchors))
	}
	cm := &LinearColorMap{anchors: anchors, model: ModelHSB}
	for _, opt := range opts {
		opt(cm)
	}
	if cm.positions == nil {
		cm.positions = make([]float64, len(anchors))
		for i := range cm.positions {
			cm.positions[i] = float64(i) / float64(len(anchors)-1)
		}
	}
	if err := validatePositions(cm.positions, len(anchors)); err != nil {
		return nil, err
	}

	return cm, nil
}

func validatePositions(positions []float64, nAnchors int) error {
	if len(positions) != nAnchors {
		return fmt.Errorf("%w: %d positions for %d anchors", ErrBadAnchorPositions, len(positions), nAnchors)
	}
	if positions[0] != 0 || positions[len(positions)-1] != 1 {
		return fmt.Errorf("%w: must start at 0 and end at 1", ErrBadAnchorPositions)
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			return fmt.Errorf("%w: positions must be strictly increasing", ErrBadAnchorPositions)
		}
	}

	return nil
}

// Model reports the color model of the map's output triples.
func (cm *LinearColorMap) Model() Model { return cm.model }

// At interpolates the color at t, clamped to [0, 1], in the map's model.
func (cm *LinearColorMap) At(t float64) [3]float64 {
	t = math.Max(0, math.Min(1, t))
	hi := 1
	for t > cm.positions[hi] {
		hi++
	}
	lo := hi - 1
	frac := (t - cm.positions[lo]) / (cm.positions[hi] - cm.positions[lo])

	var out [3]float64
	for ch := 0; ch < 3; ch++ {
		out[ch] = cm.anchors[lo][ch]*(1-frac) + cm.anchors[hi][ch]*frac
	}
	switch cm.model {
	case ModelRGB:
		for ch := 0; ch < 3; ch++ {
			out[ch] = math.Trunc(out[ch])
		}
	case ModelHSB:
		out[0] = wrap(out[0], 1)
	case ModelHSB360:
		out[0] = wrap(out[0], 360)
	}

	return out
}

// ColorAt interpolates at t and converts the result to an rgb Color.
func (cm *LinearColorMap) ColorAt(t float64, opts ...ColorOption) (Color, error) {
	r, g, b, err := toRGB(cm.At(t), cm.model)
	if err != nil {
		return Color{}, err
	}

	return New(r, g, b, opts...)
}

func wrap(v, period float64) float64 {
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}

	return v
}

// toRGB converts a triple in the given model to rgb channels in [0, 1].
func toRGB(c [3]float64, model Model) (float64, float64, float64, error) {
	switch model {
	case Modelrgb:
		return c[0], c[1], c[2], nil
	case ModelRGB:
		return c[0] / 255, c[1] / 255, c[2] / 255, nil
	case ModelHSB:
		r, g, b := hsbToRGB(c[0], c[1], c[2])
		return r, g, b, nil
	case ModelHSB360:
		r, g, b := hsbToRGB(c[0]/360, c[1], c[2])
		return r, g, b, nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrUnsupportedModel, model)
	}
}

// hsbToRGB converts hue/saturation/brightness, all in [0, 1], to rgb.
func hsbToRGB(h, s, b float64) (float64, float64, float64) {
	h = wrap(h, 1) * 6
	i := int(h)
	f := h - float64(i)
	p := b * (1 - s)
	q := b * (1 - s*f)
	u := b * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return b, u, p
	case 1:
		return q, b, p
	case 2:
		return p, b, u
	case 3:
		return p, q, b
	case 4:
		return u, p, b
	default:
		return b, p, q
	}
}

// Palette samples a colormap into a fixed number of named colors.
type Palette struct {
	cm *LinearColorMap
}

// NewPalette wraps a colormap for sampling.
func NewPalette(cm *LinearColorMap) *Palette {
	return &Palette{cm: cm}
}

// Sample returns n colors evenly spaced over the colormap: positions
// i/(n-1) for n > 1, position 0 for n == 1.
func (p *Palette) Sample(n int) ([]Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSampleCount, n)
	}
	colors := make([]Color, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c, err := p.cm.ColorAt(t)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}

	return colors, nil
}

// DefaultColorMap is the library's default two-anchor hsb map, running
// from a soft green toward a warm magenta with rising brightness.
func DefaultColorMap() *LinearColorMap {
	cm, _ := NewLinearColorMap(
		[][3]float64{{0.5, 1, 0.5}, {1.07, 0.7, 1}},
		WithModel(ModelHSB),
	)

	return cm
}

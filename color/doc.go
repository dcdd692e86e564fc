// Package color defines LaTeX colors, linear colormaps and palettes.
//
// What:
//
//   - Color is an rgb triple with a TeX name; Definition() emits the
//     \definecolor command for the preamble, Text() wraps a fragment in
//     \textcolor. Unnamed colors are numbered automatically.
//   - Predefined lists the xcolor/dvipsnames color names, usable
//     directly with Textcolor.
//   - LinearColorMap interpolates linearly between anchor colors in a
//     chosen color model (rgb, RGB, hsb, Hsb), wrapping hue channels.
//   - Palette samples a colormap into n evenly spaced Colors.
//
// Why:
//
//   - Plots and tables want consistent, perceptually sensible color
//     series without hand-picking rgb triples per curve.
//
// Errors:
//
//   - ErrChannelRange: an rgb channel outside [0, 1].
//   - ErrTooFewAnchors: a colormap needs at least two anchors.
//   - ErrBadAnchorPositions: positions unsorted, out of [0,1], or not
//     matching the anchor count.
//   - ErrUnsupportedModel: a model that cannot be converted to rgb.
//   - ErrBadSampleCount: palette sampled with fewer than one color.
package color

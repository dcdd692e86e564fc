// Package plot builds pgfplots figures from plain float slices.
//
// What:
//
//   - Plot wraps a figure → tikzpicture → axis environment tree and
//     renders each data series as an \addplot coordinate list.
//   - Options tune the axis (width, height, grid, marks, lines, extra
//     key=value axis options) and the float wrapper (position, caption,
//     label, or no wrapper at all).
//   - WriteCSV exports the series data in the x0,y0,x1,y1 column layout
//     for external pgfplotstable use.
//
// Why:
//
//   - Papers want plots whose fonts and colors match the document; a
//     pgfplots axis rendered from the same data as the analysis avoids
//     screenshot-quality figures.
//
// Rendering is pure: coordinates are inlined into the axis body, so no
// files are touched until the caller explicitly exports.
//
// Errors:
//
//   - ErrLengthMismatch: a series whose x and y slices differ in length.
package plot

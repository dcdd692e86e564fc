// Package document assembles complete LaTeX documents and hands the
// result to the outside world.
//
// What:
//
//   - Document renders a full .tex source: \documentclass, a preamble
//     aggregated from every body element that declares package needs,
//     geometry margins, and the document environment around the body.
//   - Section is a thin sequencing container: a \section heading plus an
//     ordered body of text fragments, tables, plots and nested
//     subsections.
//   - File writes the rendered source to disk and invokes pdflatex —
//     the only blocking external operation, kept out of the pure
//     rendering core and called synchronously after Render.
//
// Why:
//
//   - Callers build trees and tables in memory; this package is the thin
//     boundary where strings become files and files become PDFs.
//
// Errors: File operations return wrapped I/O and exec errors; rendering
// itself cannot fail.
package document

// Package markdown converts Markdown fragments into LaTeX body text.
//
// What:
//
//   - Convert parses Markdown with goldmark and walks the AST, mapping
//     headings to \section/\subsection/..., emphasis to \textit and
//     \textbf, code spans to \texttt, fenced code to verbatim, lists to
//     itemize/enumerate, blockquotes to quote, and links to \href.
//   - Literal text is escaped so Markdown prose cannot break the
//     surrounding LaTeX (&, %, $, #, _, braces, ~, ^, backslash).
//   - The result is a Fragment: a rendered body element that also
//     carries its package needs (hyperref when links occur), so the
//     document preamble stays correct automatically.
//
// Why:
//
//   - Notes, READMEs and experiment logs live in Markdown; piping them
//     into a report beats retyping them as LaTeX.
//
// Unsupported constructs (raw HTML, images) degrade gracefully: raw
// HTML is dropped, images render their alt text.
package markdown

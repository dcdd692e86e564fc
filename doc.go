// Package gotex is your in-memory toolkit for generating LaTeX source
// programmatically — from a single tabular to a full compilable document.
//
// 🚀 What is gotex?
//
//	A pure-Go library that lets you build documents as objects and render
//	them to well-formed LaTeX on demand:
//		• Environment trees: nested \begin{env}...\end{env} with options,
//		  parameters and labels, rendered by one recursive traversal
//		• Tables: region-based cell addressing, multirow/multicolumn
//		  merging, booktabs rules with trims, best-value highlighting
//		• Colors: definecolor/textcolor helpers, linear colormaps, palettes
//		• Plots: pgfplots axes built from plain float slices
//		• Documents: documentclass, package preamble aggregation, margins
//		• Markdown: convert Markdown fragments to LaTeX body text
//
// ✨ Why choose gotex?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – rendering is a pure fold over the tree, idempotent
//   - Pure Go – no cgo, no LaTeX installation needed until you compile
//   - Honest errors – every addressing violation surfaces at the call site
//
// Everything is organized under flat subpackages:
//
//	tex/      — fundamental Renderer, Text, Environment and Command types
//	table/    — cell store, region selection, merging, rules, highlights
//	color/    — colors, colormaps and palettes
//	plot/     — pgfplots figure builder
//	document/ — document assembly, .tex output and pdflatex invocation
//	markdown/ — Markdown → LaTeX fragment conversion
//
// Quick ASCII example:
//
//	Document
//	└── Section "Results"
//	    ├── Text "We compare both models."
//	    └── Table 3×3 (merged header, midrules, best value in bold)
//
// renders to a complete article ready for pdflatex.
//
// Rendering never mutates the tree: build, render, adjust, render again.
// Trees are not safe for concurrent mutation; one goroutine owns a tree.
//
//	go get github.com/gotexdev/gotex
package gotex

package document

import (
	"sort"
	"strings"

	"github.com/gotexdev/gotex/tex"
)

// Default document geometry and class.
const (
	DefaultDocumentType = "article"
	DefaultMargin       = "2.5cm"
)

// Document assembles a complete LaTeX source: class declaration,
// package preamble, margins and body.
type Document struct {
	name         string
	docType      string
	classOptions []string
	marginTop    string
	marginBottom string
	margin       string
	packages     map[string]string
	pkgOrder     []string
	body         []tex.Renderer
}

// Option configures a Document at construction.
type Option func(*Document)

// WithDocumentType sets the \documentclass argument (default "article").
func WithDocumentType(docType string) Option {
	return func(d *Document) { d.docType = docType }
}

// WithClassOptions passes options to \documentclass, e.g. "12pt".
func WithClassOptions(options ...string) Option {
	return func(d *Document) { d.classOptions = append(d.classOptions, options...) }
}

// New creates an empty document. name is the base filename used by
// File when saving (without the .tex extension).
func New(name string, opts ...Option) *Document {
	d := &Document{
		name:         name,
		docType:      DefaultDocumentType,
		marginTop:    DefaultMargin,
		marginBottom: DefaultMargin,
		margin:       DefaultMargin,
		packages:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.addPackage("inputenc", "utf8")
	d.addPackage("geometry", "") // options computed at render time

	return d
}

// Name reports the document's base filename.
func (d *Document) Name() string { return d.name }

// SetMargins sets all page margins at once; top and bottom override the
// general margin when non-empty.
func (d *Document) SetMargins(margin, top, bottom string) {
	d.margin = margin
	d.marginTop = margin
	d.marginBottom = margin
	if top != "" {
		d.marginTop = top
	}
	if bottom != "" {
		d.marginBottom = bottom
	}
}

// AddPackage adds a \usepackage line to the preamble. Re-adding a
// package replaces its options.
func (d *Document) AddPackage(name string, options ...string) {
	d.addPackage(name, strings.Join(options, ","))
}

func (d *Document) addPackage(name, options string) {
	if _, seen := d.packages[name]; !seen {
		d.pkgOrder = append(d.pkgOrder, name)
	}
	d.packages[name] = options
}

// Add appends any Renderer to the document body.
func (d *Document) Add(r tex.Renderer) {
	if r == nil {
		panic("document: nil renderer")
	}
	d.body = append(d.body, r)
}

// AddText appends a verbatim text fragment to the body.
func (d *Document) AddText(text string) {
	d.body = append(d.body, tex.Text(text))
}

// NewSection appends a section to the body and returns it for further
// mutation.
func (d *Document) NewSection(title string) *Section {
	s := &Section{title: title}
	d.body = append(d.body, s)

	return s
}

// Render produces the complete .tex source. The preamble lists the
// document's own packages in insertion order, then the packages
// aggregated from body elements, sorted by name for deterministic
// output. Pure and idempotent.
func (d *Document) Render() string {
	collected := make(map[string]string)
	for _, el := range d.body {
		provider, ok := el.(tex.PackageProvider)
		if !ok {
			continue
		}
		for name, opts := range provider.Packages() {
			collected[name] = opts
		}
	}

	lines := make([]string, 0, len(d.packages)+len(collected)+4)
	class := tex.NewCommand("documentclass", d.docType)
	if len(d.classOptions) > 0 {
		class.WithOptions(d.classOptions...)
	}
	lines = append(lines, class.Render())

	for _, name := range d.pkgOrder {
		opts := d.packages[name]
		if name == "geometry" {
			opts = d.geometryOptions()
		}
		lines = append(lines, usepackage(name, opts))
	}
	names := make([]string, 0, len(collected))
	for name := range collected {
		if _, own := d.packages[name]; own {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, usepackage(name, collected[name]))
	}

	env := tex.NewEnvironment("document")
	for _, el := range d.body {
		env.Add(el)
	}
	lines = append(lines, env.Render())

	return strings.Join(lines, "\n")
}

func (d *Document) geometryOptions() string {
	return "top=" + d.marginTop + ",bottom=" + d.marginBottom + ",margin=" + d.margin
}

func usepackage(name, options string) string {
	cmd := tex.NewCommand("usepackage", name)
	if options != "" {
		cmd.WithOptions(options)
	}

	return cmd.Render()
}

// Section is a \section heading followed by an ordered body. It renders
// inside a document body and aggregates the package needs of its
// children.
type Section struct {
	title string
	label string
	body  []tex.Renderer
}

// SetLabel sets the section's cross-reference label, emitted as
// \label{section:...}.
func (s *Section) SetLabel(label string) { s.label = label }

// Add appends any Renderer to the section body.
func (s *Section) Add(r tex.Renderer) {
	if r == nil {
		panic("document: nil renderer")
	}
	s.body = append(s.body, r)
}

// AddText appends a verbatim text fragment.
func (s *Section) AddText(text string) {
	s.body = append(s.body, tex.Text(text))
}

// NewSubsection appends a nested subsection and returns it.
func (s *Section) NewSubsection(title string) *Subsection {
	sub := &Subsection{Section{title: title}}
	s.body = append(s.body, sub)

	return sub
}

// Render emits the heading, the label if set, and the body in order.
func (s *Section) Render() string { return s.render("section") }

// Packages aggregates the package needs of the section body.
func (s *Section) Packages() map[string]string { return collectPackages(s.body) }

func (s *Section) render(level string) string {
	lines := make([]string, 0, len(s.body)+2)
	lines = append(lines, tex.NewCommand(level, s.title).Render())
	if s.label != "" {
		lines = append(lines, tex.NewCommand("label", level+":"+s.label).Render())
	}
	for _, el := range s.body {
		lines = append(lines, el.Render())
	}

	return strings.Join(lines, "\n")
}

// Subsection is a \subsection with the same body surface as Section.
type Subsection struct {
	Section
}

// Render emits the subsection heading and body.
func (s *Subsection) Render() string { return s.render("subsection") }

func collectPackages(body []tex.Renderer) map[string]string {
	merged := make(map[string]string)
	for _, el := range body {
		provider, ok := el.(tex.PackageProvider)
		if !ok {
			continue
		}
		for name, opts := range provider.Packages() {
			merged[name] = opts
		}
	}

	return merged
}

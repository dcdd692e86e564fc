// Package tex: core contracts shared by every renderable LaTeX element.
package tex

// Renderer is anything that can produce its own LaTeX source.
// Render must be side-effect-free and idempotent: calling it twice on an
// unchanged receiver yields identical strings.
type Renderer interface {
	Render() string
}

// PackageProvider is implemented by elements that require LaTeX packages
// (\usepackage lines) in the document preamble. Environment aggregates
// providers recursively; document assembly consumes the merged result.
type PackageProvider interface {
	// Packages maps package name to its pre-joined option string
	// (empty when the package takes no options).
	Packages() map[string]string
}

// Text is a verbatim LaTeX fragment. It renders exactly as written —
// no escaping, no reformatting.
type Text string

// Render returns the fragment unchanged.
func (t Text) Render() string { return string(t) }

// LabelPos selects where an Environment emits its \label.
type LabelPos int

const (
	// LabelTop places the label immediately after \begin{tag}.
	LabelTop LabelPos = iota
	// LabelBottom places the label immediately before \end{tag}.
	LabelBottom
)

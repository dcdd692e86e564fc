package tex

import "strings"

// kwOption is a single key=value environment option. Order of insertion
// is preserved in rendering.
type kwOption struct {
	key, value string
}

// Environment is an ordered container of body elements wrapped in
// \begin{tag}...\end{tag}. Children are exclusively owned by the body
// that holds them; New appends exactly once and never detaches.
type Environment struct {
	// Tag is the environment name, e.g. "table" or "tikzpicture".
	Tag string

	params    []string
	options   []string
	kwOptions []kwOption
	label     string
	labelPos  LabelPos
	body      []Renderer
	packages  map[string]string
}

// EnvOption configures an Environment at construction.
type EnvOption func(*Environment)

// WithParams appends curly-brace parameters, rendered as {p1, p2} right
// after \begin{tag}.
func WithParams(params ...string) EnvOption {
	return func(e *Environment) { e.params = append(e.params, params...) }
}

// WithOptions appends bracket options, rendered as [opt1,opt2].
func WithOptions(options ...string) EnvOption {
	return func(e *Environment) { e.options = append(e.options, options...) }
}

// WithKwOption appends a key=value bracket option. Key order is the
// call order.
func WithKwOption(key, value string) EnvOption {
	return func(e *Environment) {
		e.kwOptions = append(e.kwOptions, kwOption{key: key, value: value})
	}
}

// WithLabel sets the cross-reference label, emitted as \label{tag:label}.
func WithLabel(label string) EnvOption {
	return func(e *Environment) { e.label = label }
}

// WithLabelPos sets where the label is emitted (default LabelTop).
func WithLabelPos(pos LabelPos) EnvOption {
	return func(e *Environment) { e.labelPos = pos }
}

// NewEnvironment creates an empty environment with the given tag.
func NewEnvironment(tag string, opts ...EnvOption) *Environment {
	e := &Environment{
		Tag:      tag,
		labelPos: LabelTop,
		packages: make(map[string]string),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// New appends child to the body and returns it, so the caller can keep
// mutating the same reference. Panics on nil child (programmer error).
func (e *Environment) New(child *Environment) *Environment {
	if child == nil {
		panic("tex: nil child environment")
	}
	e.body = append(e.body, child)

	return child
}

// Add appends any Renderer (a Text, a Command, a table, ...) to the body.
// Panics on nil (programmer error).
func (e *Environment) Add(r Renderer) {
	if r == nil {
		panic("tex: nil renderer")
	}
	e.body = append(e.body, r)
}

// AddText appends a verbatim text fragment to the body.
func (e *Environment) AddText(text string) {
	e.body = append(e.body, Text(text))
}

// AddPackage records a LaTeX package this environment needs in the
// preamble. Options are pre-joined with commas; re-adding a package
// replaces its options.
func (e *Environment) AddPackage(name string, options ...string) {
	e.packages[name] = strings.Join(options, ",")
}

// Len reports the number of body elements.
func (e *Environment) Len() int { return len(e.body) }

// Packages aggregates this environment's package declarations with those
// of every body element implementing PackageProvider. Child declarations
// override the parent's on name collision. The returned map is a copy.
func (e *Environment) Packages() map[string]string {
	merged := make(map[string]string, len(e.packages))
	for name, opts := range e.packages {
		merged[name] = opts
	}
	for _, el := range e.body {
		provider, ok := el.(PackageProvider)
		if !ok {
			continue
		}
		for name, opts := range provider.Packages() {
			merged[name] = opts
		}
	}

	return merged
}

// Render produces the LaTeX source of the whole subtree:
// \begin{tag}{params}[options], the label (if any), each body element in
// insertion order, and \end{tag}, joined by newlines.
// Complexity: O(n) over the subtree. Pure and idempotent.
func (e *Environment) Render() string {
	var head strings.Builder
	head.WriteString(`\begin{` + e.Tag + `}`)
	if len(e.params) > 0 {
		head.WriteString("{" + strings.Join(e.params, ", ") + "}")
	}
	if opts := e.renderOptions(); opts != "" {
		head.WriteString("[" + opts + "]")
	}

	lines := make([]string, 0, len(e.body)+3)
	lines = append(lines, head.String())
	if e.label != "" && e.labelPos == LabelTop {
		lines = append(lines, e.renderLabel())
	}
	for _, el := range e.body {
		lines = append(lines, el.Render())
	}
	if e.label != "" && e.labelPos == LabelBottom {
		lines = append(lines, e.renderLabel())
	}
	lines = append(lines, `\end{`+e.Tag+`}`)

	return strings.Join(lines, "\n")
}

// renderOptions joins plain options and key=value options, in insertion
// order, plain options first.
func (e *Environment) renderOptions() string {
	opts := make([]string, 0, len(e.options)+len(e.kwOptions))
	opts = append(opts, e.options...)
	for _, kv := range e.kwOptions {
		opts = append(opts, kv.key+"="+kv.value)
	}

	return strings.Join(opts, ",")
}

func (e *Environment) renderLabel() string {
	return `\label{` + e.Tag + ":" + e.label + `}`
}

package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gotexdev/gotex/tex"
)

// Fragment is converted Markdown ready to be placed in a tex body. It
// carries the packages the generated markup needs.
type Fragment struct {
	source   string
	packages map[string]string
}

// Render returns the converted LaTeX. Pure and idempotent.
func (f *Fragment) Render() string { return f.source }

// Packages reports the LaTeX packages the fragment requires.
func (f *Fragment) Packages() map[string]string {
	out := make(map[string]string, len(f.packages))
	for name, opts := range f.packages {
		out[name] = opts
	}

	return out
}

// headingLevels maps Markdown heading depth to LaTeX sectioning
// commands; deeper headings degrade to \subparagraph.
var headingLevels = []string{"section", "subsection", "subsubsection", "paragraph", "subparagraph"}

// Convert parses src as Markdown and produces the equivalent LaTeX
// fragment. Conversion never fails; unsupported constructs degrade to
// their text content or are dropped.
func Convert(src []byte) *Fragment {
	root := goldmark.New().Parser().Parse(text.NewReader(src))
	c := &converter{src: src, packages: make(map[string]string)}

	return &Fragment{
		source:   strings.Join(c.blocks(root), "\n\n"),
		packages: c.packages,
	}
}

// ConvertString is Convert for string input.
func ConvertString(src string) *Fragment { return Convert([]byte(src)) }

// latexEscaper rewrites the LaTeX special characters of literal text.
// A single replacer pass never rescans its own output, so the brace
// arguments of \textbackslash{} survive.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape rewrites the LaTeX special characters of s.
func Escape(s string) string { return latexEscaper.Replace(s) }

type converter struct {
	src      []byte
	packages map[string]string
}

// blocks converts the block children of n, one string per block.
func (c *converter) blocks(n ast.Node) []string {
	var out []string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if s := c.block(child); s != "" {
			out = append(out, s)
		}
	}

	return out
}

func (c *converter) block(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Heading:
		level := node.Level - 1
		if level >= len(headingLevels) {
			level = len(headingLevels) - 1
		}

		return tex.NewCommand(headingLevels[level], c.inlines(node)).Render()
	case *ast.Paragraph, *ast.TextBlock:
		return c.inlines(node)
	case *ast.List:
		return c.list(node)
	case *ast.Blockquote:
		env := tex.NewEnvironment("quote")
		for _, inner := range c.blocks(node) {
			env.AddText(inner)
		}

		return env.Render()
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return c.verbatim(node)
	case *ast.ThematicBreak:
		return `\noindent\hrulefill`
	case *ast.HTMLBlock:
		return ""
	default:
		return c.inlines(node)
	}
}

func (c *converter) list(n *ast.List) string {
	env := "itemize"
	if n.IsOrdered() {
		env = "enumerate"
	}
	lines := []string{`\begin{` + env + `}`}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		lines = append(lines, `\item `+strings.Join(c.blocks(item), " "))
	}
	lines = append(lines, `\end{`+env+`}`)

	return strings.Join(lines, "\n")
}

func (c *converter) verbatim(n ast.Node) string {
	var b strings.Builder
	b.WriteString("\\begin{verbatim}\n")
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	b.WriteString(`\end{verbatim}`)

	return b.String()
}

// inlines converts the inline children of a block node.
func (c *converter) inlines(n ast.Node) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.inline(&b, child)
	}

	return strings.TrimSpace(b.String())
}

func (c *converter) inline(b *strings.Builder, n ast.Node) {
	switch node := n.(type) {
	case *ast.Text:
		b.WriteString(Escape(string(node.Segment.Value(c.src))))
		if node.HardLineBreak() {
			b.WriteString(`\\`)
			b.WriteString("\n")
		} else if node.SoftLineBreak() {
			b.WriteString("\n")
		}
	case *ast.String:
		b.WriteString(Escape(string(node.Value)))
	case *ast.Emphasis:
		cmd := "textit"
		if node.Level >= 2 {
			cmd = "textbf"
		}
		b.WriteString(`\` + cmd + `{` + c.childInlines(node) + `}`)
	case *ast.CodeSpan:
		b.WriteString(`\texttt{` + c.childInlines(node) + `}`)
	case *ast.Link:
		c.packages["hyperref"] = ""
		b.WriteString(`\href{` + string(node.Destination) + `}{` + c.childInlines(node) + `}`)
	case *ast.AutoLink:
		c.packages["hyperref"] = ""
		b.WriteString(`\url{` + string(node.URL(c.src)) + `}`)
	case *ast.Image:
		// No graphics pipeline here; keep the alt text.
		b.WriteString(c.childInlines(node))
	case *ast.RawHTML:
		// Dropped: raw HTML has no LaTeX equivalent.
	default:
		b.WriteString(c.childInlines(node))
	}
}

func (c *converter) childInlines(n ast.Node) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.inline(&b, child)
	}

	return b.String()
}

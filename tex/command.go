package tex

import "strings"

// Command renders a one-line LaTeX command of the form
// \name[opt1,opt2]{arg1}{arg2}. Arguments each get their own brace pair.
type Command struct {
	// Name is the command name without the leading backslash.
	Name string

	args     []string
	options  []string
	packages map[string]string
}

// NewCommand creates a command with the given name and brace arguments.
func NewCommand(name string, args ...string) *Command {
	return &Command{
		Name:     name,
		args:     args,
		packages: make(map[string]string),
	}
}

// WithOptions appends bracket options and returns the command for
// chaining.
func (c *Command) WithOptions(options ...string) *Command {
	c.options = append(c.options, options...)

	return c
}

// AddPackage records a package this command needs in the preamble and
// returns the command for chaining (e.g. \textcolor needs xcolor).
func (c *Command) AddPackage(name string, options ...string) *Command {
	c.packages[name] = strings.Join(options, ",")

	return c
}

// Packages reports the packages this command requires.
func (c *Command) Packages() map[string]string {
	out := make(map[string]string, len(c.packages))
	for name, opts := range c.packages {
		out[name] = opts
	}

	return out
}

// Render produces the command source. Pure and idempotent.
func (c *Command) Render() string {
	var b strings.Builder
	b.WriteString(`\` + c.Name)
	if len(c.options) > 0 {
		b.WriteString("[" + strings.Join(c.options, ",") + "]")
	}
	for _, arg := range c.args {
		b.WriteString("{" + arg + "}")
	}

	return b.String()
}

package markdown_test

import (
	"fmt"

	"github.com/gotexdev/gotex/markdown"
)

// ExampleConvert turns a Markdown note into LaTeX ready to drop into a
// document body.
func ExampleConvert() {
	frag := markdown.ConvertString("## Notes\n\nRuntime grew by *12%* since v2.")
	fmt.Println(frag.Render())
	// Output:
	// \subsection{Notes}
	//
	// Runtime grew by \textit{12\%} since v2.
}

package tex_test

import (
	"fmt"

	"github.com/gotexdev/gotex/tex"
)

// ExampleEnvironment demonstrates building a small nested tree and
// rendering it in one recursive pass.
func ExampleEnvironment() {
	figure := tex.NewEnvironment("figure",
		tex.WithOptions("h!"),
		tex.WithLabel("sine"),
		tex.WithLabelPos(tex.LabelBottom),
	)
	figure.AddText(`\centering`)
	picture := figure.New(tex.NewEnvironment("tikzpicture"))
	picture.AddText(`\draw (0,0) -- (1,1);`)

	fmt.Println(figure.Render())
	// Output:
	// \begin{figure}[h!]
	// \centering
	// \begin{tikzpicture}
	// \draw (0,0) -- (1,1);
	// \end{tikzpicture}
	// \label{figure:sine}
	// \end{figure}
}

// ExampleCommand shows the one-line command form.
func ExampleCommand() {
	cmd := tex.NewCommand("usepackage", "geometry").WithOptions("margin=2cm")
	fmt.Println(cmd.Render())
	// Output:
	// \usepackage[margin=2cm]{geometry}
}

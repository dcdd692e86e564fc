package table_test

import (
	"fmt"

	"github.com/gotexdev/gotex/table"
)

// ExampleTable demonstrates the full mutation surface: element-wise
// assignment, merged headers, grouped midrules and automatic best-value
// highlighting, all addressed through region selections.
func ExampleTable() {
	tbl, _ := table.New(3, 3, table.WithoutFloat())

	header, _ := tbl.Select(table.At(0), table.Range(1, 3))
	_ = header.Multicell("Scores")
	header.AddRule(table.WithTrimLeft(), table.WithTrimRight())

	names, _ := tbl.Select(table.Range(1, 3), table.At(0))
	_ = names.Assign([][]string{{"model A"}, {"model B"}})

	scores, _ := tbl.Select(table.Range(1, 3), table.Range(1, 3))
	_ = scores.Assign([][]float64{{0.921, 0.874}, {0.896, 0.933}})
	_ = scores.HighlightBest(table.High, table.Bold)

	fmt.Println(tbl.Render())
	// Output:
	// \begin{tabular}{ccc}
	// \toprule
	//  & \multicolumn{2}{c}{Scores}\\
	// \cmidrule(rl){2-3}
	// model A & 0.92 & 0.87\\
	// model B & 0.90 & \textbf{0.93}\\
	// \bottomrule
	// \end{tabular}
}

// ExampleTable_Select shows that a single index and a span resolve to
// the same Region type, so every operation shares one addressing path.
func ExampleTable_Select() {
	tbl, _ := table.New(2, 4, table.WithoutFloat(), table.WithoutOuterRules())

	one, _ := tbl.Select(table.At(0), table.At(0))
	_ = one.Assign("corner")

	rest, _ := tbl.Select(table.At(1), table.Range(0, table.ToEnd))
	_ = rest.Assign([][]int{{1, 2, 3, 4}})

	fmt.Println(tbl.Render())
	// Output:
	// \begin{tabular}{cccc}
	// corner &  &  & \\
	// 1 & 2 & 3 & 4\\
	// \end{tabular}
}

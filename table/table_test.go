package table_test

import (
	"testing"

	"github.com/gotexdev/gotex/table"
	"github.com/stretchr/testify/require"
)

func mustSelect(t *testing.T, tbl *table.Table, rows, cols table.Span) *table.Region {
	t.Helper()
	reg, err := tbl.Select(rows, cols)
	require.NoError(t, err)

	return reg
}

//----------------------------------------------------------------------------//
// Assign
//----------------------------------------------------------------------------//

func TestAssign_SingleCellRoundTrip(t *testing.T) {
	tbl, err := table.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, mustSelect(t, tbl, table.At(1), table.At(2)).Assign(42))
	require.NoError(t, mustSelect(t, tbl, table.At(0), table.At(0)).Assign("spam"))

	data := tbl.Data()
	require.Equal(t, 42, data[1][2])
	require.Equal(t, "spam", data[0][0])
	require.Nil(t, data[2][2])
}

func TestAssign_MatrixElementWise(t *testing.T) {
	tbl, err := table.New(3, 3)
	require.NoError(t, err)

	values := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	require.NoError(t, mustSelect(t, tbl, table.All(), table.All()).Assign(values))

	data := tbl.Data()
	for i := range values {
		for j := range values[i] {
			require.Equal(t, values[i][j], data[i][j], "cell (%d,%d)", i, j)
		}
	}
}

func TestAssign_VectorAlongAxis(t *testing.T) {
	tbl, err := table.New(3, 3)
	require.NoError(t, err)

	// Row vector into a single-row region.
	require.NoError(t, mustSelect(t, tbl, table.At(0), table.All()).Assign([]any{"a", "b", "c"}))
	// Column vector into a single-column region.
	require.NoError(t, mustSelect(t, tbl, table.All(), table.At(2)).Assign([]int{1, 2, 3}))

	data := tbl.Data()
	require.Equal(t, []any{"a", "b", 1}, data[0])
	require.Equal(t, 2, data[1][2])
	require.Equal(t, 3, data[2][2])

	// Wrong length is a shape mismatch, as is a vector over a 2D region.
	err = mustSelect(t, tbl, table.At(1), table.All()).Assign([]int{1, 2})
	require.ErrorIs(t, err, table.ErrShapeMismatch)
	err = mustSelect(t, tbl, table.Range(1, 3), table.Range(0, 2)).Assign([]int{1, 2})
	require.ErrorIs(t, err, table.ErrShapeMismatch)
}

func TestAssign_ShapeMismatch(t *testing.T) {
	tbl, err := table.New(3, 3)
	require.NoError(t, err)
	reg := mustSelect(t, tbl, table.Range(0, 2), table.Range(0, 2))

	require.ErrorIs(t, reg.Assign([][]int{{1, 2, 3}, {4, 5, 6}}), table.ErrShapeMismatch)
	require.ErrorIs(t, reg.Assign([][]int{{1, 2}}), table.ErrShapeMismatch)
	// Ragged rows are a shape mismatch too.
	require.ErrorIs(t, reg.Assign([][]int{{1, 2}, {3}}), table.ErrShapeMismatch)
	// A failed assignment leaves the store untouched.
	require.Equal(t, [][]any{{nil, nil}, {nil, nil}}, reg.Values())
}

// TestAssign_ScalarOverRegion pins the implicit multicell: a scalar over
// a multi-cell region makes the top-left cell the origin and absorbs the
// rest, exactly as an explicit Multicell with default formatting.
func TestAssign_ScalarOverRegion(t *testing.T) {
	tbl, err := table.New(3, 3)
	require.NoError(t, err)
	reg := mustSelect(t, tbl, table.Range(0, 2), table.Range(0, 2))
	require.NoError(t, reg.Assign("merged"))

	data := tbl.Data()
	require.Equal(t, "merged", data[0][0])
	require.Nil(t, data[0][1])
	require.Nil(t, data[1][0])
	require.Nil(t, data[1][1])

	// Absorbed cells reject direct writes.
	err = mustSelect(t, tbl, table.At(1), table.At(1)).Assign(7)
	require.ErrorIs(t, err, table.ErrAddressingConflict)
	// ... including element-wise writes crossing the merge.
	err = mustSelect(t, tbl, table.All(), table.At(1)).Assign([][]int{{1}, {2}, {3}})
	require.ErrorIs(t, err, table.ErrAddressingConflict)
}

//----------------------------------------------------------------------------//
// Multicell
//----------------------------------------------------------------------------//

func TestMulticell_Conflicts(t *testing.T) {
	tbl, err := table.New(4, 4)
	require.NoError(t, err)

	require.NoError(t, mustSelect(t, tbl, table.Range(0, 2), table.Range(0, 2)).Multicell("A"))

	// Overlapping an absorbed cell.
	err = mustSelect(t, tbl, table.At(1), table.Range(1, 3)).Multicell("B")
	require.ErrorIs(t, err, table.ErrMergeConflict)
	// Overlapping the origin itself.
	err = mustSelect(t, tbl, table.Range(0, 2), table.At(0)).Multicell("C")
	require.ErrorIs(t, err, table.ErrMergeConflict)

	// A disjoint merge succeeds and leaves the first merge intact.
	require.NoError(t, mustSelect(t, tbl, table.Range(2, 4), table.Range(2, 4)).Multicell("D"))
	data := tbl.Data()
	require.Equal(t, "A", data[0][0])
	require.Equal(t, "D", data[2][2])
}

func TestMulticell_ErasesPriorValues(t *testing.T) {
	tbl, err := table.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, mustSelect(t, tbl, table.All(), table.All()).Assign([][]int{{1, 2}, {3, 4}}))
	require.NoError(t, mustSelect(t, tbl, table.All(), table.All()).Multicell("only"))

	require.Equal(t, [][]any{{"only", nil}, {nil, nil}}, tbl.Data())
}

//----------------------------------------------------------------------------//
// HighlightBest
//----------------------------------------------------------------------------//

func TestHighlightBest_TieBreakRowMajorFirst(t *testing.T) {
	tbl, err := table.New(2, 2, table.WithoutFloat())
	require.NoError(t, err)
	require.NoError(t, mustSelect(t, tbl, table.All(), table.All()).
		Assign([][]int{{3, 1}, {4, 1}}))
	require.NoError(t, mustSelect(t, tbl, table.All(), table.All()).
		HighlightBest(table.Low, table.Bold))

	out := tbl.Render()
	require.Contains(t, out, `3 & \textbf{1}\\`, "row 0 col 1 must win the tie")
	require.Contains(t, out, `4 & 1\\`)
	// Raw values stay untouched.
	require.Equal(t, [][]any{{3, 1}, {4, 1}}, tbl.Data())
}

func TestHighlightBest_Directions(t *testing.T) {
	tbl, err := table.New(1, 3, table.WithoutFloat())
	require.NoError(t, err)
	require.NoError(t, mustSelect(t, tbl, table.All(), table.All()).
		Assign([][]float64{{0.5, 2.5, 1.5}}))

	require.NoError(t, mustSelect(t, tbl, table.All(), table.All()).
		HighlightBest(table.High, table.Italic))
	require.Contains(t, tbl.Render(), `0.50 & \textit{2.50} & 1.50\\`)
}

func TestHighlightBest_SkipsTextAndAbsorbed(t *testing.T) {
	tbl, err := table.New(2, 2, table.WithoutFloat())
	require.NoError(t, err)
	require.NoError(t, mustSelect(t, tbl, table.At(0), table.At(0)).Assign("text"))
	require.NoError(t, mustSelect(t, tbl, table.At(0), table.At(1)).Assign(9))
	require.NoError(t, mustSelect(t, tbl, table.At(1), table.All()).Multicell(5))

	require.NoError(t, mustSelect(t, tbl, table.All(), table.All()).
		HighlightBest(table.High, table.Bold))
	require.Contains(t, tbl.Render(), `text & \textbf{9}\\`)
}

func TestHighlightBest_EmptySelection(t *testing.T) {
	tbl, err := table.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, mustSelect(t, tbl, table.At(0), table.At(0)).Assign("only text"))

	err = mustSelect(t, tbl, table.All(), table.All()).HighlightBest(table.Low, table.Bold)
	require.ErrorIs(t, err, table.ErrEmptySelection)
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_InvalidShape(t *testing.T) {
	for _, shape := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := table.New(shape[0], shape[1])
		require.ErrorIs(t, err, table.ErrInvalidShape, "shape %v", shape)
	}
}

func TestNew_BadAlignment(t *testing.T) {
	_, err := table.New(2, 3, table.WithAlignment("l", "r"))
	require.ErrorIs(t, err, table.ErrBadAlignment)
}

func TestData_IsACopy(t *testing.T) {
	tbl, err := table.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, mustSelect(t, tbl, table.At(0), table.At(0)).Assign(1))

	data := tbl.Data()
	data[0][0] = 99
	require.Equal(t, 1, tbl.Data()[0][0])
}

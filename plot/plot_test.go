package plot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gotexdev/gotex/plot"
	"github.com/stretchr/testify/require"
)

func TestAddPlot_LengthMismatch(t *testing.T) {
	p := plot.New()
	err := p.AddPlot([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, plot.ErrLengthMismatch)
	require.Equal(t, 0, p.Len())
}

func TestRender_DefaultAxis(t *testing.T) {
	p := plot.New(plot.WithoutFloat())
	require.NoError(t, p.AddPlot([]float64{0, 1}, []float64{0, 2}))

	out := p.Render()
	require.True(t, strings.HasPrefix(out, `\begin{tikzpicture}`))
	require.True(t, strings.HasSuffix(out, `\end{tikzpicture}`))
	require.Contains(t, out, `\begin{axis}[grid style={dashed,gray!50}`)
	require.Contains(t, out, `width=.8\textwidth`)
	require.Contains(t, out, `grid=major`)
	require.Contains(t, out, "no marks")
	require.Contains(t, out, `\addplot+[line width=1.5pt, mark size=0pt] coordinates {(0,0)(1,2)};`)
}

func TestRender_FloatWrapper(t *testing.T) {
	p := plot.New(
		plot.WithCaption("Sine and cosine"),
		plot.WithLabel("trig"),
		plot.WithPosition("t"),
	)
	require.NoError(t, p.AddPlot([]float64{0}, []float64{1}, "blue"))

	out := p.Render()
	require.True(t, strings.HasPrefix(out, `\begin{figure}[t]`))
	require.Contains(t, out, `\centering`)
	require.Contains(t, out, `\caption{Sine and cosine}`)
	require.Contains(t, out, `\label{figure:trig}`)
	require.Contains(t, out, `\addplot+[blue, line width=1.5pt, mark size=0pt]`)
	require.True(t, strings.HasSuffix(out, `\end{figure}`))
}

func TestRender_MarkAndLineToggles(t *testing.T) {
	p := plot.New(plot.WithoutFloat(), plot.WithMarks(), plot.WithoutLines())
	require.NoError(t, p.AddPlot([]float64{1}, []float64{1}))

	out := p.Render()
	require.Contains(t, out, "line width=0pt")
	require.Contains(t, out, "mark size=2pt")
	require.NotContains(t, out, "no marks")
}

func TestRender_AxisOptions(t *testing.T) {
	p := plot.New(plot.WithoutFloat(),
		plot.WithAxisOption("xlabel", "epoch"),
		plot.WithAxisOption("ylabel", "accuracy"),
	)
	out := p.Render()
	require.Contains(t, out, "xlabel=epoch")
	require.Contains(t, out, "ylabel=accuracy")
}

func TestRender_Idempotent(t *testing.T) {
	p := plot.New()
	require.NoError(t, p.AddPlot([]float64{0, 0.5, 1}, []float64{0, 0.25, 1}))
	require.Equal(t, p.Render(), p.Render())
}

func TestWriteCSV(t *testing.T) {
	p := plot.New()
	require.NoError(t, p.AddPlot([]float64{0, 1, 2}, []float64{0, 10, 20}))
	require.NoError(t, p.AddPlot([]float64{5}, []float64{50}))

	var buf bytes.Buffer
	require.NoError(t, p.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"x0,y0,x1,y1",
		"0,0,5,50",
		"1,10,,",
		"2,20,,",
	}, lines)
}

func TestPackages(t *testing.T) {
	pkgs := plot.New().Packages()
	for _, name := range []string{"tikz", "pgfplots", "pgfplotstable"} {
		require.Contains(t, pkgs, name)
	}
}

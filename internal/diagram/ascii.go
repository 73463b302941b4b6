package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/rozsasarpi/zandbak/beam"
	"gonum.org/v1/gonum/mat"
)

// Response kinds in the order they are drawn
var responseKinds = []struct {
	name string
	grid func(r *beam.Response) *mat.Dense
}{
	{"DEFLECTION", func(r *beam.Response) *mat.Dense { return r.Deflection }},
	{"ROTATION", func(r *beam.Response) *mat.Dense { return r.Rotation }},
	{"BENDING MOMENT", func(r *beam.Response) *mat.Dense { return r.Moment }},
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Goldenrod,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

// DrawASCIIResponseDiagrams plots deflection, rotation and bending moment
// along the span, one series per flexural stiffness value
func DrawASCIIResponseDiagrams(r *beam.Response) string {
	var sb strings.Builder

	order := positionOrder(r.Positions)
	first, last := r.Positions[order[0]], r.Positions[order[len(order)-1]]

	for _, kind := range responseKinds {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s\n", kind.name))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len(kind.name))))

		if len(order) < 2 {
			sb.WriteString("  (single position, nothing to plot)\n")
			continue
		}

		series := rowsInOrder(kind.grid(r), order)
		colors := make([]asciigraph.AnsiColor, len(series))
		for i := range series {
			colors[i] = seriesColors[i%len(seriesColors)]
		}

		sb.WriteString(asciigraph.PlotMany(series,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Precision(4),
			asciigraph.Offset(4),
			asciigraph.SeriesColors(colors...),
			asciigraph.Caption(fmt.Sprintf("x = %g ... %g, EI = %s", first, last, joinFloats(r.FlexuralStiffness))),
		))
		sb.WriteString("\n")
	}

	return sb.String()
}

// positionOrder returns the column indices sorted by position
func positionOrder(positions []float64) []int {
	order := make([]int, len(positions))
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return positions[order[a]] < positions[order[b]]
	})
	return order
}

func rowsInOrder(g *mat.Dense, order []int) [][]float64 {
	n, _ := g.Dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, len(order))
		for k, j := range order {
			rows[i][k] = g.At(i, j)
		}
	}
	return rows
}

func joinFloats(v []float64) string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = fmt.Sprintf("%g", f)
	}
	return strings.Join(s, ", ")
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

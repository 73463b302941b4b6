package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/rozsasarpi/zandbak/beam"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point represents a 2D coordinate for section vertices
type Point struct {
	X float64
	Y float64
}

// ExportResponseDiagrams exports the deflection, rotation and bending
// moment diagrams of a response to three image files named after filename:
// beam.png becomes beam-deflection.png, beam-rotation.png and
// beam-moment.png. The format follows the extension (png, svg, pdf), png
// when there is none. It returns the names of the files written.
func ExportResponseDiagrams(r *beam.Response, filename string) ([]string, error) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
		ext = ".png"
	}
	base := strings.TrimSuffix(filename, ext)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	labels := map[string]string{
		"DEFLECTION":     "Deflection",
		"ROTATION":       "Rotation",
		"BENDING MOMENT": "Bending moment",
	}
	suffixes := map[string]string{
		"DEFLECTION":     "deflection",
		"ROTATION":       "rotation",
		"BENDING MOMENT": "moment",
	}

	order := positionOrder(r.Positions)
	var written []string
	for _, kind := range responseKinds {
		p := plot.New()
		p.Title.Text = labels[kind.name]
		p.X.Label.Text = "Position from left end"
		p.Y.Label.Text = labels[kind.name]
		p.Add(plotter.NewGrid())

		// Beam axis
		axis, err := plotter.NewLine(plotter.XYs{
			{X: r.Positions[order[0]], Y: 0},
			{X: r.Positions[order[len(order)-1]], Y: 0},
		})
		if err != nil {
			return written, err
		}
		axis.LineStyle.Width = vg.Points(1)
		axis.LineStyle.Color = color.Gray{Y: 128}
		axis.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(axis)

		for i, row := range rowsInOrder(kind.grid(r), order) {
			pts := make(plotter.XYs, len(row))
			for k, v := range row {
				pts[k] = plotter.XY{X: r.Positions[order[k]], Y: v}
			}

			line, points, err := plotter.NewLinePoints(pts)
			if err != nil {
				return written, err
			}
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Color = plotutil.Color(i)
			points.GlyphStyle.Color = plotutil.Color(i)
			points.GlyphStyle.Radius = vg.Points(2)
			points.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(line, points)
			p.Legend.Add(fmt.Sprintf("EI = %g", r.FlexuralStiffness[i]), line, points)
		}

		// Deflection is positive downward
		if kind.name == "DEFLECTION" {
			p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
		}

		name := fmt.Sprintf("%s-%s%s", base, suffixes[kind.name], ext)
		if err := p.Save(8*vg.Inch, 4*vg.Inch, name); err != nil {
			return written, err
		}
		written = append(written, name)
	}

	return written, nil
}

// ExportSectionDiagram exports the outline of a cross-section with its
// horizontal centroidal axis
func ExportSectionDiagram(vertices []Point, centroidY float64, filename string) error {
	if len(vertices) < 3 {
		return fmt.Errorf("section outline needs at least 3 vertices, got %d", len(vertices))
	}

	p := plot.New()
	p.Title.Text = "Beam Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline := make(plotter.XYs, len(vertices)+1)
	minX, maxX := vertices[0].X, vertices[0].X
	for i, v := range vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
	}
	outline[len(vertices)] = outline[0]

	fill, err := plotter.NewPolygon(outline[:len(vertices)])
	if err != nil {
		return err
	}
	fill.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	fill.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(fill)

	border, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	border.LineStyle.Width = vg.Points(2)
	border.LineStyle.Color = color.Black
	p.Add(border)

	// Centroidal axis
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: minX - 20, Y: centroidY},
		{X: maxX + 20, Y: centroidY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: maxX + 30, Y: centroidY}},
		Labels: []string{fmt.Sprintf("ȳ=%.1fmm", centroidY)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}

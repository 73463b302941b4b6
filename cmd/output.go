package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/rozsasarpi/zandbak/beam"
	"github.com/rozsasarpi/zandbak/internal/diagram"
	"github.com/rozsasarpi/zandbak/internal/nscp"
	"github.com/rozsasarpi/zandbak/internal/report"
	"github.com/rozsasarpi/zandbak/internal/section"
)

// calculation collects what is printed for one evaluation
type calculation struct {
	title   string
	inputs  [][2]string
	combo   *nscp.LoadCombination
	section *section.Section
	resp    *beam.Response
}

func printCalculation(c calculation, o *responseOptions) error {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", c.title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, in := range c.inputs {
		fmt.Fprintf(w, "  %s:\t%s\n", in[0], in[1])
	}
	if c.combo != nil {
		fmt.Fprintf(w, "  Governing Combination:\t%s (%s)\n", c.combo.ID, c.combo.Description)
	}
	w.Flush()
	fmt.Println()

	if c.section != nil {
		props := c.section.CalculateProperties()
		fmt.Println("SECTION PROPERTIES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if c.section.Name != "" {
			fmt.Fprintf(w, "  Section:\t%s\n", c.section.Name)
		}
		fmt.Fprintf(w, "  Gross Area:\t%.0f mm²\n", props.Area)
		fmt.Fprintf(w, "  Centroid (ȳ):\t%.1f mm\n", props.CentroidY)
		fmt.Fprintf(w, "  Second moment of area (Ixx):\t%.4e mm⁴\n", props.Ixx)
		fmt.Fprintf(w, "  Modulus of elasticity (E):\t%.0f MPa\n", c.section.ElasticModulus())
		fmt.Fprintf(w, "  Flexural stiffness (EI):\t%.2f kN·m²\n", c.section.FlexuralStiffness())
		w.Flush()
		fmt.Println()
	}

	// Responses, one table per stiffness value
	r := c.resp
	n, m := r.Dims()
	for i := 0; i < n; i++ {
		fmt.Printf("RESPONSES FOR EI = %g:\n", r.FlexuralStiffness[i])
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "  x\tDeflection\tRotation\tMoment\t\n")
		for j := 0; j < m; j++ {
			fmt.Fprintf(w, "  %g\t%.6g\t%.6g\t%.6g\t\n",
				r.Positions[j], r.Deflection.At(i, j), r.Rotation.At(i, j), r.Moment.At(i, j))
		}
		w.Flush()
		fmt.Println()
	}

	// Peak responses
	for i := 0; i < n; i++ {
		e := r.Extremes(i)
		fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("PEAK RESPONSES, EI = %g", e.FlexuralStiffness), []string{
			fmt.Sprintf("Deflection  δ = %.6g at x = %g", e.Deflection.Value, e.Deflection.Position),
			fmt.Sprintf("Rotation    φ = %.6g at x = %g", e.Rotation.Value, e.Rotation.Position),
			fmt.Sprintf("Moment      M = %.6g at x = %g", e.Moment.Value, e.Moment.Position),
		}))
		fmt.Println()
	}

	if o.showDiagram {
		fmt.Println(diagram.DrawASCIIResponseDiagrams(r))
	}

	return exportCalculation(c, o)
}

func exportCalculation(c calculation, o *responseOptions) error {
	if o.exportFile != "" {
		files, err := diagram.ExportResponseDiagrams(c.resp, o.exportFile)
		if err != nil {
			return fmt.Errorf("exporting diagrams: %w", err)
		}
		for _, f := range files {
			fmt.Printf("Diagram exported to: %s\n", f)
		}

		if c.section != nil {
			var vertices []diagram.Point
			for _, v := range c.section.Vertices {
				vertices = append(vertices, diagram.Point{X: v.X, Y: v.Y})
			}
			props := c.section.CalculateProperties()
			name := sectionDiagramName(o.exportFile)
			if err := diagram.ExportSectionDiagram(vertices, props.CentroidY, name); err != nil {
				return fmt.Errorf("exporting section diagram: %w", err)
			}
			fmt.Printf("Section diagram exported to: %s\n", name)
		}
	}

	if o.xlsxFile != "" {
		if err := report.WriteWorkbook(c.resp, o.xlsxFile); err != nil {
			return fmt.Errorf("exporting workbook: %w", err)
		}
		fmt.Printf("Workbook exported to: %s\n", o.xlsxFile)
	}

	if o.pdfFile != "" {
		inputs := c.inputs
		if c.combo != nil {
			inputs = append(inputs, [2]string{"Governing combination", c.combo.Description})
		}
		if err := report.WritePDF(report.Sheet{Title: c.title, Inputs: inputs}, c.resp, o.pdfFile); err != nil {
			return fmt.Errorf("exporting pdf: %w", err)
		}
		fmt.Printf("Calculation sheet exported to: %s\n", o.pdfFile)
	}

	return nil
}

func sectionDiagramName(exportFile string) string {
	ext := filepath.Ext(exportFile)
	base := strings.TrimSuffix(exportFile, ext)
	if ext == "" {
		ext = ".png"
	}
	return base + "-section" + ext
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rozsasarpi/zandbak/internal/diagram"
	"github.com/rozsasarpi/zandbak/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile       string
	sectionExportFile string
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Flexural stiffness of polygonal sections",
	Long: `Calculate the geometric properties and the flexural stiffness EI of a
polygonal section defined in a JSON or YAML file.

This allows stiffness of shapes like T-beams, L-beams, or any simple
polygon to be fed into the beam subcommands with --ei.

Example YAML file:
  name: T-Beam Section
  fc: 28                 # or modulus: 25000 (MPa)
  vertices:              # mm
    - {x: 0, y: 0}
    - {x: 300, y: 0}
    - {x: 300, y: 400}
    - {x: 600, y: 400}
    - {x: 600, y: 500}
    - {x: -300, y: 500}
    - {x: -300, y: 400}
    - {x: 0, y: 400}

Examples:
  zandbak section --file t-beam.yaml
  zandbak section -f t-beam.json -o t-beam.png`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section file (JSON or YAML) [required]")
	sectionCmd.MarkFlagRequired("file")
	sectionCmd.Flags().StringVarP(&sectionExportFile, "output", "o", "", "Export section drawing to file (png, svg, pdf)")
}

func runSection(cmd *cobra.Command, args []string) error {
	sec, err := section.LoadFromFile(sectionFile)
	if err != nil {
		return fmt.Errorf("loading section: %w", err)
	}
	props := sec.CalculateProperties()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION FLEXURAL STIFFNESS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (max):\t%.0f mm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.0f mm\n", props.Height)
	fmt.Fprintf(w, "  Gross Area:\t%.0f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid (x̄, ȳ):\t%.1f, %.1f mm\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Second moment of area (Ixx):\t%.4e mm⁴\n", props.Ixx)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Vertices))
	w.Flush()
	fmt.Println()

	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if sec.Fc > 0 {
		fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", sec.Fc)
	}
	fmt.Fprintf(w, "  Modulus of elasticity (E):\t%.0f MPa\n", sec.ElasticModulus())
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("FLEXURAL STIFFNESS", []string{
		fmt.Sprintf("EI = %.2f kN·m²", sec.FlexuralStiffness()),
	}))
	fmt.Println()

	if sectionExportFile != "" {
		var vertices []diagram.Point
		for _, v := range sec.Vertices {
			vertices = append(vertices, diagram.Point{X: v.X, Y: v.Y})
		}
		if err := diagram.ExportSectionDiagram(vertices, props.CentroidY, sectionExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", sectionExportFile)
	}

	return nil
}

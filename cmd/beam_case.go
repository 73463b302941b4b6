package cmd

import (
	"fmt"

	"github.com/rozsasarpi/zandbak/internal/loadcase"
	"github.com/spf13/cobra"
)

var (
	caseOpts responseOptions
	caseFile string
)

var beamCaseCmd = &cobra.Command{
	Use:   "case",
	Short: "Evaluate a beam case stored in a YAML file",
	Long: `Evaluate a beam case described in a YAML file.

Example file:
  name: Floor beam B-3
  support: clamped-clamped      # hinged-hinged, hinged-clamped
  span: 8
  load:
    type: force                 # or moment (hinged-hinged only)
    position: 3
    combination: {dead: 10, live: 5}
  section:
    fc: 28
    vertices: [{x: 0, y: 0}, {x: 300, y: 0}, {x: 300, y: 500}, {x: 0, y: 500}]
  stations: 21

Examples:
  zandbak beam case -f b3.yaml
  zandbak beam case -f b3.yaml --xlsx b3.xlsx --pdf b3.pdf`,
	RunE: runBeamCase,
}

func init() {
	beamCmd.AddCommand(beamCaseCmd)

	beamCaseCmd.Flags().StringVarP(&caseFile, "file", "f", "", "Case file (YAML) [required]")
	beamCaseCmd.MarkFlagRequired("file")
	caseOpts.addOutputFlags(beamCaseCmd)
}

func runBeamCase(cmd *cobra.Command, args []string) error {
	c, err := loadcase.Load(caseFile)
	if err != nil {
		return err
	}

	resp, err := c.Evaluate()
	if err != nil {
		return err
	}
	p, combo := c.Intensity()

	title := fmt.Sprintf("%s BEAM CASE", c.Support)
	if c.Name != "" {
		title = c.Name
	}

	inputs := [][2]string{
		{"Support", c.Support},
		{"Span (L)", fmt.Sprintf("%g m", c.Span)},
	}
	if c.Load.Type == loadcase.Moment {
		inputs = append(inputs,
			[2]string{"End moment (M0)", fmt.Sprintf("%g kN·m", p)},
			[2]string{"Loaded end", c.Load.End})
	} else {
		inputs = append(inputs,
			[2]string{"Point load (P)", fmt.Sprintf("%g kN", p)},
			[2]string{"Load position (a)", fmt.Sprintf("%g m", c.Load.Position)})
	}

	return printCalculation(calculation{
		title:   title,
		inputs:  inputs,
		combo:   combo,
		section: c.Section,
		resp:    resp,
	}, &caseOpts)
}

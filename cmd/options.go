package cmd

import (
	"errors"
	"fmt"

	"github.com/rozsasarpi/zandbak/beam"
	"github.com/rozsasarpi/zandbak/internal/nscp"
	"github.com/rozsasarpi/zandbak/internal/section"
	"github.com/spf13/cobra"
)

// responseOptions holds the flags shared by the beam subcommands
type responseOptions struct {
	// Geometry
	span float64

	// Load, given directly or as unfactored load types
	load       float64
	loads      nscp.LoadIntensities
	simplified bool

	// Flexural stiffness, given directly or from a rectangular section
	ei      []float64
	width   float64
	height  float64
	fc      float64
	modulus float64

	// Evaluation points
	positions []float64
	stations  int

	// Output
	showDiagram bool
	exportFile  string
	xlsxFile    string
	pdfFile     string
}

func (o *responseOptions) addFlags(cmd *cobra.Command, loadUnit string) {
	f := cmd.Flags()

	f.Float64VarP(&o.span, "span", "L", 0, "Span length (m) [required]")
	cmd.MarkFlagRequired("span")

	f.Float64VarP(&o.load, "load", "P", 0, fmt.Sprintf("Load intensity (%s)", loadUnit))
	f.Float64VarP(&o.loads.Dead, "dead", "d", 0, fmt.Sprintf("Dead load intensity (%s)", loadUnit))
	f.Float64VarP(&o.loads.Live, "live", "l", 0, fmt.Sprintf("Live load intensity (%s)", loadUnit))
	f.Float64VarP(&o.loads.Roof, "roof", "r", 0, fmt.Sprintf("Roof live load intensity (%s)", loadUnit))
	f.Float64VarP(&o.loads.Wind, "wind", "w", 0, fmt.Sprintf("Wind load intensity (%s)", loadUnit))
	f.Float64VarP(&o.loads.Earthquake, "earthquake", "e", 0, fmt.Sprintf("Earthquake load intensity (%s)", loadUnit))
	f.Float64VarP(&o.loads.Rain, "rain", "R", 0, fmt.Sprintf("Rain load intensity (%s)", loadUnit))
	f.BoolVarP(&o.simplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	cmd.MarkFlagsMutuallyExclusive("load", "dead")
	cmd.MarkFlagsMutuallyExclusive("load", "live")

	f.Float64SliceVar(&o.ei, "ei", nil, "Flexural stiffness EI (kN·m²), comma separated for several values")
	f.Float64Var(&o.width, "width", 0, "Rectangular section width (mm), instead of --ei")
	f.Float64Var(&o.height, "height", 0, "Rectangular section depth (mm), instead of --ei")
	f.Float64Var(&o.fc, "fc", 0, "Concrete compressive strength f'c (MPa), Ec = 4700√f'c")
	f.Float64Var(&o.modulus, "modulus", 0, "Modulus of elasticity (MPa), instead of --fc")
	cmd.MarkFlagsMutuallyExclusive("ei", "width")
	cmd.MarkFlagsMutuallyExclusive("fc", "modulus")
	cmd.MarkFlagsRequiredTogether("width", "height")

	f.Float64SliceVarP(&o.positions, "x", "x", nil, "Positions from the left end (m), comma separated")
	f.IntVar(&o.stations, "stations", 11, "Number of evenly spaced positions when --x is not given")

	o.addOutputFlags(cmd)
}

func (o *responseOptions) addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&o.showDiagram, "diagram", false, "Show ASCII response diagrams")
	f.StringVarP(&o.exportFile, "output", "o", "", "Export response diagrams to image files (png, svg, pdf)")
	f.StringVar(&o.xlsxFile, "xlsx", "", "Export response grids to an xlsx workbook")
	f.StringVar(&o.pdfFile, "pdf", "", "Export a pdf calculation sheet")
}

// intensity returns the load intensity and the governing combination when
// the load was given by load types
func (o *responseOptions) intensity() (float64, *nscp.LoadCombination, error) {
	if o.loads.IsZero() {
		if o.load == 0 {
			return 0, nil, errors.New("provide --load or at least one unfactored load (--dead, --live, ...)")
		}
		return o.load, nil, nil
	}

	combinations := nscp.LoadCombinations
	if o.simplified {
		combinations = nscp.SimplifiedCombinations
	}
	p, combo := nscp.GoverningLoad(o.loads, combinations)
	return p, &combo, nil
}

// stiffness returns the flexural stiffness values and the section they
// were derived from, if any
func (o *responseOptions) stiffness() ([]float64, *section.Section, error) {
	if len(o.ei) > 0 {
		return o.ei, nil, nil
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, nil, errors.New("provide --ei or a rectangular section (--width, --height with --fc or --modulus)")
	}

	sec := section.Rectangle(o.width, o.height)
	sec.Fc = o.fc
	sec.Modulus = o.modulus
	if err := sec.Validate(); err != nil {
		return nil, nil, err
	}
	return []float64{sec.FlexuralStiffness()}, sec, nil
}

func (o *responseOptions) queryPositions() []float64 {
	if len(o.positions) > 0 {
		return o.positions
	}
	return beam.Stations(o.span, o.stations)
}

package cmd

import (
	"fmt"

	"github.com/rozsasarpi/zandbak/beam"
	"github.com/spf13/cobra"
)

type pointForceFunc func(x []float64, p, a, span float64, ei []float64) (*beam.Response, error)

// newPointForceCmd builds the subcommand of one support condition under a
// concentrated force
func newPointForceCmd(use, short, title, endName string, fn pointForceFunc) *cobra.Command {
	var (
		opts         responseOptions
		loadPosition float64
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: fmt.Sprintf(`%s.

The force acts at --at, measured from the %s end. Positions (--x) are
measured from the same end. Several flexural stiffness values may be given
at once; every response is evaluated for each of them.

Examples:
  # 2 kN at midspan of a 10 m span, EI = 3 kN·m²
  zandbak beam %s --span 10 --load 2 --at 5 --ei 3 --x 0,2.5,5

  # Factored load on a 300x500 mm concrete section, 21 stations
  zandbak beam %s -L 6 --dead 20 --live 12 --at 2 --width 300 --height 500 --fc 28 --stations 21`,
			short, endName, use, use),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, combo, err := opts.intensity()
			if err != nil {
				return err
			}
			ei, sec, err := opts.stiffness()
			if err != nil {
				return err
			}

			resp, err := fn(opts.queryPositions(), p, loadPosition, opts.span, ei)
			if err != nil {
				return err
			}

			return printCalculation(calculation{
				title: title,
				inputs: [][2]string{
					{"Span (L)", fmt.Sprintf("%g m", opts.span)},
					{"Point load (P)", fmt.Sprintf("%g kN", p)},
					{fmt.Sprintf("Load position from %s end (a)", endName), fmt.Sprintf("%g m", loadPosition)},
				},
				combo:   combo,
				section: sec,
				resp:    resp,
			}, &opts)
		},
	}

	opts.addFlags(cmd, "kN")
	cmd.Flags().Float64VarP(&loadPosition, "at", "a", 0, fmt.Sprintf("Load position from the %s end (m) [required]", endName))
	cmd.MarkFlagRequired("at")

	return cmd
}

func init() {
	beamCmd.AddCommand(
		newPointForceCmd("hinged-hinged",
			"Point force on a hinged-hinged (simply supported) beam",
			"HINGED-HINGED BEAM UNDER POINT FORCE",
			"left", beam.HingedHingedBeamUnderPointForce),
		newPointForceCmd("hinged-clamped",
			"Point force on a beam hinged at the left and clamped at the right end",
			"HINGED-CLAMPED BEAM UNDER POINT FORCE",
			"hinged", beam.HingedClampedBeamUnderPointForce),
		newPointForceCmd("clamped-clamped",
			"Point force on a beam clamped at both ends",
			"CLAMPED-CLAMPED BEAM UNDER POINT FORCE",
			"left", beam.ClampedClampedBeamUnderPointForce),
	)
}

package cmd

import (
	"fmt"

	"github.com/rozsasarpi/zandbak/beam"
	"github.com/spf13/cobra"
)

var (
	endMomentOpts responseOptions
	endMomentEnd  string
)

var beamEndMomentCmd = &cobra.Command{
	Use:   "end-moment",
	Short: "End moment on a hinged-hinged (simply supported) beam",
	Long: `Evaluate a hinged-hinged beam loaded by a moment at one of its ends.

The bending moment varies linearly from the applied moment at the loaded
end to zero at the far end.

Examples:
  # 5 kN·m at the left end of a 6 m span
  zandbak beam end-moment --span 6 --load 5 --end left --ei 2

  # Right end, two stiffness values, ASCII diagrams
  zandbak beam end-moment -L 6 -P 5 --end right --ei 2,4 --stations 25 --diagram`,
	RunE: runBeamEndMoment,
}

func init() {
	beamCmd.AddCommand(beamEndMomentCmd)

	endMomentOpts.addFlags(beamEndMomentCmd, "kN·m")
	beamEndMomentCmd.Flags().StringVar(&endMomentEnd, "end", string(beam.LeftEnd), "Loaded end (left or right)")
}

func runBeamEndMoment(cmd *cobra.Command, args []string) error {
	end, err := beam.ParseLoadedEnd(endMomentEnd)
	if err != nil {
		return err
	}
	m0, combo, err := endMomentOpts.intensity()
	if err != nil {
		return err
	}
	ei, sec, err := endMomentOpts.stiffness()
	if err != nil {
		return err
	}

	resp, err := beam.HingedHingedBeamUnderEndMoment(endMomentOpts.queryPositions(), end, m0, endMomentOpts.span, ei)
	if err != nil {
		return err
	}

	return printCalculation(calculation{
		title: "HINGED-HINGED BEAM UNDER END MOMENT",
		inputs: [][2]string{
			{"Span (L)", fmt.Sprintf("%g m", endMomentOpts.span)},
			{"End moment (M0)", fmt.Sprintf("%g kN·m", m0)},
			{"Loaded end", string(end)},
		},
		combo:   combo,
		section: sec,
		resp:    resp,
	}, &endMomentOpts)
}

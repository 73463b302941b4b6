package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Deflection, rotation and bending moment of single span beams",
	Long: `Evaluate closed-form responses of single span beams.

Subcommands:
  hinged-hinged    - Point force on a simply supported beam
  end-moment       - End moment on a simply supported beam
  hinged-clamped   - Point force on a propped cantilever
  clamped-clamped  - Point force on a beam fixed at both ends
  case             - Evaluate a beam case stored in a YAML file

Units are up to the user as long as they are consistent; the flag help
assumes m, kN and kN·m².`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/rozsasarpi/zandbak/internal/logger"
	"github.com/rozsasarpi/zandbak/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logColor bool
)

var rootCmd = &cobra.Command{
	Use:   "zandbak",
	Short: "Closed-form beam response calculator",
	Long: `zandbak - closed-form single span beam responses

A CLI tool that evaluates textbook Euler-Bernoulli formulas for
single span beams with idealized supports:
  - Hinged-hinged beam under a point force or an end moment
  - Hinged-clamped beam under a point force
  - Clamped-clamped beam under a point force

Deflection, rotation and bending moment are evaluated at any number of
positions for any number of flexural stiffness values.

Formulas follow the AWC DA6 beam design formula tables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.InitConsoleLog(logLevel, logColor)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   zandbak v%-47s║\n", version.Version)
		fmt.Println("  ║   Closed-form Beam Response Calculator                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Deflection, rotation and bending moment along the span")
		fmt.Println("    • Hinged-hinged, hinged-clamped and clamped-clamped supports")
		fmt.Println("    • Point force or end moment, factored with NSCP load combinations")
		fmt.Println("    • Flexural stiffness given directly or from a cross-section")
		fmt.Println("    • ASCII diagrams, image, xlsx and pdf export")
		fmt.Println()
		fmt.Println("  Use 'zandbak --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logger.DefaultLevel, "Log level (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL)")
	rootCmd.PersistentFlags().BoolVar(&logColor, "log-color", false, "Colorize log output")
}

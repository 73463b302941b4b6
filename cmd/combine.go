package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rozsasarpi/zandbak/internal/diagram"
	"github.com/rozsasarpi/zandbak/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	combineLoads      nscp.LoadIntensities
	combineShowAll    bool
	combineSimplified bool
	combineUnit       string
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Factor a load using NSCP load combinations",
	Long: `Calculate the governing factored load based on NSCP 2015 load combinations.

Provide unfactored intensities of the same kind (forces or end moments) and
this command returns the combination with the largest magnitude. The result
can be passed to any beam subcommand as --load, or the beam subcommands can
take the unfactored intensities directly.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity loads
  zandbak combine --dead 50 --live 30

  # With wind uplift, all combinations
  zandbak combine --dead 50 --live 30 --wind -80 --all`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().Float64VarP(&combineLoads.Dead, "dead", "d", 0, "Dead load intensity")
	combineCmd.Flags().Float64VarP(&combineLoads.Live, "live", "l", 0, "Live load intensity")
	combineCmd.Flags().Float64VarP(&combineLoads.Roof, "roof", "r", 0, "Roof live load intensity")
	combineCmd.Flags().Float64VarP(&combineLoads.Wind, "wind", "w", 0, "Wind load intensity")
	combineCmd.Flags().Float64VarP(&combineLoads.Earthquake, "earthquake", "e", 0, "Earthquake load intensity")
	combineCmd.Flags().Float64VarP(&combineLoads.Rain, "rain", "R", 0, "Rain load intensity")

	combineCmd.Flags().BoolVarP(&combineShowAll, "all", "a", false, "Show all load combination results")
	combineCmd.Flags().BoolVarP(&combineSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	combineCmd.Flags().StringVarP(&combineUnit, "unit", "u", "kN", "Unit label of the intensities")
}

func runCombine(cmd *cobra.Command, args []string) error {
	if combineLoads.IsZero() {
		return errors.New("provide at least one unfactored load (--dead, --live, ...)")
	}

	combinations := nscp.LoadCombinations
	if combineSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 FACTORED LOAD CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Printf("UNFACTORED LOADS (%s):\n", combineUnit)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, l := range []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", combineLoads.Dead},
		{"Live Load (L)", combineLoads.Live},
		{"Roof Live Load (Lr)", combineLoads.Roof},
		{"Wind Load (W)", combineLoads.Wind},
		{"Earthquake Load (E)", combineLoads.Earthquake},
		{"Rain Load (R)", combineLoads.Rain},
	} {
		if l.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", l.label, l.value)
		}
	}
	w.Flush()
	fmt.Println()

	governing, governingCombo := nscp.GoverningLoad(combineLoads, combinations)

	if combineShowAll {
		fmt.Println("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tFactored (%s)\n", combineUnit)
		fmt.Fprintf(w, "  ─\t───────────\t────────\n")
		for _, combo := range combinations {
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(combineLoads), marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Print(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("Governing Combination: %s (%s)", governingCombo.ID, governingCombo.Description),
		fmt.Sprintf("Factored load = %.2f %s", governing, combineUnit),
	}))
	fmt.Println()

	return nil
}

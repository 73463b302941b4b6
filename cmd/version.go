package cmd

import (
	"fmt"

	"github.com/rozsasarpi/zandbak/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of zandbak",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zandbak v%s\n", version.Version)
		fmt.Printf("Built %s from %s\n", version.BuildTime, version.GitCommit)
		fmt.Println("Closed-form beam responses (AWC DA6 beam design formulas)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

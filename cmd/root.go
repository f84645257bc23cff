package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootCmd is the entry point for all subcommands.
var rootCmd = &cobra.Command{
	Use:   "ann-dataset",
	Short: "Manage ANN benchmark datasets with exact nearest-neighbor ground truth",
	Long: "ann-dataset creates and inspects Approximate Nearest Neighbor benchmark " +
		"datasets: collections of data points and query points together with " +
		"brute-force ground truth per metric for recall evaluation.",
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbruch/ann-dataset/dataset"
)

var infoPath string

// infoCmd loads a stored dataset and prints the shapes of its components.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the shapes of a stored dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(infoPath)
		if err != nil {
			return fmt.Errorf("unable to load the dataset: %w", err)
		}
		fmt.Println(ds)
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVar(&infoPath, "path", "", "path to a dataset file")
	_ = infoCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(infoCmd)
}

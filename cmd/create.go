package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sbruch/ann-dataset/core"
	"github.com/sbruch/ann-dataset/dataset"
	"github.com/sbruch/ann-dataset/exact"
)

var createFlags struct {
	dataPoints    string
	trainQueries  string
	validationSet string
	testQueries   string
	topK          int
	metrics       []string
	normalize     bool
	showProgress  bool
	output        string
}

// createCmd builds a dataset file from CSV matrices: it ingests the data
// points and any of the train/validation/test query splits, computes exact
// top-k ground truth for every requested metric, and stores the result.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dataset with exact ground truth from CSV vector files",
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := parseMetrics(createFlags.metrics)
		if err != nil {
			return err
		}

		dataPoints, err := loadPointSet(createFlags.dataPoints)
		if err != nil {
			return fmt.Errorf("unable to read data points: %w", err)
		}
		if createFlags.normalize {
			log.Info().Msg("Normalizing data points by their L2 norm")
			dataPoints.L2NormalizeInPlace()
		}
		ds := dataset.New(dataPoints)

		cfg := exact.ConfigFromEnv()
		if createFlags.showProgress {
			cfg.ShowProgress = true
		}
		builder, err := exact.NewBuilder(createFlags.topK, metrics, cfg)
		if err != nil {
			return err
		}

		splits := []struct {
			path string
			add  func(*dataset.QuerySet)
		}{
			{createFlags.trainQueries, ds.AddTrainQuerySet},
			{createFlags.validationSet, ds.AddValidationQuerySet},
			{createFlags.testQueries, ds.AddTestQuerySet},
		}
		for _, split := range splits {
			if split.path == "" {
				continue
			}
			querySet, err := buildQuerySet(builder, dataPoints, split.path)
			if err != nil {
				return err
			}
			split.add(querySet)
		}

		if err := ds.Save(createFlags.output); err != nil {
			return err
		}
		fmt.Printf("Dataset created and serialized:\n%s\n", ds)
		return nil
	},
}

// buildQuerySet loads one query split and attaches ground truth for every
// metric the builder computes.
func buildQuerySet(builder *exact.Builder, dataPoints *core.PointSet, path string) (*dataset.QuerySet, error) {
	queryPoints, err := loadPointSet(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read query points: %w", err)
	}
	querySet := dataset.NewQuerySet(queryPoints)

	neighbors, err := builder.Build(dataPoints, queryPoints)
	if err != nil {
		return nil, err
	}
	for metric, matrix := range neighbors {
		if err := querySet.AddGroundTruth(metric, matrix); err != nil {
			return nil, fmt.Errorf("failed to add %s ground truth: %w", metric, err)
		}
	}
	return querySet, nil
}

func parseMetrics(names []string) ([]core.Metric, error) {
	metrics := make([]core.Metric, 0, len(names))
	for _, name := range names {
		metric, err := core.ParseMetric(name)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, metric)
	}
	return metrics, nil
}

func init() {
	createCmd.Flags().StringVar(&createFlags.dataPoints, "data-points", "",
		"path to a CSV file of data point vectors")
	createCmd.Flags().StringVar(&createFlags.trainQueries, "train-query-points", "",
		"path to a CSV file of train query vectors")
	createCmd.Flags().StringVar(&createFlags.validationSet, "validation-query-points", "",
		"path to a CSV file of validation query vectors")
	createCmd.Flags().StringVar(&createFlags.testQueries, "test-query-points", "",
		"path to a CSV file of test query vectors")
	createCmd.Flags().IntVar(&createFlags.topK, "top-k", 0,
		"number of exact nearest neighbors to compute per query")
	createCmd.Flags().StringSliceVar(&createFlags.metrics, "metrics", nil,
		"metrics to compute ground truth for (default: inner-product, cosine, euclidean)")
	createCmd.Flags().BoolVar(&createFlags.normalize, "normalize", false,
		"L2-normalize the data points before computing ground truth")
	createCmd.Flags().BoolVar(&createFlags.showProgress, "progress", false,
		"render a progress bar during ground-truth generation")
	createCmd.Flags().StringVar(&createFlags.output, "output", "",
		"path of the dataset file to write")
	_ = createCmd.MarkFlagRequired("data-points")
	_ = createCmd.MarkFlagRequired("top-k")
	_ = createCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(createCmd)
}

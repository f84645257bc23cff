package exact

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/sbruch/ann-dataset/core"
)

// Builder computes, for every query point, its exact top-k nearest neighbors
// among the data points under one or more metrics, by brute force. A Builder
// carries no state between invocations of Build; every call starts fresh and
// returns fully assembled neighbor matrices.
type Builder struct {
	k       int
	metrics []core.Metric
	cfg     Config
}

// NewBuilder creates a builder that computes the top-k neighbors under the
// given metrics. An empty metrics list selects all supported metrics. It
// returns an error if k is not positive or if a metric is not supported by
// the generator (Hamming is reserved and cannot be computed).
func NewBuilder(k int, metrics []core.Metric, cfg Config) (*Builder, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	if len(metrics) == 0 {
		metrics = SupportedMetricsCopy()
	}
	seen := make(map[core.Metric]bool, len(metrics))
	for _, m := range metrics {
		if !isSupported(m) {
			return nil, fmt.Errorf("metric %s is not supported by the ground-truth generator", m)
		}
		if seen[m] {
			return nil, fmt.Errorf("metric %s requested more than once", m)
		}
		seen[m] = true
	}
	return &Builder{k: k, metrics: metrics, cfg: cfg}, nil
}

// SupportedMetricsCopy returns a fresh copy of the metrics the generator
// supports.
func SupportedMetricsCopy() []core.Metric {
	metrics := make([]core.Metric, len(core.SupportedMetrics))
	copy(metrics, core.SupportedMetrics)
	return metrics
}

func isSupported(m core.Metric) bool {
	for _, s := range core.SupportedMetrics {
		if s == m {
			return true
		}
	}
	return false
}

// Build computes the neighbor matrix of every requested metric. The returned
// matrices have one row per query, in query order, each holding up to k data
// point ids sorted from best to worst under that metric.
//
// Queries are independent units of work distributed over a pool of workers;
// each worker owns its scratch vectors and writes into disjoint rows of the
// output, so results are deterministic regardless of scheduling. The data
// point set and its norm cache are shared read-only.
//
// Build returns an error if either point set lacks a dense component (the
// pipeline is built around a dense dot product) or if the dense dimensions
// of the two sets differ.
func (b *Builder) Build(data, queries *core.PointSet) (map[core.Metric][][]int, error) {
	if data.Dense() == nil {
		return nil, fmt.Errorf("data point set has no dense component; " +
			"ground-truth generation requires dense vectors")
	}
	if queries.Dense() == nil {
		return nil, fmt.Errorf("query point set has no dense component; " +
			"ground-truth generation requires dense vectors")
	}
	if data.NumDenseDimensions() != queries.NumDenseDimensions() {
		return nil, fmt.Errorf("data points have %d dense dimensions but query points have %d",
			data.NumDenseDimensions(), queries.NumDenseDimensions())
	}

	dataDense := data.Dense()
	queryDense := queries.Dense()
	numPoints := data.NumPoints()
	numQueries := queries.NumPoints()

	// One neighbor matrix per metric, pre-sized so that each query owns a
	// disjoint row and workers never contend on the output.
	results := make(map[core.Metric][][]int, len(b.metrics))
	for _, m := range b.metrics {
		results[m] = make([][]int, numQueries)
	}

	cache := NewNormCache(data)

	workers := b.cfg.workerCount()
	if workers > numQueries && numQueries > 0 {
		workers = numQueries
	}

	log.Info().Msgf("Computing top-%d ground truth for %d queries over %d points using %d workers",
		b.k, numQueries, numPoints, workers)
	start := time.Now()

	var bar *progressbar.ProgressBar
	if b.cfg.ShowProgress {
		bar = progressbar.Default(int64(numQueries))
	}

	tasks := make(chan int, numQueries)
	for i := 0; i < numQueries; i++ {
		tasks <- i
	}
	close(tasks)

	var group errgroup.Group
	for w := 0; w < workers; w++ {
		group.Go(func() error {
			buf := newScoreBuffers(numPoints)
			for idx := range tasks {
				buf.score(dataDense, queryDense[idx], cache)
				for _, m := range b.metrics {
					results[m][idx] = TopK(b.rankingVector(buf, m), b.k)
				}
				if bar != nil {
					if err := bar.Add(1); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("Ground truth computed in %.2fs", time.Since(start).Seconds())
	return results, nil
}

// rankingVector picks the derived score vector for a metric.
func (b *Builder) rankingVector(buf *scoreBuffers, m core.Metric) []float32 {
	switch m {
	case core.InnerProduct:
		return buf.dots
	case core.Cosine:
		return buf.cosine
	case core.Euclidean:
		return buf.euclidean
	}
	// NewBuilder rejects anything else.
	panic(fmt.Sprintf("unreachable metric %s", m))
}

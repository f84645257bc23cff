package dataset

import (
	"fmt"
	"sort"

	"github.com/sbruch/ann-dataset/core"
)

// QuerySet is a set of query points together with their exact nearest
// neighbors under various metrics. Ground truth may be attached for any
// subset of metrics, at most once per metric.
type QuerySet struct {
	points    *core.PointSet
	neighbors map[core.Metric]*GroundTruth
}

// NewQuerySet creates a query set from a set of query points.
func NewQuerySet(points *core.PointSet) *QuerySet {
	return &QuerySet{
		points:    points,
		neighbors: make(map[core.Metric]*GroundTruth),
	}
}

// Points returns the set of query points.
func (q *QuerySet) Points() *core.PointSet { return q.points }

// AddGroundTruth attaches a set of exact nearest neighbors as the solution to
// ANN search with the given metric, replacing any previously attached
// solution for that metric.
//
// It returns an error if the number of rows in neighbors does not match the
// number of query points.
func (q *QuerySet) AddGroundTruth(metric core.Metric, neighbors [][]int) error {
	gt, err := NewGroundTruth(neighbors)
	if err != nil {
		return err
	}
	if gt.Rows() != q.points.NumPoints() {
		return fmt.Errorf("number of rows in neighbors (%d) must match the "+
			"number of query points in the set (%d)", gt.Rows(), q.points.NumPoints())
	}
	q.neighbors[metric] = gt
	return nil
}

// GroundTruth returns the exact nearest neighbors for ANN search with the
// given metric, or an error if the query set has no solution for it.
func (q *QuerySet) GroundTruth(metric core.Metric) (*GroundTruth, error) {
	if gt, ok := q.neighbors[metric]; ok {
		return gt, nil
	}
	return nil, fmt.Errorf("no solution to ANN with %s was provided", metric)
}

// Metrics returns the metrics with attached ground truth, in stable order.
func (q *QuerySet) Metrics() []core.Metric {
	metrics := make([]core.Metric, 0, len(q.neighbors))
	for m := range q.neighbors {
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i] < metrics[j] })
	return metrics
}

// String describes the query points and their attached ground truth.
func (q *QuerySet) String() string {
	s := q.points.String()
	for _, m := range q.Metrics() {
		s += fmt.Sprintf("; %s ground truth %s", m, q.neighbors[m])
	}
	return s
}

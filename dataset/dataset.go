package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sbruch/ann-dataset/core"
)

// Labels of the conventional query set splits.
const (
	TrainQuerySet      = "train_query_set"
	ValidationQuerySet = "validation_query_set"
	TestQuerySet       = "test_query_set"
)

// Dataset is an in-memory ANN benchmark dataset: one set of data points plus
// any number of labeled query sets, each with optional per-metric ground
// truth.
type Dataset struct {
	dataPoints *core.PointSet
	querySets  map[string]*QuerySet
}

// New creates a dataset around the given data points.
func New(dataPoints *core.PointSet) *Dataset {
	return &Dataset{
		dataPoints: dataPoints,
		querySets:  make(map[string]*QuerySet),
	}
}

// DataPoints returns the data points.
func (d *Dataset) DataPoints() *core.PointSet { return d.dataPoints }

// NumDataPoints returns the number of data points.
func (d *Dataset) NumDataPoints() int { return d.dataPoints.NumPoints() }

// Select gathers the data points with the given row ids into a new point set.
func (d *Dataset) Select(ids []int) (*core.PointSet, error) {
	return d.dataPoints.Select(ids)
}

// AddQuerySet attaches a query set under the given label, replacing an
// existing set with that label.
func (d *Dataset) AddQuerySet(label string, querySet *QuerySet) {
	d.querySets[label] = querySet
}

// AddTrainQuerySet attaches the conventional "train" query set.
func (d *Dataset) AddTrainQuerySet(querySet *QuerySet) {
	d.AddQuerySet(TrainQuerySet, querySet)
}

// AddValidationQuerySet attaches the conventional "validation" query set.
func (d *Dataset) AddValidationQuerySet(querySet *QuerySet) {
	d.AddQuerySet(ValidationQuerySet, querySet)
}

// AddTestQuerySet attaches the conventional "test" query set.
func (d *Dataset) AddTestQuerySet(querySet *QuerySet) {
	d.AddQuerySet(TestQuerySet, querySet)
}

// QuerySet returns the query set with the given label, or an error if no such
// set was attached.
func (d *Dataset) QuerySet(label string) (*QuerySet, error) {
	if set, ok := d.querySets[label]; ok {
		return set, nil
	}
	return nil, fmt.Errorf("query set %s does not exist", label)
}

// TrainQuerySet returns the conventional "train" query set.
func (d *Dataset) TrainQuerySet() (*QuerySet, error) {
	return d.QuerySet(TrainQuerySet)
}

// ValidationQuerySet returns the conventional "validation" query set.
func (d *Dataset) ValidationQuerySet() (*QuerySet, error) {
	return d.QuerySet(ValidationQuerySet)
}

// TestQuerySet returns the conventional "test" query set.
func (d *Dataset) TestQuerySet() (*QuerySet, error) {
	return d.QuerySet(TestQuerySet)
}

// NumQueryPoints returns the number of query points in the labeled set.
func (d *Dataset) NumQueryPoints(label string) (int, error) {
	set, err := d.QuerySet(label)
	if err != nil {
		return 0, err
	}
	return set.Points().NumPoints(), nil
}

// Labels returns the labels of all attached query sets, sorted.
func (d *Dataset) Labels() []string {
	labels := make([]string, 0, len(d.querySets))
	for label := range d.querySets {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// String describes the data points and every attached query set.
func (d *Dataset) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Point Set: %s", d.dataPoints)
	for _, label := range d.Labels() {
		fmt.Fprintf(&sb, "\n%s: %s", label, d.querySets[label])
	}
	return sb.String()
}

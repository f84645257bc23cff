package core

import (
	"fmt"
	"strings"
)

// Metric identifies the notion of similarity that characterizes an ANN search.
type Metric int

const (
	// InnerProduct ranks points by their dot product with the query.
	InnerProduct Metric = iota
	// Cosine ranks points by the angle between them and the query.
	Cosine
	// Euclidean ranks points by their L2 distance to the query.
	Euclidean
	// Hamming is reserved for binary vector sets. The ground-truth
	// generator does not support it.
	Hamming
)

// SupportedMetrics lists the metrics the ground-truth generator can compute.
var SupportedMetrics = []Metric{InnerProduct, Cosine, Euclidean}

// String returns the canonical name of the metric.
func (m Metric) String() string {
	switch m {
	case InnerProduct:
		return "inner-product"
	case Cosine:
		return "cosine"
	case Euclidean:
		return "euclidean"
	case Hamming:
		return "hamming"
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// ParseMetric maps a textual metric name to a Metric. Matching is
// case-insensitive and ignores '-' and '_' separators, so "dot-product",
// "DOT_PRODUCT", and "InnerProduct" all resolve to InnerProduct.
func ParseMetric(name string) (Metric, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)
	switch normalized {
	case "innerproduct", "dotproduct", "dot", "ip", "mips":
		return InnerProduct, nil
	case "cosine", "angular":
		return Cosine, nil
	case "euclidean", "l2":
		return Euclidean, nil
	case "hamming":
		return Hamming, nil
	}
	return 0, fmt.Errorf("unknown metric %q", name)
}

package dataset

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/sbruch/ann-dataset/core"
)

// serializedCSR mirrors a CSR matrix for gob encoding.
type serializedCSR struct {
	Cols    int
	Indptr  []int
	Indices []int
	Data    []float32
}

// serializedPointSet mirrors a point set for gob encoding. The presence of the
// dense component is carried explicitly because gob does not distinguish a nil
// slice from an empty one.
type serializedPointSet struct {
	HasDense bool
	Dense    [][]float32
	Sparse   *serializedCSR
}

// serializedQuerySet mirrors a query set; ground truth is keyed by canonical
// metric name.
type serializedQuerySet struct {
	Points    serializedPointSet
	Neighbors map[string][][]int
}

// serializedDataset is the on-disk form of a Dataset.
type serializedDataset struct {
	DataPoints serializedPointSet
	QuerySets  map[string]serializedQuerySet
}

func serializePointSet(points *core.PointSet) serializedPointSet {
	sp := serializedPointSet{
		HasDense: points.Dense() != nil,
		Dense:    points.Dense(),
	}
	if sparse := points.Sparse(); sparse != nil {
		sp.Sparse = &serializedCSR{
			Cols:    sparse.Cols(),
			Indptr:  sparse.Indptr(),
			Indices: sparse.Indices(),
			Data:    sparse.Data(),
		}
	}
	return sp
}

func deserializePointSet(sp serializedPointSet) (*core.PointSet, error) {
	var dense [][]float32
	if sp.HasDense {
		dense = sp.Dense
		if dense == nil {
			dense = [][]float32{}
		}
	}
	var sparse *core.CSRMatrix
	if sp.Sparse != nil {
		var err error
		sparse, err = core.NewCSRMatrix(sp.Sparse.Cols, sp.Sparse.Indptr,
			sp.Sparse.Indices, sp.Sparse.Data)
		if err != nil {
			return nil, fmt.Errorf("corrupt sparse component: %w", err)
		}
	}
	return core.NewPointSet(dense, sparse)
}

// Save stores the dataset at the given path as a zstd-compressed gob stream.
// Shape metadata of every component is preserved exactly.
func (d *Dataset) Save(path string) error {
	sd := serializedDataset{
		DataPoints: serializePointSet(d.dataPoints),
		QuerySets:  make(map[string]serializedQuerySet, len(d.querySets)),
	}
	for label, set := range d.querySets {
		sq := serializedQuerySet{
			Points:    serializePointSet(set.Points()),
			Neighbors: make(map[string][][]int, len(set.neighbors)),
		}
		for metric, gt := range set.neighbors {
			sq.Neighbors[metric.String()] = gt.Neighbors()
		}
		sd.QuerySets[label] = sq
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(zw).Encode(sd); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := zw.Close(); err != nil {
		return err
	}
	log.Info().Msgf("Dataset saved to %s", path)
	return nil
}

// Load reads a dataset previously written by Save. Every component is
// re-validated on the way in.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var sd serializedDataset
	if err := gob.NewDecoder(zr).Decode(&sd); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	dataPoints, err := deserializePointSet(sd.DataPoints)
	if err != nil {
		return nil, fmt.Errorf("corrupt data points: %w", err)
	}
	d := New(dataPoints)

	for label, sq := range sd.QuerySets {
		points, err := deserializePointSet(sq.Points)
		if err != nil {
			return nil, fmt.Errorf("corrupt query set %s: %w", label, err)
		}
		set := NewQuerySet(points)
		for name, neighbors := range sq.Neighbors {
			metric, err := core.ParseMetric(name)
			if err != nil {
				return nil, fmt.Errorf("corrupt query set %s: %w", label, err)
			}
			if err := set.AddGroundTruth(metric, neighbors); err != nil {
				return nil, fmt.Errorf("corrupt ground truth for %s in query set %s: %w",
					name, label, err)
			}
		}
		d.AddQuerySet(label, set)
	}

	log.Info().Msgf("Dataset loaded from %s", path)
	return d, nil
}

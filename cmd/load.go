package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/sbruch/ann-dataset/core"
)

// loadPointSet reads a CSV file of float32 vectors, one vector per line, and
// wraps it in a dense point set.
func loadPointSet(path string) (*core.PointSet, error) {
	vectors, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	log.Info().Msgf("Loaded %d vectors from %s", len(vectors), path)
	return core.NewPointSet(vectors, nil)
}

// readCSV parses a CSV file into a matrix of float32 values.
func readCSV(path string) ([][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	var vectors [][]float32
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]float32, len(record))
		for i, field := range record {
			value, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", len(vectors)+1, i+1, err)
			}
			row[i] = float32(value)
		}
		vectors = append(vectors, row)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("file %s holds no vectors", path)
	}
	return vectors, nil
}

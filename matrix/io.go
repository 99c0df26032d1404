// SPDX-License-Identifier: MIT
// Package matrix - YAML/JSON ingestion of precomputed cost matrices.
//
// Document shape (JSON documents are accepted as a YAML subset):
//
//	size: 4            # optional; must equal len(costs) when present
//	costs:
//	  - [0, 1, 5, 1]
//	  - [1, 0, 1, 5]
//	  - [5, 1, 0, 1]
//	  - [1, 5, 1, 0]
//
// Decoding is strict: unknown keys are rejected so that typos surface early.
package matrix

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk representation of a cost matrix.
type Document struct {
	Size  int         `yaml:"size,omitempty"`
	Costs [][]float64 `yaml:"costs"`
}

// DecodeYAML reads a Document from r and converts it into a Dense matrix.
//
// Errors: decoding failures are wrapped; shape problems surface as
// ErrInvalidDimensions or ErrDimensionMismatch.
//
// Complexity: O(n²).
func DecodeYAML(r io.Reader) (*Dense, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode cost matrix: empty document: %w", ErrInvalidDimensions)
		}
		return nil, fmt.Errorf("decode cost matrix: %w", err)
	}
	if doc.Size != 0 && doc.Size != len(doc.Costs) {
		return nil, fmt.Errorf("declared size %d, got %d rows: %w", doc.Size, len(doc.Costs), ErrDimensionMismatch)
	}

	return NewDenseFromRows(doc.Costs)
}

// EncodeYAML writes m as a Document to w.
// Complexity: O(r*c).
func EncodeYAML(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		doc  = Document{Size: m.Rows(), Costs: make([][]float64, m.Rows())}
		i, j int
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		doc.Costs[i] = make([]float64, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			if doc.Costs[i][j], err = m.At(i, j); err != nil {
				return err
			}
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode cost matrix: %w", err)
	}

	return enc.Close()
}

// LoadDense opens path and decodes it without applying the cost policy.
// Use it when entries need preprocessing, e.g. MetricClosure over .inf gaps.
func LoadDense(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cost matrix: %w", err)
	}
	defer f.Close()

	d, err := DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// LoadCostMatrix opens path, decodes it and validates the result as a cost
// model with the given symmetry tolerance.
func LoadCostMatrix(path string, tol float64) (*CostMatrix, error) {
	d, err := LoadDense(path)
	if err != nil {
		return nil, err
	}
	cm, err := NewCostMatrix(d, tol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cm, nil
}

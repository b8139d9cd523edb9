// Package model loads the labeled training data and provides the disease
// inference capability: a probability distribution over disease labels for a
// binary symptom vector, plus the per-disease symptom co-occurrence used to
// pick follow-up questions.
package model

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

var dupSuffixRe = regexp.MustCompile(`\.\d+$`)

// TrainingSet holds the labeled training rows. Columns is the feature order
// contract shared with the vocabulary; X is the binary feature matrix with one
// row per example; Y holds the label index of each row.
type TrainingSet struct {
	Columns []string
	Labels  []string
	X       *mat.Dense
	Y       []int
}

// LoadTrainingCSV reads a training file whose header lists the feature columns
// followed by the label column. Duplicate feature columns (numeric suffixes
// from the export stripped) keep their first occurrence; rows with the wrong
// width or non-numeric feature values are logged and skipped.
func LoadTrainingCSV(path string) (*TrainingSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open training data: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // row width is validated per row below
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse training data: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("training data %s has no rows", path)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("training data %s needs at least one feature and a label column", path)
	}

	// Clean duplicate column names and remember which raw indices survive.
	var (
		columns []string
		keep    []int
		seen    = make(map[string]bool)
	)
	for i, raw := range header[:len(header)-1] {
		name := dupSuffixRe.ReplaceAllString(raw, "")
		if seen[name] {
			continue
		}
		seen[name] = true
		columns = append(columns, name)
		keep = append(keep, i)
	}

	ts := &TrainingSet{Columns: columns}
	labelIndex := make(map[string]int)

	var data []float64
	rows := 0
	for n, record := range records[1:] {
		if len(record) != len(header) {
			log.Printf("Skipping training row %d: has %d fields, want %d", n+2, len(record), len(header))
			continue
		}

		features := make([]float64, len(keep))
		ok := true
		for j, idx := range keep {
			val, err := strconv.Atoi(record[idx])
			if err != nil {
				log.Printf("Skipping training row %d: bad feature value %q", n+2, record[idx])
				ok = false
				break
			}
			if val != 0 {
				features[j] = 1
			}
		}
		if !ok {
			continue
		}

		label := record[len(header)-1]
		li, exists := labelIndex[label]
		if !exists {
			li = len(ts.Labels)
			labelIndex[label] = li
			ts.Labels = append(ts.Labels, label)
		}

		data = append(data, features...)
		ts.Y = append(ts.Y, li)
		rows++
	}

	if rows == 0 {
		return nil, fmt.Errorf("training data %s has no usable rows", path)
	}

	ts.X = mat.NewDense(rows, len(columns), data)
	return ts, nil
}

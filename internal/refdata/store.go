// Package refdata loads the flat reference tables consulted when a diagnosis
// report is finalized: disease descriptions, symptom severity weights, and
// per-disease precautions.
package refdata

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/anikesh-17/MediGate/internal/vocab"
)

const (
	descriptionFile = "symptom_description.csv"
	severityFile    = "symptom_severity.csv"
	precautionFile  = "symptom_precaution.csv"

	// precautionCount is how many precaution entries a well-formed row carries.
	precautionCount = 4
)

// Store holds the reference tables. Read-only after Load; safe for concurrent
// use.
type Store struct {
	descriptions map[string]string
	severities   map[vocab.SymptomID]int
	precautions  map[string][]string
}

// Load reads the three reference CSVs from dir. Missing files load as empty
// tables and malformed rows are skipped, both with a log line; lookups against
// the gaps degrade gracefully at report time, so Load never fails.
func Load(dir string) *Store {
	s := &Store{
		descriptions: make(map[string]string),
		severities:   make(map[vocab.SymptomID]int),
		precautions:  make(map[string][]string),
	}

	forEachRow(filepath.Join(dir, descriptionFile), func(row []string) error {
		if len(row) < 2 {
			return fmt.Errorf("want 2 fields, got %d", len(row))
		}
		s.descriptions[row[0]] = row[1]
		return nil
	})

	forEachRow(filepath.Join(dir, severityFile), func(row []string) error {
		if len(row) < 2 {
			return fmt.Errorf("want 2 fields, got %d", len(row))
		}
		weight, err := strconv.Atoi(row[1])
		if err != nil {
			return fmt.Errorf("bad severity weight %q", row[1])
		}
		s.severities[vocab.SymptomID(row[0])] = weight
		return nil
	})

	forEachRow(filepath.Join(dir, precautionFile), func(row []string) error {
		if len(row) < 1+precautionCount {
			return fmt.Errorf("want %d fields, got %d", 1+precautionCount, len(row))
		}
		s.precautions[row[0]] = append([]string(nil), row[1:1+precautionCount]...)
		return nil
	})

	log.Printf("Reference data loaded: %d descriptions, %d severities, %d precaution sets",
		len(s.descriptions), len(s.severities), len(s.precautions))
	return s
}

// forEachRow streams a CSV file row by row. A missing or unreadable file is a
// warning, a rejected row is a skip; neither stops the load.
func forEachRow(path string, handle func(row []string) error) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Warning: reference file %s not loaded: %v", path, err)
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		log.Printf("Warning: reference file %s not parsed: %v", path, err)
		return
	}

	for n, row := range rows {
		if err := handle(row); err != nil {
			log.Printf("Skipping row %d of %s: %v", n+1, path, err)
		}
	}
}

// Description returns the description text for a disease label.
func (s *Store) Description(disease string) (string, bool) {
	desc, ok := s.descriptions[disease]
	return desc, ok
}

// SeverityWeight returns the informational severity weight of a symptom.
func (s *Store) SeverityWeight(id vocab.SymptomID) (int, bool) {
	w, ok := s.severities[id]
	return w, ok
}

// Precautions returns the ordered precaution list for a disease label, or nil
// when none is recorded.
func (s *Store) Precautions(disease string) []string {
	return s.precautions[disease]
}

package vocab

import (
	"fmt"
	"strings"
)

// SymptomID is the canonical token form of a symptom, e.g. "stomach_pain".
// It always matches a feature column of the trained model.
type SymptomID string

// Vocabulary is the fixed set of known symptoms. The order of the identifiers
// is the feature-vector index contract shared with the diagnostic model, so it
// must match the training column order exactly. Immutable after construction.
type Vocabulary struct {
	ids      []SymptomID
	index    map[SymptomID]int
	synonyms map[string]SymptomID
}

// DefaultSynonyms maps colloquial phrases to canonical symptom identifiers.
// Hand-maintained; entries whose target is not in the vocabulary are dropped
// at construction time.
var DefaultSynonyms = map[string]SymptomID{
	"stomach ache":        "stomach_pain",
	"belly pain":          "stomach_pain",
	"tummy pain":          "stomach_pain",
	"loose motion":        "diarrhea",
	"motions":             "diarrhea",
	"high temperature":    "fever",
	"temperature":         "fever",
	"feaver":              "fever",
	"coughing":            "cough",
	"throat pain":         "sore_throat",
	"cold":                "chills",
	"breathing issue":     "breathlessness",
	"shortness of breath": "breathlessness",
	"body ache":           "muscle_pain",
}

// New builds a vocabulary from the model's feature columns. Duplicate columns
// keep their first position; synonyms pointing outside the vocabulary are
// silently ignored.
func New(columns []string, synonyms map[string]SymptomID) (*Vocabulary, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("vocabulary requires at least one feature column")
	}

	v := &Vocabulary{
		index:    make(map[SymptomID]int, len(columns)),
		synonyms: make(map[string]SymptomID, len(synonyms)),
	}

	for _, col := range columns {
		id := SymptomID(col)
		if _, seen := v.index[id]; seen {
			continue
		}
		v.index[id] = len(v.ids)
		v.ids = append(v.ids, id)
	}

	for phrase, id := range synonyms {
		if _, ok := v.index[id]; ok {
			v.synonyms[strings.ToLower(phrase)] = id
		}
	}

	return v, nil
}

// Size returns the number of canonical symptoms, which is also the length of
// the model's feature vector.
func (v *Vocabulary) Size() int {
	return len(v.ids)
}

// IDs returns the canonical identifiers in feature-vector order.
func (v *Vocabulary) IDs() []SymptomID {
	out := make([]SymptomID, len(v.ids))
	copy(out, v.ids)
	return out
}

// Index returns the feature-vector position of a symptom.
func (v *Vocabulary) Index(id SymptomID) (int, bool) {
	i, ok := v.index[id]
	return i, ok
}

// Contains reports whether id is a known canonical symptom.
func (v *Vocabulary) Contains(id SymptomID) bool {
	_, ok := v.index[id]
	return ok
}

// Display renders a canonical identifier in its human-readable form.
func (v *Vocabulary) Display(id SymptomID) string {
	return strings.ReplaceAll(string(id), "_", " ")
}

// Synonyms returns the phrase-to-canonical table. Callers must treat the map
// as read-only.
func (v *Vocabulary) Synonyms() map[string]SymptomID {
	return v.synonyms
}

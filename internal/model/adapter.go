package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/anikesh-17/MediGate/internal/vocab"
)

// Adapter wraps the trained classifier behind the vocabulary's feature-vector
// contract: symptom sets in, (label, confidence) out. It also answers which
// symptoms co-occur with a label in the training data, which the dialog engine
// uses to propose follow-up questions.
type Adapter struct {
	vocab   *vocab.Vocabulary
	clf     Classifier
	related map[string][]vocab.SymptomID
}

// NewAdapter binds a classifier and training set to a vocabulary. The
// vocabulary must have been built from the same feature columns the classifier
// was trained on.
func NewAdapter(v *vocab.Vocabulary, clf Classifier, ts *TrainingSet) (*Adapter, error) {
	_, features := ts.X.Dims()
	if features != v.Size() {
		return nil, fmt.Errorf("training set has %d features, vocabulary has %d", features, v.Size())
	}

	a := &Adapter{
		vocab:   v,
		clf:     clf,
		related: make(map[string][]vocab.SymptomID, len(ts.Labels)),
	}

	// For every label, collect each feature that is 1 in at least one of its
	// training rows, keeping vocabulary order.
	rows, _ := ts.X.Dims()
	present := make(map[string]map[int]bool, len(ts.Labels))
	for i := 0; i < rows; i++ {
		label := ts.Labels[ts.Y[i]]
		cols := present[label]
		if cols == nil {
			cols = make(map[int]bool)
			present[label] = cols
		}
		for j, val := range ts.X.RawRowView(i) {
			if val != 0 {
				cols[j] = true
			}
		}
	}
	ids := v.IDs()
	for label, cols := range present {
		var related []vocab.SymptomID
		for j, id := range ids {
			if cols[j] {
				related = append(related, id)
			}
		}
		a.related[label] = related
	}

	return a, nil
}

// Predict encodes the symptom set as a one-hot feature vector, runs the
// classifier, and returns the argmax label with its probability as a
// percentage rounded to two decimals. Callers must not pass an empty set; an
// all-zero vector has no meaningful prediction and the dialog engine rejects
// such turns before reaching here.
func (a *Adapter) Predict(symptoms []vocab.SymptomID) (string, float64) {
	features := make([]float64, a.vocab.Size())
	for _, id := range symptoms {
		if idx, ok := a.vocab.Index(id); ok {
			features[idx] = 1
		}
	}

	proba := a.clf.PredictProba(features)
	best := floats.MaxIdx(proba)
	confidence := math.Round(proba[best]*100*100) / 100
	return a.clf.Labels()[best], confidence
}

// RelatedSymptoms returns every symptom observed together with the label in
// the training data, in vocabulary order. Unknown labels yield an empty list.
func (a *Adapter) RelatedSymptoms(label string) []vocab.SymptomID {
	related := a.related[label]
	out := make([]vocab.SymptomID, len(related))
	copy(out, related)
	return out
}

package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Classifier is the trained inference capability: a probability distribution
// over disease labels for a fixed-length binary feature vector. Implementations
// must be safe for concurrent use after construction.
type Classifier interface {
	PredictProba(features []float64) []float64
	Labels() []string
}

// BernoulliNB is a Bernoulli naive Bayes classifier over binary symptom
// features, trained once at startup and read-only afterwards.
type BernoulliNB struct {
	labels   []string
	logPrior []float64
	logOn    *mat.Dense // classes x features, log P(feature=1 | class)
	logOff   *mat.Dense // classes x features, log P(feature=0 | class)
}

// TrainBernoulliNB fits the classifier on a training set using Laplace
// smoothing, so unseen feature/class combinations keep non-zero probability.
func TrainBernoulliNB(ts *TrainingSet) (*BernoulliNB, error) {
	rows, features := ts.X.Dims()
	classes := len(ts.Labels)
	if rows == 0 || classes == 0 {
		return nil, fmt.Errorf("cannot train on empty training set")
	}
	if len(ts.Y) != rows {
		return nil, fmt.Errorf("label count %d does not match %d training rows", len(ts.Y), rows)
	}

	classCount := make([]float64, classes)
	onCount := mat.NewDense(classes, features, nil)
	for i := 0; i < rows; i++ {
		c := ts.Y[i]
		classCount[c]++
		row := ts.X.RawRowView(i)
		for j, val := range row {
			if val != 0 {
				onCount.Set(c, j, onCount.At(c, j)+1)
			}
		}
	}

	clf := &BernoulliNB{
		labels:   append([]string(nil), ts.Labels...),
		logPrior: make([]float64, classes),
		logOn:    mat.NewDense(classes, features, nil),
		logOff:   mat.NewDense(classes, features, nil),
	}

	total := floats.Sum(classCount)
	for c := 0; c < classes; c++ {
		clf.logPrior[c] = math.Log(classCount[c] / total)
		for j := 0; j < features; j++ {
			pOn := (onCount.At(c, j) + 1) / (classCount[c] + 2)
			clf.logOn.Set(c, j, math.Log(pOn))
			clf.logOff.Set(c, j, math.Log(1-pOn))
		}
	}

	return clf, nil
}

// Labels returns the class labels in encoding order.
func (c *BernoulliNB) Labels() []string {
	return c.labels
}

// PredictProba returns the normalized class probabilities for a binary
// feature vector of the training width.
func (c *BernoulliNB) PredictProba(features []float64) []float64 {
	classes := len(c.labels)
	logLik := make([]float64, classes)

	for cl := 0; cl < classes; cl++ {
		ll := c.logPrior[cl]
		on := c.logOn.RawRowView(cl)
		off := c.logOff.RawRowView(cl)
		for j, val := range features {
			if j >= len(on) {
				break
			}
			if val != 0 {
				ll += on[j]
			} else {
				ll += off[j]
			}
		}
		logLik[cl] = ll
	}

	// Softmax in log space to avoid underflow.
	max := floats.Max(logLik)
	proba := make([]float64, classes)
	for cl, ll := range logLik {
		proba[cl] = math.Exp(ll - max)
	}
	sum := floats.Sum(proba)
	floats.Scale(1/sum, proba)
	return proba
}

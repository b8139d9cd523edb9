// Package extract converts free-text utterances into canonical symptom
// identifiers using three matching passes: synonym phrases, exact display
// forms, and fuzzy single-token similarity.
package extract

import (
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/anikesh-17/MediGate/internal/vocab"
)

// fuzzyCutoff is the minimum similarity ratio for a token to count as a
// fuzzy match against a vocabulary term.
const fuzzyCutoff = 0.8

// Extractor maps user text onto the symptom vocabulary.
type Extractor struct {
	vocab  *vocab.Vocabulary
	wordRe *regexp.Regexp
}

// NewExtractor creates an extractor bound to a vocabulary.
func NewExtractor(v *vocab.Vocabulary) *Extractor {
	return &Extractor{
		vocab:  v,
		wordRe: regexp.MustCompile(`\w+`),
	}
}

// Extract returns the canonical symptoms found in text, in vocabulary order,
// each at most once. A symptom found by any pass counts; passes are not
// prioritized. An empty result means the utterance could not be understood.
func (e *Extractor) Extract(text string) []vocab.SymptomID {
	normalized := strings.ReplaceAll(strings.ToLower(text), "-", " ")
	found := make(map[vocab.SymptomID]bool)

	// Synonym pass: colloquial phrases contained in the text.
	for phrase, id := range e.vocab.Synonyms() {
		if strings.Contains(normalized, phrase) {
			found[id] = true
		}
	}

	// Exact pass: the human-readable form of a canonical symptom occurs
	// verbatim in the text.
	for _, id := range e.vocab.IDs() {
		if strings.Contains(normalized, e.vocab.Display(id)) {
			found[id] = true
		}
	}

	// Fuzzy pass: each word token takes its single closest vocabulary term
	// above the similarity cutoff.
	for _, token := range e.wordRe.FindAllString(normalized, -1) {
		if id, ok := e.closestSymptom(token); ok {
			found[id] = true
		}
	}

	out := make([]vocab.SymptomID, 0, len(found))
	for _, id := range e.vocab.IDs() {
		if found[id] {
			out = append(out, id)
		}
	}
	return out
}

// closestSymptom finds the best vocabulary match for a single token under the
// sequence-similarity ratio, or false if nothing clears the cutoff.
func (e *Extractor) closestSymptom(token string) (vocab.SymptomID, bool) {
	var (
		best      vocab.SymptomID
		bestRatio float64
		matched   bool
	)

	tokenChars := splitChars(token)
	for _, id := range e.vocab.IDs() {
		ratio := difflib.NewMatcher(tokenChars, splitChars(e.vocab.Display(id))).Ratio()
		if ratio >= fuzzyCutoff && ratio > bestRatio {
			best = id
			bestRatio = ratio
			matched = true
		}
	}
	return best, matched
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

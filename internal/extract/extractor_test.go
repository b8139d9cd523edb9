package extract

import (
	"testing"

	"github.com/anikesh-17/MediGate/internal/vocab"
)

func testVocabulary(t *testing.T) *vocab.Vocabulary {
	t.Helper()

	columns := []string{
		"itching", "skin_rash", "chills", "joint_pain", "stomach_pain",
		"vomiting", "fatigue", "cough", "fever", "breathlessness",
		"headache", "nausea", "diarrhea", "muscle_pain", "sore_throat",
		"chest_pain",
	}
	v, err := vocab.New(columns, vocab.DefaultSynonyms)
	if err != nil {
		t.Fatalf("vocab.New() error = %v", err)
	}
	return v
}

func TestExtract(t *testing.T) {
	extractor := NewExtractor(testVocabulary(t))

	tests := []struct {
		name    string
		message string
		want    []vocab.SymptomID
	}{
		{
			name:    "exact pass finds plain terms",
			message: "I have fever and cough",
			want:    []vocab.SymptomID{"cough", "fever"},
		},
		{
			name:    "synonym pass maps colloquial phrase",
			message: "I woke up with a terrible stomach ache",
			want:    []vocab.SymptomID{"stomach_pain"},
		},
		{
			name:    "hyphen normalization feeds synonym pass",
			message: "my stomach-ache will not stop",
			want:    []vocab.SymptomID{"stomach_pain"},
		},
		{
			name:    "synonym for temperature",
			message: "I am running a high temperature",
			want:    []vocab.SymptomID{"fever"},
		},
		{
			name:    "fuzzy pass tolerates misspelling",
			message: "I keep vomitting since last night",
			want:    []vocab.SymptomID{"vomiting"},
		},
		{
			name:    "multiple symptoms in one utterance",
			message: "I have a headache and nausea today",
			want:    []vocab.SymptomID{"headache", "nausea"},
		},
		{
			name:    "multi-word display form",
			message: "sharp chest pain when breathing",
			want:    []vocab.SymptomID{"chest_pain"},
		},
		{
			name:    "gibberish yields nothing",
			message: "asdkjasd",
			want:    nil,
		},
		{
			name:    "unrelated text yields nothing",
			message: "what a lovely day outside",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.message)

			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) = %v, want %v", tt.message, got, tt.want)
			}
			for i, id := range tt.want {
				if got[i] != id {
					t.Errorf("Extract(%q)[%d] = %s, want %s", tt.message, i, got[i], id)
				}
			}
		})
	}
}

func TestExtract_VocabularyOrder(t *testing.T) {
	v := testVocabulary(t)
	extractor := NewExtractor(v)

	// "fever" precedes "cough" in the message, but results follow the
	// feature-vector order of the vocabulary.
	got := extractor.Extract("fever then cough")
	want := []vocab.SymptomID{"cough", "fever"}

	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_Idempotence(t *testing.T) {
	v := testVocabulary(t)
	extractor := NewExtractor(v)

	// Extracting a symptom's own human-readable rendering must yield that
	// symptom back, for every entry in the vocabulary.
	for _, id := range v.IDs() {
		got := extractor.Extract(v.Display(id))
		found := false
		for _, g := range got {
			if g == id {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Extract(Display(%s)) = %v, does not contain %s", id, got, id)
		}
	}
}

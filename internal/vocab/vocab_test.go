package vocab

import (
	"testing"
)

func TestNew_PreservesColumnOrder(t *testing.T) {
	v, err := New([]string{"fever", "cough", "stomach_pain"}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if v.Size() != 3 {
		t.Errorf("Size() = %d, want 3", v.Size())
	}

	want := []SymptomID{"fever", "cough", "stomach_pain"}
	got := v.IDs()
	for i, id := range want {
		if got[i] != id {
			t.Errorf("IDs()[%d] = %s, want %s", i, got[i], id)
		}
		idx, ok := v.Index(id)
		if !ok || idx != i {
			t.Errorf("Index(%s) = %d, %v, want %d, true", id, idx, ok, i)
		}
	}
}

func TestNew_DropsDuplicateColumns(t *testing.T) {
	v, err := New([]string{"fever", "cough", "fever"}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if v.Size() != 2 {
		t.Errorf("Size() = %d, want 2", v.Size())
	}
	if idx, _ := v.Index("fever"); idx != 0 {
		t.Errorf("duplicate column should keep first position, got %d", idx)
	}
}

func TestNew_EmptyColumns(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Error("New() with no columns should fail")
	}
}

func TestNew_FiltersUnknownSynonymTargets(t *testing.T) {
	synonyms := map[string]SymptomID{
		"High Temperature": "fever",
		"belly pain":       "stomach_pain", // not in vocabulary
	}

	v, err := New([]string{"fever", "cough"}, synonyms)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	table := v.Synonyms()
	if got, ok := table["high temperature"]; !ok || got != "fever" {
		t.Errorf("synonym phrase should be lower-cased and kept, got %v %v", got, ok)
	}
	if _, ok := table["belly pain"]; ok {
		t.Error("synonym with unknown target should be dropped")
	}
}

func TestDisplay(t *testing.T) {
	v, _ := New([]string{"stomach_pain", "cough"}, nil)

	if got := v.Display("stomach_pain"); got != "stomach pain" {
		t.Errorf("Display() = %q, want %q", got, "stomach pain")
	}
	if got := v.Display("cough"); got != "cough" {
		t.Errorf("Display() = %q, want %q", got, "cough")
	}
}

func TestContains(t *testing.T) {
	v, _ := New([]string{"fever"}, nil)

	if !v.Contains("fever") {
		t.Error("Contains(fever) = false, want true")
	}
	if v.Contains("unknown") {
		t.Error("Contains(unknown) = true, want false")
	}
}

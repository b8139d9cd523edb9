package model

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTrainingFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "training.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write training file: %v", err)
	}
	return path
}

func TestLoadTrainingCSV(t *testing.T) {
	path := writeTrainingFile(t,
		"fever,cough,headache,prognosis\n"+
			"1,1,0,Flu\n"+
			"0,0,1,Migraine\n"+
			"1,1,0,Flu\n")

	ts, err := LoadTrainingCSV(path)
	if err != nil {
		t.Fatalf("LoadTrainingCSV() error = %v", err)
	}

	wantCols := []string{"fever", "cough", "headache"}
	if len(ts.Columns) != len(wantCols) {
		t.Fatalf("Columns = %v, want %v", ts.Columns, wantCols)
	}
	for i, c := range wantCols {
		if ts.Columns[i] != c {
			t.Errorf("Columns[%d] = %s, want %s", i, ts.Columns[i], c)
		}
	}

	rows, features := ts.X.Dims()
	if rows != 3 || features != 3 {
		t.Errorf("X dims = %dx%d, want 3x3", rows, features)
	}

	if len(ts.Labels) != 2 || ts.Labels[0] != "Flu" || ts.Labels[1] != "Migraine" {
		t.Errorf("Labels = %v, want [Flu Migraine] in first-seen order", ts.Labels)
	}
	wantY := []int{0, 1, 0}
	for i, y := range wantY {
		if ts.Y[i] != y {
			t.Errorf("Y[%d] = %d, want %d", i, ts.Y[i], y)
		}
	}
}

func TestLoadTrainingCSV_DropsDuplicateColumns(t *testing.T) {
	// Exports append numeric suffixes to repeated columns; only the first
	// occurrence survives.
	path := writeTrainingFile(t,
		"fever,cough,fever.1,prognosis\n"+
			"1,0,1,Flu\n")

	ts, err := LoadTrainingCSV(path)
	if err != nil {
		t.Fatalf("LoadTrainingCSV() error = %v", err)
	}

	if len(ts.Columns) != 2 {
		t.Fatalf("Columns = %v, want [fever cough]", ts.Columns)
	}
	if ts.Columns[0] != "fever" || ts.Columns[1] != "cough" {
		t.Errorf("Columns = %v, want [fever cough]", ts.Columns)
	}
	if _, features := ts.X.Dims(); features != 2 {
		t.Errorf("feature width = %d, want 2", features)
	}
}

func TestLoadTrainingCSV_SkipsMalformedRows(t *testing.T) {
	path := writeTrainingFile(t,
		"fever,cough,prognosis\n"+
			"1,oops,Flu\n"+
			"0,1,Cold\n")

	ts, err := LoadTrainingCSV(path)
	if err != nil {
		t.Fatalf("LoadTrainingCSV() error = %v", err)
	}

	rows, _ := ts.X.Dims()
	if rows != 1 {
		t.Errorf("rows = %d, want 1 (malformed row skipped)", rows)
	}
	if len(ts.Labels) != 1 || ts.Labels[0] != "Cold" {
		t.Errorf("Labels = %v, want [Cold]", ts.Labels)
	}
}

func TestLoadTrainingCSV_MissingFile(t *testing.T) {
	if _, err := LoadTrainingCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("missing training file should fail")
	}
}

func TestLoadTrainingCSV_NoUsableRows(t *testing.T) {
	path := writeTrainingFile(t, "fever,cough,prognosis\nbad,bad,Flu\n")

	if _, err := LoadTrainingCSV(path); err == nil {
		t.Error("training file with no usable rows should fail")
	}
}

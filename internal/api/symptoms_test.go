package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anikesh-17/MediGate/internal/refdata"
	"github.com/anikesh-17/MediGate/internal/vocab"
)

func TestListSymptoms(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	severity := "fever,5\ncough,4\n"
	if err := os.WriteFile(filepath.Join(dir, "symptom_severity.csv"), []byte(severity), 0o644); err != nil {
		t.Fatalf("write severity file: %v", err)
	}

	v, err := vocab.New([]string{"fever", "cough", "stomach_pain"}, nil)
	if err != nil {
		t.Fatalf("vocab.New() error = %v", err)
	}
	handler := NewSymptomHandler(v, refdata.Load(dir))

	router := gin.New()
	router.GET("/api/symptoms", handler.ListSymptoms)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/symptoms", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Symptoms []SymptomInfo `json:"symptoms"`
		Count    int           `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.Count != 3 || len(resp.Symptoms) != 3 {
		t.Fatalf("count = %d, symptoms = %v, want 3", resp.Count, resp.Symptoms)
	}
	if resp.Symptoms[0].ID != "fever" || resp.Symptoms[0].Severity != 5 {
		t.Errorf("symptoms[0] = %+v, want fever with severity 5", resp.Symptoms[0])
	}
	if resp.Symptoms[2].Display != "stomach pain" {
		t.Errorf("symptoms[2].Display = %q, want %q", resp.Symptoms[2].Display, "stomach pain")
	}
	if resp.Symptoms[2].Severity != 0 {
		t.Errorf("symptom without a recorded weight should have zero severity, got %d", resp.Symptoms[2].Severity)
	}
}

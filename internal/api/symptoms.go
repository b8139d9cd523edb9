package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anikesh-17/MediGate/internal/refdata"
	"github.com/anikesh-17/MediGate/internal/vocab"
)

// SymptomHandler serves the read-only symptom vocabulary so clients can show
// what the engine understands.
type SymptomHandler struct {
	vocab *vocab.Vocabulary
	refs  *refdata.Store
}

// NewSymptomHandler creates a symptom handler.
func NewSymptomHandler(v *vocab.Vocabulary, refs *refdata.Store) *SymptomHandler {
	return &SymptomHandler{vocab: v, refs: refs}
}

// SymptomInfo is one vocabulary entry in the listing.
type SymptomInfo struct {
	ID       vocab.SymptomID `json:"id"`
	Display  string          `json:"display"`
	Severity int             `json:"severity,omitempty"`
}

// ListSymptoms returns every known symptom with its display form and, when
// recorded, its informational severity weight.
// GET /api/symptoms
func (h *SymptomHandler) ListSymptoms(c *gin.Context) {
	ids := h.vocab.IDs()
	symptoms := make([]SymptomInfo, 0, len(ids))
	for _, id := range ids {
		info := SymptomInfo{ID: id, Display: h.vocab.Display(id)}
		if w, ok := h.refs.SeverityWeight(id); ok {
			info.Severity = w
		}
		symptoms = append(symptoms, info)
	}

	c.JSON(http.StatusOK, gin.H{
		"symptoms": symptoms,
		"count":    len(symptoms),
	})
}

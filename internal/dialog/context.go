// Package dialog implements the diagnostic conversation: a small state
// machine that collects who the user is, extracts symptoms from free text,
// asks follow-up questions drawn from training co-occurrence, and finalizes a
// diagnosis report. All mutable session data lives in the Context the caller
// round-trips each turn; the engine itself is stateless.
package dialog

import "github.com/anikesh-17/MediGate/internal/vocab"

// State identifies where a conversation is in the protocol. Values the engine
// does not recognize (including a corrupted blob) trigger a recovery reset to
// the start of collection.
type State string

const (
	StateStart           State = "START"
	StateAskAge          State = "ASK_AGE"
	StateAskGender       State = "ASK_GENDER"
	StateAskSymptoms     State = "ASK_SYMPTOMS"
	StateProcessSymptoms State = "PROCESS_SYMPTOMS"
	StateFollowUp        State = "FOLLOW_UP"
	StateDone            State = "DONE"
)

// Context is the complete caller-persisted state of one conversation. The
// engine treats the empty value as a brand-new conversation in StateStart.
// FollowupIndex always stays within [0, len(FollowupQueue)], and Symptoms only
// ever contains vocabulary identifiers and only ever grows until reset.
type Context struct {
	ID               string            `json:"id,omitempty"`
	State            State             `json:"state,omitempty"`
	Name             string            `json:"name,omitempty"`
	Age              string            `json:"age,omitempty"`
	Gender           string            `json:"gender,omitempty"`
	Symptoms         []vocab.SymptomID `json:"symptoms,omitempty"`
	PredictedDisease string            `json:"predicted_disease,omitempty"`
	FollowupQueue    []vocab.SymptomID `json:"followup_queue,omitempty"`
	FollowupIndex    int               `json:"followup_index,omitempty"`
}

// HasSymptom reports whether id was already collected this conversation.
func (c *Context) HasSymptom(id vocab.SymptomID) bool {
	for _, s := range c.Symptoms {
		if s == id {
			return true
		}
	}
	return false
}

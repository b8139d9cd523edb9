package dialog

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/anikesh-17/MediGate/internal/vocab"
)

// maxFollowups bounds how many yes/no questions a conversation asks.
const maxFollowups = 8

// Extractor maps a free-text utterance onto canonical symptoms.
type Extractor interface {
	Extract(text string) []vocab.SymptomID
}

// Predictor is the diagnostic model boundary: disease inference over a
// symptom set and the training co-occurrence used for follow-up questions.
type Predictor interface {
	Predict(symptoms []vocab.SymptomID) (label string, confidence float64)
	RelatedSymptoms(label string) []vocab.SymptomID
}

// ReferenceStore supplies the report-time lookups. Absent entries are content
// gaps, not errors.
type ReferenceStore interface {
	Description(disease string) (string, bool)
	Precautions(disease string) []string
	SeverityWeight(id vocab.SymptomID) (int, bool)
}

// Displayer renders a canonical symptom for the user.
type Displayer interface {
	Display(id vocab.SymptomID) string
}

// Engine drives the conversation protocol. It owns no session state; every
// turn reads and returns a Context the caller persists.
type Engine struct {
	extractor Extractor
	predictor Predictor
	refs      ReferenceStore
	display   Displayer
	pick      func(n int) int
}

// NewEngine wires the dialog engine. pick chooses the closing quote by index
// and exists so tests can pin it; nil selects math/rand.
func NewEngine(ex Extractor, pr Predictor, refs ReferenceStore, disp Displayer, pick func(n int) int) *Engine {
	if pick == nil {
		pick = rand.Intn
	}
	return &Engine{
		extractor: ex,
		predictor: pr,
		refs:      refs,
		display:   disp,
		pick:      pick,
	}
}

const (
	replyGreeting = "Hello! I am your AI health assistant.\n" +
		"Please answer a few questions so I can understand your condition.\n\n" +
		"What is your name?"
	replyAskGender        = "What is your gender? (M/F/Other)"
	replyAskSymptoms      = "Please describe your symptoms (e.g., 'I have fever and headache')."
	replyNotUnderstood    = "I couldn't understand those symptoms. Please describe them differently or list more specific symptoms."
	replyRecovery         = "I'm not sure what happened. Let's start over. What is your name?"
	noDescriptionFallback = "No description available."
)

var closingQuotes = []string{
	"Health is wealth, take care of yourself.",
	"A healthy outside starts from the inside.",
	"Every day is a chance to get stronger and healthier.",
	"Take a deep breath, your health matters the most.",
	"Remember, self-care is not selfish.",
}

// ProcessTurn runs one synchronous turn: it dispatches on the context's state,
// mutates a copy of the context, and returns the reply with the context the
// caller must persist for the next turn. An empty context starts a new
// conversation.
func (e *Engine) ProcessTurn(message string, ctx Context) (string, Context) {
	if ctx.ID == "" {
		ctx.ID = uuid.NewString()
	}

	switch ctx.State {
	case "", StateStart:
		ctx.State = StateAskAge
		return replyGreeting, ctx

	case StateAskAge:
		ctx.Name = message
		ctx.State = StateAskGender
		return fmt.Sprintf("Nice to meet you, %s. How old are you?", message), ctx

	case StateAskGender:
		ctx.Age = message
		ctx.State = StateAskSymptoms
		return replyAskGender, ctx

	case StateAskSymptoms:
		ctx.Gender = message
		ctx.State = StateProcessSymptoms
		return replyAskSymptoms, ctx

	case StateProcessSymptoms:
		return e.processSymptoms(message, ctx)

	case StateFollowUp:
		return e.followUp(message, ctx)

	default:
		// Unknown or terminal state in the blob: recover by restarting the
		// collection phase rather than failing the turn.
		log.Printf("Conversation %s: resetting from state %q", ctx.ID, ctx.State)
		return replyRecovery, Context{ID: ctx.ID, State: StateAskAge}
	}
}

// processSymptoms runs extraction and the one-time prediction that seeds the
// follow-up queue. An empty extraction keeps the state unchanged so the user
// can rephrase; predicting on an empty set is never allowed.
func (e *Engine) processSymptoms(message string, ctx Context) (string, Context) {
	symptoms := e.extractor.Extract(message)
	if len(symptoms) == 0 {
		log.Printf("Conversation %s: no symptoms extracted", ctx.ID)
		return replyNotUnderstood, ctx
	}

	ctx.Symptoms = symptoms
	label, _ := e.predictor.Predict(symptoms)
	ctx.PredictedDisease = label
	log.Printf("Conversation %s: extracted %d symptom(s), initial prediction %s", ctx.ID, len(symptoms), label)

	// Snapshot the follow-up questions once. The queue is not re-ranked as
	// answers come in; the prediction that matters happens at finalize.
	var queue []vocab.SymptomID
	for _, id := range e.predictor.RelatedSymptoms(label) {
		if !ctx.HasSymptom(id) {
			queue = append(queue, id)
		}
		if len(queue) == maxFollowups {
			break
		}
	}
	ctx.FollowupQueue = queue
	ctx.FollowupIndex = 0

	if len(queue) == 0 {
		return e.finalize(ctx)
	}

	names := make([]string, len(symptoms))
	for i, id := range symptoms {
		names[i] = e.display.Display(id)
	}
	reply := fmt.Sprintf("Detected symptoms: %s.\n\n%s",
		strings.Join(names, ", "), e.followupQuestion(queue[0]))
	ctx.State = StateFollowUp
	return reply, ctx
}

// followUp records a yes/no answer for the current queued symptom and either
// asks the next question or finalizes once the queue is exhausted.
func (e *Engine) followUp(message string, ctx Context) (string, Context) {
	if ctx.FollowupIndex >= len(ctx.FollowupQueue) {
		return e.finalize(ctx)
	}

	switch strings.ToLower(strings.TrimSpace(message)) {
	case "yes", "y", "yeah":
		current := ctx.FollowupQueue[ctx.FollowupIndex]
		if !ctx.HasSymptom(current) {
			ctx.Symptoms = append(ctx.Symptoms, current)
		}
	}
	ctx.FollowupIndex++

	if ctx.FollowupIndex < len(ctx.FollowupQueue) {
		return e.followupQuestion(ctx.FollowupQueue[ctx.FollowupIndex]), ctx
	}
	return e.finalize(ctx)
}

func (e *Engine) followupQuestion(id vocab.SymptomID) string {
	return fmt.Sprintf("Do you also have %s? (yes/no)", e.display.Display(id))
}

// finalize re-predicts over the fully accumulated symptom set and builds the
// diagnosis report. Missing reference entries degrade the report instead of
// failing it.
func (e *Engine) finalize(ctx Context) (string, Context) {
	label, confidence := e.predictor.Predict(ctx.Symptoms)
	ctx.PredictedDisease = label
	log.Printf("Conversation %s: finalized as %s (%.2f%%)", ctx.ID, label, confidence)

	desc, ok := e.refs.Description(label)
	if !ok {
		desc = noDescriptionFallback
	}

	var b strings.Builder
	b.WriteString("---------------- Result ----------------\n")
	fmt.Fprintf(&b, "You may have: %s\n", label)
	fmt.Fprintf(&b, "Confidence: %.2f%%\n", confidence)
	fmt.Fprintf(&b, "Description: %s\n\n", desc)

	if note := e.severityNote(ctx.Symptoms); note != "" {
		b.WriteString(note + "\n\n")
	}

	if precautions := e.refs.Precautions(label); len(precautions) > 0 {
		b.WriteString("Suggested precautions:\n")
		for i, p := range precautions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, titleWords(p))
		}
	}

	fmt.Fprintf(&b, "\n%s", closingQuotes[e.pick(len(closingQuotes))])

	ctx.State = StateDone
	return b.String(), ctx
}

// severityNote summarizes the informational severity weights of the reported
// symptoms. Symptoms without a recorded weight are left out; no weights, no
// note.
func (e *Engine) severityNote(symptoms []vocab.SymptomID) string {
	sum, known := 0, 0
	for _, id := range symptoms {
		if w, ok := e.refs.SeverityWeight(id); ok {
			sum += w
			known++
		}
	}
	if known == 0 {
		return ""
	}

	if sum/known >= 5 {
		return "Your symptoms score high on our severity scale. Please consult a doctor soon."
	}
	return "Your symptoms look manageable, but see a doctor if they persist or worsen."
}

// titleWords capitalizes the first letter of each word, for precaution text
// stored in lower case.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

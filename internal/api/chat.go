package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anikesh-17/MediGate/internal/dialog"
)

// ChatHandler exposes the dialog engine over REST. The conversation context
// rides inside the request and response bodies; the server keeps nothing
// between turns.
type ChatHandler struct {
	engine *dialog.Engine
}

// NewChatHandler creates a chat handler.
func NewChatHandler(engine *dialog.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// TurnRequest is one inbound conversation turn. An absent or zero-valued
// context starts a new conversation.
type TurnRequest struct {
	Message string         `json:"message"`
	Context dialog.Context `json:"context"`
}

// TurnResponse carries the reply and the context the client must send back
// on its next turn.
type TurnResponse struct {
	Response string         `json:"response"`
	Context  dialog.Context `json:"context"`
}

// HandleTurn processes one conversation turn.
// POST /api/chat
func (h *ChatHandler) HandleTurn(c *gin.Context) {
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reply, ctx := h.engine.ProcessTurn(req.Message, req.Context)
	c.JSON(http.StatusOK, TurnResponse{Response: reply, Context: ctx})
}

// HandleReset discards whatever the client was holding and returns the
// greeting of a fresh conversation.
// POST /api/chat/reset
func (h *ChatHandler) HandleReset(c *gin.Context) {
	reply, ctx := h.engine.ProcessTurn("", dialog.Context{})
	c.JSON(http.StatusOK, TurnResponse{Response: reply, Context: ctx})
}

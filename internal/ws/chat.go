// Package ws exposes the dialog engine over a WebSocket connection. The
// protocol is the same as the REST turn call: the client sends its message
// together with the context it is holding, and gets the updated context back
// in the closing frame of each turn. The server stores nothing per client.
package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/anikesh-17/MediGate/internal/api/middleware"
	"github.com/anikesh-17/MediGate/internal/dialog"
)

// messagesPerMinute caps how fast a single connection may send turns.
const messagesPerMinute = 30

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatHandler handles WebSocket chat connections.
type ChatHandler struct {
	engine *dialog.Engine
}

// NewChatHandler creates a WebSocket chat handler.
func NewChatHandler(engine *dialog.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// IncomingTurn is one turn sent by the client. A zero-valued context starts a
// new conversation.
type IncomingTurn struct {
	Message string         `json:"message"`
	Context dialog.Context `json:"context"`
}

// OutgoingFrame is a server-to-client frame. Type is "message", "error", or
// "done"; the updated context rides on the done frame.
type OutgoingFrame struct {
	Type    string          `json:"type"`
	Content string          `json:"content,omitempty"`
	Context *dialog.Context `json:"context,omitempty"`
}

// HandleChat upgrades the connection and serves turns until the client hangs
// up.
// GET /ws/chat
func (h *ChatHandler) HandleChat(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	limiter := middleware.NewMessageLimiter(messagesPerMinute)
	log.Printf("WebSocket connected: %s", conn.RemoteAddr())

	for {
		var turn IncomingTurn
		if err := conn.ReadJSON(&turn); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}

		if !limiter.Allow() {
			h.send(conn, OutgoingFrame{Type: "error", Content: "You're sending messages too quickly. Please slow down."})
			continue
		}

		reply, ctx := h.engine.ProcessTurn(turn.Message, turn.Context)
		h.send(conn, OutgoingFrame{Type: "message", Content: reply})
		h.send(conn, OutgoingFrame{Type: "done", Context: &ctx})
	}
}

func (h *ChatHandler) send(conn *websocket.Conn, frame OutgoingFrame) {
	if err := conn.WriteJSON(frame); err != nil {
		log.Printf("WebSocket write error: %v", err)
	}
}

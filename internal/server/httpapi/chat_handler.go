package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studyboard/internal/common"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/chatmessages"
	"github.com/dmitrijs2005/studyboard/internal/server/services"
)

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type postMessageReq struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // optional; server stamps when empty
}

// POST /api/chat/messages
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req postMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, common.ErrorValidation)
		return
	}

	s := currentSession(c)
	message, err := h.chat.Post(c.Request.Context(), s.Username, req.Message, req.Timestamp)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": message})
}

// GET /api/chat/messages?order=asc|desc
func (h *ChatHandler) ListMessages(c *gin.Context) {
	order := chatmessages.Order(c.DefaultQuery("order", string(chatmessages.OrderAsc)))

	messages, err := h.chat.List(c.Request.Context(), order)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"messages": messages})
}

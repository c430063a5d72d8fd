package api

import (
	"askadam/fitness-assistant/internal/gemini"
	"askadam/fitness-assistant/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatHandler forwards chat turns to the chat service.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatHistoryEntry struct {
	Role    string `json:"role" binding:"required,oneof=user model"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Message string             `json:"message" binding:"required"`
	History []chatHistoryEntry `json:"history"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// SendMessage handles one chat turn. Works for guests too: without a token
// the turn's mutations land in local guest storage.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	history := make([]gemini.Message, len(req.History))
	for i, entry := range req.History {
		history[i] = gemini.Message{Role: entry.Role, Content: entry.Content}
	}

	reply, err := h.chatService.SendMessage(c.Request.Context(), userIDOrEmpty(c), history, req.Message)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not process chat message")
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

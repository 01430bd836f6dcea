// internal/server/handlers.go
package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ekthaa-chatbot/internal/common/logger"
	"ekthaa-chatbot/internal/models"
)

// ChatService is the application surface the HTTP layer exposes.
type ChatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	Suggest(ctx context.Context) []string
}

type Handler struct {
	service ChatService
	logger  logger.Logger
}

func NewHandler(service ChatService, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"component": "http"}),
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Ekthaa Product Discovery Chatbot Running",
	})
}

func (h *Handler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), req)
	if err != nil {
		h.logger.WithError(err).Error("Chat request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Suggest(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuggestResponse{
		Questions: h.service.Suggest(c.Request.Context()),
	})
}

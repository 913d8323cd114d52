package handler

import (
	"net/http"

	"github.com/pindranil/waste-wise-report/internal/middleware"
	"github.com/pindranil/waste-wise-report/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc *service.MessageService
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// List returns the alert's chat thread, oldest first.
func (h *MessageHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.svc.ListByAlert(c.Param("id"))})
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.svc.Send(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": m})
}

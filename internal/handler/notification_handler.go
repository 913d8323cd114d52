package handler

import (
	"net/http"

	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/middleware"
	"github.com/pindranil/waste-wise-report/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List returns the caller's notifications, newest first. Admins may inspect
// another recipient via user_id, or everything with all=true.
func (h *NotificationHandler) List(c *gin.Context) {
	recipient := middleware.GetUserID(c)
	if middleware.GetRole(c) == domain.RoleAdmin {
		if c.Query("all") == "true" {
			recipient = ""
		} else if uid := c.Query("user_id"); uid != "" {
			recipient = uid
		}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": h.svc.List(recipient)})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.svc.MarkAllRead(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

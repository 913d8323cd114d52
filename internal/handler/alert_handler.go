package handler

import (
	"net/http"

	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/middleware"
	"github.com/pindranil/waste-wise-report/internal/service"
	"github.com/pindranil/waste-wise-report/internal/store"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	svc *service.AlertService
}

func NewAlertHandler(svc *service.AlertService) *AlertHandler {
	return &AlertHandler{svc: svc}
}

// List returns alerts newest first. Regular users only ever see their own;
// admins may filter by user_id, status and garbage_type ("all" = no filter).
func (h *AlertHandler) List(c *gin.Context) {
	filter := store.AlertFilter{
		OwnerID:     c.Query("user_id"),
		Status:      c.Query("status"),
		GarbageType: c.Query("garbage_type"),
	}
	if middleware.GetRole(c) != domain.RoleAdmin {
		filter.OwnerID = middleware.GetUserID(c)
	}
	c.JSON(http.StatusOK, gin.H{"alerts": h.svc.List(filter)})
}

func (h *AlertHandler) Get(c *gin.Context) {
	a, err := h.svc.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": a})
}

type CreateAlertRequest struct {
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
	GarbageType string  `json:"garbage_type" binding:"required"`
	Quantity    string  `json:"quantity" binding:"required"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

func (h *AlertHandler) Create(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.Create(c.Request.Context(), service.CreateAlertInput{
		OwnerID:     middleware.GetUserID(c),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		GarbageType: req.GarbageType,
		Quantity:    req.Quantity,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"alert": a})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed"`
}

func (h *AlertHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": a})
}

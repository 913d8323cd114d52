package handler

import (
	"net/http"

	"github.com/pindranil/waste-wise-report/internal/service"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	svc *service.FormService
}

func NewFormHandler(svc *service.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

func (h *FormHandler) ListTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form_types": h.svc.ListTypes()})
}

type SendFormRequest struct {
	FormTypeID string `json:"form_type_id" binding:"required"`
}

// SendForm attaches a follow-up form to the alert (admin operation).
func (h *FormHandler) SendForm(c *gin.Context) {
	var req SendFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.SendForm(c.Request.Context(), c.Param("id"), req.FormTypeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": a})
}

type SubmitResponseRequest struct {
	Response map[string]string `json:"response" binding:"required"`
}

// SubmitResponse records the owner's answers to the attached form.
func (h *FormHandler) SubmitResponse(c *gin.Context) {
	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.SubmitResponse(c.Request.Context(), c.Param("id"), req.Response)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": a})
}

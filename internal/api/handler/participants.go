package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type joinRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateParticipant handles POST /participants.
func (h *Handler) CreateParticipant(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	if err := h.Presence.Join(c.Request.Context(), req.Name); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// ListParticipants handles GET /participants.
func (h *Handler) ListParticipants(c *gin.Context) {
	participants, err := h.Presence.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

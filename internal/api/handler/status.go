package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Heartbeat handles POST /status. A missing user header is a 422, not
// a 404: the request is malformed rather than naming an unknown
// participant.
func (h *Handler) Heartbeat(c *gin.Context) {
	user := c.GetHeader(userHeader)
	if err := h.Presence.Heartbeat(c.Request.Context(), user); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

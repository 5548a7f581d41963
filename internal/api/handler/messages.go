package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// messageRequest is shared by POST and PUT /messages. The oneof check
// runs against the raw value; the chat store re-validates after
// sanitization.
type messageRequest struct {
	To   string `json:"to" binding:"required"`
	Text string `json:"text" binding:"required"`
	Type string `json:"type" binding:"required,oneof=message private_message"`
}

// PostMessage handles POST /messages.
func (h *Handler) PostMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	from := c.GetHeader(userHeader)
	if err := h.Chat.Post(c.Request.Context(), from, req.To, req.Text, req.Type); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// ListMessages handles GET /messages.
func (h *Handler) ListMessages(c *gin.Context) {
	requester := c.GetHeader(userHeader)
	messages, err := h.Chat.List(c.Request.Context(), requester, c.Query("limit"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// UpdateMessage handles PUT /messages/:id.
func (h *Handler) UpdateMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	requester := c.GetHeader(userHeader)
	err := h.Chat.Update(c.Request.Context(), c.Param("id"), requester, req.To, req.Text, req.Type)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteMessage handles DELETE /messages/:id.
func (h *Handler) DeleteMessage(c *gin.Context) {
	requester := c.GetHeader(userHeader)
	if err := h.Chat.Delete(c.Request.Context(), c.Param("id"), requester); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"batepapo/backend/internal/apperrors"
	"batepapo/backend/internal/models"
)

// userHeader carries the caller's participant name. There is no token:
// name-based ownership is the whole authentication story here.
const userHeader = "user"

// PresenceService is the registry surface the handlers call.
type PresenceService interface {
	Join(ctx context.Context, name string) error
	List(ctx context.Context) ([]models.Participant, error)
	Heartbeat(ctx context.Context, name string) error
}

// ChatService is the message store surface the handlers call.
type ChatService interface {
	Post(ctx context.Context, from, to, text, mtype string) error
	List(ctx context.Context, requester, rawLimit string) ([]models.Message, error)
	Update(ctx context.Context, id, requester, to, text, mtype string) error
	Delete(ctx context.Context, id, requester string) error
}

// Handler holds the services behind the REST surface.
type Handler struct {
	Presence PresenceService
	Chat     ChatService

	log *slog.Logger
}

func NewHandler(p PresenceService, c ChatService, log *slog.Logger) *Handler {
	return &Handler{Presence: p, Chat: c, log: log}
}

// fail maps a service error onto the response. Forbidden answers 401,
// which the existing clients expect.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalid), errors.Is(err, apperrors.ErrUnknownSender):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrConflict):
		c.Status(http.StatusConflict)
	case errors.Is(err, apperrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrForbidden):
		c.Status(http.StatusUnauthorized)
	default:
		h.log.Error("request failed", "path", c.FullPath(), "error", err)
		c.String(http.StatusInternalServerError, err.Error())
	}
}

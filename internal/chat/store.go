// Package chat owns the message store: posting, audience-scoped
// listing, and ownership-gated edits and deletes.
package chat

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"batepapo/backend/internal/apperrors"
	"batepapo/backend/internal/config"
	"batepapo/backend/internal/models"
	"batepapo/backend/internal/sanitize"
	"batepapo/backend/internal/storage"
)

// Roster answers whether a name is currently registered. Satisfied by
// the presence registry.
type Roster interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// Store is the message store. Association with participants is by name
// only; a message never holds a live reference to its author.
type Store struct {
	store  storage.Storage
	roster Roster
	log    *slog.Logger
	// Now is the clock; swapped out in tests.
	Now func() time.Time
}

func NewStore(store storage.Storage, roster Roster, log *slog.Logger) *Store {
	return &Store{
		store:  store,
		roster: roster,
		log:    log,
		Now:    time.Now,
	}
}

// Post stores a message from a registered participant. to, text and
// type are stripped of markup and text is trimmed before any of them
// are checked; an unregistered sender yields apperrors.ErrUnknownSender.
func (s *Store) Post(ctx context.Context, from, to, text, mtype string) error {
	to = sanitize.Strip(to)
	text = sanitize.Clean(text)
	mtype = sanitize.Strip(mtype)

	if to == "" || text == "" {
		return apperrors.ErrInvalid
	}
	if mtype != models.TypeMessage && mtype != models.TypePrivate {
		return apperrors.ErrInvalid
	}

	known, err := s.roster.Exists(ctx, from)
	if err != nil {
		return err
	}
	if !known {
		s.log.Warn("post from unregistered sender", "from", from)
		return apperrors.ErrUnknownSender
	}

	return s.store.InsertMessage(ctx, models.Message{
		ID:   uuid.NewString(),
		From: from,
		To:   to,
		Text: text,
		Type: mtype,
		Time: s.Now().Format(config.TimeLayout),
	})
}

// PostNotice records a system status message addressed to the whole
// room. It deliberately skips the sender gate: the departure notice is
// written after its participant has already been removed.
func (s *Store) PostNotice(ctx context.Context, from, text string) error {
	return s.store.InsertMessage(ctx, models.Message{
		ID:   uuid.NewString(),
		From: from,
		To:   models.Broadcast,
		Text: text,
		Type: models.TypeStatus,
		Time: s.Now().Format(config.TimeLayout),
	})
}

// List returns the messages visible to the requester, oldest first.
// rawLimit is the unparsed query value: empty means no limit, anything
// else must parse to a positive integer.
//
// The limit is applied to the raw fetch and visibility is filtered
// afterwards, so a caller can receive fewer than limit visible messages
// even when more exist. Compatibility behavior, kept on purpose.
func (s *Store) List(ctx context.Context, requester, rawLimit string) ([]models.Message, error) {
	var limit int64
	if rawLimit != "" {
		n, err := strconv.Atoi(rawLimit)
		if err != nil || n <= 0 {
			return nil, apperrors.ErrInvalid
		}
		limit = int64(n)
	}

	messages, err := s.store.ListMessages(ctx, limit)
	if err != nil {
		return nil, err
	}
	return lo.Filter(messages, func(m models.Message, _ int) bool {
		return m.VisibleTo(requester)
	}), nil
}

// Update edits a message owned by the requester. The whole body is
// validated like Post, but only text is persisted: changes to to and
// type are validated and then dropped, the contract clients already
// depend on.
func (s *Store) Update(ctx context.Context, id, requester, to, text, mtype string) error {
	to = sanitize.Strip(to)
	text = sanitize.Clean(text)
	mtype = sanitize.Strip(mtype)

	if to == "" || text == "" {
		return apperrors.ErrInvalid
	}
	if mtype != models.TypeMessage && mtype != models.TypePrivate {
		return apperrors.ErrInvalid
	}

	matched, err := s.store.UpdateMessageText(ctx, id, requester, text)
	if err != nil {
		return err
	}
	if !matched {
		return s.mutationFailure(ctx, id)
	}
	return nil
}

// Delete removes a message owned by the requester.
func (s *Store) Delete(ctx context.Context, id, requester string) error {
	deleted, err := s.store.DeleteMessage(ctx, id, requester)
	if err != nil {
		return err
	}
	if !deleted {
		return s.mutationFailure(ctx, id)
	}
	return nil
}

// mutationFailure tells a missed conditional write apart: the message
// either never existed (NotFound) or belongs to someone else
// (Forbidden).
func (s *Store) mutationFailure(ctx context.Context, id string) error {
	existing, err := s.store.FindMessageByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrForbidden
}

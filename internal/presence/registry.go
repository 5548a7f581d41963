// Package presence owns participant identity and liveness: joining the
// room, heartbeat refresh, and the stale-participant queries the
// sweeper runs on.
package presence

import (
	"context"
	"log/slog"
	"time"

	"batepapo/backend/internal/apperrors"
	"batepapo/backend/internal/config"
	"batepapo/backend/internal/models"
	"batepapo/backend/internal/sanitize"
	"batepapo/backend/internal/storage"
)

// Notifier posts system status notices on behalf of a participant.
// Satisfied by the chat store.
type Notifier interface {
	PostNotice(ctx context.Context, from, text string) error
}

// Registry is the participant registry. All state lives in the
// participants collection; the registry itself holds no caches.
type Registry struct {
	store    storage.Storage
	notifier Notifier
	log      *slog.Logger
	// Now is the clock; swapped out in tests.
	Now func() time.Time
}

func NewRegistry(store storage.Storage, log *slog.Logger) *Registry {
	return &Registry{
		store: store,
		log:   log,
		Now:   time.Now,
	}
}

// SetNotifier wires the message store in after construction; the chat
// store needs the registry first, so the dependency closes here.
func (r *Registry) SetNotifier(n Notifier) {
	r.notifier = n
}

// Join registers a new participant and announces it to the room.
// Returns apperrors.ErrInvalid when the name is empty after
// sanitization and apperrors.ErrConflict when the name is taken.
//
// The join notice is written after the participant document; if the
// notice insert fails the join is still reported successful and the
// failure is only logged. The room then has a participant without an
// entry notice, which is the documented inconsistency of this flow.
func (r *Registry) Join(ctx context.Context, name string) error {
	name = sanitize.Clean(name)
	if name == "" {
		return apperrors.ErrInvalid
	}

	existing, err := r.store.FindParticipant(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrConflict
	}

	// The unique index turns the read-then-insert race into ErrConflict
	// for the loser.
	err = r.store.InsertParticipant(ctx, models.Participant{
		Name:       name,
		LastStatus: r.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	if r.notifier != nil {
		if err := r.notifier.PostNotice(ctx, name, config.JoinNotice); err != nil {
			r.log.Error("join notice not recorded", "participant", name, "error", err)
		}
	}
	return nil
}

// List returns every registered participant in store order.
func (r *Registry) List(ctx context.Context) ([]models.Participant, error) {
	return r.store.ListParticipants(ctx)
}

// Heartbeat refreshes the participant's lastStatus in a single
// find-and-update. Returns apperrors.ErrInvalid on an empty name and
// apperrors.ErrNotFound when the update matches nothing.
func (r *Registry) Heartbeat(ctx context.Context, name string) error {
	if name == "" {
		return apperrors.ErrInvalid
	}
	matched, err := r.store.TouchParticipant(ctx, name, r.Now().UnixMilli())
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrNotFound
	}
	return nil
}

// Exists reports whether a participant with the given name is
// registered. A plain lookup, not a liveness check.
func (r *Registry) Exists(ctx context.Context, name string) (bool, error) {
	p, err := r.store.FindParticipant(ctx, name)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// Stale returns the participants whose last heartbeat is older than the
// threshold at the time of the call.
func (r *Registry) Stale(ctx context.Context, threshold time.Duration) ([]models.Participant, error) {
	cutoff := r.Now().Add(-threshold).UnixMilli()
	return r.store.ListInactiveParticipants(ctx, cutoff)
}

// Remove deletes the participant document. Messages from or to the
// participant are left untouched; they outlive its presence.
func (r *Registry) Remove(ctx context.Context, name string) error {
	return r.store.DeleteParticipant(ctx, name)
}

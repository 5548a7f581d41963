// Package sweeper evicts participants that stopped heartbeating and
// announces their departure to the room.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"batepapo/backend/internal/models"
)

// Presence is the slice of the participant registry the sweeper uses.
type Presence interface {
	Stale(ctx context.Context, threshold time.Duration) ([]models.Participant, error)
	Remove(ctx context.Context, name string) error
}

// Notifier posts the departure notice.
type Notifier interface {
	PostNotice(ctx context.Context, from, text string) error
}

// Sweeper runs the periodic inactivity sweep. Each tick is independent:
// a failed query or a failed eviction is logged and never stops the
// next tick, and one participant's failure never blocks the others.
type Sweeper struct {
	presence    Presence
	notifier    Notifier
	interval    time.Duration
	threshold   time.Duration
	leaveNotice string
	log         *slog.Logger
}

func New(p Presence, n Notifier, interval, threshold time.Duration, leaveNotice string, log *slog.Logger) *Sweeper {
	return &Sweeper{
		presence:    p,
		notifier:    n,
		interval:    interval,
		threshold:   threshold,
		leaveNotice: leaveNotice,
		log:         log,
	}
}

// Run blocks sweeping on the configured interval until ctx is
// cancelled. Started as a goroutine from main.
func (s *Sweeper) Run(ctx context.Context) {
	s.log.Info("inactivity sweeper started",
		"interval", s.interval, "threshold", s.threshold)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("inactivity sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep performs a single eviction pass: every participant whose last
// heartbeat is older than the threshold is removed and a departure
// notice is written in its name.
func (s *Sweeper) Sweep(ctx context.Context) {
	stale, err := s.presence.Stale(ctx, s.threshold)
	if err != nil {
		s.log.Error("stale participant query failed", "error", err)
		return
	}

	for _, p := range stale {
		if err := s.presence.Remove(ctx, p.Name); err != nil {
			s.log.Error("eviction failed", "participant", p.Name, "error", err)
			continue
		}
		if err := s.notifier.PostNotice(ctx, p.Name, s.leaveNotice); err != nil {
			// The participant is already gone; the room just never
			// hears about it.
			s.log.Error("departure notice not recorded", "participant", p.Name, "error", err)
			continue
		}
		s.log.Info("participant evicted", "participant", p.Name)
	}
}

// Package storagetest provides an in-memory storage.Storage for tests.
package storagetest

import (
	"context"
	"sync"

	"batepapo/backend/internal/apperrors"
	"batepapo/backend/internal/models"
	"batepapo/backend/internal/storage"
)

var _ storage.Storage = (*Fake)(nil)

// Fake mirrors the Mongo service's observable semantics: unique
// participant names, insertion-order message listing, lastStatus cutoff
// filtering, and ownership-conditional message writes.
type Fake struct {
	mu           sync.Mutex
	participants []models.Participant
	messages     []models.Message
}

func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) InsertParticipant(_ context.Context, p models.Participant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.participants {
		if existing.Name == p.Name {
			return apperrors.ErrConflict
		}
	}
	f.participants = append(f.participants, p)
	return nil
}

func (f *Fake) FindParticipant(_ context.Context, name string) (*models.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.participants {
		if p.Name == name {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListParticipants(_ context.Context) ([]models.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Participant, len(f.participants))
	copy(out, f.participants)
	return out, nil
}

func (f *Fake) TouchParticipant(_ context.Context, name string, ts int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.participants {
		if f.participants[i].Name == name {
			f.participants[i].LastStatus = ts
			return true, nil
		}
	}
	return false, nil
}

func (f *Fake) ListInactiveParticipants(_ context.Context, before int64) ([]models.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stale []models.Participant
	for _, p := range f.participants {
		if p.LastStatus < before {
			stale = append(stale, p)
		}
	}
	return stale, nil
}

func (f *Fake) DeleteParticipant(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.participants {
		if p.Name == name {
			f.participants = append(f.participants[:i], f.participants[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *Fake) InsertMessage(_ context.Context, m models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, m)
	return nil
}

func (f *Fake) FindMessageByID(_ context.Context, id string) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.messages {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListMessages(_ context.Context, limit int64) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := f.messages
	if limit > 0 && int64(len(msgs)) > limit {
		msgs = msgs[int64(len(msgs))-limit:]
	}
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (f *Fake) UpdateMessageText(_ context.Context, id, from, text string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.messages {
		if f.messages[i].ID == id && f.messages[i].From == from {
			f.messages[i].Text = text
			return true, nil
		}
	}
	return false, nil
}

func (f *Fake) DeleteMessage(_ context.Context, id, from string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.messages {
		if f.messages[i].ID == id && f.messages[i].From == from {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"batepapo/backend/internal/models"
)

// MockPresence is a testify/mock PresenceService.
type MockPresence struct {
	mock.Mock
}

func (m *MockPresence) Join(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockPresence) List(ctx context.Context) ([]models.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Participant), args.Error(1)
}

func (m *MockPresence) Heartbeat(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockChat is a testify/mock ChatService.
type MockChat struct {
	mock.Mock
}

func (m *MockChat) Post(ctx context.Context, from, to, text, mtype string) error {
	args := m.Called(ctx, from, to, text, mtype)
	return args.Error(0)
}

func (m *MockChat) List(ctx context.Context, requester, rawLimit string) ([]models.Message, error) {
	args := m.Called(ctx, requester, rawLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockChat) Update(ctx context.Context, id, requester, to, text, mtype string) error {
	args := m.Called(ctx, id, requester, to, text, mtype)
	return args.Error(0)
}

func (m *MockChat) Delete(ctx context.Context, id, requester string) error {
	args := m.Called(ctx, id, requester)
	return args.Error(0)
}

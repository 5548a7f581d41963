package presence_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"batepapo/backend/internal/models"
)

// MockStorage is a testify/mock implementation of storage.Storage for
// flexible expectation setting in registry tests.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) InsertParticipant(ctx context.Context, p models.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStorage) FindParticipant(ctx context.Context, name string) (*models.Participant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Participant), args.Error(1)
}

func (m *MockStorage) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Participant), args.Error(1)
}

func (m *MockStorage) TouchParticipant(ctx context.Context, name string, ts int64) (bool, error) {
	args := m.Called(ctx, name, ts)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) ListInactiveParticipants(ctx context.Context, before int64) ([]models.Participant, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Participant), args.Error(1)
}

func (m *MockStorage) DeleteParticipant(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockStorage) InsertMessage(ctx context.Context, msg models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockStorage) FindMessageByID(ctx context.Context, id string) (*models.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockStorage) ListMessages(ctx context.Context, limit int64) ([]models.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStorage) UpdateMessageText(ctx context.Context, id, from, text string) (bool, error) {
	args := m.Called(ctx, id, from, text)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) DeleteMessage(ctx context.Context, id, from string) (bool, error) {
	args := m.Called(ctx, id, from)
	return args.Bool(0), args.Error(1)
}

// MockNotifier stands in for the chat store's notice path.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PostNotice(ctx context.Context, from, text string) error {
	args := m.Called(ctx, from, text)
	return args.Error(0)
}

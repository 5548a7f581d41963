package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"batepapo/backend/internal/apperrors"
	"batepapo/backend/internal/models"
)

const (
	participantsCollection = "participants"
	messagesCollection     = "messages"
)

// Storage is the thin collection interface the services depend on. The
// participants and messages collections are the only shared mutable
// state in the process; everything reads and writes through here.
type Storage interface {
	InsertParticipant(ctx context.Context, p models.Participant) error
	FindParticipant(ctx context.Context, name string) (*models.Participant, error)
	ListParticipants(ctx context.Context) ([]models.Participant, error)
	TouchParticipant(ctx context.Context, name string, ts int64) (bool, error)
	ListInactiveParticipants(ctx context.Context, before int64) ([]models.Participant, error)
	DeleteParticipant(ctx context.Context, name string) error

	InsertMessage(ctx context.Context, m models.Message) error
	FindMessageByID(ctx context.Context, id string) (*models.Message, error)
	ListMessages(ctx context.Context, limit int64) ([]models.Message, error)
	UpdateMessageText(ctx context.Context, id, from, text string) (bool, error)
	DeleteMessage(ctx context.Context, id, from string) (bool, error)
}

var _ Storage = (*Service)(nil)

// Service implements Storage on top of a Mongo database handle. The
// handle is constructed once in main and injected; there is no
// package-level connection state.
type Service struct {
	participants *mongo.Collection
	messages     *mongo.Collection
}

// NewService Constructor
func NewService(db *mongo.Database) *Service {
	return &Service{
		participants: db.Collection(participantsCollection),
		messages:     db.Collection(messagesCollection),
	}
}

// EnsureIndexes creates the unique index backing participant-name
// uniqueness. Called once at startup, before the server accepts traffic.
func (s *Service) EnsureIndexes(ctx context.Context) error {
	_, err := s.participants.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create participants index: %w", err)
	}
	return nil
}

// InsertParticipant writes a new participant document. A duplicate name
// rejected by the unique index surfaces as apperrors.ErrConflict, so the
// registry's read-then-insert race still ends with a single document.
func (s *Service) InsertParticipant(ctx context.Context, p models.Participant) error {
	_, err := s.participants.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrConflict
	}
	return err
}

// FindParticipant returns the participant with the given name, or nil
// without an error when no such participant exists.
func (s *Service) FindParticipant(ctx context.Context, name string) (*models.Participant, error) {
	var p models.Participant
	err := s.participants.FindOne(ctx, bson.M{"name": name}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	cur, err := s.participants.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	participants := []models.Participant{}
	if err := cur.All(ctx, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

// TouchParticipant sets lastStatus in a single find-and-update and
// reports whether a document matched.
func (s *Service) TouchParticipant(ctx context.Context, name string, ts int64) (bool, error) {
	err := s.participants.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{"lastStatus": ts}},
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListInactiveParticipants returns every participant whose lastStatus
// is strictly older than the cutoff.
func (s *Service) ListInactiveParticipants(ctx context.Context, before int64) ([]models.Participant, error) {
	cur, err := s.participants.Find(ctx, bson.M{"lastStatus": bson.M{"$lt": before}})
	if err != nil {
		return nil, err
	}
	participants := []models.Participant{}
	if err := cur.All(ctx, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (s *Service) DeleteParticipant(ctx context.Context, name string) error {
	_, err := s.participants.DeleteOne(ctx, bson.M{"name": name})
	return err
}

func (s *Service) InsertMessage(ctx context.Context, m models.Message) error {
	_, err := s.messages.InsertOne(ctx, m)
	return err
}

// FindMessageByID returns the message with the given public id, or nil
// without an error when it does not exist.
func (s *Service) FindMessageByID(ctx context.Context, id string) (*models.Message, error) {
	var m models.Message
	err := s.messages.FindOne(ctx, bson.M{"id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMessages returns messages in insertion order. A positive limit
// selects the limit most-recently-inserted documents (fetched newest
// first on _id, then reversed back); limit <= 0 returns everything.
func (s *Service) ListMessages(ctx context.Context, limit int64) ([]models.Message, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(limit)
	}
	cur, err := s.messages.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	messages := []models.Message{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	if limit > 0 {
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
	}
	return messages, nil
}

// UpdateMessageText replaces the text of a message, but only when the
// stored from matches the requester. Folding the ownership check into
// the write filter keeps check and mutation a single atomic operation;
// the boolean reports whether anything matched.
func (s *Service) UpdateMessageText(ctx context.Context, id, from, text string) (bool, error) {
	res, err := s.messages.UpdateOne(ctx,
		bson.M{"id": id, "from": from},
		bson.M{"$set": bson.M{"text": text}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// DeleteMessage removes a message, conditional on ownership like
// UpdateMessageText.
func (s *Service) DeleteMessage(ctx context.Context, id, from string) (bool, error) {
	res, err := s.messages.DeleteOne(ctx, bson.M{"id": id, "from": from})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

package message

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("message not found")

// Repository is the message document access surface.
type Repository interface {
	FindAll(ctx context.Context) ([]Message, error)
	FindByID(ctx context.Context, id string) (*Message, error)
	Insert(ctx context.Context, doc *Message) error
	UpdateName(ctx context.Context, id, name string) (*Message, error)
	Delete(ctx context.Context, id string) error
}

// MessageService provides full CRUD over messages. No operation checks that
// the caller owns the message it touches.
type MessageService struct {
	repo Repository
}

func NewMessageService(repo Repository) *MessageService {
	return &MessageService{repo: repo}
}

func (s *MessageService) List(ctx context.Context) ([]Message, error) {
	return s.repo.FindAll(ctx)
}

func (s *MessageService) GetByID(ctx context.Context, id string) (*Message, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Add persists a new message owned by the authenticated caller.
func (s *MessageService) Add(ctx context.Context, userID, name string) (*Message, error) {
	doc := &Message{Name: name, User: userID}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Edit updates the name only. A nil result with nil error means the id
// matched nothing; callers surface that as a null body, same as a success.
func (s *MessageService) Edit(ctx context.Context, id, name string) (*Message, error) {
	return s.repo.UpdateName(ctx, id, name)
}

// Delete removes the message unconditionally and reports success whether or
// not a record existed.
func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

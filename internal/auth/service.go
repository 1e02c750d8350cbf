package auth

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinefeed/cinefeed/internal/message"
)

var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("email or password don't match")
)

// Repository is the account document access surface.
type Repository interface {
	Insert(ctx context.Context, a *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
}

// MessageLister populates the caller's messages on profile fetch.
type MessageLister interface {
	FindByUser(ctx context.Context, userID string) ([]message.Message, error)
}

// AuthService is the document-store account variant: same contract as the
// relational path, but backed by the `users` collection and hashing inline
// with bcrypt's synchronous primitives.
type AuthService struct {
	repo     Repository
	messages MessageLister
}

func NewAuthService(repo Repository, messages MessageLister) *AuthService {
	return &AuthService{repo: repo, messages: messages}
}

// Signup hashes the password and persists a new account. A duplicate email
// yields ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}
	a := &Account{
		Username: strings.TrimSpace(username),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: string(hash),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return a, nil
}

// Signin verifies the password against the stored hash. Unlike the
// relational path, an unknown email and a wrong password are reported as
// distinct failures.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*Account, error) {
	a, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return a, nil
}

// Profile is an account with the owner's messages populated.
type Profile struct {
	Account
	Messages []message.Message `json:"messages"`
}

// GetProfile loads the account (password excluded by encoding) and its
// messages.
func (s *AuthService) GetProfile(ctx context.Context, id string) (*Profile, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	msgs, err := s.messages.FindByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Profile{Account: *a, Messages: msgs}, nil
}

package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jmoiron/sqlx"

	"github.com/cinefeed/cinefeed/internal/user/entity"
	userrepo "github.com/cinefeed/cinefeed/internal/user/repo"
)

// PasswordHasher defines the minimal hashing interface (abstract so the
// algorithm can be swapped later).
type PasswordHasher interface {
	Hash(pw string) (string, error)
	Verify(hash, pw string) bool
}

// BcryptHasher implementation.
type BcryptHasher struct{ Cost int }

func (b BcryptHasher) Hash(pw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b BcryptHasher) Verify(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Repository is the data access surface the service needs.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateWithAddress(ctx context.Context, u *entity.User, a *entity.Address) error
	UpdatePassword(ctx context.Context, email, hash string) error
}

var (
	ErrUserExists        = errors.New("user already has an account")
	ErrBadCredentials    = errors.New("incorrect email/password")
	ErrSamePassword      = errors.New("new password equals old password")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// UserService orchestrates account registration and authentication against
// the relational store.
type UserService struct {
	repo   Repository
	hasher PasswordHasher
}

func NewUserService(db *sqlx.DB, r Repository, hasher PasswordHasher) *UserService {
	if r == nil {
		r = userrepo.NewUserRepo(db)
	}
	if hasher == nil {
		hasher = BcryptHasher{Cost: 10}
	}
	return &UserService{repo: r, hasher: hasher}
}

// RegisterInput carries the registration fields; country is required, city
// and street are optional.
type RegisterInput struct {
	Email        string
	Username     string
	Password     string
	Country      string
	City         *string
	Street       *string
	CreationDate string
}

// Register persists a new account and its address as one atomic unit.
// An email already present yields ErrUserExists and no address row.
func (s *UserService) Register(ctx context.Context, in RegisterInput) error {
	_, err := s.repo.GetByEmail(ctx, strings.ToLower(in.Email))
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return err
	}
	u := &entity.User{
		Email:        strings.ToLower(in.Email),
		Username:     in.Username,
		Password:     hash,
		CreationDate: in.CreationDate,
	}
	a := &entity.Address{
		Email:   u.Email,
		Country: in.Country,
		Street:  in.Street,
		City:    in.City,
	}
	return s.repo.CreateWithAddress(ctx, u, a)
}

// Login verifies the password against the stored hash. Unknown email and
// wrong password collapse to the same ErrBadCredentials so accounts cannot
// be enumerated.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(u.Password, password) {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// EditPassword verifies the old password before storing the new hash.
func (s *UserService) EditPassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if oldPassword == newPassword {
		return ErrSamePassword
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrIncorrectPassword
		}
		return err
	}
	if !s.hasher.Verify(u.Password, oldPassword) {
		return ErrIncorrectPassword
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, email, hash)
}

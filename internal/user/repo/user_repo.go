package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/cinefeed/cinefeed/internal/user/entity"
)

// UserRepo provides data access for the users and addresses tables using sqlx.
type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

// GetByEmail returns the account matched by email or sql.ErrNoRows.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const q = `SELECT id, email, username, password, creation_date::text AS creation_date
		FROM users WHERE email=$1`
	var u entity.User
	if err := r.db.GetContext(ctx, &u, q, email); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateWithAddress inserts the user and its address as one transaction.
// Both rows are committed or neither is.
func (r *UserRepo) CreateWithAddress(ctx context.Context, u *entity.User, a *entity.Address) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertUser = `INSERT INTO users (email, username, password, creation_date)
		VALUES ($1, $2, $3, $4) RETURNING id`
	if err := tx.GetContext(ctx, &u.ID, insertUser, u.Email, u.Username, u.Password, u.CreationDate); err != nil {
		return err
	}

	const insertAddress = `INSERT INTO addresses (email, country, street, city)
		VALUES ($1, $2, $3, $4) RETURNING id`
	if err := tx.GetContext(ctx, &a.ID, insertAddress, u.Email, a.Country, a.Street, a.City); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdatePassword replaces the stored hash for the given email.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, hash string) error {
	const q = `UPDATE users SET password=$1 WHERE email=$2`
	_, err := r.db.ExecContext(ctx, q, hash, email)
	return err
}

package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinefeed/cinefeed/internal/auth"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

// AccountRepo stores document-path accounts in the `users` collection.
type AccountRepo struct {
	coll *mongo.Collection
}

func NewAccountRepo(db *mongo.Database) *AccountRepo {
	return &AccountRepo{coll: db.Collection("users")}
}

// EnsureIndexes creates the unique email index (idempotent).
func (r *AccountRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Insert persists a new account.
func (r *AccountRepo) Insert(ctx context.Context, a *auth.Account) error {
	if a.ID == "" {
		a.ID = utilities.NewKSUID()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, a)
	return err
}

// FindByEmail returns the account or mongo.ErrNoDocuments.
func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	var a auth.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByID returns the account or mongo.ErrNoDocuments.
func (r *AccountRepo) FindByID(ctx context.Context, id string) (*auth.Account, error) {
	var a auth.Account
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

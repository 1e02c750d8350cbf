package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinefeed/cinefeed/internal/message"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

// MessageRepo stores message documents in the `messages` collection.
type MessageRepo struct {
	coll *mongo.Collection
}

func NewMessageRepo(db *mongo.Database) *MessageRepo {
	return &MessageRepo{coll: db.Collection("messages")}
}

// FindAll returns every message, store order, no pagination.
func (r *MessageRepo) FindAll(ctx context.Context) ([]message.Message, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []message.Message{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID returns the message or mongo.ErrNoDocuments.
func (r *MessageRepo) FindByID(ctx context.Context, id string) (*message.Message, error) {
	var doc message.Message
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByUser returns all messages owned by the given account id.
func (r *MessageRepo) FindByUser(ctx context.Context, userID string) ([]message.Message, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []message.Message{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Insert persists a new message with timestamps set.
func (r *MessageRepo) Insert(ctx context.Context, doc *message.Message) error {
	if doc.ID == "" {
		doc.ID = utilities.NewKSUID()
	}
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

// UpdateName sets the name field only and returns the updated document, or
// (nil, nil) when no document matched the id.
func (r *MessageRepo) UpdateName(ctx context.Context, id, name string) (*message.Message, error) {
	update := bson.M{"$set": bson.M{"name": name, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc message.Message
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// Delete removes the message if it exists. Deleting an absent id is not an
// error.
func (r *MessageRepo) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

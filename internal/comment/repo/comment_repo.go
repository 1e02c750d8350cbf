package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinefeed/cinefeed/internal/comment"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

// CommentRepo stores comment documents in the `comments` collection.
type CommentRepo struct {
	coll *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) *CommentRepo {
	return &CommentRepo{coll: db.Collection("comments")}
}

// Insert persists a new comment. The rating bound lives here, at the
// persisted-schema level.
func (r *CommentRepo) Insert(ctx context.Context, doc *comment.Comment) error {
	if doc.Rating < 0 || doc.Rating > 5 {
		return fmt.Errorf("rating %v out of bounds", doc.Rating)
	}
	if doc.ID == "" {
		doc.ID = utilities.NewKSUID()
	}
	doc.CreatedAt = time.Now().UTC()
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

// FindByMovie returns the movie's comments in store order.
func (r *CommentRepo) FindByMovie(ctx context.Context, movieID int64) ([]comment.Comment, error) {
	cur, err := r.coll.Find(ctx, bson.M{"movie_id": movieID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []comment.Comment{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinefeed/cinefeed/internal/rating"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

// RatingRepo stores rating documents in the `ratings` collection.
type RatingRepo struct {
	coll *mongo.Collection
}

func NewRatingRepo(db *mongo.Database) *RatingRepo {
	return &RatingRepo{coll: db.Collection("ratings")}
}

// Insert persists a new rating document. The 0..5 bound is enforced here,
// at the persisted-schema level, not in the handler.
func (r *RatingRepo) Insert(ctx context.Context, doc *rating.Rating) error {
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

// FindByMovie returns all rating documents referencing the movie.
func (r *RatingRepo) FindByMovie(ctx context.Context, movieID int64) ([]rating.Rating, error) {
	cur, err := r.coll.Find(ctx, bson.M{"movie_id": movieID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []rating.Rating
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

package rating

import "time"

// Rating is a single immutable submission. There is no uniqueness per
// user+movie; every submission is its own document.
type Rating struct {
	ID        string    `bson:"_id" json:"id"`
	MovieID   int64     `bson:"movie_id" json:"movie_id"`
	Email     string    `bson:"email" json:"email"`
	Rating    float64   `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

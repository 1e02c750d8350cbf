package comment

import "time"

// Comment is immutable after creation. Vote counters default to zero.
type Comment struct {
	ID        string    `bson:"_id" json:"id"`
	MovieID   int64     `bson:"movie_id" json:"movie_id"`
	Username  string    `bson:"username" json:"username"`
	Comment   string    `bson:"comment" json:"comment"`
	Title     string    `bson:"title" json:"title"`
	Rating    float64   `bson:"rating" json:"rating"`
	Upvotes   int       `bson:"upvotes" json:"upvotes"`
	Downvotes int       `bson:"downvotes" json:"downvotes"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

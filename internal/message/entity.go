package message

import "time"

// Message is a short user-to-user note. User holds the owning account id;
// ownership is recorded but not enforced on edit or delete.
type Message struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	User      string    `bson:"user" json:"user"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

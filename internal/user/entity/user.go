package entity

// User represents an account row in the `users` table. The password column
// holds a bcrypt hash and is never returned to clients.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	Username     string `db:"username" json:"username"`
	Password     string `db:"password" json:"-"`
	CreationDate string `db:"creation_date" json:"creation_date"`
}

// Address is created once at registration, in the same transaction as its
// owning user, and is not independently mutable.
type Address struct {
	ID      int64   `db:"id" json:"id"`
	Email   string  `db:"email" json:"email"`
	Country string  `db:"country" json:"country"`
	Street  *string `db:"street" json:"street"`
	City    *string `db:"city" json:"city"`
}

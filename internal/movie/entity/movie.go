package entity

// Movie is a catalog row. The catalog is pre-seeded; this API never creates
// or deletes movies. The rating column is the aggregate written back by the
// rating module.
type Movie struct {
	MovieID     int64   `db:"movie_id" json:"movie_id"`
	Title       string  `db:"title" json:"title"`
	Type        string  `db:"type" json:"type"`
	ReleaseDate *string `db:"release_date" json:"release_date"`
	Rating      float64 `db:"rating" json:"rating"`
}

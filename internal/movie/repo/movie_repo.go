package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/cinefeed/cinefeed/internal/movie/entity"
)

// MovieRepo provides read access to the movie catalog plus the aggregate
// rating write-back used by the rating module.
type MovieRepo struct {
	db *sqlx.DB
}

func NewMovieRepo(db *sqlx.DB) *MovieRepo { return &MovieRepo{db: db} }

// ListAll returns the full catalog ordered by type so callers can group it.
func (r *MovieRepo) ListAll(ctx context.Context) ([]entity.Movie, error) {
	const q = `SELECT movie_id, title, type, release_date::text AS release_date, rating FROM movies ORDER BY type, movie_id`
	var movies []entity.Movie
	if err := r.db.SelectContext(ctx, &movies, q); err != nil {
		return nil, err
	}
	return movies, nil
}

// ListByCategory returns movies of one type, newest release first.
func (r *MovieRepo) ListByCategory(ctx context.Context, category string) ([]entity.Movie, error) {
	const q = `SELECT movie_id, title, type, release_date::text AS release_date, rating FROM movies
		WHERE type=$1 ORDER BY release_date DESC`
	var movies []entity.Movie
	if err := r.db.SelectContext(ctx, &movies, q); err != nil {
		return nil, err
	}
	return movies, nil
}

// ListTopRated returns the ten highest-rated movies.
func (r *MovieRepo) ListTopRated(ctx context.Context) ([]entity.Movie, error) {
	const q = `SELECT movie_id, title, type, release_date::text AS release_date, rating FROM movies
		ORDER BY rating DESC LIMIT 10`
	var movies []entity.Movie
	if err := r.db.SelectContext(ctx, &movies, q); err != nil {
		return nil, err
	}
	return movies, nil
}

// ListSeen returns the movies joined against the caller's seen relation.
func (r *MovieRepo) ListSeen(ctx context.Context, email string) ([]entity.Movie, error) {
	const q = `SELECT m.movie_id, m.title, m.type, m.release_date::text AS release_date, m.rating
		FROM seen_movies s JOIN movies m ON s.movie_id = m.movie_id
		WHERE s.email=$1`
	var movies []entity.Movie
	if err := r.db.SelectContext(ctx, &movies, q); err != nil {
		return nil, err
	}
	return movies, nil
}

// UpdateRating writes the recomputed aggregate to the movie row.
func (r *MovieRepo) UpdateRating(ctx context.Context, movieID int64, rating float64) error {
	const q = `UPDATE movies SET rating=$1 WHERE movie_id=$2`
	_, err := r.db.ExecContext(ctx, q, rating, movieID)
	return err
}

package movie

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/cinefeed/cinefeed/internal/movie/entity"
	movierepo "github.com/cinefeed/cinefeed/internal/movie/repo"
)

// Repository is the catalog access surface the service needs.
type Repository interface {
	ListAll(ctx context.Context) ([]entity.Movie, error)
	ListByCategory(ctx context.Context, category string) ([]entity.Movie, error)
	ListTopRated(ctx context.Context) ([]entity.Movie, error)
	ListSeen(ctx context.Context, email string) ([]entity.Movie, error)
	UpdateRating(ctx context.Context, movieID int64, rating float64) error
}

// MovieService serves the read-only catalog views.
type MovieService struct {
	repo Repository
}

func NewMovieService(db *sqlx.DB, r Repository) *MovieService {
	if r == nil {
		r = movierepo.NewMovieRepo(db)
	}
	return &MovieService{repo: r}
}

// ListGrouped returns the whole catalog grouped by type.
func (s *MovieService) ListGrouped(ctx context.Context) (map[string][]entity.Movie, error) {
	movies, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]entity.Movie)
	for _, m := range movies {
		grouped[m.Type] = append(grouped[m.Type], m)
	}
	return grouped, nil
}

// ListByCategory returns one type, release date descending.
func (s *MovieService) ListByCategory(ctx context.Context, category string) ([]entity.Movie, error) {
	return s.repo.ListByCategory(ctx, category)
}

// ListTopRated returns the top 10 by aggregate rating.
func (s *MovieService) ListTopRated(ctx context.Context) ([]entity.Movie, error) {
	return s.repo.ListTopRated(ctx)
}

// ListSeen returns the caller's seen movies.
func (s *MovieService) ListSeen(ctx context.Context, email string) ([]entity.Movie, error) {
	return s.repo.ListSeen(ctx, email)
}

// UpdateRating exposes the aggregate write-back to the rating module.
func (s *MovieService) UpdateRating(ctx context.Context, movieID int64, rating float64) error {
	return s.repo.UpdateRating(ctx, movieID, rating)
}

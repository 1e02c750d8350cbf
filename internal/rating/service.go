package rating

import "context"

// Repository is the rating document access surface.
type Repository interface {
	Insert(ctx context.Context, doc *Rating) error
	FindByMovie(ctx context.Context, movieID int64) ([]Rating, error)
}

// MovieUpdater is the aggregate write-back into the relational catalog.
type MovieUpdater interface {
	UpdateRating(ctx context.Context, movieID int64, rating float64) error
}

// RatingService persists submissions and recomputes the movie aggregate.
type RatingService struct {
	repo   Repository
	movies MovieUpdater
}

func NewRatingService(repo Repository, movies MovieUpdater) *RatingService {
	return &RatingService{repo: repo, movies: movies}
}

// Add stores the rating, then recomputes the movie's aggregate as the sum of
// all rating values for that movie and writes it back. The aggregate is the
// sum, not the mean. The two writes span both stores and are not atomic; a
// failure after the insert leaves the aggregate stale until the next
// submission for the same movie.
func (s *RatingService) Add(ctx context.Context, email string, movieID int64, value float64) error {
	doc := &Rating{MovieID: movieID, Email: email, Rating: value}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return err
	}

	docs, err := s.repo.FindByMovie(ctx, movieID)
	if err != nil {
		return err
	}
	var total float64
	for _, d := range docs {
		total += d.Rating
	}
	return s.movies.UpdateRating(ctx, movieID, total)
}

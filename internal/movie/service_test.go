package movie

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cinefeed/cinefeed/internal/movie/entity"
)

type fakeRepo struct {
	movies []entity.Movie
	seen   map[string][]entity.Movie
}

func (f *fakeRepo) ListAll(_ context.Context) ([]entity.Movie, error) {
	return f.movies, nil
}

func (f *fakeRepo) ListByCategory(_ context.Context, category string) ([]entity.Movie, error) {
	var out []entity.Movie
	for _, m := range f.movies {
		if m.Type == category {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListTopRated(_ context.Context) ([]entity.Movie, error) {
	return f.movies, nil
}

func (f *fakeRepo) ListSeen(_ context.Context, email string) ([]entity.Movie, error) {
	return f.seen[email], nil
}

func (f *fakeRepo) UpdateRating(_ context.Context, movieID int64, rating float64) error {
	for i := range f.movies {
		if f.movies[i].MovieID == movieID {
			f.movies[i].Rating = rating
		}
	}
	return nil
}

func TestListGrouped(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{movies: []entity.Movie{
		{MovieID: 1, Title: "A", Type: "comedy"},
		{MovieID: 2, Title: "B", Type: "drama"},
		{MovieID: 3, Title: "C", Type: "comedy"},
	}}
	svc := NewMovieService(nil, repo)

	grouped, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["comedy"], 2)
	require.Len(t, grouped["drama"], 1)
	require.Equal(t, "B", grouped["drama"][0].Title)
}

func TestListSeen(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{seen: map[string][]entity.Movie{
		"a@b.com": {{MovieID: 1, Title: "A", Type: "comedy"}},
	}}
	svc := NewMovieService(nil, repo)

	movies, err := svc.ListSeen(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Len(t, movies, 1)

	movies, err = svc.ListSeen(context.Background(), "other@b.com")
	require.NoError(t, err)
	require.Empty(t, movies)
}

func TestUpdateRatingWriteBack(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{movies: []entity.Movie{{MovieID: 5, Title: "E", Type: "drama"}}}
	svc := NewMovieService(nil, repo)

	require.NoError(t, svc.UpdateRating(context.Background(), 5, 9))
	require.Equal(t, 9.0, repo.movies[0].Rating)
}

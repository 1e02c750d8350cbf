package comment

import "context"

// Repository is the comment document access surface.
type Repository interface {
	Insert(ctx context.Context, doc *Comment) error
	FindByMovie(ctx context.Context, movieID int64) ([]Comment, error)
}

// CommentService stores and lists comments per movie.
type CommentService struct {
	repo Repository
}

func NewCommentService(repo Repository) *CommentService {
	return &CommentService{repo: repo}
}

// Add persists the comment. Callers get an acknowledgment only, never an
// echo of the created record.
func (s *CommentService) Add(ctx context.Context, doc *Comment) error {
	return s.repo.Insert(ctx, doc)
}

// ListByMovie returns all comments for the movie, store order.
func (s *CommentService) ListByMovie(ctx context.Context, movieID int64) ([]Comment, error) {
	return s.repo.FindByMovie(ctx, movieID)
}

package comment

import (
	"context"

	"clipstream/internal/domain"
)

type CommentRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByVideo(ctx context.Context, videoID int64, offset, limit int) ([]domain.Comment, int64, error)
	Update(ctx context.Context, c *domain.Comment) error
	Delete(ctx context.Context, id int64) error
}

// VideoReader checks that the commented video exists.
type VideoReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
}

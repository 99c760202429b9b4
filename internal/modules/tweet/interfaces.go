package tweet

import (
	"context"

	"clipstream/internal/domain"
)

// TweetRepositoryInterface — only the methods the tweet service uses.
type TweetRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Tweet) error
	GetByID(ctx context.Context, id int64) (*domain.Tweet, error)
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Tweet, int64, error)
	Update(ctx context.Context, t *domain.Tweet) error
	Delete(ctx context.Context, id int64) error
}

package video

import (
	"context"

	"clipstream/internal/domain"
)

type VideoRepositoryInterface interface {
	Create(ctx context.Context, v *domain.Video) error
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
	ListByChannel(ctx context.Context, channelID int64, includeDrafts bool, offset, limit int) ([]domain.Video, int64, error)
	Update(ctx context.Context, v *domain.Video) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
}

package repository

import (
	"context"

	"clipstream/internal/domain"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	var v domain.Video
	if err := r.db.WithContext(ctx).Preload("Owner").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// ListByChannel returns a channel's videos, newest first. Drafts are
// only included when the channel owner is asking.
func (r *VideoRepository) ListByChannel(ctx context.Context, channelID int64, includeDrafts bool, offset, limit int) ([]domain.Video, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Video{}).Where("owner_id = ?", channelID)
	if !includeDrafts {
		q = q.Where("is_published = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []domain.Video
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *VideoRepository) Update(ctx context.Context, v *domain.Video) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VideoRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Video{}, id).Error
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Video{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

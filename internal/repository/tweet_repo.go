package repository

import (
	"context"

	"clipstream/internal/domain"

	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Create(ctx context.Context, t *domain.Tweet) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TweetRepository) GetByID(ctx context.Context, id int64) (*domain.Tweet, error) {
	var t domain.Tweet
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Tweet, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Tweet{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []domain.Tweet
	err := q.Preload("Owner").Order("created_at DESC").Offset(offset).Limit(limit).Find(&tweets).Error
	if err != nil {
		return nil, 0, err
	}
	return tweets, total, nil
}

func (r *TweetRepository) Update(ctx context.Context, t *domain.Tweet) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TweetRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Tweet{}, id).Error
}

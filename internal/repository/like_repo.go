package repository

import (
	"context"

	"clipstream/internal/domain"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) FindByVideo(ctx context.Context, userID, videoID int64) (*domain.Like, error) {
	return r.findOne(ctx, "liked_by_id = ? AND video_id = ?", userID, videoID)
}

func (r *LikeRepository) FindByComment(ctx context.Context, userID, commentID int64) (*domain.Like, error) {
	return r.findOne(ctx, "liked_by_id = ? AND comment_id = ?", userID, commentID)
}

func (r *LikeRepository) FindByTweet(ctx context.Context, userID, tweetID int64) (*domain.Like, error) {
	return r.findOne(ctx, "liked_by_id = ? AND tweet_id = ?", userID, tweetID)
}

func (r *LikeRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Like, error) {
	var like domain.Like
	if err := r.db.WithContext(ctx).Where(query, args...).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *LikeRepository) Create(ctx context.Context, like *domain.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *LikeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Like{}, id).Error
}

func (r *LikeRepository) CountForVideo(ctx context.Context, videoID int64) (int64, error) {
	return r.count(ctx, "video_id = ?", videoID)
}

func (r *LikeRepository) CountForComment(ctx context.Context, commentID int64) (int64, error) {
	return r.count(ctx, "comment_id = ?", commentID)
}

func (r *LikeRepository) CountForTweet(ctx context.Context, tweetID int64) (int64, error) {
	return r.count(ctx, "tweet_id = ?", tweetID)
}

func (r *LikeRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Like{}).Where(query, args...).Count(&count).Error
	return count, err
}

// ListLikedVideos returns published videos the user has liked, most
// recently liked first.
func (r *LikeRepository) ListLikedVideos(ctx context.Context, userID int64, offset, limit int) ([]domain.Video, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Video{}).
		Joins("JOIN likes ON likes.video_id = videos.id").
		Where("likes.liked_by_id = ? AND videos.is_published = ?", userID, true)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []domain.Video
	err := base.Order("likes.created_at DESC").Offset(offset).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

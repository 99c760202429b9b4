package like

import (
	"context"

	"clipstream/internal/domain"
)

// LikeRepositoryInterface — lookups are explicit per target kind; a
// like row references exactly one of video/comment/tweet.
type LikeRepositoryInterface interface {
	FindByVideo(ctx context.Context, userID, videoID int64) (*domain.Like, error)
	FindByComment(ctx context.Context, userID, commentID int64) (*domain.Like, error)
	FindByTweet(ctx context.Context, userID, tweetID int64) (*domain.Like, error)
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, id int64) error
	CountForVideo(ctx context.Context, videoID int64) (int64, error)
	CountForComment(ctx context.Context, commentID int64) (int64, error)
	CountForTweet(ctx context.Context, tweetID int64) (int64, error)
	ListLikedVideos(ctx context.Context, userID int64, offset, limit int) ([]domain.Video, int64, error)
}

// VideoReader resolves the liked video's owner for notifications.
type VideoReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
}

// NotificationSender pushes activity events to channel owners.
// Best-effort; a nil sender disables notifications.
type NotificationSender interface {
	NotifyVideoLiked(ctx context.Context, ownerID, videoID, likerID int64)
}

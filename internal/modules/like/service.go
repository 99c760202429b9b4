package like

import (
	"context"
	"errors"

	"clipstream/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type ToggleResult struct {
	Liked      bool  `json:"liked"`
	TotalLikes int64 `json:"total_likes"`
}

type Service struct {
	likes  LikeRepositoryInterface
	videos VideoReader
	notifs NotificationSender
}

func NewService(likes LikeRepositoryInterface, videos VideoReader, notifs NotificationSender) *Service {
	return &Service{likes: likes, videos: videos, notifs: notifs}
}

func (s *Service) ToggleVideoLike(ctx context.Context, userID, videoID int64) (*ToggleResult, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	result, err := s.toggle(ctx, userID,
		func() (*domain.Like, error) { return s.likes.FindByVideo(ctx, userID, videoID) },
		&domain.Like{LikedByID: userID, VideoID: &videoID},
		func() (int64, error) { return s.likes.CountForVideo(ctx, videoID) },
	)
	if err != nil {
		return nil, err
	}

	if result.Liked && s.notifs != nil && video.OwnerID != userID {
		s.notifs.NotifyVideoLiked(ctx, video.OwnerID, videoID, userID)
	}
	return result, nil
}

func (s *Service) ToggleCommentLike(ctx context.Context, userID, commentID int64) (*ToggleResult, error) {
	return s.toggle(ctx, userID,
		func() (*domain.Like, error) { return s.likes.FindByComment(ctx, userID, commentID) },
		&domain.Like{LikedByID: userID, CommentID: &commentID},
		func() (int64, error) { return s.likes.CountForComment(ctx, commentID) },
	)
}

func (s *Service) ToggleTweetLike(ctx context.Context, userID, tweetID int64) (*ToggleResult, error) {
	return s.toggle(ctx, userID,
		func() (*domain.Like, error) { return s.likes.FindByTweet(ctx, userID, tweetID) },
		&domain.Like{LikedByID: userID, TweetID: &tweetID},
		func() (int64, error) { return s.likes.CountForTweet(ctx, tweetID) },
	)
}

// toggle removes an existing like or creates a new one. A concurrent
// double-like trips the unique index; that insert loser is treated as
// already-liked rather than an error.
func (s *Service) toggle(ctx context.Context, userID int64, find func() (*domain.Like, error), fresh *domain.Like, count func() (int64, error)) (*ToggleResult, error) {
	existing, err := find()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	liked := false
	if existing != nil {
		if err := s.likes.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
	} else {
		if err := s.likes.Create(ctx, fresh); err != nil {
			var pgErr *pgconn.PgError
			if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
				return nil, err
			}
		}
		liked = true
	}

	total, err := count()
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Liked: liked, TotalLikes: total}, nil
}

func (s *Service) GetLikedVideos(ctx context.Context, userID int64, page, limit int) ([]domain.Video, int64, error) {
	offset := (page - 1) * limit
	return s.likes.ListLikedVideos(ctx, userID, offset, limit)
}

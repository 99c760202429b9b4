package video

import (
	"context"
	"errors"
	"io"
	"log"

	"clipstream/internal/domain"
	"clipstream/internal/pkg/media"

	"gorm.io/gorm"
)

type Upload struct {
	ContentType string
	Body        io.Reader
}

type Service struct {
	videos VideoRepositoryInterface
	store  media.Store
}

func NewService(videos VideoRepositoryInterface, store media.Store) *Service {
	return &Service{videos: videos, store: store}
}

// Publish uploads the video file and optional thumbnail, then records
// the video as published.
func (s *Service) Publish(ctx context.Context, ownerID int64, req PublishRequest, file Upload, thumbnail *Upload) (*domain.Video, error) {
	if s.store == nil {
		return nil, ErrUploadsDisabled
	}

	videoKey := media.RandomKey("videos")
	videoURL, err := s.store.Put(ctx, videoKey, file.ContentType, file.Body)
	if err != nil {
		return nil, err
	}

	v := &domain.Video{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    videoURL,
		VideoKey:    videoKey,
		Duration:    req.Duration,
		IsPublished: true,
	}

	if thumbnail != nil {
		key := media.RandomKey("thumbnails")
		url, err := s.store.Put(ctx, key, thumbnail.ContentType, thumbnail.Body)
		if err != nil {
			s.removeObject(ctx, videoKey)
			return nil, err
		}
		v.ThumbnailURL = url
		v.ThumbnailKey = key
	}

	if err := s.videos.Create(ctx, v); err != nil {
		s.removeObject(ctx, videoKey)
		s.removeObject(ctx, v.ThumbnailKey)
		return nil, err
	}
	return v, nil
}

// Get returns the video and counts the view. Drafts are only visible
// to their owner and never accumulate views.
func (s *Service) Get(ctx context.Context, videoID, viewerID int64) (*domain.Video, error) {
	v, err := s.getVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if !v.IsPublished {
		if v.OwnerID != viewerID {
			return nil, ErrVideoNotFound
		}
		return v, nil
	}

	if err := s.videos.IncrementViews(ctx, videoID); err != nil {
		log.Printf("level=warn msg=\"view count update failed\" video_id=%d err=%v", videoID, err)
	} else {
		v.Views++
	}
	return v, nil
}

// ListByChannel returns a channel's videos; the owner also sees drafts.
func (s *Service) ListByChannel(ctx context.Context, channelID, viewerID int64, page, limit int) (*VideoListResponse, error) {
	offset := (page - 1) * limit
	videos, total, err := s.videos.ListByChannel(ctx, channelID, channelID == viewerID, offset, limit)
	if err != nil {
		return nil, err
	}

	resp := &VideoListResponse{
		Videos: make([]VideoResponse, 0, len(videos)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for _, v := range videos {
		resp.Videos = append(resp.Videos, toResponse(&v))
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, videoID, userID int64, req UpdateVideoRequest, thumbnail *Upload) (*domain.Video, error) {
	v, err := s.getOwned(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	v.Title = req.Title
	v.Description = req.Description

	if thumbnail != nil {
		if s.store == nil {
			return nil, ErrUploadsDisabled
		}
		key := media.RandomKey("thumbnails")
		url, err := s.store.Put(ctx, key, thumbnail.ContentType, thumbnail.Body)
		if err != nil {
			return nil, err
		}
		s.removeObject(ctx, v.ThumbnailKey)
		v.ThumbnailURL = url
		v.ThumbnailKey = key
	}

	if err := s.videos.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, videoID, userID int64) error {
	v, err := s.getOwned(ctx, videoID, userID)
	if err != nil {
		return err
	}

	if err := s.videos.Delete(ctx, videoID); err != nil {
		return err
	}

	s.removeObject(ctx, v.VideoKey)
	s.removeObject(ctx, v.ThumbnailKey)
	return nil
}

// SourceURL returns a short-lived presigned link to the raw uploaded
// object. Only the owner may fetch it, so drafts can be previewed
// before the video is published.
func (s *Service) SourceURL(ctx context.Context, videoID, userID int64) (string, error) {
	v, err := s.getOwned(ctx, videoID, userID)
	if err != nil {
		return "", err
	}
	if s.store == nil {
		return "", ErrUploadsDisabled
	}
	return s.store.PresignGet(ctx, v.VideoKey)
}

func (s *Service) TogglePublish(ctx context.Context, videoID, userID int64) (*domain.Video, error) {
	v, err := s.getOwned(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	v.IsPublished = !v.IsPublished
	if err := s.videos.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) getVideo(ctx context.Context, videoID int64) (*domain.Video, error) {
	v, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) getOwned(ctx context.Context, videoID, userID int64) (*domain.Video, error) {
	v, err := s.getVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != userID {
		return nil, ErrNotOwner
	}
	return v, nil
}

// removeObject is best-effort cleanup; failures are logged, not returned.
func (s *Service) removeObject(ctx context.Context, key string) {
	if s.store == nil || key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		log.Printf("level=warn msg=\"media cleanup failed\" key=%s err=%v", key, err)
	}
}

func toResponse(v *domain.Video) VideoResponse {
	resp := VideoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Duration:     v.Duration,
		Views:        v.Views,
		IsPublished:  v.IsPublished,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if v.Owner.ID != 0 {
		resp.Owner = &OwnerSummary{
			ID:        v.Owner.ID,
			Username:  v.Owner.Username,
			FullName:  v.Owner.FullName,
			AvatarURL: v.Owner.AvatarURL,
		}
	}
	return resp
}

package playlist

import (
	"context"
	"errors"

	"clipstream/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	playlists PlaylistRepositoryInterface
	videos    VideoReader
}

func NewService(playlists PlaylistRepositoryInterface, videos VideoReader) *Service {
	return &Service{playlists: playlists, videos: videos}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreatePlaylistRequest) (*domain.Playlist, error) {
	taken, err := s.playlists.ExistsByOwnerAndName(ctx, ownerID, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	p := &domain.Playlist{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.playlists.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListByOwner returns the owner's playlists, each with its video
// summaries.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]PlaylistResponse, error) {
	playlists, err := s.playlists.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]PlaylistResponse, 0, len(playlists))
	for _, p := range playlists {
		videos, err := s.playlists.ListVideos(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toResponse(&p, videos))
	}
	return out, nil
}

// GetByID returns the playlist together with its videos in added order.
func (s *Service) GetByID(ctx context.Context, id string) (*PlaylistResponse, error) {
	p, err := s.getPlaylist(ctx, id)
	if err != nil {
		return nil, err
	}

	videos, err := s.playlists.ListVideos(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toResponse(p, videos)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id string, userID int64, req UpdatePlaylistRequest) (*domain.Playlist, error) {
	p, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != p.Name {
		taken, err := s.playlists.ExistsByOwnerAndName(ctx, userID, req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrNameTaken
		}
	}

	p.Name = req.Name
	p.Description = req.Description
	if err := s.playlists.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.playlists.Delete(ctx, id)
}

func (s *Service) AddVideo(ctx context.Context, id string, userID, videoID int64) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	present, err := s.playlists.ContainsVideo(ctx, id, videoID)
	if err != nil {
		return err
	}
	if present {
		return ErrVideoAlreadyIn
	}

	return s.playlists.AddVideo(ctx, id, videoID)
}

func (s *Service) RemoveVideo(ctx context.Context, id string, userID, videoID int64) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	removed, err := s.playlists.RemoveVideo(ctx, id, videoID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrVideoNotIn
	}
	return nil
}

func (s *Service) getPlaylist(ctx context.Context, id string) (*domain.Playlist, error) {
	p, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) getOwned(ctx context.Context, id string, userID int64) (*domain.Playlist, error) {
	p, err := s.getPlaylist(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != userID {
		return nil, ErrNotOwner
	}
	return p, nil
}

func toResponse(p *domain.Playlist, videos []domain.Video) PlaylistResponse {
	resp := PlaylistResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, v := range videos {
		resp.Videos = append(resp.Videos, VideoSummary{
			ID:           v.ID,
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			Duration:     v.Duration,
			Views:        v.Views,
		})
	}
	return resp
}

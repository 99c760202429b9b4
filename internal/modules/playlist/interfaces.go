package playlist

import (
	"context"

	"clipstream/internal/domain"
)

type PlaylistRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Playlist) error
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Playlist, error)
	ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string) (bool, error)
	Update(ctx context.Context, p *domain.Playlist) error
	Delete(ctx context.Context, id string) error
	AddVideo(ctx context.Context, playlistID string, videoID int64) error
	RemoveVideo(ctx context.Context, playlistID string, videoID int64) (bool, error)
	ContainsVideo(ctx context.Context, playlistID string, videoID int64) (bool, error)
	ListVideos(ctx context.Context, playlistID string) ([]domain.Video, error)
}

// VideoReader checks that a video exists before it joins a playlist.
type VideoReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
}

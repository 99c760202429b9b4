package repository

import (
	"context"

	"clipstream/internal/domain"

	"gorm.io/gorm"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *domain.Playlist) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	var p domain.Playlist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Playlist, error) {
	var playlists []domain.Playlist
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	return playlists, err
}

func (r *PlaylistRepository) ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Playlist{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count).Error
	return count > 0, err
}

func (r *PlaylistRepository) Update(ctx context.Context, p *domain.Playlist) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("playlist_id = ?", id).Delete(&domain.PlaylistVideo{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Playlist{}).Error
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID string, videoID int64) error {
	return r.db.WithContext(ctx).Create(&domain.PlaylistVideo{
		PlaylistID: playlistID,
		VideoID:    videoID,
	}).Error
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID string, videoID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&domain.PlaylistVideo{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *PlaylistRepository) ContainsVideo(ctx context.Context, playlistID string, videoID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Count(&count).Error
	return count > 0, err
}

// ListVideos returns the playlist's videos in the order they were added.
func (r *PlaylistRepository) ListVideos(ctx context.Context, playlistID string) ([]domain.Video, error) {
	var videos []domain.Video
	err := r.db.WithContext(ctx).Model(&domain.Video{}).
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.added_at ASC").
		Find(&videos).Error
	return videos, err
}

package playlist

import "time"

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2048"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2048"`
}

type VideoSummary struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	Duration     float64 `json:"duration"`
	Views        int64   `json:"views"`
}

type PlaylistResponse struct {
	ID          string         `json:"id"`
	OwnerID     int64          `json:"owner_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Videos      []VideoSummary `json:"videos,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

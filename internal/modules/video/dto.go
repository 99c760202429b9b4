package video

import "time"

type PublishRequest struct {
	Title       string  `form:"title" binding:"required,max=255"`
	Description string  `form:"description" binding:"max=4096"`
	Duration    float64 `form:"duration" binding:"min=0"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=4096"`
}

type OwnerSummary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type VideoResponse struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	VideoURL     string        `json:"video_url"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`
	Duration     float64       `json:"duration"`
	Views        int64         `json:"views"`
	IsPublished  bool          `json:"is_published"`
	Owner        *OwnerSummary `json:"owner,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type VideoListResponse struct {
	Videos []VideoResponse `json:"videos"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

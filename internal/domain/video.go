package domain

import "time"

type Video struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	OwnerID      int64  `json:"owner_id" gorm:"index;not null"`
	Owner        User   `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Title        string `json:"title" gorm:"size:255;not null"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url" gorm:"not null"`
	VideoKey     string `json:"-" gorm:"size:255"`
	ThumbnailURL string `json:"thumbnail_url"`
	ThumbnailKey string `json:"-" gorm:"size:255"`
	// Duration in seconds, reported by the client on publish.
	Duration    float64 `json:"duration"`
	Views       int64   `json:"views"`
	IsPublished bool    `json:"is_published" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package domain

import "time"

type Playlist struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	OwnerID     int64  `json:"owner_id" gorm:"index;not null;uniqueIndex:uniq_playlist_name"`
	Owner       User   `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Name        string `json:"name" gorm:"size:255;not null;uniqueIndex:uniq_playlist_name"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlaylistVideo struct {
	PlaylistID string   `json:"playlist_id" gorm:"primaryKey;size:36"`
	Playlist   Playlist `json:"-" gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE"`
	VideoID    int64    `json:"video_id" gorm:"primaryKey"`
	Video      Video    `json:"-" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`

	AddedAt time.Time `json:"added_at" gorm:"autoCreateTime"`
}

package domain

import "time"

type Tweet struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	OwnerID int64  `json:"owner_id" gorm:"index;not null"`
	Owner   User   `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Content string `json:"content" gorm:"size:2048;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Comment struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	VideoID int64  `json:"video_id" gorm:"index;not null"`
	Video   Video  `json:"-" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	OwnerID int64  `json:"owner_id" gorm:"index;not null"`
	Owner   User   `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Content string `json:"content" gorm:"size:2048;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

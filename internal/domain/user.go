package domain

import "time"

// User is the platform account. A user is also a channel: videos, tweets
// and subscriptions all hang off this identity.
//
// Security notes:
//   - PasswordHash is a bcrypt hash, never serialized.
//   - RefreshToken mirrors the currently valid refresh token verbatim.
//     nil means no active session. It is overwritten as a whole on every
//     login/rotation and cleared on logout; the auth service is its only
//     writer.
type User struct {
	ID           int64   `json:"id" gorm:"primaryKey"`
	Username     string  `json:"username" gorm:"size:64;uniqueIndex;not null"`
	Email        string  `json:"email" gorm:"size:255;uniqueIndex;not null"`
	FullName     string  `json:"full_name"`
	PasswordHash string  `json:"-" gorm:"not null"`
	AvatarURL    string  `json:"avatar_url,omitempty"`
	CoverURL     string  `json:"cover_url,omitempty"`
	RefreshToken *string `json:"-" gorm:"size:1024"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) HasActiveSession() bool {
	return u.RefreshToken != nil && *u.RefreshToken != ""
}

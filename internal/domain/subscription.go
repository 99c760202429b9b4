package domain

import "time"

// Subscription links a subscriber to a channel (channels are users).
type Subscription struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	SubscriberID int64 `json:"subscriber_id" gorm:"not null;uniqueIndex:uniq_subscription"`
	Subscriber   User  `json:"-" gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
	ChannelID    int64 `json:"channel_id" gorm:"index;not null;uniqueIndex:uniq_subscription"`
	Channel      User  `json:"-" gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
}

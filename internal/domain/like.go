package domain

import "time"

// Like is a toggleable reaction. Exactly one of VideoID/CommentID/TweetID
// is set. The composite unique indexes make a double-like a constraint
// violation instead of a duplicate row.
type Like struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	LikedByID int64  `json:"liked_by_id" gorm:"index;not null;uniqueIndex:uniq_video_like;uniqueIndex:uniq_comment_like;uniqueIndex:uniq_tweet_like"`
	LikedBy   User   `json:"-" gorm:"foreignKey:LikedByID;constraint:OnDelete:CASCADE"`
	VideoID   *int64 `json:"video_id,omitempty" gorm:"uniqueIndex:uniq_video_like"`
	CommentID *int64 `json:"comment_id,omitempty" gorm:"uniqueIndex:uniq_comment_like"`
	TweetID   *int64 `json:"tweet_id,omitempty" gorm:"uniqueIndex:uniq_tweet_like"`

	CreatedAt time.Time `json:"created_at"`
}

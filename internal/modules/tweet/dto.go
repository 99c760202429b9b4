package tweet

import "time"

type CreateTweetRequest struct {
	Content string `json:"content" binding:"required,max=2048"`
}

type UpdateTweetRequest struct {
	Content string `json:"content" binding:"required,max=2048"`
}

type OwnerSummary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type TweetResponse struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	Owner     *OwnerSummary `json:"owner,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type TweetListResponse struct {
	Tweets []TweetResponse `json:"tweets"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

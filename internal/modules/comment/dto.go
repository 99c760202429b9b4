package comment

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2048"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2048"`
}

type OwnerSummary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type CommentResponse struct {
	ID        int64         `json:"id"`
	VideoID   int64         `json:"video_id"`
	Content   string        `json:"content"`
	Owner     *OwnerSummary `json:"owner,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

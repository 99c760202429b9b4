package comment

import (
	"context"
	"errors"

	"clipstream/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	comments CommentRepositoryInterface
	videos   VideoReader
}

func NewService(comments CommentRepositoryInterface, videos VideoReader) *Service {
	return &Service{comments: comments, videos: videos}
}

func (s *Service) Create(ctx context.Context, videoID, ownerID int64, req CreateCommentRequest) (*domain.Comment, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	c := &domain.Comment{
		VideoID: videoID,
		OwnerID: ownerID,
		Content: req.Content,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListByVideo(ctx context.Context, videoID int64, page, limit int) (*CommentListResponse, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	offset := (page - 1) * limit
	comments, total, err := s.comments.ListByVideo(ctx, videoID, offset, limit)
	if err != nil {
		return nil, err
	}

	resp := &CommentListResponse{
		Comments: make([]CommentResponse, 0, len(comments)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, toResponse(&c))
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, commentID, userID int64, req UpdateCommentRequest) (*domain.Comment, error) {
	c, err := s.getOwned(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	c.Content = req.Content
	if err := s.comments.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, commentID, userID int64) error {
	if _, err := s.getOwned(ctx, commentID, userID); err != nil {
		return err
	}
	return s.comments.Delete(ctx, commentID)
}

func (s *Service) getOwned(ctx context.Context, commentID, userID int64) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if c.OwnerID != userID {
		return nil, ErrNotOwner
	}
	return c, nil
}

func toResponse(c *domain.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		VideoID:   c.VideoID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Owner.ID != 0 {
		resp.Owner = &OwnerSummary{
			ID:        c.Owner.ID,
			Username:  c.Owner.Username,
			FullName:  c.Owner.FullName,
			AvatarURL: c.Owner.AvatarURL,
		}
	}
	return resp
}

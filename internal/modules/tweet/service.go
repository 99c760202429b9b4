package tweet

import (
	"context"
	"errors"

	"clipstream/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	tweets TweetRepositoryInterface
}

func NewService(tweets TweetRepositoryInterface) *Service {
	return &Service{tweets: tweets}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateTweetRequest) (*domain.Tweet, error) {
	t := &domain.Tweet{
		OwnerID: ownerID,
		Content: req.Content,
	}
	if err := s.tweets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64, page, limit int) (*TweetListResponse, error) {
	offset := (page - 1) * limit
	tweets, total, err := s.tweets.ListByOwner(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	resp := &TweetListResponse{
		Tweets: make([]TweetResponse, 0, len(tweets)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for _, t := range tweets {
		resp.Tweets = append(resp.Tweets, toResponse(&t))
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, tweetID, userID int64, req UpdateTweetRequest) (*domain.Tweet, error) {
	t, err := s.getOwned(ctx, tweetID, userID)
	if err != nil {
		return nil, err
	}

	t.Content = req.Content
	if err := s.tweets.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, tweetID, userID int64) error {
	if _, err := s.getOwned(ctx, tweetID, userID); err != nil {
		return err
	}
	return s.tweets.Delete(ctx, tweetID)
}

func (s *Service) getOwned(ctx context.Context, tweetID, userID int64) (*domain.Tweet, error) {
	t, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}
	if t.OwnerID != userID {
		return nil, ErrNotOwner
	}
	return t, nil
}

func toResponse(t *domain.Tweet) TweetResponse {
	resp := TweetResponse{
		ID:        t.ID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Owner.ID != 0 {
		resp.Owner = &OwnerSummary{
			ID:        t.Owner.ID,
			Username:  t.Owner.Username,
			FullName:  t.Owner.FullName,
			AvatarURL: t.Owner.AvatarURL,
		}
	}
	return resp
}

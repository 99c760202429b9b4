package subscription

import (
	"context"
	"errors"

	"clipstream/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type Service struct {
	subs   SubscriptionRepositoryInterface
	users  UserReader
	notifs NotificationSender
}

func NewService(subs SubscriptionRepositoryInterface, users UserReader, notifs NotificationSender) *Service {
	return &Service{subs: subs, users: users, notifs: notifs}
}

// Toggle subscribes userID to the channel, or unsubscribes if a
// subscription already exists.
func (s *Service) Toggle(ctx context.Context, userID, channelID int64) (*ToggleResult, error) {
	if userID == channelID {
		return nil, ErrSelfSubscribe
	}

	if _, err := s.users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	existing, err := s.subs.Find(ctx, userID, channelID)
	switch {
	case err == nil:
		if err := s.subs.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		return s.result(ctx, channelID, false)
	case errors.Is(err, gorm.ErrRecordNotFound):
		err := s.subs.Create(ctx, &domain.Subscription{
			SubscriberID: userID,
			ChannelID:    channelID,
		})
		if err != nil {
			// Concurrent toggle lost the insert race; the row exists now.
			var pgErr *pgconn.PgError
			if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
				return nil, err
			}
		} else if s.notifs != nil {
			s.notifs.NotifyNewSubscriber(ctx, channelID, userID)
		}
		return s.result(ctx, channelID, true)
	default:
		return nil, err
	}
}

func (s *Service) GetSubscribers(ctx context.Context, channelID int64) ([]ChannelSummary, int64, error) {
	if _, err := s.users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrChannelNotFound
		}
		return nil, 0, err
	}

	users, err := s.subs.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.subs.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, 0, err
	}
	return toSummaries(users), total, nil
}

func (s *Service) GetSubscribedChannels(ctx context.Context, userID int64) ([]ChannelSummary, error) {
	users, err := s.subs.ListSubscribedChannels(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toSummaries(users), nil
}

func (s *Service) result(ctx context.Context, channelID int64, subscribed bool) (*ToggleResult, error) {
	total, err := s.subs.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Subscribed: subscribed, Subscribers: total}, nil
}

func toSummaries(users []domain.User) []ChannelSummary {
	out := make([]ChannelSummary, 0, len(users))
	for _, u := range users {
		out = append(out, ChannelSummary{
			ID:        u.ID,
			Username:  u.Username,
			FullName:  u.FullName,
			AvatarURL: u.AvatarURL,
		})
	}
	return out
}

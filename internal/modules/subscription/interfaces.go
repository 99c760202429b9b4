package subscription

import (
	"context"

	"clipstream/internal/domain"
)

type SubscriptionRepositoryInterface interface {
	Find(ctx context.Context, subscriberID, channelID int64) (*domain.Subscription, error)
	Create(ctx context.Context, sub *domain.Subscription) error
	Delete(ctx context.Context, id int64) error
	CountSubscribers(ctx context.Context, channelID int64) (int64, error)
	ListSubscribers(ctx context.Context, channelID int64) ([]domain.User, error)
	ListSubscribedChannels(ctx context.Context, subscriberID int64) ([]domain.User, error)
}

// UserReader resolves channel accounts; channels are plain users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// NotificationSender pushes subscription events to channel owners.
// Best-effort; a nil sender disables notifications.
type NotificationSender interface {
	NotifyNewSubscriber(ctx context.Context, channelID, subscriberID int64)
}

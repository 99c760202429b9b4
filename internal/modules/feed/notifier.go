package feed

import (
	"context"
	"time"
)

// Event is the wire shape for feed pushes.
type Event struct {
	Type      string    `json:"type"`
	ActorID   int64     `json:"actor_id"`
	TargetID  int64     `json:"target_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventVideoLiked    = "video_liked"
	EventNewSubscriber = "new_subscriber"
)

// Notifier fans activity events out to connected channel owners. It
// satisfies the notification interfaces of the like and subscription
// modules; delivery is best-effort and offline users miss events.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyVideoLiked(ctx context.Context, ownerID, videoID, likerID int64) {
	n.hub.SendToUser(ownerID, Event{
		Type:      EventVideoLiked,
		ActorID:   likerID,
		TargetID:  videoID,
		Timestamp: time.Now().UTC(),
	})
}

func (n *Notifier) NotifyNewSubscriber(ctx context.Context, channelID, subscriberID int64) {
	n.hub.SendToUser(channelID, Event{
		Type:      EventNewSubscriber,
		ActorID:   subscriberID,
		Timestamp: time.Now().UTC(),
	})
}

package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Store is the object-storage collaborator used for video files,
// thumbnails and profile images. The backend only ever needs these
// three operations; everything else about media handling lives with
// the storage provider.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// RandomKey returns a date-sharded object key so buckets stay
// browsable: <prefix>/2026/9/1/<uuid>.
func RandomKey(prefix string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("%s/%d/%d/%d/%v", prefix, d.Year(), int(d.Month()), d.Day(), uuid.New())
}

package video

import "errors"

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrNotOwner      = errors.New("video belongs to another user")
	ErrNotPublished  = errors.New("video is not published")

	// ErrUploadsDisabled is returned when no media store is configured.
	ErrUploadsDisabled = errors.New("media storage is not configured")
)

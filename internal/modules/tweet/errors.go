package tweet

import "errors"

var (
	ErrTweetNotFound = errors.New("tweet not found")
	ErrNotOwner      = errors.New("tweet belongs to another user")
)

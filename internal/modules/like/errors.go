package like

import "errors"

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrTweetNotFound   = errors.New("tweet not found")
)

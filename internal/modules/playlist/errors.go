package playlist

import "errors"

var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrVideoNotFound    = errors.New("video not found")
	ErrNotOwner         = errors.New("playlist belongs to another user")
	ErrNameTaken        = errors.New("playlist name already in use")
	ErrVideoAlreadyIn   = errors.New("video already in playlist")
	ErrVideoNotIn       = errors.New("video not in playlist")
)

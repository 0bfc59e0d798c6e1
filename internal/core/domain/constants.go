package domain

import "errors"

const CommandMarker = "!"

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrStoreClosed        = errors.New("store closed")
	ErrUnknownBackend     = errors.New("unknown store backend")
)

package port

import "errors"

var (
	ErrNotSupported  = errors.New("not supported")
	ErrUnreadable    = errors.New("unreadable")
	ErrSummarization = errors.New("summarization failed")
)

package analyses

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnknownRole = errors.New("unknown job role")
	ErrNotAResume  = errors.New("document does not look like a resume")
	ErrEmptyText   = errors.New("no text could be extracted")
)

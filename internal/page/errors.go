package page

import "errors"

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrParentNotFound = errors.New("parent page not found")
	ErrEmptyTag       = errors.New("tag must not be empty")
	ErrInvalidDays    = errors.New("days must be non-negative")
)

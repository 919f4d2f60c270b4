package repository

import "errors"

var (
	ErrPageNotExists   = errors.New("page does not exist in store")
	ErrParentNotExists = errors.New("parent page does not exist in store")
)

package utils

import "errors"

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrRecordNotFound   = errors.New("record not found")
	ErrValidation       = errors.New("invalid request")
	ErrInvalidScope     = errors.New("invalid analytics scope")
	ErrSlugConflict     = errors.New("slug already taken")
	ErrStoreUnavailable = errors.New("content store unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
)

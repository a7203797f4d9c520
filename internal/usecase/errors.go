package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUpstream     = errors.New("upstream provider failure")
	ErrResolution   = errors.New("name resolution failed")
)

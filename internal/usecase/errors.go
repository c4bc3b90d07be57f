package usecase

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrLoginRequired = errors.New("login required")
	ErrInternal      = errors.New("internal error")
)

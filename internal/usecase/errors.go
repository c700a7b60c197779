package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConversion            = errors.New("conversion failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

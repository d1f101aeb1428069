package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternal       = errors.New("internal error")
	ErrJobNotFound    = errors.New("job not found")
	ErrQuizNotFound   = errors.New("quiz not found")
	ErrResultNotFound = errors.New("quiz result not found")
	ErrAlreadyApplied = errors.New("already applied")
)

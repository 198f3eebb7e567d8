package util

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailRegistered         = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrQuizNotFound            = errors.New("quiz not found")
	ErrInvalidQuiz             = errors.New("invalid quiz")
	ErrAttemptNotFound         = errors.New("attempt not found")
	ErrAttemptNotAllowed       = errors.New("quiz attempt not allowed")
	ErrAttemptAlreadySubmitted = errors.New("attempt already submitted")
)

package services

import "errors"

var (
	ErrDatabaseUnavailable = errors.New("database not available")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrUserNotFound        = errors.New("user not found")
	ErrPhoneTaken          = errors.New("phone already registered")
	ErrNoSelections        = errors.New("no selections provided")
	ErrInvalidOdds         = errors.New("invalid odds in selection")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

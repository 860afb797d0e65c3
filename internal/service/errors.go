package service

import "errors"

// Sentinel errors controllers translate into HTTP status codes.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountInactive    = errors.New("account is deactivated")

	ErrPetNotFound    = errors.New("pet not found")
	ErrNoFieldsToSet  = errors.New("no fields to update")
	ErrDuplicateRequest = errors.New("You already have a pending or approved adoption request for this pet")

	ErrAlreadyFavorite  = errors.New("Already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")

	ErrAlreadyReviewed = errors.New("You have already reviewed this pet")

	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidToken = errors.New("invalid or expired token")
)

package services

import "errors"

var (
	// ErrForbidden is returned when a user acts on another user's data.
	ErrForbidden = errors.New("forbidden")

	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified, please check your inbox")
	ErrInvalidToken       = errors.New("invalid or expired verification token")
)

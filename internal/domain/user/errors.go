package user

import "errors"

var (
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so the login flow never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound     = errors.New("user not found")
	ErrUserInactive     = errors.New("user is not active")
	ErrResetNotFound    = errors.New("credential reset not found")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

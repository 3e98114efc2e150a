package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrInvalidEnvironment = errors.New("environment must be \"stage\" or \"prod\"")

	// Session errors
	ErrNotLoggedIn = errors.New("player is not logged in")

	// Response errors
	ErrMissingPlayerID = errors.New("response did not include a player id")
	ErrMissingUserID   = errors.New("response did not include a user id")
	ErrMissingToken    = errors.New("response did not include an access token")

	// Email errors
	ErrInvalidEmail = errors.New("email address has no domain part")
)

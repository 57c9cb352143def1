// Package common defines shared sentinel errors and small helpers used
// across the CareerCompass client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Operation-level errors surfaced to the user.
	ErrAuthentication = errors.New("authentication failed")
	ErrSignup         = errors.New("signup failed")
	ErrProfileUpdate  = errors.New("profile update failed")
	ErrUpload         = errors.New("upload failed")

	// Transport-level errors. ErrTimeout means the request exceeded its
	// bound; ErrUnavailable means the server could not be reached at all.
	ErrTimeout     = errors.New("request timed out")
	ErrUnavailable = errors.New("server unavailable")

	// Precondition / input errors.
	ErrNoActiveSession = errors.New("no active session")
	ErrValidation      = errors.New("validation failed")
)

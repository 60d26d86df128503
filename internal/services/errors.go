package services

import "errors"

// Sentinel errors returned by the ledger services. Handlers translate these
// into the wire-level {error: message} responses.
var (
	// Registration
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidPhone   = errors.New("invalid phone")
	ErrInvalidRole    = errors.New("invalid role")
	ErrDuplicatePhone = errors.New("duplicate phone")

	// Verification gate
	ErrOperatorPhoneRequired = errors.New("operator phone required")
	ErrCodeAndPhoneRequired  = errors.New("code and operator phone required")
	ErrCodeInvalid           = errors.New("invalid or already used verification code")

	// Waste recording
	ErrMissingFields = errors.New("missing required fields")

	// Queries
	ErrUserNotFound = errors.New("user not found")
)

package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound           = errors.New("entity not found")
	ErrAlreadyExists      = errors.New("entity already exists")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrIncompleteDraft    = errors.New("registration draft is missing mandatory fields")
	ErrTurnInProgress     = errors.New("another message from this user is being processed")
	ErrInvalidExecContext = errors.New("invalid executor context passed to repository")
)

package domain

import "errors"

var (
	ErrEmptySelection   = errors.New("no seats selected")
	ErrMissingSchedule  = errors.New("schedule id is required")
	ErrSubmitInProgress = errors.New("payment submission already in progress")
	ErrMissingRedirect  = errors.New("could not obtain payment link")
	ErrStaleLoad        = errors.New("seat load superseded by a newer request")

	ErrSessionNotFound = errors.New("booking session not found")
	ErrUserRequired    = errors.New("user identity required")
	ErrValidation      = errors.New("validation failed")
)

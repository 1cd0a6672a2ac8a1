package models

import "errors"

var (
	// ErrNotFound is returned when the backend has no record with the requested id
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput is returned when a request fails local validation
	ErrInvalidInput = errors.New("invalid input")
)

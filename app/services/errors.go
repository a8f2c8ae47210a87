package services

import "errors"

var (
	// ErrForbidden is returned when the presented token does not match
	// the token bound to the post at creation.
	ErrForbidden = errors.New("token does not match the post author")
)

package apperrors

import "errors"

var (
	ErrVenueNotFound       = errors.New("venue not found")
	ErrArtistNotFound      = errors.New("artist not found")
	ErrVenueHasShows       = errors.New("venue still has shows")
	ErrDanglingReference   = errors.New("show references a missing venue or artist")
	ErrInvalidTimestamp    = errors.New("invalid start time")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)

package model

import (
	"encoding/json"

	apperrors "gig-booking-directory/pkg/app_errors"
)

// Genres are stored as a JSON-encoded list in a single text column.
// Encoding must preserve element order so the form round-trips losslessly.

func EncodeGenres(genres []string) (string, error) {
	if genres == nil {
		genres = []string{}
	}
	encoded, err := json.Marshal(genres)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func DecodeGenres(encoded string) ([]string, error) {
	if encoded == "" {
		return []string{}, nil
	}
	var genres []string
	if err := json.Unmarshal([]byte(encoded), &genres); err != nil {
		return nil, apperrors.ErrInvalidInput
	}
	return genres, nil
}

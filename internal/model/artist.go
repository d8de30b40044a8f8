package model

import "time"

// Artist is a performer that can be booked into shows.
type Artist struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Genres             string    `json:"genres" db:"genres"` // JSON-encoded ordered list, see genres.go
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Phone              string    `json:"phone" db:"phone"`
	Website            *string   `json:"website,omitempty" db:"website"`
	FacebookLink       *string   `json:"facebook_link,omitempty" db:"facebook_link"`
	SeekingVenue       bool      `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription *string   `json:"seeking_description,omitempty" db:"seeking_description"`
	ImageLink          *string   `json:"image_link,omitempty" db:"image_link"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateArtistParams struct {
	Name         *string
	Genres       *string
	City         *string
	State        *string
	Phone        *string
	FacebookLink *string
}

type ArtistSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistSearchResults is the payload of POST /artists/search.
type ArtistSearchResults struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// ArtistPage is the detail view model, the mirror of VenuePage: each show
// resolves the venue side instead of the artist side.
type ArtistPage struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	Genres             []string        `json:"genres"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Phone              string          `json:"phone"`
	Website            *string         `json:"website,omitempty"`
	FacebookLink       *string         `json:"facebook_link,omitempty"`
	SeekingVenue       bool            `json:"seeking_venue"`
	SeekingDescription *string         `json:"seeking_description,omitempty"`
	ImageLink          *string         `json:"image_link,omitempty"`
	PastShows          []ShowWithVenue `json:"past_shows"`
	UpcomingShows      []ShowWithVenue `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

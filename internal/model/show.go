package model

import "time"

// Show books one artist into one venue at a start time. Shows are
// create-only: there is no update or delete path.
type Show struct {
	ID        int       `json:"id" db:"id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	StartTime string    `json:"start_time" db:"start_time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ShowWithArtist is one row of a venue page's show lists.
type ShowWithArtist struct {
	ArtistID        int     `json:"artist_id"`
	ArtistName      string  `json:"artist_name"`
	ArtistImageLink *string `json:"artist_image_link,omitempty"`
	StartTime       string  `json:"start_time"`
}

// ShowWithVenue is one row of an artist page's show lists.
type ShowWithVenue struct {
	VenueID        int     `json:"venue_id"`
	VenueName      string  `json:"venue_name"`
	VenueImageLink *string `json:"venue_image_link,omitempty"`
	StartTime      string  `json:"start_time"`
}

// ShowListing is one row of GET /shows: the show joined with both of its
// counterpart entities.
type ShowListing struct {
	VenueID         int     `json:"venue_id"`
	VenueName       string  `json:"venue_name"`
	ArtistID        int     `json:"artist_id"`
	ArtistName      string  `json:"artist_name"`
	ArtistImageLink *string `json:"artist_image_link,omitempty"`
	StartTime       string  `json:"start_time"`
}

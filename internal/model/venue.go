package model

import "time"

// Venue is a physical location that hosts shows.
type Venue struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Genres             string    `json:"genres" db:"genres"` // JSON-encoded ordered list, see genres.go
	Address            string    `json:"address" db:"address"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Phone              string    `json:"phone" db:"phone"`
	Website            *string   `json:"website,omitempty" db:"website"`
	FacebookLink       *string   `json:"facebook_link,omitempty" db:"facebook_link"`
	SeekingTalent      bool      `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription *string   `json:"seeking_description,omitempty" db:"seeking_description"`
	ImageLink          *string   `json:"image_link,omitempty" db:"image_link"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateVenueParams struct {
	Name         *string
	Genres       *string
	Address      *string
	City         *string
	State        *string
	Phone        *string
	FacebookLink *string
}

// VenueSummary is the listing/search row: the venue plus how many of its
// shows are still upcoming.
type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups the venues of one (city, state) pair. Grouping by city
// alone would collapse same-named cities in different states.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueSearchResults is the payload of POST /venues/search.
type VenueSearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// VenuePage is the detail view model: the venue's own fields with decoded
// genres and its shows partitioned into past and upcoming.
type VenuePage struct {
	ID                 int              `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	Address            string           `json:"address"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            *string          `json:"website,omitempty"`
	FacebookLink       *string          `json:"facebook_link,omitempty"`
	SeekingTalent      bool             `json:"seeking_talent"`
	SeekingDescription *string          `json:"seeking_description,omitempty"`
	ImageLink          *string          `json:"image_link,omitempty"`
	PastShows          []ShowWithArtist `json:"past_shows"`
	UpcomingShows      []ShowWithArtist `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// Package showtime parses show start times and classifies a show as past
// or upcoming relative to a reference date.
package showtime

import (
	"fmt"
	"time"

	apperrors "gig-booking-directory/pkg/app_errors"
)

type Class int

const (
	Past Class = iota
	Upcoming
)

func (c Class) String() string {
	if c == Past {
		return "past"
	}
	return "upcoming"
}

// Accepted start-time layouts, tried in order.
var layouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse converts a stored start time into a time.Time. Malformed input is
// rejected with ErrInvalidTimestamp instead of producing undefined ordering.
func Parse(startTime string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, startTime); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidTimestamp, startTime)
}

// Classify compares a show's start time to the reference date at calendar
// day granularity. A show on the reference day itself counts as upcoming.
func Classify(startTime string, today time.Time) (Class, error) {
	start, err := Parse(startTime)
	if err != nil {
		return Past, err
	}
	if beforeDate(start, today) {
		return Past, nil
	}
	return Upcoming, nil
}

// beforeDate reports whether a falls on an earlier calendar day than b,
// comparing date components only so differing locations don't skew results.
func beforeDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

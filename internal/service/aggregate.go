package service

import (
	"errors"
	"time"

	"gig-booking-directory/internal/model"
	"gig-booking-directory/internal/showtime"
	apperrors "gig-booking-directory/pkg/app_errors"
	"gig-booking-directory/pkg/logger"

	"go.uber.org/zap"
)

// upcomingCounts tallies how many shows are upcoming relative to today,
// keyed by the given show field (venue or artist id). Shows whose start
// time does not parse are skipped with a warning; one bad row must not
// take down a whole listing page.
func upcomingCounts(shows []*model.Show, key func(*model.Show) int, today time.Time) map[int]int {
	counts := make(map[int]int)
	for _, show := range shows {
		class, err := showtime.Classify(show.StartTime, today)
		if err != nil {
			logAggregateSkip(show, err)
			continue
		}
		if class == showtime.Upcoming {
			counts[key(show)]++
		}
	}
	return counts
}

func logAggregateSkip(show *model.Show, err error) {
	logger.WithComponent("service").Warn("Skipping show in aggregate",
		zap.Int("show_id", show.ID),
		zap.Error(err),
	)
}

// isDangling reports whether a counterpart lookup failed because the
// referenced entity is gone, as opposed to a storage fault.
func isDangling(err error) bool {
	return errors.Is(err, apperrors.ErrVenueNotFound) || errors.Is(err, apperrors.ErrArtistNotFound)
}

package service

import (
	"time"

	repoMocks "gig-booking-directory/test/internal/mocks/repositories"
)

// fixedNow pins "today" for classification so the fixtures never age out.
func fixedNow() time.Time {
	return time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
}

func setupRepoMocks() (*repoMocks.VenueRepositoryMock, *repoMocks.ArtistRepositoryMock, *repoMocks.ShowRepositoryMock) {
	return repoMocks.NewVenueRepositoryMock(),
		repoMocks.NewArtistRepositoryMock(),
		repoMocks.NewShowRepositoryMock()
}

func strPtr(s string) *string {
	return &s
}

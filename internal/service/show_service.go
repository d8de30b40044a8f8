package service

import (
	"context"
	"fmt"

	"gig-booking-directory/internal/model"
	"gig-booking-directory/internal/repository"
	"gig-booking-directory/internal/showtime"
	apperrors "gig-booking-directory/pkg/app_errors"
)

type ShowService interface {
	// List joins every show with its venue and artist.
	List(ctx context.Context) ([]model.ShowListing, error)
	Create(ctx context.Context, show *model.Show) (*model.Show, error)
}

type ShowServiceImpl struct {
	repo       repository.ShowRepository
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
}

func NewShowService(
	repo repository.ShowRepository,
	venueRepo repository.VenueRepository,
	artistRepo repository.ArtistRepository,
) ShowService {
	return &ShowServiceImpl{
		repo:       repo,
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
	}
}

func (s *ShowServiceImpl) List(ctx context.Context) ([]model.ShowListing, error) {
	shows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]model.ShowListing, 0, len(shows))
	for _, show := range shows {
		venue, err := s.venueRepo.FindByID(ctx, show.VenueID)
		if err != nil {
			if isDangling(err) {
				logAggregateSkip(show, err)
				continue
			}
			return nil, err
		}
		artist, err := s.artistRepo.FindByID(ctx, show.ArtistID)
		if err != nil {
			if isDangling(err) {
				logAggregateSkip(show, err)
				continue
			}
			return nil, err
		}

		listings = append(listings, model.ShowListing{
			VenueID:         venue.ID,
			VenueName:       venue.Name,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}

	return listings, nil
}

func (s *ShowServiceImpl) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	if _, err := showtime.Parse(show.StartTime); err != nil {
		return nil, err
	}

	// reject dangling references up front; the shows foreign keys back
	// this up inside the insert itself
	if _, err := s.venueRepo.FindByID(ctx, show.VenueID); err != nil {
		if isDangling(err) {
			return nil, fmt.Errorf("%w: venue %d", apperrors.ErrDanglingReference, show.VenueID)
		}
		return nil, err
	}
	if _, err := s.artistRepo.FindByID(ctx, show.ArtistID); err != nil {
		if isDangling(err) {
			return nil, fmt.Errorf("%w: artist %d", apperrors.ErrDanglingReference, show.ArtistID)
		}
		return nil, err
	}

	return s.repo.Create(ctx, show)
}

package service

import (
	"context"
	"time"

	"gig-booking-directory/internal/model"
	"gig-booking-directory/internal/repository"
	"gig-booking-directory/internal/search"
	"gig-booking-directory/internal/showtime"
)

type ArtistService interface {
	List(ctx context.Context) ([]*model.Artist, error)
	Search(ctx context.Context, query string) (*model.ArtistSearchResults, error)
	GetPage(ctx context.Context, id int) (*model.ArtistPage, error)
	// Get returns the stored artist without aggregation, for edit forms.
	Get(ctx context.Context, id int) (*model.Artist, error)
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error)
}

type ArtistServiceImpl struct {
	repo      repository.ArtistRepository
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	now       func() time.Time
}

func NewArtistService(
	repo repository.ArtistRepository,
	venueRepo repository.VenueRepository,
	showRepo repository.ShowRepository,
	now func() time.Time,
) ArtistService {
	if now == nil {
		now = time.Now
	}
	return &ArtistServiceImpl{
		repo:      repo,
		venueRepo: venueRepo,
		showRepo:  showRepo,
		now:       now,
	}
}

func (s *ArtistServiceImpl) List(ctx context.Context) ([]*model.Artist, error) {
	return s.repo.List(ctx)
}

func (s *ArtistServiceImpl) Search(ctx context.Context, query string) (*model.ArtistSearchResults, error) {
	artists, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := search.Filter(artists,
		func(a *model.Artist) int { return a.ID },
		func(a *model.Artist) string { return a.Name },
		query,
	)

	shows, err := s.showRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := upcomingCounts(shows, func(show *model.Show) int { return show.ArtistID }, s.now())

	results := &model.ArtistSearchResults{
		Count: len(matched),
		Data:  make([]model.ArtistSummary, 0, len(matched)),
	}
	for _, artist := range matched {
		results.Data = append(results.Data, model.ArtistSummary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: counts[artist.ID],
		})
	}

	return results, nil
}

func (s *ArtistServiceImpl) GetPage(ctx context.Context, id int) (*model.ArtistPage, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	genres, err := model.DecodeGenres(artist.Genres)
	if err != nil {
		return nil, err
	}

	shows, err := s.showRepo.ListByArtistID(ctx, id)
	if err != nil {
		return nil, err
	}

	page := &model.ArtistPage{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             genres,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          make([]model.ShowWithVenue, 0),
		UpcomingShows:      make([]model.ShowWithVenue, 0),
	}

	today := s.now()
	for _, show := range shows {
		class, err := showtime.Classify(show.StartTime, today)
		if err != nil {
			logAggregateSkip(show, err)
			continue
		}

		venue, err := s.venueRepo.FindByID(ctx, show.VenueID)
		if err != nil {
			// a dangling counterpart is omitted rather than failing the page
			if isDangling(err) {
				logAggregateSkip(show, err)
				continue
			}
			return nil, err
		}

		entry := model.ShowWithVenue{
			VenueID:        venue.ID,
			VenueName:      venue.Name,
			VenueImageLink: venue.ImageLink,
			StartTime:      show.StartTime,
		}
		if class == showtime.Past {
			page.PastShows = append(page.PastShows, entry)
		} else {
			page.UpcomingShows = append(page.UpcomingShows, entry)
		}
	}

	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)

	return page, nil
}

func (s *ArtistServiceImpl) Get(ctx context.Context, id int) (*model.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArtistServiceImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	return s.repo.Create(ctx, artist)
}

func (s *ArtistServiceImpl) Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error) {
	return s.repo.Update(ctx, id, params)
}

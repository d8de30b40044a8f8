package service

import (
	"context"
	"time"

	"gig-booking-directory/internal/model"
	"gig-booking-directory/internal/repository"
	"gig-booking-directory/internal/search"
	"gig-booking-directory/internal/showtime"
)

type VenueService interface {
	// ListAreas groups all venues by (city, state) with upcoming-show counts.
	ListAreas(ctx context.Context) ([]model.VenueArea, error)
	Search(ctx context.Context, query string) (*model.VenueSearchResults, error)
	GetPage(ctx context.Context, id int) (*model.VenuePage, error)
	// Get returns the stored venue without aggregation, for edit forms.
	Get(ctx context.Context, id int) (*model.Venue, error)
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error)
	Delete(ctx context.Context, id int) error
}

type VenueServiceImpl struct {
	repo       repository.VenueRepository
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	now        func() time.Time
}

func NewVenueService(
	repo repository.VenueRepository,
	artistRepo repository.ArtistRepository,
	showRepo repository.ShowRepository,
	now func() time.Time,
) VenueService {
	if now == nil {
		now = time.Now
	}
	return &VenueServiceImpl{
		repo:       repo,
		artistRepo: artistRepo,
		showRepo:   showRepo,
		now:        now,
	}
}

func (s *VenueServiceImpl) ListAreas(ctx context.Context) ([]model.VenueArea, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	shows, err := s.showRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := upcomingCounts(shows, func(show *model.Show) int { return show.VenueID }, s.now())

	type areaKey struct{ city, state string }
	indexes := make(map[areaKey]int)
	areas := make([]model.VenueArea, 0)

	for _, venue := range venues {
		key := areaKey{venue.City, venue.State}
		idx, ok := indexes[key]
		if !ok {
			idx = len(areas)
			indexes[key] = idx
			areas = append(areas, model.VenueArea{City: venue.City, State: venue.State})
		}
		areas[idx].Venues = append(areas[idx].Venues, model.VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}

	return areas, nil
}

func (s *VenueServiceImpl) Search(ctx context.Context, query string) (*model.VenueSearchResults, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := search.Filter(venues,
		func(v *model.Venue) int { return v.ID },
		func(v *model.Venue) string { return v.Name },
		query,
	)

	shows, err := s.showRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := upcomingCounts(shows, func(show *model.Show) int { return show.VenueID }, s.now())

	results := &model.VenueSearchResults{
		Count: len(matched),
		Data:  make([]model.VenueSummary, 0, len(matched)),
	}
	for _, venue := range matched {
		results.Data = append(results.Data, model.VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}

	return results, nil
}

func (s *VenueServiceImpl) GetPage(ctx context.Context, id int) (*model.VenuePage, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	genres, err := model.DecodeGenres(venue.Genres)
	if err != nil {
		return nil, err
	}

	shows, err := s.showRepo.ListByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	page := &model.VenuePage{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             genres,
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          make([]model.ShowWithArtist, 0),
		UpcomingShows:      make([]model.ShowWithArtist, 0),
	}

	today := s.now()
	for _, show := range shows {
		class, err := showtime.Classify(show.StartTime, today)
		if err != nil {
			logAggregateSkip(show, err)
			continue
		}

		artist, err := s.artistRepo.FindByID(ctx, show.ArtistID)
		if err != nil {
			// a dangling counterpart is omitted rather than failing the page
			if isDangling(err) {
				logAggregateSkip(show, err)
				continue
			}
			return nil, err
		}

		entry := model.ShowWithArtist{
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       show.StartTime,
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

func (s *VenueServiceImpl) Get(ctx context.Context, id int) (*model.Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VenueServiceImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	return s.repo.Create(ctx, venue)
}

func (s *VenueServiceImpl) Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *VenueServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

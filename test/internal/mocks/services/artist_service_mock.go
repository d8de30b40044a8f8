package services

import (
	"context"

	"gig-booking-directory/internal/model"

	"github.com/stretchr/testify/mock"
)

type ArtistServiceMock struct {
	mock.Mock
}

func NewArtistServiceMock() *ArtistServiceMock {
	return &ArtistServiceMock{}
}

func (m *ArtistServiceMock) List(ctx context.Context) ([]*model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Search(ctx context.Context, query string) (*model.ArtistSearchResults, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArtistSearchResults), args.Error(1)
}

func (m *ArtistServiceMock) GetPage(ctx context.Context, id int) (*model.ArtistPage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArtistPage), args.Error(1)
}

func (m *ArtistServiceMock) Get(ctx context.Context, id int) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

package repositories

import (
	"context"

	"gig-booking-directory/internal/model"

	"github.com/stretchr/testify/mock"
)

type ArtistRepositoryMock struct {
	mock.Mock
}

func NewArtistRepositoryMock() *ArtistRepositoryMock {
	return &ArtistRepositoryMock{}
}

func (m *ArtistRepositoryMock) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) List(ctx context.Context) ([]*model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

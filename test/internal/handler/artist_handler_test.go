package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gig-booking-directory/internal/handler"
	"gig-booking-directory/internal/model"
	apperrors "gig-booking-directory/pkg/app_errors"
	mocks "gig-booking-directory/test/internal/mocks/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupArtistTestRouter(mockService *mocks.ArtistServiceMock) *gin.Engine {
	router := newTestRouter()
	handler.NewArtistHandler(mockService).RegisterRoutes(router)
	return router
}

func artistForm() url.Values {
	return url.Values{
		"name":   {"Guns N Petals"},
		"genres": {"Rock n Roll"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"phone":  {"326-123-5000"},
	}
}

func TestArtistList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewArtistServiceMock()
		router := setupArtistTestRouter(mockService)

		artists := []*model.Artist{
			{ID: 4, Name: "Guns N Petals"},
			{ID: 5, Name: "Matt Quevedo"},
		}
		mockService.On("List", mock.Anything).Return(artists, nil).Once()

		req, _ := http.NewRequest("GET", "/artists", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Guns N Petals")
		assert.Contains(t, w.Body.String(), "Matt Quevedo")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrInternalServerError", func(t *testing.T) {
		mockService := mocks.NewArtistServiceMock()
		router := setupArtistTestRouter(mockService)

		mockService.On("List", mock.Anything).Return(nil, apperrors.ErrInternalServerError).Once()

		req, _ := http.NewRequest("GET", "/artists", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestArtistSearch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewArtistServiceMock()
		router := setupArtistTestRouter(mockService)

		results := &model.ArtistSearchResults{
			Count: 1,
			Data:  []model.ArtistSummary{{ID: 6, Name: "The Wild Sax Band", NumUpcomingShows: 2}},
		}
		mockService.On("Search", mock.Anything, "band").Return(results, nil).Once()

		req := createFormHTTPRequest("POST", "/artists/search", url.Values{"search_term": {"band"}})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Wild Sax Band")
		mockService.AssertExpectations(t)
	})
}

func TestArtistDetail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewArtistServiceMock()
		router := setupArtistTestRouter(mockService)

		page := &model.ArtistPage{
			ID:     4,
			Name:   "Guns N Petals",
			Genres: []string{"Rock n Roll"},
			City:   "San Francisco",
			State:  "CA",
			PastShows: []model.ShowWithVenue{
				{VenueID: 1, VenueName: "The Musical Hop", StartTime: "2019-05-21 21:30:00"},
			},
			PastShowsCount: 1,
		}
		mockService.On("GetPage", mock.Anything, 4).Return(page, nil).Once()

		req, _ := http.NewRequest("GET", "/artists/4", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Guns N Petals")
		assert.Contains(t, w.Body.String(), "The Musical Hop")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrArtistNotFound", func(t *testing.T) {
		mockService := mocks.NewArtistServiceMock()
		router := setupArtistTestRouter(mockService)

		mockService.On("GetPage", mock.Anything, 42).Return(nil, apperrors.ErrArtistNotFound).Once()

		req, _ := http.NewRequest("GET", "/artists/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestArtistCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewArtistServiceMock()
		router := setupArtistTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(&model.Artist{ID: 4, Name: "Guns N Petals"}, nil).Once()

		req := createFormHTTPRequest("POST", "/artists/create", artistForm())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Artist Guns N Petals was successfully listed!")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing required field", func(t *testing.T) {
		mockService := mocks.NewArtistServiceMock()
		router := setupArtistTestRouter(mockService)

		form := artistForm()
		form.Del("city")
		req := createFormHTTPRequest("POST", "/artists/create", form)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "could not be listed")
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestArtistEdit(t *testing.T) {
	t.Run("Success - redirects to detail page", func(t *testing.T) {
		mockService := mocks.NewArtistServiceMock()
		router := setupArtistTestRouter(mockService)

		mockService.On("Update", mock.Anything, 4, mock.Anything).Return(&model.Artist{ID: 4}, nil).Once()

		req := createFormHTTPRequest("POST", "/artists/4/edit", artistForm())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/artists/4", w.Header().Get("Location"))
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrArtistNotFound", func(t *testing.T) {
		mockService := mocks.NewArtistServiceMock()
		router := setupArtistTestRouter(mockService)

		mockService.On("Update", mock.Anything, 42, mock.Anything).Return(nil, apperrors.ErrArtistNotFound).Once()

		req := createFormHTTPRequest("POST", "/artists/42/edit", artistForm())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

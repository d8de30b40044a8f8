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

func setupVenueTestRouter(mockService *mocks.VenueServiceMock) *gin.Engine {
	router := newTestRouter()
	handler.NewVenueHandler(mockService).RegisterRoutes(router)
	return router
}

func venueForm() url.Values {
	return url.Values{
		"name":    {"The Musical Hop"},
		"genres":  {"Jazz", "Folk"},
		"address": {"1015 Folsom Street"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"phone":   {"123-123-1234"},
	}
}

func TestVenueList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		areas := []model.VenueArea{
			{City: "San Francisco", State: "CA", Venues: []model.VenueSummary{
				{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
			}},
		}
		mockService.On("ListAreas", mock.Anything).Return(areas, nil).Once()

		req, _ := http.NewRequest("GET", "/venues", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Musical Hop")
		assert.Contains(t, w.Body.String(), "San Francisco")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrInternalServerError", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		mockService.On("ListAreas", mock.Anything).Return(nil, apperrors.ErrInternalServerError).Once()

		req, _ := http.NewRequest("GET", "/venues", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestVenueSearch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		results := &model.VenueSearchResults{
			Count: 1,
			Data:  []model.VenueSummary{{ID: 2, Name: "The Dueling Pianos Bar"}},
		}
		mockService.On("Search", mock.Anything, "piano").Return(results, nil).Once()

		req := createFormHTTPRequest("POST", "/venues/search", url.Values{"search_term": {"piano"}})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Dueling Pianos Bar")
		assert.Contains(t, w.Body.String(), "piano")
		mockService.AssertExpectations(t)
	})
}

func TestVenueDetail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		page := &model.VenuePage{
			ID:     1,
			Name:   "The Musical Hop",
			Genres: []string{"Jazz", "Folk"},
			City:   "San Francisco",
			State:  "CA",
			UpcomingShows: []model.ShowWithArtist{
				{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: "2035-01-01 20:00:00"},
			},
			UpcomingShowsCount: 1,
		}
		mockService.On("GetPage", mock.Anything, 1).Return(page, nil).Once()

		req, _ := http.NewRequest("GET", "/venues/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Musical Hop")
		assert.Contains(t, w.Body.String(), "Guns N Petals")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrVenueNotFound", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		mockService.On("GetPage", mock.Anything, 42).Return(nil, apperrors.ErrVenueNotFound).Once()

		req, _ := http.NewRequest("GET", "/venues/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - non-numeric id", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		req, _ := http.NewRequest("GET", "/venues/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertNotCalled(t, "GetPage")
	})
}

func TestVenueCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(&model.Venue{ID: 1, Name: "The Musical Hop"}, nil).Once()

		req := createFormHTTPRequest("POST", "/venues/create", venueForm())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Venue The Musical Hop was successfully listed!")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing required field", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		form := venueForm()
		form.Del("name")
		req := createFormHTTPRequest("POST", "/venues/create", form)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "could not be listed")
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - storage fault renders failure notice", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInternalServerError).Once()

		req := createFormHTTPRequest("POST", "/venues/create", venueForm())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "An error occurred. Venue The Musical Hop could not be listed.")
		mockService.AssertExpectations(t)
	})
}

func TestVenueEdit(t *testing.T) {
	t.Run("Success - redirects to detail page", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		mockService.On("Update", mock.Anything, 1, mock.Anything).Return(&model.Venue{ID: 1}, nil).Once()

		req := createFormHTTPRequest("POST", "/venues/1/edit", venueForm())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/venues/1", w.Header().Get("Location"))
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrVenueNotFound", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		mockService.On("Update", mock.Anything, 42, mock.Anything).Return(nil, apperrors.ErrVenueNotFound).Once()

		req := createFormHTTPRequest("POST", "/venues/42/edit", venueForm())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestVenueEditForm(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		venue := &model.Venue{ID: 1, Name: "The Musical Hop", Genres: `["Jazz","Folk"]`}
		mockService.On("Get", mock.Anything, 1).Return(venue, nil).Once()

		req, _ := http.NewRequest("GET", "/venues/1/edit", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Musical Hop")
		mockService.AssertExpectations(t)
	})
}

func TestVenueDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 1).Return(nil).Once()

		req, _ := http.NewRequest("DELETE", "/venues/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Venue was successfully deleted.")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrVenueNotFound", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 42).Return(apperrors.ErrVenueNotFound).Once()

		req, _ := http.NewRequest("DELETE", "/venues/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrVenueHasShows", func(t *testing.T) {
		mockService := mocks.NewVenueServiceMock()
		router := setupVenueTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 1).Return(apperrors.ErrVenueHasShows).Once()

		req, _ := http.NewRequest("DELETE", "/venues/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "still has shows")
		mockService.AssertExpectations(t)
	})
}

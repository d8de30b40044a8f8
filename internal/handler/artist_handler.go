package handler

import (
	"errors"
	"fmt"
	"net/http"

	"gig-booking-directory/internal/model"
	"gig-booking-directory/internal/service"
	apperrors "gig-booking-directory/pkg/app_errors"
	"gig-booking-directory/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ArtistHandler struct {
	service service.ArtistService
}

func NewArtistHandler(service service.ArtistService) *ArtistHandler {
	return &ArtistHandler{service: service}
}

func (h *ArtistHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/artists", h.List)
	r.POST("/artists/search", h.Search)
	r.GET("/artists/create", h.CreateForm)
	r.POST("/artists/create", h.Create)
	r.GET("/artists/:id", h.Detail)
	r.GET("/artists/:id/edit", h.EditForm)
	r.POST("/artists/:id/edit", h.Edit)
}

// ArtistForm is the field set shared by the create and edit submissions.
type ArtistForm struct {
	Name         string   `form:"name" binding:"required"`
	Genres       []string `form:"genres"`
	City         string   `form:"city" binding:"required"`
	State        string   `form:"state" binding:"required"`
	Phone        string   `form:"phone" binding:"required"`
	FacebookLink string   `form:"facebook_link"`
}

func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.HTML(http.StatusOK, "artists.html", gin.H{"Artists": artists})
}

func (h *ArtistHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := h.service.Search(c, term)
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}
	c.HTML(http.StatusOK, "artist_search.html", gin.H{
		"Results":    results,
		"SearchTerm": term,
	})
}

func (h *ArtistHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	page, err := h.service.GetPage(c, id)
	if err != nil {
		h.handleError(c, err, "Detail")
		return
	}
	c.HTML(http.StatusOK, "artist_detail.html", gin.H{"Artist": page})
}

func (h *ArtistHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "artist_new.html", nil)
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	genres, err := model.EncodeGenres(form.Genres)
	if err != nil {
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	artist := &model.Artist{
		Name:         form.Name,
		Genres:       genres,
		City:         form.City,
		State:        form.State,
		Phone:        form.Phone,
		FacebookLink: optional(form.FacebookLink),
		SeekingVenue: true,
	}

	if _, err := h.service.Create(c, artist); err != nil {
		h.logError(err, "Create")
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	renderHomeNotice(c, fmt.Sprintf("Artist %s was successfully listed!", form.Name))
}

func (h *ArtistHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	artist, err := h.service.Get(c, id)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	genres, err := model.DecodeGenres(artist.Genres)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	c.HTML(http.StatusOK, "artist_edit.html", gin.H{
		"Artist": artist,
		"Genres": genres,
	})
}

func (h *ArtistHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return
	}

	genres, err := model.EncodeGenres(form.Genres)
	if err != nil {
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return
	}

	params := model.UpdateArtistParams{
		Name:         &form.Name,
		Genres:       &genres,
		City:         &form.City,
		State:        &form.State,
		Phone:        &form.Phone,
		FacebookLink: &form.FacebookLink,
	}

	if _, err := h.service.Update(c, id, params); err != nil {
		if errors.Is(err, apperrors.ErrArtistNotFound) {
			renderNotFound(c)
			return
		}
		h.logError(err, "Edit")
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d", id))
}

func (h *ArtistHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrArtistNotFound):
		log.Warn("Artist not found")
		renderNotFound(c)
	default:
		log.Error("Unexpected error")
		renderServerError(c)
	}
}

func (h *ArtistHandler) logError(err error, operation string) {
	logger.WithComponent("handler").Error("Mutation failed",
		zap.String("operation", operation), zap.Error(err))
}

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

type VenueHandler struct {
	service service.VenueService
}

func NewVenueHandler(service service.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

func (h *VenueHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/venues", h.List)
	r.POST("/venues/search", h.Search)
	r.GET("/venues/create", h.CreateForm)
	r.POST("/venues/create", h.Create)
	r.GET("/venues/:id", h.Detail)
	r.DELETE("/venues/:id", h.Delete)
	r.GET("/venues/:id/edit", h.EditForm)
	r.POST("/venues/:id/edit", h.Edit)
}

// VenueForm is the field set shared by the create and edit submissions.
type VenueForm struct {
	Name         string   `form:"name" binding:"required"`
	Genres       []string `form:"genres"`
	Address      string   `form:"address" binding:"required"`
	City         string   `form:"city" binding:"required"`
	State        string   `form:"state" binding:"required"`
	Phone        string   `form:"phone" binding:"required"`
	FacebookLink string   `form:"facebook_link"`
}

func (h *VenueHandler) List(c *gin.Context) {
	areas, err := h.service.ListAreas(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.HTML(http.StatusOK, "venues.html", gin.H{"Areas": areas})
}

func (h *VenueHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := h.service.Search(c, term)
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}
	c.HTML(http.StatusOK, "venue_search.html", gin.H{
		"Results":    results,
		"SearchTerm": term,
	})
}

func (h *VenueHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	page, err := h.service.GetPage(c, id)
	if err != nil {
		h.handleError(c, err, "Detail")
		return
	}
	c.HTML(http.StatusOK, "venue_detail.html", gin.H{"Venue": page})
}

func (h *VenueHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "venue_new.html", nil)
}

func (h *VenueHandler) Create(c *gin.Context) {
	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	genres, err := model.EncodeGenres(form.Genres)
	if err != nil {
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	venue := &model.Venue{
		Name:          form.Name,
		Genres:        genres,
		Address:       form.Address,
		City:          form.City,
		State:         form.State,
		Phone:         form.Phone,
		FacebookLink:  optional(form.FacebookLink),
		SeekingTalent: true,
	}

	if _, err := h.service.Create(c, venue); err != nil {
		h.logError(err, "Create")
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	renderHomeNotice(c, fmt.Sprintf("Venue %s was successfully listed!", form.Name))
}

func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c, id)
	switch {
	case err == nil:
		renderHomeNotice(c, "Venue was successfully deleted.")
	case errors.Is(err, apperrors.ErrVenueNotFound):
		renderNotFound(c)
	case errors.Is(err, apperrors.ErrVenueHasShows):
		renderHomeNotice(c, "Venue could not be deleted because it still has shows.")
	default:
		h.logError(err, "Delete")
		renderHomeNotice(c, "An error occurred. Venue could not be deleted.")
	}
}

func (h *VenueHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	venue, err := h.service.Get(c, id)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	genres, err := model.DecodeGenres(venue.Genres)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	c.HTML(http.StatusOK, "venue_edit.html", gin.H{
		"Venue":  venue,
		"Genres": genres,
	})
}

func (h *VenueHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return
	}

	genres, err := model.EncodeGenres(form.Genres)
	if err != nil {
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return
	}

	params := model.UpdateVenueParams{
		Name:         &form.Name,
		Genres:       &genres,
		Address:      &form.Address,
		City:         &form.City,
		State:        &form.State,
		Phone:        &form.Phone,
		FacebookLink: &form.FacebookLink,
	}

	if _, err := h.service.Update(c, id, params); err != nil {
		if errors.Is(err, apperrors.ErrVenueNotFound) {
			renderNotFound(c)
			return
		}
		h.logError(err, "Edit")
		renderHomeNotice(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d", id))
}

func (h *VenueHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrVenueNotFound):
		log.Warn("Venue not found")
		renderNotFound(c)
	default:
		log.Error("Unexpected error")
		renderServerError(c)
	}
}

func (h *VenueHandler) logError(err error, operation string) {
	logger.WithComponent("handler").Error("Mutation failed",
		zap.String("operation", operation), zap.Error(err))
}

package handler

import (
	"errors"
	"net/http"

	"gig-booking-directory/internal/model"
	"gig-booking-directory/internal/service"
	apperrors "gig-booking-directory/pkg/app_errors"
	"gig-booking-directory/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShowHandler struct {
	service service.ShowService
}

func NewShowHandler(service service.ShowService) *ShowHandler {
	return &ShowHandler{service: service}
}

func (h *ShowHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/shows", h.List)
	r.GET("/shows/create", h.CreateForm)
	r.POST("/shows/create", h.Create)
}

type ShowForm struct {
	VenueID   int    `form:"venue_id" binding:"required"`
	ArtistID  int    `form:"artist_id" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
}

func (h *ShowHandler) List(c *gin.Context) {
	shows, err := h.service.List(c)
	if err != nil {
		logger.WithComponent("handler").Error("Unexpected error",
			zap.String("operation", "List"), zap.Error(err))
		renderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "shows.html", gin.H{"Shows": shows})
}

func (h *ShowHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "show_new.html", nil)
}

func (h *ShowHandler) Create(c *gin.Context) {
	var form ShowForm
	if err := c.ShouldBind(&form); err != nil {
		renderHomeNotice(c, "An error occurred. Show could not be listed.")
		return
	}

	show := &model.Show{
		VenueID:   form.VenueID,
		ArtistID:  form.ArtistID,
		StartTime: form.StartTime,
	}

	_, err := h.service.Create(c, show)
	switch {
	case err == nil:
		renderHomeNotice(c, "Show was successfully listed!")
	case errors.Is(err, apperrors.ErrDanglingReference):
		renderHomeNotice(c, "Show could not be listed: the venue or artist does not exist.")
	case errors.Is(err, apperrors.ErrInvalidTimestamp):
		renderHomeNotice(c, "Show could not be listed: the start time is not a valid date.")
	default:
		logger.WithComponent("handler").Error("Mutation failed",
			zap.String("operation", "Create"), zap.Error(err))
		renderHomeNotice(c, "An error occurred. Show could not be listed.")
	}
}

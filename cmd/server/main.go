package main

import (
	"log"
	"net/http"

	"gig-booking-directory/config"
	"gig-booking-directory/internal/database"
	"gig-booking-directory/internal/handler"
	"gig-booking-directory/internal/middleware"
	"gig-booking-directory/internal/repository"
	"gig-booking-directory/internal/service"
	"gig-booking-directory/internal/view"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	venueRepo := repository.NewVenueRepository(pool)
	artistRepo := repository.NewArtistRepository(pool)
	showRepo := repository.NewShowRepository(pool)

	venueService := service.NewVenueService(venueRepo, artistRepo, showRepo, nil)
	artistService := service.NewArtistService(artistRepo, venueRepo, showRepo, nil)
	showService := service.NewShowService(showRepo, venueRepo, artistRepo)

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.HTML(http.StatusInternalServerError, "error_500.html", nil)
	}))
	router.SetHTMLTemplate(view.Templates())

	handler.RegisterPageRoutes(router)
	handler.NewVenueHandler(venueService).RegisterRoutes(router)
	handler.NewArtistHandler(artistService).RegisterRoutes(router)
	handler.NewShowHandler(showService).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

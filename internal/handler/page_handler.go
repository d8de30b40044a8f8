package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes wires the home page and the 404 fallback.
func RegisterPageRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", gin.H{})
	})
	r.NoRoute(func(c *gin.Context) {
		renderNotFound(c)
	})
}

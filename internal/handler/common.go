package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id route parameter. Non-numeric ids render the 404
// page, matching how unknown routes behave.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderNotFound(c)
		return 0, false
	}
	return id, true
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error_404.html", nil)
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error_500.html", nil)
}

// renderHomeNotice finishes a mutation request: the user gets a normal
// page back with a success or failure notice, never a raw fault.
func renderHomeNotice(c *gin.Context, notice string) {
	c.HTML(http.StatusOK, "home.html", gin.H{"Notice": notice})
}

// optional converts an optional form value into the model's pointer form.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

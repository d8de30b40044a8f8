package handler

import (
	"net/http"
	"net/url"
	"strings"

	"gig-booking-directory/internal/view"

	"github.com/gin-gonic/gin"
)

// newTestRouter builds an engine with the HTML templates loaded, the way
// main wires the real server.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(view.Templates())
	return router
}

// create HTTP request with form-encoded body
func createFormHTTPRequest(method, target string, values url.Values) *http.Request {
	req, err := http.NewRequest(method, target, strings.NewReader(values.Encode()))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

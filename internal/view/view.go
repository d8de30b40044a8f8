// Package view carries the embedded HTML templates. Handlers hand Gin a
// template name plus a data structure; presentation stays out of the
// service layer entirely.
package view

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}

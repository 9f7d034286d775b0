package view

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates holds the HTML pages of the application, addressed by file name,
// e.g. "contact.html".
var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Templates returns the parsed HTML pages of the application.
func Templates() *template.Template {
	return templates
}

// Render writes the detail page of a contact.
func Render(w io.Writer, d Detail) error {
	return templates.ExecuteTemplate(w, "contact.html", d)
}

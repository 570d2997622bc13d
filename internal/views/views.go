// Package views holds the HTML templates rendered by the handlers.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

// Template names, as passed to gin's c.HTML.
const (
	TodoList    = "todo_list.tmpl"
	TodoAdd     = "todo_add.tmpl"
	Inscription = "inscription.tmpl"
	Error       = "error.tmpl"
)

// Load parses every page template together with the shared layout.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.tmpl")
}

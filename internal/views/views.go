// Package views renders the application's pages. It implements Fiber's
// Views contract over html/template files embedded in the binary, so the
// binary ships with no on-disk template directory.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates
var templatesFS embed.FS

// Engine is an html/template backed implementation of fiber.Views.
type Engine struct {
	templates *template.Template
}

// New creates a new, unloaded Engine. Fiber calls Load during app startup.
func New() *Engine {
	return &Engine{}
}

// Load parses every embedded template. Page templates are named by their
// define blocks ("tasks/index", "sessions/new", ...) and share the
// "header" and "footer" partials.
func (e *Engine) Load() error {
	templates, err := template.ParseFS(templatesFS, "templates/*.html", "templates/*/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	e.templates = templates
	return nil
}

// Render executes the named page template with the given bind data.
func (e *Engine) Render(w io.Writer, name string, bind interface{}, layouts ...string) error {
	if e.templates == nil {
		return fmt.Errorf("views engine is not loaded")
	}
	if err := e.templates.ExecuteTemplate(w, name, bind); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

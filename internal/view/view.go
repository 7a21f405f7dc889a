// Package view renders data payloads into HTML pages.
package view

import (
	"html/template"
	"net/http"

	"eventman/web"

	"github.com/rs/zerolog"
)

type Renderer struct {
	templates *template.Template
	logger    zerolog.Logger
}

func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	templates, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{
		templates: templates,
		logger:    logger.With().Str("component", "view").Logger(),
	}, nil
}

// Render writes the named page template with the given data. On a template
// error a 500 is sent and the error logged; the caller should not write
// anything further.
func (v *Renderer) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.templates.ExecuteTemplate(w, name, data); err != nil {
		v.logger.Error().Err(err).Str("template", name).Msg("template error")
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

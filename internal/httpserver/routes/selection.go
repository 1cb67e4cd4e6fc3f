package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/writewell/writewell/internal/httpserver/deps"
	"github.com/writewell/writewell/internal/httpserver/handlers"
)

func init() { Register(registerSelection) }

func registerSelection(r chi.Router, d deps.Deps) {
	r.Get("/api/selection", handlers.GetSelection(d))
	r.Put("/api/selection", handlers.SetSelection(d))
}

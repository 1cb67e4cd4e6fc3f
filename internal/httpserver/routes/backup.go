package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/writewell/writewell/internal/httpserver/deps"
	"github.com/writewell/writewell/internal/httpserver/handlers"
)

func init() { Register(registerBackup) }

func registerBackup(r chi.Router, d deps.Deps) {
	r.Post("/api/backup", handlers.TriggerBackup(d))
	r.Post("/api/restore", handlers.Restore(d))
}

package handlers

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/writewell/writewell/internal/httpserver/deps"
	"github.com/writewell/writewell/internal/logger"
	"github.com/writewell/writewell/internal/store"
)

type themePayload struct {
	Theme string `json:"theme"`
}

func (p themePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Theme, validation.Required, validation.In(store.ThemeDark, store.ThemeLight)),
	)
}

// GetTheme returns the persisted theme preference ("" when unset).
func GetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, themePayload{Theme: d.Store.Theme()})
	}
}

// SetTheme persists the theme preference.
func SetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req themePayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := d.Store.SetTheme(r.Context(), req.Theme); err != nil {
			if errors.Is(err, store.ErrInvalidTheme) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			d.Logger.Error("failed to persist theme", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist theme")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

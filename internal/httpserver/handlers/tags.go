package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/writewell/writewell/internal/httpserver/deps"
	"github.com/writewell/writewell/internal/logger"
)

const maxTagNameLength = 100

type createTagRequest struct {
	Name string `json:"name"`
}

func (req createTagRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, maxTagNameLength)),
	)
}

// ListTags returns all tags.
func ListTags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.Tags())
	}
}

// CreateTag returns the existing tag when the name matches one
// case-insensitively, else inserts a new tag.
func CreateTag(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTagRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		tag, err := d.Store.CreateTag(r.Context(), req.Name)
		if err != nil {
			d.Logger.Error("failed to create tag", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist tag")
			return
		}
		writeJSON(w, http.StatusOK, tag)
	}
}

// DeleteTag removes the tag and strips it from every note.
func DeleteTag(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ok, err := d.Store.DeleteTag(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete tag",
				logger.String("tag_id", id),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist deletion")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "tag not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

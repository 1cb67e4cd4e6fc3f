package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/writewell/writewell/internal/domain"
	"github.com/writewell/writewell/internal/httpserver/deps"
	"github.com/writewell/writewell/internal/logger"
)

const maxFolderNameLength = 255

type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

// Validate allows an empty name (the store falls back to the default)
// but bounds its length.
func (req createFolderRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Length(0, maxFolderNameLength)),
	)
}

// ListFolders returns all folders.
func ListFolders(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.Folders())
	}
}

// CreateFolder inserts a new folder.
func CreateFolder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createFolderRequest
		if r.ContentLength > 0 {
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		folder, err := d.Store.CreateFolder(r.Context(), req.Name, req.ParentID)
		if err != nil {
			d.Logger.Error("failed to create folder", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist folder")
			return
		}
		writeJSON(w, http.StatusCreated, folder)
	}
}

// UpdateFolder merges a partial update (e.g. rename) into the folder.
func UpdateFolder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch domain.FolderPatch
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if patch.Name != nil {
			if err := validation.Validate(*patch.Name, validation.Length(0, maxFolderNameLength)); err != nil {
				writeError(w, http.StatusBadRequest, "name: "+err.Error())
				return
			}
		}

		ok, err := d.Store.UpdateFolder(r.Context(), id, patch)
		if err != nil {
			d.Logger.Error("failed to update folder",
				logger.String("folder_id", id),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist folder")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "folder not found")
			return
		}

		folder, _ := d.Store.Folder(id)
		writeJSON(w, http.StatusOK, folder)
	}
}

// DeleteFolder removes the folder and reassigns its notes to root.
func DeleteFolder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ok, err := d.Store.DeleteFolder(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete folder",
				logger.String("folder_id", id),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist deletion")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "folder not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

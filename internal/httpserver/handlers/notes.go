package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/writewell/writewell/internal/domain"
	"github.com/writewell/writewell/internal/httpserver/deps"
	"github.com/writewell/writewell/internal/logger"
)

type createNoteRequest struct {
	FolderID *string `json:"folderId"`
}

type pushContentRequest struct {
	Content string `json:"content"`
}

// ListNotes returns all notes, optionally filtered by folder or tag.
// ?folder=root selects unfiled notes; ?tag=<name> matches the exact
// stored tag name.
func ListNotes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tag := r.URL.Query().Get("tag"); tag != "" {
			writeJSON(w, http.StatusOK, d.Store.NotesByTag(tag))
			return
		}
		if folder := r.URL.Query().Get("folder"); folder != "" {
			var folderID *string
			if folder != "root" {
				folderID = &folder
			}
			writeJSON(w, http.StatusOK, d.Store.NotesByFolder(folderID))
			return
		}
		writeJSON(w, http.StatusOK, d.Store.Notes())
	}
}

// CreateNote inserts a new note with default values and selects it.
func CreateNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNoteRequest
		if r.ContentLength > 0 {
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
		}

		note, err := d.Store.CreateNote(r.Context(), req.FolderID)
		if err != nil {
			d.Logger.Error("failed to create note", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist note")
			return
		}
		writeJSON(w, http.StatusCreated, note)
	}
}

// GetNote returns one note by id.
func GetNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		note, ok := d.Store.Note(id)
		if !ok {
			writeError(w, http.StatusNotFound, "note not found")
			return
		}
		writeJSON(w, http.StatusOK, note)
	}
}

// UpdateNote merges a partial update into the note.
func UpdateNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch domain.NotePatch
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		ok, err := d.Store.UpdateNote(r.Context(), id, patch)
		if err != nil {
			d.Logger.Error("failed to update note",
				logger.String("note_id", id),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist note")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "note not found")
			return
		}

		note, _ := d.Store.Note(id)
		writeJSON(w, http.StatusOK, note)
	}
}

// DeleteNote removes the note.
func DeleteNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ok, err := d.Store.DeleteNote(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete note",
				logger.String("note_id", id),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist deletion")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "note not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// PushContent feeds a content edit into the debounced autosaver. The
// edit commits after the quiet period, or earlier when the active note
// switches or the server shuts down.
func PushContent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := d.Store.Note(id); !ok {
			writeError(w, http.StatusNotFound, "note not found")
			return
		}

		var req pushContentRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if err := d.Autosaver.Push(id, req.Content); err != nil {
			writeError(w, http.StatusServiceUnavailable, "editor session is closed")
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

package handlers

import (
	"net/http"

	"github.com/writewell/writewell/internal/domain"
	"github.com/writewell/writewell/internal/httpserver/deps"
)

type selectionResponse struct {
	NoteID   *string `json:"noteId"`
	FolderID *string `json:"folderId"`
}

type selectionRequest struct {
	NoteID   domain.OptionalString `json:"noteId"`
	FolderID domain.OptionalString `json:"folderId"`
}

// GetSelection returns the active note and folder ids.
func GetSelection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, folderID := d.Store.Selection()
		writeJSON(w, http.StatusOK, selectionResponse{
			NoteID:   noteID,
			FolderID: folderID,
		})
	}
}

// SetSelection updates whichever selections the payload names; a JSON
// null clears that selection. Switching the active note flushes any
// pending content edit first so a stale debounce timer cannot land on
// the wrong note.
func SetSelection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if req.NoteID.Present {
			_ = d.Autosaver.Flush()
			d.Store.SelectNote(req.NoteID.Value)
		}
		if req.FolderID.Present {
			d.Store.SelectFolder(req.FolderID.Value)
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

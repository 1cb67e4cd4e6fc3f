package handlers

import (
	"net/http"

	"github.com/writewell/writewell/internal/backup"
	"github.com/writewell/writewell/internal/httpserver/deps"
	"github.com/writewell/writewell/internal/logger"
)

// TriggerBackup requests an immediate snapshot export.
func TriggerBackup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.BackupTrigger == nil {
			writeError(w, http.StatusConflict, "backups are not configured")
			return
		}

		select {
		case d.BackupTrigger <- struct{}{}:
			d.Logger.Info("manual backup triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
		default:
			d.Logger.Warn("backup already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeError(w, http.StatusTooManyRequests, "backup already in progress")
		}
	}
}

// Restore replaces the store's collections with the configured
// snapshot file's contents.
func Restore(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.BackupFile == "" {
			writeError(w, http.StatusConflict, "backups are not configured")
			return
		}

		if err := backup.Restore(r.Context(), d.Store, d.Logger, d.BackupFile); err != nil {
			d.Logger.Error("restore failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "restore failed")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

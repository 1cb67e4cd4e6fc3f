package deps

import (
	"time"

	"github.com/writewell/writewell/internal/logger"
	"github.com/writewell/writewell/internal/store"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time // for testing, defaults to time.Now
	Store         *store.Store     // the domain store, hydrated before the server starts
	Autosaver     *store.Autosaver // debounced content commits
	AllowedCIDRS  []string         // IPs allowed to access the server (empty = no filtering)
	BackupFile    string           // path for restore requests ("" = backups disabled)
	BackupTrigger chan struct{}    // channel to trigger a manual backup (nil if backups disabled)
}

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/writewell/writewell/internal/domain"
	"github.com/writewell/writewell/internal/logger"
)

// DefaultDebounce is the quiet period after the last content push
// before the buffered edit commits to the store.
const DefaultDebounce = 300 * time.Millisecond

// ErrAutosaverClosed is returned by Push after Close.
var ErrAutosaverClosed = errors.New("autosaver is closed")

// Autosaver buffers free-text content edits for one note at a time and
// commits them through Store.UpdateNote after a quiet period, so typing
// does not persist the notes collection on every keystroke.
//
// The buffer is per-note-session: pushing content for a different note
// first flushes the pending note synchronously, so a stale timer can
// never overwrite the wrong note. Close flushes and guarantees nothing
// writes afterwards.
type Autosaver struct {
	store *Store
	log   logger.Logger
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	noteID  string
	content string
	pending bool
	closed  bool

	// gen invalidates timers that already fired but lost the race for
	// the lock against a newer Push; a stale fire must not commit early.
	gen uint64
}

// NewAutosaver creates an autosaver committing into store after delay
// of no further pushes. A non-positive delay falls back to
// DefaultDebounce.
func NewAutosaver(store *Store, log logger.Logger, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Autosaver{
		store: store,
		log:   log,
		delay: delay,
	}
}

// Push buffers the latest content for noteID and (re)arms the quiet
// period timer. Switching notes flushes the previous note's pending
// edit before buffering the new one.
func (a *Autosaver) Push(noteID, content string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrAutosaverClosed
	}

	if a.pending && a.noteID != noteID {
		if err := a.commitLocked(); err != nil {
			a.log.Warn("failed to flush previous note before switch",
				logger.String("note_id", a.noteID),
				logger.Error(err))
		}
	}

	a.noteID = noteID
	a.content = content
	a.pending = true

	if a.timer != nil {
		a.timer.Stop()
	}
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(a.delay, func() { a.fire(gen) })
	return nil
}

// Flush commits any pending edit immediately.
func (a *Autosaver) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
	}
	if !a.pending {
		return nil
	}
	return a.commitLocked()
}

// Close flushes the pending edit and cancels the timer. Subsequent
// pushes fail and the fired timer becomes a no-op, so teardown can
// never be followed by a write.
func (a *Autosaver) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	if a.timer != nil {
		a.timer.Stop()
	}
	if !a.pending {
		return nil
	}
	return a.commitLocked()
}

// fire runs when the quiet period elapses. A fire carrying a stale
// generation was superseded by a later Push and does nothing.
func (a *Autosaver) fire(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || !a.pending || gen != a.gen {
		return
	}
	if err := a.commitLocked(); err != nil {
		a.log.Warn("autosave commit failed",
			logger.String("note_id", a.noteID),
			logger.Error(err))
	}
}

// commitLocked writes the buffered content through the store. Caller
// holds a.mu.
func (a *Autosaver) commitLocked() error {
	a.pending = false

	content := a.content
	ok, err := a.store.UpdateNote(context.Background(), a.noteID, domain.NotePatch{
		Content: &content,
	})
	if err != nil {
		return err
	}
	if !ok {
		// The note was deleted while the edit was pending.
		a.log.Debug("autosave target no longer exists",
			logger.String("note_id", a.noteID))
	}
	return nil
}

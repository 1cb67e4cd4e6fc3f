package store

import (
	"context"
	"testing"
	"time"

	"github.com/writewell/writewell/internal/logger"
)

const testDebounce = 20 * time.Millisecond

func TestAutosaverCommitsAfterQuietPeriod(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	note, _ := st.CreateNote(ctx, nil)
	a := NewAutosaver(st, logger.Nop(), testDebounce)
	defer a.Close()

	if err := a.Push(note.ID, "draft one"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	// Not yet committed inside the quiet period.
	got, _ := st.Note(note.ID)
	if got.Content != "" {
		t.Errorf("content = %q before debounce elapsed, want empty", got.Content)
	}

	waitFor(t, func() bool {
		got, _ := st.Note(note.ID)
		return got.Content == "draft one"
	})
}

func TestAutosaverCoalescesRapidPushes(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	note, _ := st.CreateNote(ctx, nil)
	a := NewAutosaver(st, logger.Nop(), testDebounce)
	defer a.Close()

	for _, content := range []string{"a", "ab", "abc"} {
		if err := a.Push(note.ID, content); err != nil {
			t.Fatalf("Push() error = %v", err)
		}
	}

	waitFor(t, func() bool {
		got, _ := st.Note(note.ID)
		return got.Content == "abc"
	})
}

func TestAutosaverFlushesOnNoteSwitch(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	first, _ := st.CreateNote(ctx, nil)
	second, _ := st.CreateNote(ctx, nil)
	a := NewAutosaver(st, logger.Nop(), time.Hour) // never fires on its own
	defer a.Close()

	if err := a.Push(first.ID, "first draft"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if err := a.Push(second.ID, "second draft"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	// Switching notes committed the first synchronously.
	got, _ := st.Note(first.ID)
	if got.Content != "first draft" {
		t.Errorf("first note content = %q after switch, want flushed draft", got.Content)
	}
	got, _ = st.Note(second.ID)
	if got.Content != "" {
		t.Errorf("second note content = %q, want still buffered", got.Content)
	}
}

func TestAutosaverFlush(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	note, _ := st.CreateNote(ctx, nil)
	a := NewAutosaver(st, logger.Nop(), time.Hour)
	defer a.Close()

	if err := a.Push(note.ID, "draft"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if err := a.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	got, _ := st.Note(note.ID)
	if got.Content != "draft" {
		t.Errorf("content = %q after flush, want draft", got.Content)
	}

	// Flushing with nothing pending is fine.
	if err := a.Flush(); err != nil {
		t.Errorf("Flush() with nothing pending error = %v", err)
	}
}

func TestAutosaverCloseFlushesAndRejects(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	note, _ := st.CreateNote(ctx, nil)
	a := NewAutosaver(st, logger.Nop(), time.Hour)

	if err := a.Push(note.ID, "final"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got, _ := st.Note(note.ID)
	if got.Content != "final" {
		t.Errorf("content = %q after close, want final", got.Content)
	}

	if err := a.Push(note.ID, "too late"); err != ErrAutosaverClosed {
		t.Errorf("Push() after close error = %v, want ErrAutosaverClosed", err)
	}
	got, _ = st.Note(note.ID)
	if got.Content != "final" {
		t.Errorf("content = %q, close must prevent later writes", got.Content)
	}

	// Double close is fine.
	if err := a.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestAutosaverStaleTimerDoesNotCommitEarly(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	note, _ := st.CreateNote(ctx, nil)
	a := NewAutosaver(st, logger.Nop(), time.Hour)
	defer a.Close()

	// Two pushes: the first timer may have fired already and be waiting
	// on the lock when the second re-arms. Replaying that first timer
	// must not commit the freshly pushed content before its own quiet
	// period.
	if err := a.Push(note.ID, "first"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	staleGen := a.gen
	if err := a.Push(note.ID, "second"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	a.fire(staleGen)
	got, _ := st.Note(note.ID)
	if got.Content != "" {
		t.Errorf("content = %q after stale fire, want still buffered", got.Content)
	}

	a.fire(a.gen)
	got, _ = st.Note(note.ID)
	if got.Content != "second" {
		t.Errorf("content = %q after current fire, want second", got.Content)
	}
}

func TestAutosaverDeletedNoteIsSilent(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	note, _ := st.CreateNote(ctx, nil)
	a := NewAutosaver(st, logger.Nop(), time.Hour)
	defer a.Close()

	if err := a.Push(note.ID, "doomed"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if _, err := st.DeleteNote(ctx, note.ID); err != nil {
		t.Fatalf("DeleteNote() error = %v", err)
	}

	// Committing against a deleted note must not resurrect it or fail.
	if err := a.Flush(); err != nil {
		t.Errorf("Flush() against deleted note error = %v", err)
	}
	if _, found := st.Note(note.ID); found {
		t.Error("deleted note came back through autosave")
	}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

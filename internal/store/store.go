// Package store owns the authoritative in-memory collections of notes,
// folders and tags, plus the transient selection state. Every mutation
// re-serializes the affected collection(s) through the persistence
// adapter before returning, so durability is visible as soon as the call
// completes.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/writewell/writewell/internal/domain"
	"github.com/writewell/writewell/internal/logger"
	"github.com/writewell/writewell/internal/persist"
)

// Theme values accepted by SetTheme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ErrInvalidTheme is returned by SetTheme for anything other than
// "dark" or "light".
var ErrInvalidTheme = errors.New("theme must be \"dark\" or \"light\"")

// Store is the sole owner of entity identity and relationships.
//
// Mutating operations on an unknown id are silent no-ops; they report
// whether anything matched instead of returning an error. The returned
// error covers persistence failures only.
//
// A note's FolderID always references an existing folder or is nil:
// filing into an unknown folder degrades to root, and deleting a folder
// reassigns its notes to root in the same critical section.
type Store struct {
	mu      sync.RWMutex
	notes   []*domain.Note
	folders []*domain.Folder
	tags    []*domain.Tag
	theme   string

	// Selection is derived state: never persisted, reset by deletions.
	selectedNote   *string
	selectedFolder *string

	adapter *persist.Adapter
	log     logger.Logger
}

// New creates an empty store over the given adapter. Call Hydrate to
// load persisted state.
func New(adapter *persist.Adapter, log logger.Logger) *Store {
	return &Store{
		notes:   []*domain.Note{},
		folders: []*domain.Folder{},
		tags:    []*domain.Tag{},
		adapter: adapter,
		log:     log,
	}
}

// Hydrate loads all collections and the theme preference from the
// adapter. Corrupt or missing data yields empty collections, never an
// error. Called once at startup.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = s.adapter.LoadNotes(ctx)
	s.folders = s.adapter.LoadFolders(ctx)
	s.tags = s.adapter.LoadTags(ctx)
	s.theme = s.adapter.LoadTheme(ctx)

	s.log.Info("store hydrated",
		logger.Int("notes", len(s.notes)),
		logger.Int("folders", len(s.folders)),
		logger.Int("tags", len(s.tags)))
}

// ─────────────────────────────────────────────────────────────────
// Notes
// ─────────────────────────────────────────────────────────────────

// CreateNote inserts a new note with default field values, optionally
// filed under folderID, and makes it the selected note. Filing into an
// unknown folder degrades to root.
func (s *Store) CreateNote(ctx context.Context, folderID *string) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if folderID != nil && s.findFolderLocked(*folderID) == nil {
		s.log.Warn("createNote: unknown folder, filing at root",
			logger.String("folder_id", *folderID))
		folderID = nil
	}

	note := domain.NewNote(folderID)
	s.notes = append(s.notes, note)

	id := note.ID
	s.selectedNote = &id

	if err := s.adapter.SaveNotes(ctx, s.notes); err != nil {
		return nil, err
	}
	return note.Clone(), nil
}

// UpdateNote merges the patch into the matching note, refreshing
// UpdatedAt and clamping FontSize. Reports false if the id is unknown.
func (s *Store) UpdateNote(ctx context.Context, id string, patch domain.NotePatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := s.findNoteLocked(id)
	if note == nil {
		return false, nil
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.FolderID.Present {
		folderID := patch.FolderID.Value
		if folderID != nil && s.findFolderLocked(*folderID) == nil {
			s.log.Warn("updateNote: unknown folder, filing at root",
				logger.String("folder_id", *folderID))
			folderID = nil
		}
		note.FolderID = folderID
	}
	if patch.Tags != nil {
		note.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.FontSize != nil {
		note.FontSize = domain.ClampFontSize(*patch.FontSize)
	}
	note.Touch()

	if err := s.adapter.SaveNotes(ctx, s.notes); err != nil {
		return true, err
	}
	return true, nil
}

// DeleteNote removes the note, clearing the selection if it pointed at
// it. Reports false if the id is unknown.
func (s *Store) DeleteNote(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, n := range s.notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	if s.selectedNote != nil && *s.selectedNote == id {
		s.selectedNote = nil
	}

	if err := s.adapter.SaveNotes(ctx, s.notes); err != nil {
		return true, err
	}
	return true, nil
}

// Note returns a snapshot of the note with the given id.
func (s *Store) Note(id string) (*domain.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note := s.findNoteLocked(id)
	if note == nil {
		return nil, false
	}
	return note.Clone(), true
}

// Notes returns a snapshot of all notes in insertion order.
func (s *Store) Notes() []*domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n.Clone())
	}
	return out
}

// NotesByFolder returns all notes filed under folderID (nil = root).
func (s *Store) NotesByFolder(folderID *string) []*domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Note{}
	for _, n := range s.notes {
		if sameRef(n.FolderID, folderID) {
			out = append(out, n.Clone())
		}
	}
	return out
}

// NotesByTag returns all notes whose tag list contains the exact name
// (case-sensitive).
func (s *Store) NotesByTag(name string) []*domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Note{}
	for _, n := range s.notes {
		if n.HasTag(name) {
			out = append(out, n.Clone())
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────
// Folders
// ─────────────────────────────────────────────────────────────────

// CreateFolder inserts a new folder. An empty name falls back to the
// default; an unknown parent degrades to top level.
func (s *Store) CreateFolder(ctx context.Context, name string, parentID *string) (*domain.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if parentID != nil && s.findFolderLocked(*parentID) == nil {
		s.log.Warn("createFolder: unknown parent, creating at top level",
			logger.String("parent_id", *parentID))
		parentID = nil
	}

	folder := domain.NewFolder(name, parentID)
	s.folders = append(s.folders, folder)

	if err := s.adapter.SaveFolders(ctx, s.folders); err != nil {
		return nil, err
	}
	return folder.Clone(), nil
}

// UpdateFolder merges the patch into the matching folder. Reports false
// if the id is unknown.
func (s *Store) UpdateFolder(ctx context.Context, id string, patch domain.FolderPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder := s.findFolderLocked(id)
	if folder == nil {
		return false, nil
	}

	if patch.Name != nil && *patch.Name != "" {
		folder.Name = *patch.Name
	}
	if patch.ParentID.Present {
		parentID := patch.ParentID.Value
		if parentID != nil && (*parentID == id || s.findFolderLocked(*parentID) == nil) {
			parentID = nil
		}
		folder.ParentID = parentID
	}

	if err := s.adapter.SaveFolders(ctx, s.folders); err != nil {
		return true, err
	}
	return true, nil
}

// DeleteFolder removes the folder and reassigns every note filed under
// it to root, atomically from the caller's perspective: removal and
// cascade happen under one lock before anything persists. Child folders
// are promoted to top level so no dangling parent reference survives.
// Reports false if the id is unknown.
func (s *Store) DeleteFolder(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, f := range s.folders {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	s.folders = append(s.folders[:idx], s.folders[idx+1:]...)
	for _, f := range s.folders {
		if f.ParentID != nil && *f.ParentID == id {
			f.ParentID = nil
		}
	}

	reassigned := 0
	for _, n := range s.notes {
		if n.FolderID != nil && *n.FolderID == id {
			n.FolderID = nil
			n.Touch()
			reassigned++
		}
	}

	if s.selectedFolder != nil && *s.selectedFolder == id {
		s.selectedFolder = nil
	}

	if err := s.adapter.SaveFolders(ctx, s.folders); err != nil {
		return true, err
	}
	if reassigned > 0 {
		if err := s.adapter.SaveNotes(ctx, s.notes); err != nil {
			return true, err
		}
		s.log.Info("folder deleted, notes reassigned to root",
			logger.String("folder_id", id),
			logger.Int("notes", reassigned))
	}
	return true, nil
}

// Folders returns a snapshot of all folders in insertion order.
func (s *Store) Folders() []*domain.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Folder, 0, len(s.folders))
	for _, f := range s.folders {
		out = append(out, f.Clone())
	}
	return out
}

// Folder returns a snapshot of the folder with the given id.
func (s *Store) Folder(id string) (*domain.Folder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folder := s.findFolderLocked(id)
	if folder == nil {
		return nil, false
	}
	return folder.Clone(), true
}

// ─────────────────────────────────────────────────────────────────
// Tags
// ─────────────────────────────────────────────────────────────────

// CreateTag looks the name up case-insensitively and returns the
// existing tag if found, else inserts a new one. Never fails beyond
// persistence errors.
func (s *Store) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tags {
		if t.NameEquals(name) {
			return t.Clone(), nil
		}
	}

	tag := domain.NewTag(name)
	s.tags = append(s.tags, tag)

	if err := s.adapter.SaveTags(ctx, s.tags); err != nil {
		return nil, err
	}
	return tag.Clone(), nil
}

// DeleteTag removes the tag and strips its name from every note's tag
// list. Reports false if the id is unknown.
func (s *Store) DeleteTag(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tags {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	name := s.tags[idx].Name
	s.tags = append(s.tags[:idx], s.tags[idx+1:]...)

	stripped := 0
	for _, n := range s.notes {
		if !n.HasTag(name) {
			continue
		}
		kept := n.Tags[:0]
		for _, t := range n.Tags {
			if t != name {
				kept = append(kept, t)
			}
		}
		n.Tags = kept
		n.Touch()
		stripped++
	}

	if err := s.adapter.SaveTags(ctx, s.tags); err != nil {
		return true, err
	}
	if stripped > 0 {
		if err := s.adapter.SaveNotes(ctx, s.notes); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Counts returns the size of each collection.
func (s *Store) Counts() (notes, folders, tags int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.notes), len(s.folders), len(s.tags)
}

// Tags returns a snapshot of all tags in insertion order.
func (s *Store) Tags() []*domain.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, t.Clone())
	}
	return out
}

// ─────────────────────────────────────────────────────────────────
// Theme
// ─────────────────────────────────────────────────────────────────

// Theme returns the persisted UI theme preference, "" when unset.
func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.theme
}

// SetTheme persists the theme preference. Only "dark" and "light" are
// accepted; anything else is a caller bug and fails loudly.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = theme
	return s.adapter.SaveTheme(ctx, theme)
}

// ─────────────────────────────────────────────────────────────────
// Restore
// ─────────────────────────────────────────────────────────────────

// Restore replaces all collections with the given ones and persists
// them, clearing any selection. Used by backup import.
func (s *Store) Restore(ctx context.Context, notes []*domain.Note, folders []*domain.Folder, tags []*domain.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if notes == nil {
		notes = []*domain.Note{}
	}
	if folders == nil {
		folders = []*domain.Folder{}
	}
	if tags == nil {
		tags = []*domain.Tag{}
	}

	s.notes = notes
	s.folders = folders
	s.tags = tags
	s.selectedNote = nil
	s.selectedFolder = nil

	if err := s.adapter.SaveNotes(ctx, s.notes); err != nil {
		return err
	}
	if err := s.adapter.SaveFolders(ctx, s.folders); err != nil {
		return err
	}
	return s.adapter.SaveTags(ctx, s.tags)
}

// ─────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────

func (s *Store) findNoteLocked(id string) *domain.Note {
	for _, n := range s.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (s *Store) findFolderLocked(id string) *domain.Folder {
	for _, f := range s.folders {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// sameRef compares two optional references by value.
func sameRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Package persist mirrors the store's collections into a kv.Store as
// whole-collection JSON values, one fixed key per collection. Collections
// are small (single-user note sets), so whole-collection overwrite on
// every mutation is the accepted tradeoff; no delta persistence.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/writewell/writewell/internal/domain"
	"github.com/writewell/writewell/internal/kv"
	"github.com/writewell/writewell/internal/logger"
)

// Adapter is the durable mirror of the three collections plus the theme
// preference. A missing or unparsable value degrades to the empty
// collection so a corrupt store can never halt startup.
type Adapter struct {
	kv  kv.Store
	log logger.Logger
}

// NewAdapter creates an adapter over the given backend.
func NewAdapter(store kv.Store, log logger.Logger) *Adapter {
	return &Adapter{
		kv:  store,
		log: log,
	}
}

// LoadNotes reads the notes collection. Never fails: absent or corrupt
// data yields an empty collection.
func (a *Adapter) LoadNotes(ctx context.Context) []*domain.Note {
	var notes []*domain.Note
	if !a.load(ctx, KeyNotes, &notes) || notes == nil {
		return []*domain.Note{}
	}
	return notes
}

// SaveNotes overwrites the persisted notes collection.
func (a *Adapter) SaveNotes(ctx context.Context, notes []*domain.Note) error {
	return a.save(ctx, KeyNotes, notes)
}

// LoadFolders reads the folders collection.
func (a *Adapter) LoadFolders(ctx context.Context) []*domain.Folder {
	var folders []*domain.Folder
	if !a.load(ctx, KeyFolders, &folders) || folders == nil {
		return []*domain.Folder{}
	}
	return folders
}

// SaveFolders overwrites the persisted folders collection.
func (a *Adapter) SaveFolders(ctx context.Context, folders []*domain.Folder) error {
	return a.save(ctx, KeyFolders, folders)
}

// LoadTags reads the tags collection.
func (a *Adapter) LoadTags(ctx context.Context) []*domain.Tag {
	var tags []*domain.Tag
	if !a.load(ctx, KeyTags, &tags) || tags == nil {
		return []*domain.Tag{}
	}
	return tags
}

// SaveTags overwrites the persisted tags collection.
func (a *Adapter) SaveTags(ctx context.Context, tags []*domain.Tag) error {
	return a.save(ctx, KeyTags, tags)
}

// LoadTheme reads the theme preference. Historical data may hold either
// a plain string or a JSON-quoted one; both are accepted. Returns ""
// when unset.
func (a *Adapter) LoadTheme(ctx context.Context) string {
	raw, ok, err := a.kv.Get(ctx, KeyTheme)
	if err != nil {
		a.log.Warn("failed to read theme preference",
			logger.String("key", KeyTheme),
			logger.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			return s
		}
	}
	return raw
}

// SaveTheme overwrites the persisted theme preference.
func (a *Adapter) SaveTheme(ctx context.Context, theme string) error {
	if err := a.kv.Set(ctx, KeyTheme, theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// load deserializes one collection into dst. Reports false on any
// failure so callers discard whatever was partially decoded; a corrupt
// value must degrade to "no data", never to a half-read collection.
func (a *Adapter) load(ctx context.Context, key string, dst interface{}) bool {
	raw, ok, err := a.kv.Get(ctx, key)
	if err != nil {
		a.log.Warn("failed to read collection, starting empty",
			logger.String("key", key),
			logger.Error(err))
		return false
	}
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		a.log.Warn("corrupt collection data, starting empty",
			logger.String("key", key),
			logger.Error(err))
		return false
	}
	return true
}

// save serializes one whole collection and overwrites its key.
func (a *Adapter) save(ctx context.Context, key string, collection interface{}) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %q: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to save collection %q: %w", key, err)
	}
	return nil
}

package persist

import (
	"context"
	"reflect"
	"testing"

	"github.com/writewell/writewell/internal/domain"
	"github.com/writewell/writewell/internal/kv"
	"github.com/writewell/writewell/internal/logger"
)

func newTestAdapter() (*Adapter, kv.Store) {
	backend := kv.NewMemory()
	return NewAdapter(backend, logger.Nop()), backend
}

func TestNotesRoundtrip(t *testing.T) {
	adapter, _ := newTestAdapter()
	ctx := context.Background()

	folderID := "f1"
	notes := []*domain.Note{
		{ID: "n1", Title: "First", Content: "hello", FolderID: &folderID, Tags: []string{"work"}, FontSize: 16, CreatedAt: 100, UpdatedAt: 200},
		{ID: "n2", Title: "Second", FontSize: 12, CreatedAt: 300, UpdatedAt: 300},
	}

	if err := adapter.SaveNotes(ctx, notes); err != nil {
		t.Fatalf("SaveNotes() error = %v", err)
	}

	got := adapter.LoadNotes(ctx)
	if !reflect.DeepEqual(got, notes) {
		t.Errorf("LoadNotes() = %+v, want %+v", got, notes)
	}
}

func TestFoldersRoundtrip(t *testing.T) {
	adapter, _ := newTestAdapter()
	ctx := context.Background()

	parent := "f1"
	folders := []*domain.Folder{
		{ID: "f1", Name: "Drafts", CreatedAt: 100},
		{ID: "f2", Name: "Archive", ParentID: &parent, CreatedAt: 200},
	}

	if err := adapter.SaveFolders(ctx, folders); err != nil {
		t.Fatalf("SaveFolders() error = %v", err)
	}
	got := adapter.LoadFolders(ctx)
	if !reflect.DeepEqual(got, folders) {
		t.Errorf("LoadFolders() = %+v, want %+v", got, folders)
	}
}

func TestTagsRoundtrip(t *testing.T) {
	adapter, _ := newTestAdapter()
	ctx := context.Background()

	tags := []*domain.Tag{
		{ID: "t1", Name: "work", Color: "#ff0000"},
		{ID: "t2", Name: "ideas"},
	}

	if err := adapter.SaveTags(ctx, tags); err != nil {
		t.Fatalf("SaveTags() error = %v", err)
	}
	got := adapter.LoadTags(ctx)
	if !reflect.DeepEqual(got, tags) {
		t.Errorf("LoadTags() = %+v, want %+v", got, tags)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	adapter, _ := newTestAdapter()
	ctx := context.Background()

	if got := adapter.LoadNotes(ctx); len(got) != 0 {
		t.Errorf("LoadNotes() on empty store = %v, want empty", got)
	}
	if got := adapter.LoadFolders(ctx); len(got) != 0 {
		t.Errorf("LoadFolders() on empty store = %v, want empty", got)
	}
	if got := adapter.LoadTags(ctx); len(got) != 0 {
		t.Errorf("LoadTags() on empty store = %v, want empty", got)
	}
	if got := adapter.LoadTheme(ctx); got != "" {
		t.Errorf("LoadTheme() on empty store = %q, want empty", got)
	}
}

func TestLoadCorruptDataStartsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", "{not json"},
		{"wrong top-level type", `{"id":"n1"}`},
		// Valid JSON, wrong element type: decoding fails mid-array and
		// the partially decoded prefix must be discarded too.
		{"wrong element type", `[{"id":"n1","title":"ok"},{"id":5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, backend := newTestAdapter()
			ctx := context.Background()

			if err := backend.Set(ctx, KeyNotes, tt.raw); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got := adapter.LoadNotes(ctx)
			if got == nil {
				t.Fatal("LoadNotes() on corrupt data returned nil, want empty slice")
			}
			if len(got) != 0 {
				t.Errorf("LoadNotes() on corrupt data = %v notes, want empty", len(got))
			}
		})
	}
}

func TestThemeRoundtrip(t *testing.T) {
	adapter, _ := newTestAdapter()
	ctx := context.Background()

	if err := adapter.SaveTheme(ctx, "dark"); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}
	if got := adapter.LoadTheme(ctx); got != "dark" {
		t.Errorf("LoadTheme() = %q, want dark", got)
	}
}

func TestThemeAcceptsQuotedLegacyValue(t *testing.T) {
	adapter, backend := newTestAdapter()
	ctx := context.Background()

	// Older data may carry the JSON-encoded form.
	if err := backend.Set(ctx, KeyTheme, `"light"`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := adapter.LoadTheme(ctx); got != "light" {
		t.Errorf("LoadTheme() = %q, want light", got)
	}
}

func TestFixedStorageKeys(t *testing.T) {
	adapter, backend := newTestAdapter()
	ctx := context.Background()

	if err := adapter.SaveNotes(ctx, []*domain.Note{}); err != nil {
		t.Fatalf("SaveNotes() error = %v", err)
	}
	if err := adapter.SaveFolders(ctx, []*domain.Folder{}); err != nil {
		t.Fatalf("SaveFolders() error = %v", err)
	}
	if err := adapter.SaveTags(ctx, []*domain.Tag{}); err != nil {
		t.Fatalf("SaveTags() error = %v", err)
	}
	if err := adapter.SaveTheme(ctx, "dark"); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}

	for _, key := range []string{"writewell_notes", "writewell_folders", "writewell_tags", "writewell-theme"} {
		if _, ok, _ := backend.Get(ctx, key); !ok {
			t.Errorf("expected key %q to exist in backend", key)
		}
	}
}

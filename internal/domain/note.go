package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultNoteTitle is assigned to notes created without a title.
	DefaultNoteTitle = "Untitled Note"

	// DefaultFontSize is the initial per-note font size in pixels.
	DefaultFontSize = 16
	// MinFontSize and MaxFontSize bound the per-note font size.
	MinFontSize = 12
	MaxFontSize = 48
)

// Note represents a single writable document with a title, an opaque
// rich-text body, optional folder placement, and tags.
//
// A Note is uniquely identified by its ID within the notes collection.
type Note struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier (UUID v4).
	ID string `json:"id" yaml:"id"`

	// ─────────────────────────────
	// User-editable content
	// ─────────────────────────────

	// Title is the display title.
	Title string `json:"title" yaml:"title"`

	// Content is the serialized rich-text document. The store treats it
	// as an opaque markup string.
	Content string `json:"content" yaml:"content"`

	// FolderID references the containing Folder. nil means the note is
	// unfiled (root).
	FolderID *string `json:"folderId" yaml:"folderId"`

	// Tags holds tag names (not tag IDs) in insertion order.
	Tags []string `json:"tags" yaml:"tags"`

	// FontSize is the per-note font size in pixels, always within
	// [MinFontSize, MaxFontSize].
	FontSize int `json:"fontSize" yaml:"fontSize"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is the creation time in milliseconds since epoch.
	CreatedAt int64 `json:"createdAt" yaml:"createdAt"`

	// UpdatedAt is refreshed on every mutation except selection changes.
	UpdatedAt int64 `json:"updatedAt" yaml:"updatedAt"`
}

// NewNote creates a Note with a generated ID and default field values,
// optionally filed under folderID.
func NewNote(folderID *string) *Note {
	now := NowMillis()
	return &Note{
		ID:        uuid.New().String(),
		Title:     DefaultNoteTitle,
		Content:   "",
		FolderID:  folderID,
		Tags:      []string{},
		FontSize:  DefaultFontSize,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the UpdatedAt timestamp.
func (n *Note) Touch() {
	n.UpdatedAt = NowMillis()
}

// HasTag reports whether the note carries the exact tag name
// (case-sensitive match against the stored name).
func (n *Note) HasTag(name string) bool {
	for _, t := range n.Tags {
		if t == name {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the note.
func (n *Note) Clone() *Note {
	c := *n
	if n.FolderID != nil {
		id := *n.FolderID
		c.FolderID = &id
	}
	c.Tags = append([]string(nil), n.Tags...)
	return &c
}

// ClampFontSize saturates size at the nearest font size bound.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// NowMillis returns the current time in milliseconds since epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

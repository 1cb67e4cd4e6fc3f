package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Tag is a named label attachable to any number of notes. Tag names are
// unique case-insensitively at creation time; notes reference tags by
// name, never by ID.
type Tag struct {
	// ID is the canonical unique identifier (UUID v4).
	ID string `json:"id" yaml:"id"`

	// Name is the display name, stored with its original casing.
	Name string `json:"name" yaml:"name"`

	// Color is optional presentation metadata, carried but unused by
	// store logic.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// NewTag creates a Tag with a generated ID.
func NewTag(name string) *Tag {
	return &Tag{
		ID:   uuid.New().String(),
		Name: name,
	}
}

// NameEquals reports whether the tag's name matches, ignoring case.
func (t *Tag) NameEquals(name string) bool {
	return strings.EqualFold(t.Name, name)
}

// Clone returns an independent copy of the tag.
func (t *Tag) Clone() *Tag {
	c := *t
	return &c
}

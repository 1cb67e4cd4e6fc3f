package domain

import (
	"bytes"
	"encoding/json"
)

// OptionalString tracks presence and value for JSON merge-patch semantics.
// A plain *string cannot distinguish "field absent" from "field is null",
// which matters for FolderID where null means "move to root":
//   - Present=false: field absent, leave unchanged
//   - Present=true, Value=nil: field is JSON null, clear the reference
//   - Present=true, Value=&s: field has a value
type OptionalString struct {
	Present bool
	Value   *string
}

// Set returns an OptionalString carrying the given value.
func Set(s *string) OptionalString {
	return OptionalString{Present: true, Value: s}
}

// UnmarshalJSON implements json.Unmarshaler. Being called at all means
// the field was present in the payload.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// NotePatch describes a partial update to a Note. Nil pointer fields are
// left untouched. FontSize is clamped by the store, never rejected.
type NotePatch struct {
	Title    *string        `json:"title"`
	Content  *string        `json:"content"`
	FolderID OptionalString `json:"folderId"`
	Tags     *[]string      `json:"tags"`
	FontSize *int           `json:"fontSize"`
}

// FolderPatch describes a partial update to a Folder.
type FolderPatch struct {
	Name     *string        `json:"name"`
	ParentID OptionalString `json:"parentId"`
}

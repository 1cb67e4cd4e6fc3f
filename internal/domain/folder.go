package domain

import "github.com/google/uuid"

// DefaultFolderName is assigned to folders created without a name.
const DefaultFolderName = "New Folder"

// Folder is a named container that groups notes. The model permits
// nesting through ParentID, though typical usage is one level deep.
type Folder struct {
	// ID is the canonical unique identifier (UUID v4).
	ID string `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// ParentID references the parent Folder. nil means top level.
	ParentID *string `json:"parentId" yaml:"parentId"`

	// CreatedAt is the creation time in milliseconds since epoch.
	CreatedAt int64 `json:"createdAt" yaml:"createdAt"`
}

// NewFolder creates a Folder with a generated ID. An empty name falls
// back to DefaultFolderName.
func NewFolder(name string, parentID *string) *Folder {
	if name == "" {
		name = DefaultFolderName
	}
	return &Folder{
		ID:        uuid.New().String(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: NowMillis(),
	}
}

// Clone returns an independent copy of the folder.
func (f *Folder) Clone() *Folder {
	c := *f
	if f.ParentID != nil {
		id := *f.ParentID
		c.ParentID = &id
	}
	return &c
}

// Package backup writes YAML snapshots of all collections and restores
// the store from them.
package backup

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/writewell/writewell/internal/domain"
)

// Snapshot is one full export of the store's collections.
type Snapshot struct {
	ExportedAt time.Time        `yaml:"exportedAt"`
	Notes      []*domain.Note   `yaml:"notes"`
	Folders    []*domain.Folder `yaml:"folders"`
	Tags       []*domain.Tag    `yaml:"tags"`
}

// WriteFile serializes the snapshot to path atomically (temp file +
// rename).
func (s *Snapshot) WriteFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Load reads and parses a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot yaml: %w", err)
	}
	return &snap, nil
}

package memory

import (
	"context"

	"github.com/aretw0/gridsync/pkg/core"
)

// Snapshot implements core.SnapshotSource over a fixed string.
type Snapshot struct {
	text string
}

// NewSnapshot creates a source that always returns the given CSV text.
func NewSnapshot(text string) *Snapshot {
	return &Snapshot{text: text}
}

// Load implements core.SnapshotSource.
func (s *Snapshot) Load(ctx context.Context) (string, error) {
	return s.text, nil
}

// ComponentType implements introspection.Component.
func (s *Snapshot) ComponentType() string {
	return "memory-snapshot"
}

var _ core.SnapshotSource = (*Snapshot)(nil)

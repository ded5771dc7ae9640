// Package memory provides an in-memory GridStore.
//
// It backs tests and dry runs: the grid is a plain slice of rows, every
// write is recorded for inspection, and writes can be made to fail after
// a threshold to simulate host quota limits.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/gridsync/pkg/core"
)

// ErrWriteLimit is returned once the configured write budget is exhausted.
var ErrWriteLimit = errors.New("write limit exceeded")

// Write records one applied point write for later inspection.
type Write struct {
	Row   int
	Col   int
	Value string
}

// Store implements core.GridStore over an in-memory grid.
// Row 0 of the grid is the header row; data-row position p maps to grid
// row p.
type Store struct {
	mu     sync.RWMutex
	grid   [][]any
	writes []Write

	// FailAfter, when > 0, makes every write past the first FailAfter
	// writes fail with ErrWriteLimit. Zero means unlimited.
	FailAfter int
}

// New creates a store holding a copy of the given grid (header row first).
func New(grid [][]any) *Store {
	s := &Store{grid: make([][]any, len(grid))}
	for i, row := range grid {
		s.grid[i] = append([]any(nil), row...)
	}
	return s
}

// ReadGrid returns a copy of the current grid.
func (s *Store) ReadGrid(ctx context.Context) ([][]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]any, len(s.grid))
	for i, row := range s.grid {
		out[i] = append([]any(nil), row...)
	}
	return out, nil
}

// WriteCell applies a single point write, growing the grid as needed.
func (s *Store) WriteCell(ctx context.Context, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailAfter > 0 && len(s.writes) >= s.FailAfter {
		return ErrWriteLimit
	}

	// Position p is the p-th row below the header, i.e. grid index p.
	for len(s.grid) <= row {
		s.grid = append(s.grid, nil)
	}
	for len(s.grid[row]) <= col {
		s.grid[row] = append(s.grid[row], nil)
	}
	s.grid[row][col] = value

	s.writes = append(s.writes, Write{Row: row, Col: col, Value: value})
	return nil
}

// Writes returns every write applied so far, in order.
func (s *Store) Writes() []Write {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Write(nil), s.writes...)
}

// Cell returns the stringified current value at (row, col), or "" when
// the coordinates fall outside the grid.
func (s *Store) Cell(row, col int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if row < 0 || row >= len(s.grid) || col < 0 || col >= len(s.grid[row]) {
		return ""
	}
	return core.Stringify(s.grid[row][col])
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Rows   int `json:"rows"`
	Writes int `json:"writes"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{Rows: len(s.grid), Writes: len(s.writes)}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-grid"
}

var _ core.GridStore = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

// Package xlsx provides a GridStore backed by an Excel workbook file.
//
// The workbook is loaded into memory via excelize; point writes mutate
// the in-memory workbook and Flush saves it back to disk. A sibling
// ".lock" file guards against concurrent gridsync processes touching the
// same workbook.
package xlsx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/introspection"
	"github.com/xuri/excelize/v2"

	"github.com/aretw0/gridsync/pkg/core"
)

// Config holds the configuration for the workbook store.
type Config struct {
	// Path to the .xlsx workbook.
	Path string
	// Sheet to reconcile. Empty means the workbook's first sheet.
	Sheet string
	// AutoCreate creates the workbook (and sheet) when missing.
	AutoCreate bool
	Logger     *slog.Logger
}

// Store implements core.GridStore over an excelize workbook.
type Store struct {
	mu     sync.Mutex
	file   *excelize.File
	sheet  string
	config Config
	dirty  bool
	unlock func()
}

// Open loads (or creates) the workbook and acquires its lockfile.
// The caller must Close the store to release both.
func Open(config Config) (*Store, error) {
	unlock, err := acquireLock(config.Path + ".lock")
	if err != nil {
		return nil, err
	}

	file, created, err := openWorkbook(config)
	if err != nil {
		unlock()
		return nil, err
	}

	sheet := config.Sheet
	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	idx, err := file.GetSheetIndex(sheet)
	if err != nil {
		file.Close()
		unlock()
		return nil, fmt.Errorf("invalid sheet name %q: %w", sheet, err)
	}
	if idx < 0 {
		if !config.AutoCreate {
			file.Close()
			unlock()
			return nil, fmt.Errorf("sheet %q not found in %s", sheet, config.Path)
		}
		if _, err := file.NewSheet(sheet); err != nil {
			file.Close()
			unlock()
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
		created = true
	}

	if config.Logger != nil {
		config.Logger.Debug("workbook opened", "path", config.Path, "sheet", sheet)
	}

	// A freshly created workbook counts as dirty so the next Flush
	// persists it even when no cell write lands.
	return &Store{file: file, sheet: sheet, config: config, dirty: created, unlock: unlock}, nil
}

func openWorkbook(config Config) (*excelize.File, bool, error) {
	if _, err := os.Stat(config.Path); err != nil {
		if !os.IsNotExist(err) {
			return nil, false, err
		}
		if !config.AutoCreate {
			return nil, false, fmt.Errorf("workbook does not exist: %s", config.Path)
		}
		return excelize.NewFile(), true, nil
	}

	file, err := excelize.OpenFile(config.Path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open workbook %s: %w", config.Path, err)
	}
	return file, false, nil
}

// ReadGrid returns the sheet's used range, header row first.
// excelize yields formatted cell strings, which is exactly the display
// form the differ compares against.
func (s *Store) ReadGrid(ctx context.Context) ([][]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.file.GetRows(s.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", s.sheet, err)
	}

	grid := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		grid[i] = cells
	}
	return grid, nil
}

// WriteCell places value at the 1-based data-row position and 0-based
// column position. The header occupies sheet row 1, so data-row p maps
// to sheet row p+1.
func (s *Store) WriteCell(ctx context.Context, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Errorf("invalid cell coordinates (row %d, col %d): %w", row, col, err)
	}

	if err := s.file.SetCellValue(s.sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", cell, err)
	}

	s.dirty = true
	return nil
}

// Flush saves the workbook back to disk if any write landed since the
// last save.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	if err := s.file.SaveAs(s.config.Path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", s.config.Path, err)
	}

	s.dirty = false
	if s.config.Logger != nil {
		s.config.Logger.Debug("workbook saved", "path", s.config.Path)
	}
	return nil
}

// Close releases the workbook and its lockfile. Unflushed writes are
// discarded.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.file.Close()
	if s.unlock != nil {
		s.unlock()
		s.unlock = nil
	}
	return err
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Path  string `json:"path"`
	Sheet string `json:"sheet"`
	Dirty bool   `json:"dirty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StoreState{Path: s.config.Path, Sheet: s.sheet, Dirty: s.dirty}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "xlsx-workbook"
}

var _ core.GridStore = (*Store)(nil)
var _ core.Flusher = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

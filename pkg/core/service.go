package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Config holds the configuration for a reconciliation service.
type Config struct {
	// KeyColumn names the identity column joining snapshot and sheet rows.
	// It must match a header name in both sources for correct behavior;
	// a mismatch degrades silently and surfaces only in Diagnostics.
	KeyColumn string
	Logger    *slog.Logger
}

// Service handles the business logic for reconciling a CSV snapshot
// against a spreadsheet. The snapshot is always authoritative; rows on
// the sheet but absent from the snapshot are left untouched.
type Service struct {
	store  GridStore
	source SnapshotSource
	config Config

	mu          sync.RWMutex
	lastSync    *time.Time
	lastAppends int
	lastUpdates int
}

// NewService creates a new Service.
func NewService(store GridStore, source SnapshotSource, config Config) (*Service, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if source == nil {
		return nil, ErrNoSource
	}
	if config.KeyColumn == "" {
		return nil, ErrNoKeyColumn
	}
	return &Service{store: store, source: source, config: config}, nil
}

// Plan computes the minimal set of cell writes needed to bring the sheet
// in sync with the snapshot, without touching the store.
func (s *Service) Plan(ctx context.Context) (*Plan, error) {
	text, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	grid, err := s.store.ReadGrid(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, diags := IndexCSV(text, s.config.KeyColumn)
	sheet, columns := IndexGrid(grid, s.config.KeyColumn)
	if columnIndex(columns, s.config.KeyColumn) < 0 {
		diags.SheetKeyMissing = true
	}

	appends, updates, diffDiags := Partition(snapshot, sheet, ColumnPositions(columns))
	diags.merge(diffDiags)

	plan := &Plan{Appends: appends, Updates: updates, Diagnostics: diags}
	s.logDiagnostics(plan)
	return plan, nil
}

// Apply executes a previously computed plan against the store and flushes
// it when the store buffers writes.
func (s *Service) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil {
		return errors.New("nil plan")
	}

	if err := Apply(ctx, s.store, plan.Appends, plan.Updates); err != nil {
		return err
	}

	if !plan.Empty() {
		if f, ok := s.store.(Flusher); ok {
			if err := f.Flush(ctx); err != nil {
				return err
			}
		}
	}

	s.recordSync(plan)
	return nil
}

// Sync is Plan followed by Apply.
func (s *Service) Sync(ctx context.Context) (*Plan, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Apply(ctx, plan); err != nil {
		return plan, err
	}
	return plan, nil
}

// SheetTable reads the current grid and indexes it by the key column.
// It gives read access to the sheet as a keyed table, independent of any
// reconciliation pass.
func (s *Service) SheetTable(ctx context.Context) (*Table, error) {
	grid, err := s.store.ReadGrid(ctx)
	if err != nil {
		return nil, err
	}
	table, _ := IndexGrid(grid, s.config.KeyColumn)
	return table, nil
}

// Watch observes snapshot changes if the source supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.source.(Watchable)
	if !ok {
		return nil, errors.New("snapshot source does not support watching")
	}
	return w.Watch(ctx)
}

// Close releases the underlying store when it holds resources
// (e.g. an open workbook and its lockfile).
func (s *Service) Close() error {
	if c, ok := s.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Service) logDiagnostics(plan *Plan) {
	logger := s.config.Logger
	if logger == nil {
		return
	}

	d := plan.Diagnostics
	if d.SnapshotKeyMissing {
		logger.Warn("key column not found in snapshot header", "key", s.config.KeyColumn)
	}
	if d.SheetKeyMissing {
		logger.Warn("key column not found in sheet header", "key", s.config.KeyColumn)
	}
	if d.SkippedRows > 0 {
		logger.Warn("snapshot rows skipped for empty key", "rows", d.SkippedRows)
	}
	if d.InvalidDates > 0 {
		logger.Warn("date-shaped values failed validation, passed through", "values", d.InvalidDates)
	}
	if d.DroppedColumns > 0 {
		logger.Warn("cells dropped for columns missing on the sheet", "cells", d.DroppedColumns)
	}

	logger.Debug("plan computed",
		"appends", len(plan.Appends),
		"updates", len(plan.Updates),
		"cells", plan.CellCount(),
	)
}

func (s *Service) recordSync(plan *Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastSync = &now
	s.lastAppends = len(plan.Appends)
	s.lastUpdates = len(plan.Updates)
}

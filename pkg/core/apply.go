package core

import (
	"context"
	"fmt"
)

// Apply issues the plan's pending writes against the store as single-cell
// point writes, appends first, then updates.
//
// Writes are neither batched nor transactional: if the store fails partway
// (quota, rejected write), prior writes in the run remain applied and no
// rollback occurs. The first error aborts the rest and propagates.
//
// When both patch lists are empty the store is not touched at all.
func Apply(ctx context.Context, store GridStore, appends, updates []RowPatch) error {
	if len(appends) == 0 && len(updates) == 0 {
		return nil
	}

	if err := writePatches(ctx, store, appends); err != nil {
		return err
	}
	return writePatches(ctx, store, updates)
}

func writePatches(ctx context.Context, store GridStore, patches []RowPatch) error {
	for _, patch := range patches {
		for _, cell := range patch.Cells {
			if err := store.WriteCell(ctx, patch.Row, cell.Col, cell.Value); err != nil {
				return fmt.Errorf("failed to write cell (row %d, col %d): %w", patch.Row, cell.Col, err)
			}
		}
	}
	return nil
}

package core

// Partition classifies every snapshot key as an append or an update and
// computes, for updates, the exact subset of cells whose canonical value
// differs from the sheet's current value.
//
// Iteration follows the snapshot table's insertion order, so both output
// lists are deterministic; no sorting by key or position is performed.
//
// Nothing in this stage can fail: unknown columns and missing positions
// degrade to silent omission, surfaced only through Diagnostics.
func Partition(snapshot, sheet *Table, positions map[string]int) (appends, updates []RowPatch, diags Diagnostics) {
	sheetSize := sheet.Len()

	for _, key := range snapshot.Keys() {
		rec, _ := snapshot.Get(key)

		existing, found := sheet.Get(key)
		if !found {
			// Freshly appended rows take sequential positions just past
			// the current sheet size, counting rows already queued for
			// append in this same run.
			patch := RowPatch{Row: sheetSize + len(appends) + 1}
			for _, cell := range rec.Cells {
				pos, ok := positions[cell.Column]
				if !ok {
					diags.DroppedColumns++
					continue
				}
				patch.Cells = append(patch.Cells, CellWrite{Col: pos, Value: cell.Value})
			}
			appends = append(appends, patch)
			continue
		}

		// A sheet record always carries a position; a zero row keeps a
		// malformed one from clobbering the header.
		row := 0
		if existing.Position.Valid {
			row = existing.Position.N
		}

		patch := RowPatch{Row: row}
		for _, cell := range rec.Cells {
			current, ok := sheetCell(existing.Cells, cell.Column)
			if !ok || current == cell.Value {
				continue
			}
			pos, ok := positions[cell.Column]
			if !ok {
				diags.DroppedColumns++
				continue
			}
			patch.Cells = append(patch.Cells, CellWrite{Col: pos, Value: cell.Value})
		}
		// Emitted even when no cell differs: every snapshot key lands in
		// exactly one of the two lists.
		updates = append(updates, patch)
	}

	return appends, updates, diags
}

// sheetCell finds the sheet-side value for a column by linear search.
func sheetCell(cells []Cell, column string) (string, bool) {
	for _, c := range cells {
		if c.Column == column {
			return c.Value, true
		}
	}
	return "", false
}

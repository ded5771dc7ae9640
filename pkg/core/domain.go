// Cell grids and keyed row records are the central entities of the domain.
package core

// Cell is a single (column, value) pair inside a record.
// Values are canonical strings; spreadsheet-origin values are stringified
// as-is, CSV-origin values pass through the Normalizer first.
type Cell struct {
	Column string
	Value  string
}

// RowPosition is an optional 1-based data-row position on the sheet.
// Valid is false for records that do not exist on the sheet yet.
type RowPosition struct {
	N     int
	Valid bool
}

// Record is one keyed row from either source.
// Cells preserve the source table's column order.
type Record struct {
	Position RowPosition
	Cells    []Cell
}

// CellWrite is a single pending point write: 0-based column position and
// the canonical value to place there.
type CellWrite struct {
	Col   int
	Value string
}

// RowPatch groups the pending writes for one target row.
// Row is the 1-based data-row position (the header row is row 0).
type RowPatch struct {
	Row   int
	Cells []CellWrite
}

// Plan is the result of one reconciliation pass: the appends and updates
// needed to bring the sheet in sync with the snapshot, plus any warnings
// collected along the way. A Plan is ephemeral; it is computed and applied
// within a single run.
type Plan struct {
	Appends     []RowPatch
	Updates     []RowPatch
	Diagnostics Diagnostics
}

// Empty reports whether the plan contains no pending writes at all.
// An update patch with no cells still counts as empty.
func (p *Plan) Empty() bool {
	if len(p.Appends) > 0 {
		return false
	}
	for _, u := range p.Updates {
		if len(u.Cells) > 0 {
			return false
		}
	}
	return true
}

// CellCount returns the total number of pending point writes.
func (p *Plan) CellCount() int {
	n := 0
	for _, a := range p.Appends {
		n += len(a.Cells)
	}
	for _, u := range p.Updates {
		n += len(u.Cells)
	}
	return n
}

// Diagnostics collects data-quality warnings from one reconciliation pass.
// Shape issues never fail the pipeline; they degrade to silent omission.
// These counters make the omissions observable without changing behavior.
type Diagnostics struct {
	// SkippedRows counts snapshot rows dropped for having an empty key.
	SkippedRows int
	// InvalidDates counts date-shaped values that failed calendar
	// validation and were passed through unchanged.
	InvalidDates int
	// DroppedColumns counts patch cells discarded because the column has
	// no position on the sheet.
	DroppedColumns int
	// SnapshotKeyMissing is true when the key column was not found in the
	// snapshot header. Every row then extracts an empty key and is skipped.
	SnapshotKeyMissing bool
	// SheetKeyMissing is true when the key column was not found in the
	// sheet header. Rows then collide under a single empty key.
	SheetKeyMissing bool
}

// merge folds other into d.
func (d *Diagnostics) merge(other Diagnostics) {
	d.SkippedRows += other.SkippedRows
	d.InvalidDates += other.InvalidDates
	d.DroppedColumns += other.DroppedColumns
	d.SnapshotKeyMissing = d.SnapshotKeyMissing || other.SnapshotKeyMissing
	d.SheetKeyMissing = d.SheetKeyMissing || other.SheetKeyMissing
}

// EventType represents the type of change observed on a snapshot source.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
)

// Event represents a change on a watched snapshot source.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String renders the event for logs and generic event sinks.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}

package core

import "context"

// GridStore defines the contract for the external spreadsheet store.
// Adhering to this interface keeps the core independent of the host
// spreadsheet application (xlsx file, in-memory grid, remote API, etc).
//
// Coordinate convention: rows are 1-based data-row positions counted from
// the first row below the header (the header row itself is row 0 and is
// never written); columns are 0-based positions in the header row.
type GridStore interface {
	// ReadGrid returns the full rectangular grid of the active sheet,
	// header row first. Values may be strings, numbers or booleans as the
	// store provides them.
	ReadGrid(ctx context.Context) ([][]any, error)

	// WriteCell issues a single point write.
	WriteCell(ctx context.Context, row, col int, value string) error
}

// Flusher is an optional capability for stores that buffer writes in
// memory (e.g. a workbook file saved as a whole). The service flushes
// after applying a plan when the store supports it.
type Flusher interface {
	Flush(ctx context.Context) error
}

// SnapshotSource defines the contract for acquiring the raw CSV snapshot
// text. The core never touches the filesystem or network itself.
type SnapshotSource interface {
	// Load returns the full CSV text, newline-delimited, header first.
	Load(ctx context.Context) (string, error)
}

// Watchable is an optional capability for sources that can report when
// the snapshot behind them changes.
type Watchable interface {
	// Watch emits an event whenever the snapshot changes. The channel is
	// closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

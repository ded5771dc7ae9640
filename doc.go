// Package gridsync is the Composition Root for the Gridsync application.
//
// It connects the core reconciliation logic (Domain Layer) with the
// infrastructure adapters (Persistence Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// Gridsync treats a spreadsheet as a keyed table and a CSV export as the
// source of truth for it. Instead of rewriting the whole sheet, it computes
// the minimal set of cell writes (appends for new keys, updates for changed
// cells) and applies only those. While the default implementation targets
// local XLSX workbooks and CSV files, Gridsync's core is agnostic, allowing
// for future adapters (e.g. Google Sheets, databases).
//
// Features:
//
//   - **Hexagonal Architecture**: Core diff logic is isolated from storage details.
//   - **Minimal Writes**: Only cells that actually changed are touched.
//   - **Value Normalization**: Dates become spreadsheet serials, booleans are canonicalized.
//   - **Default Adapters (XLSX + CSV)**: Out-of-the-box support for local workbooks and exports.
//   - **Reactive**: Snapshot sources can be watched, re-syncing on change.
//   - **Extensible**: Designed to support other backends via `core.GridStore`.
//
// Usage:
//
//	// Compute and apply the pending writes in one call
//	plan, err := gridsync.Sync(ctx, "contacts.xlsx", "export.csv", "Email",
//		gridsync.WithLogger(logger),
//	)
//
//	// Or hold a service open for repeated syncs
//	svc, err := gridsync.New("contacts.xlsx", "export.csv", "Email")
package gridsync

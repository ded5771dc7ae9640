package platform

import (
	"log/slog"

	"github.com/aretw0/gridsync/pkg/core"
)

// options holds the internal configuration for the gridsync service.
type options struct {
	store      core.GridStore
	source     core.SnapshotSource
	logger     *slog.Logger
	adapter    string
	sheet      string
	autoCreate bool
}

// Option defines a functional option for configuring gridsync.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "xlsx",
	}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom grid store (e.g. mock, remote API).
// If provided, the default workbook adapter will be skipped.
func WithStore(store core.GridStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithSource allows injecting a custom snapshot source.
// If provided, the default CSV-file adapter will be skipped.
func WithSource(source core.SnapshotSource) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithAdapter allows specifying the grid store adapter by name.
// Defaults to "xlsx".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithSheet selects the worksheet to reconcile.
// Defaults to the workbook's first sheet.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = name
	}
}

// WithAutoCreate creates the workbook (and sheet) when missing.
func WithAutoCreate(auto bool) Option {
	return func(o *options) {
		o.autoCreate = auto
	}
}

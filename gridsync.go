package gridsync

import (
	"context"
	"log/slog"

	"github.com/aretw0/gridsync/internal/platform"
	"github.com/aretw0/gridsync/pkg/core"
	"github.com/aretw0/gridsync/pkg/typed"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Diagnostics is a public alias for the counters accumulated while planning.
type Diagnostics = core.Diagnostics

// Event is a public alias for a snapshot change notification.
type Event = core.Event

// RowModel is a public alias for a typed view of a sheet row.
type RowModel[T any] = typed.RowModel[T]

// TypedReader is a public alias for the typed sheet reader.
type TypedReader[T any] = typed.Reader[T]

// --- Configuration ---

// Option defines a functional option for configuring Gridsync.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom grid storage adapter.
func WithStore(store core.GridStore) Option {
	return platform.WithStore(store)
}

// WithSource allows injecting a custom snapshot source.
func WithSource(source core.SnapshotSource) Option {
	return platform.WithSource(source)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithSheet selects the worksheet to reconcile against.
func WithSheet(name string) Option {
	return platform.WithSheet(name)
}

// WithAutoCreate creates the workbook (and sheet) when missing.
func WithAutoCreate(auto bool) Option {
	return platform.WithAutoCreate(auto)
}

// --- Factory ---

// New creates a new Gridsync Service.
func New(workbook, snapshot, key string, opts ...Option) (*core.Service, error) {
	return platform.New(workbook, snapshot, key, opts...)
}

// --- Typed Factories ---

// NewTypedReader creates a type-safe sheet reader from an existing service.
func NewTypedReader[T any](svc *core.Service) *typed.Reader[T] {
	return typed.NewReader[T](svc)
}

// OpenTypedReader simplifies creating a TypedReader straight from paths.
// The caller owns the returned service and must Close it.
func OpenTypedReader[T any](workbook, snapshot, key string, opts ...Option) (*typed.Reader[T], *core.Service, error) {
	svc, err := New(workbook, snapshot, key, opts...)
	if err != nil {
		return nil, nil, err
	}
	return typed.NewReader[T](svc), svc, nil
}

// --- Operations ---

// Plan computes the pending writes without applying them.
func Plan(ctx context.Context, workbook, snapshot, key string, opts ...Option) (*core.Plan, error) {
	return platform.Plan(ctx, workbook, snapshot, key, opts...)
}

// Sync computes and applies the pending writes.
func Sync(ctx context.Context, workbook, snapshot, key string, opts ...Option) (*core.Plan, error) {
	return platform.Sync(ctx, workbook, snapshot, key, opts...)
}

// --- Utils ---

// FindConfig recursively looks upwards for a gridsync config file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}

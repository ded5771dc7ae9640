package typed

import (
	"context"
	"fmt"

	"github.com/aretw0/gridsync/pkg/core"
)

// Reader wraps a core.Service to provide type-safe read access to the
// sheet side of the reconciliation.
type Reader[T any] struct {
	svc *core.Service
}

// NewReader creates a typed reader over an existing service.
func NewReader[T any](svc *core.Service) *Reader[T] {
	return &Reader[T]{svc: svc}
}

// Rows reads the current sheet and decodes every keyed row, preserving
// sheet order.
func (r *Reader[T]) Rows(ctx context.Context) ([]RowModel[T], error) {
	table, err := r.svc.SheetTable(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]RowModel[T], 0, table.Len())
	for _, key := range table.Keys() {
		rec, _ := table.Get(key)
		row, err := Decode[T](key, rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}
	return rows, nil
}

// Get reads the current sheet and decodes the row with the given key.
func (r *Reader[T]) Get(ctx context.Context, key string) (*RowModel[T], error) {
	table, err := r.svc.SheetTable(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := table.Get(key)
	if !ok {
		return nil, fmt.Errorf("key %q not found on sheet", key)
	}
	return Decode[T](key, rec)
}

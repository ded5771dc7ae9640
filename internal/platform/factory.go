package platform

import (
	"fmt"
	"io"

	"github.com/aretw0/gridsync/pkg/adapters/csvfile"
	"github.com/aretw0/gridsync/pkg/adapters/memory"
	"github.com/aretw0/gridsync/pkg/adapters/xlsx"
	"github.com/aretw0/gridsync/pkg/core"
)

// New wires a reconciliation service: the grid store for the workbook,
// the snapshot source for the CSV pattern, and the core service joining
// them on the key column.
//
//	svc, err := gridsync.New("books/contacts.xlsx", "exports/contacts-*.csv", "ID")
//
// The caller owns the service and must Close it to release the workbook.
func New(workbook, snapshot, key string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		var err error
		switch o.adapter {
		case "xlsx":
			store, err = xlsx.Open(xlsx.Config{
				Path:       workbook,
				Sheet:      o.sheet,
				AutoCreate: o.autoCreate,
				Logger:     o.logger,
			})
		case "memory":
			// Ephemeral grid, useful for dry runs against a snapshot.
			store = memory.New(nil)
		default:
			err = fmt.Errorf("%w: %s", core.ErrUnknownAdapter, o.adapter)
		}
		if err != nil {
			return nil, err
		}
	}

	source := o.source
	if source == nil {
		source = csvfile.New(snapshot, o.logger)
	}

	svc, err := core.NewService(store, source, core.Config{
		KeyColumn: key,
		Logger:    o.logger,
	})
	if err != nil {
		// Release a store we opened ourselves; injected stores stay
		// with their owner.
		if o.store == nil {
			if c, ok := store.(io.Closer); ok {
				_ = c.Close()
			}
		}
		return nil, err
	}
	return svc, nil
}

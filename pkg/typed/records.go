package typed

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aretw0/gridsync/pkg/core"
)

// RowModel wraps a raw core.Record with a typed view of its cells.
type RowModel[T any] struct {
	Key      string
	Position core.RowPosition
	Data     T // The typed row payload
}

// Decode converts a record into a typed row. Cell values are coerced
// through JSON, so numeric-looking strings become numbers and "true"/"false"
// become booleans; match your field types to the coerced forms (a string
// field cannot receive a cell that parses as a number).
func Decode[T any](key string, rec core.Record) (*RowModel[T], error) {
	payload := make(map[string]any, len(rec.Cells))
	for _, cell := range rec.Cells {
		payload[cell.Column] = coerce(cell.Value)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal row %q: %w", key, err)
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode row %q: %w", key, err)
	}

	return &RowModel[T]{Key: key, Position: rec.Position, Data: data}, nil
}

// coerce guesses a JSON-friendly type for a cell string.
func coerce(value string) any {
	if value == "" {
		return ""
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	// Only the canonical boolean forms; "T" or "YES" on the sheet side
	// stay strings.
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}

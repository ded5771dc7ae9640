package core

// Table is an insertion-ordered index from key to Record.
// It is built once per source and never mutated afterwards; the differ
// reads two immutable tables.
//
// Duplicate keys follow last-write-wins: a later row with a repeated key
// silently replaces the earlier record, but the key keeps its original
// insertion position. This keeps iteration order deterministic, which in
// turn keeps patch output order deterministic and testable.
type Table struct {
	order   []string
	records map[string]Record
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{records: make(map[string]Record)}
}

// put inserts or replaces the record for key.
func (t *Table) put(key string, rec Record) {
	if _, exists := t.records[key]; !exists {
		t.order = append(t.order, key)
	}
	t.records[key] = rec
}

// Get returns the record for key.
func (t *Table) Get(key string) (Record, bool) {
	rec, ok := t.records[key]
	return rec, ok
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	return t.order
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.records)
}

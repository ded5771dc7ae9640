package core

import (
	"fmt"
	"strconv"
	"strings"
)

// lineCleaner strips the characters the snapshot indexer discards before
// splitting a line into fields.
var lineCleaner = strings.NewReplacer("\"", "", "\t", "")

// IndexCSV builds a keyed table from raw CSV text.
//
// Parsing is deliberately naive: lines split on CR, LF or CRLF, quote and
// tab characters stripped, fields split on commas. There is no support for
// commas embedded in quoted fields. The first line is the header.
//
// Rows whose key-column value is empty contribute nothing to the index.
// If keyColumn is absent from the header, every row extracts an empty key
// and the whole snapshot indexes to nothing; the returned Diagnostics make
// that visible without turning it into an error.
//
// Every cell value passes through the Normalizer. Records carry no row
// position: snapshot rows do not exist on the sheet by definition.
func IndexCSV(text, keyColumn string) (*Table, Diagnostics) {
	var diags Diagnostics
	table := NewTable()

	lines := splitLines(text)
	if len(lines) == 0 {
		diags.SnapshotKeyMissing = true
		return table, diags
	}

	header := splitFields(lines[0])
	keyPos := columnIndex(header, keyColumn)
	if keyPos < 0 {
		diags.SnapshotKeyMissing = true
	}

	for _, line := range lines[1:] {
		fields := splitFields(line)

		key := fieldAt(fields, keyPos)
		if key == "" {
			diags.SkippedRows++
			continue
		}

		cells := make([]Cell, len(header))
		for i, col := range header {
			value, ok := normalizeValue(fieldAt(fields, i))
			if !ok {
				diags.InvalidDates++
			}
			cells[i] = Cell{Column: col, Value: value}
		}

		table.put(key, Record{Cells: cells})
	}

	return table, diags
}

// IndexGrid builds a keyed table from a raw spreadsheet grid.
//
// The first grid row is the header; its column names are returned in
// order. Values are stringified and trimmed but never normalized. Every
// data row is indexed, including rows with an empty key (which then
// collide under a single empty key, last write wins). Position is the
// 1-based data-row index, counting from the first row below the header.
func IndexGrid(grid [][]any, keyColumn string) (*Table, []string) {
	table := NewTable()
	if len(grid) == 0 {
		return table, nil
	}

	columns := make([]string, len(grid[0]))
	for i, v := range grid[0] {
		columns[i] = Stringify(v)
	}
	keyPos := columnIndex(columns, keyColumn)

	for rowIdx, row := range grid[1:] {
		cells := make([]Cell, len(columns))
		for i, col := range columns {
			var value string
			if i < len(row) {
				value = Stringify(row[i])
			}
			cells[i] = Cell{Column: col, Value: value}
		}

		var key string
		if keyPos >= 0 && keyPos < len(cells) {
			key = cells[keyPos].Value
		}

		table.put(key, Record{
			Position: RowPosition{N: rowIdx + 1, Valid: true},
			Cells:    cells,
		})
	}

	return table, columns
}

// ColumnPositions derives the column-name to 0-based position map from the
// sheet's header columns. On duplicate names the later occurrence wins,
// matching plain loop assignment.
func ColumnPositions(columns []string) map[string]int {
	positions := make(map[string]int, len(columns))
	for i, col := range columns {
		positions[col] = i
	}
	return positions
}

// Stringify converts a raw grid value to its canonical string form:
// nil becomes the empty string, booleans become "true"/"false", numbers
// render without a trailing zero fraction, and everything is trimmed.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// splitLines splits on CR, LF or CRLF uniformly and drops a single
// trailing empty line so a final newline does not index a phantom row.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitFields cleans one line and splits it on commas.
func splitFields(line string) []string {
	line = strings.TrimSpace(lineCleaner.Replace(line))
	return strings.Split(line, ",")
}

// fieldAt returns the field at pos, or "" when pos is out of range.
// Out-of-range reads are how missing key columns and ragged rows degrade
// silently instead of failing.
func fieldAt(fields []string, pos int) string {
	if pos < 0 || pos >= len(fields) {
		return ""
	}
	return fields[pos]
}

// columnIndex finds a column by exact name match, -1 if absent.
func columnIndex(columns []string, name string) int {
	for i, col := range columns {
		if col == name {
			return i
		}
	}
	return -1
}

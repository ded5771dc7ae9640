package core

import (
	"reflect"
	"testing"
)

func TestIndexCSV(t *testing.T) {
	t.Run("Basic Indexing", func(t *testing.T) {
		table, diags := IndexCSV("ID,Name,Active\n1,Alice,YES\n2,Bob,N\n", "ID")

		if table.Len() != 2 {
			t.Fatalf("expected 2 records, got %d", table.Len())
		}
		if diags.SkippedRows != 0 || diags.SnapshotKeyMissing {
			t.Errorf("unexpected diagnostics: %+v", diags)
		}

		rec, ok := table.Get("1")
		if !ok {
			t.Fatal("record for key 1 not found")
		}
		if rec.Position.Valid {
			t.Error("snapshot records must not carry a row position")
		}
		want := []Cell{{"ID", "1"}, {"Name", "Alice"}, {"Active", "true"}}
		if !reflect.DeepEqual(rec.Cells, want) {
			t.Errorf("cells = %+v, want %+v", rec.Cells, want)
		}

		rec, _ = table.Get("2")
		if rec.Cells[2].Value != "false" {
			t.Errorf("N should normalize to false, got %q", rec.Cells[2].Value)
		}
	})

	t.Run("Line Break Variants", func(t *testing.T) {
		for name, text := range map[string]string{
			"LF":   "ID,Name\n1,Alice\n2,Bob",
			"CRLF": "ID,Name\r\n1,Alice\r\n2,Bob",
			"CR":   "ID,Name\r1,Alice\r2,Bob",
		} {
			table, _ := IndexCSV(text, "ID")
			if table.Len() != 2 {
				t.Errorf("%s: expected 2 records, got %d", name, table.Len())
			}
		}
	})

	t.Run("Strips Quotes And Tabs", func(t *testing.T) {
		table, _ := IndexCSV("ID,Name\n\"1\",\tAlice  ", "ID")
		rec, ok := table.Get("1")
		if !ok {
			t.Fatal("quoted key not cleaned")
		}
		if rec.Cells[1].Value != "Alice" {
			t.Errorf("expected cleaned value Alice, got %q", rec.Cells[1].Value)
		}
	})

	t.Run("Skips Rows With Empty Key", func(t *testing.T) {
		table, diags := IndexCSV("ID,Name\n,Ghost\n1,Alice\n", "ID")
		if table.Len() != 1 {
			t.Errorf("expected 1 record, got %d", table.Len())
		}
		if diags.SkippedRows != 1 {
			t.Errorf("expected 1 skipped row, got %d", diags.SkippedRows)
		}
	})

	t.Run("Missing Key Column Indexes Nothing", func(t *testing.T) {
		table, diags := IndexCSV("ID,Name\n1,Alice\n", "Email")
		if table.Len() != 0 {
			t.Errorf("expected empty index, got %d records", table.Len())
		}
		if !diags.SnapshotKeyMissing {
			t.Error("expected SnapshotKeyMissing diagnostic")
		}
	})

	t.Run("Duplicate Keys Last Write Wins", func(t *testing.T) {
		// Preserved behavior: a later row with a repeated key silently
		// replaces the earlier one, keeping its insertion position.
		table, _ := IndexCSV("ID,Name\n1,Alice\n2,Bob\n1,Alicia\n", "ID")
		if table.Len() != 2 {
			t.Fatalf("expected 2 records, got %d", table.Len())
		}
		rec, _ := table.Get("1")
		if rec.Cells[1].Value != "Alicia" {
			t.Errorf("expected last write to win, got %q", rec.Cells[1].Value)
		}
		if !reflect.DeepEqual(table.Keys(), []string{"1", "2"}) {
			t.Errorf("iteration order changed: %v", table.Keys())
		}
	})

	t.Run("Ragged Rows Fill Empty Cells", func(t *testing.T) {
		table, _ := IndexCSV("ID,Name,Active\n1,Alice\n", "ID")
		rec, _ := table.Get("1")
		if len(rec.Cells) != 3 || rec.Cells[2].Value != "" {
			t.Errorf("short row should pad with empty cells, got %+v", rec.Cells)
		}
	})

	t.Run("Counts Invalid Dates", func(t *testing.T) {
		_, diags := IndexCSV("ID,When\n1,13/45/99\n", "ID")
		if diags.InvalidDates != 1 {
			t.Errorf("expected 1 invalid date, got %d", diags.InvalidDates)
		}
	})
}

func TestIndexGrid(t *testing.T) {
	grid := [][]any{
		{"ID", "Name", "Active"},
		{1, "Alice", false},
		{2.0, "  Bob ", "YES"},
	}

	t.Run("Positions And Columns", func(t *testing.T) {
		table, columns := IndexGrid(grid, "ID")

		if !reflect.DeepEqual(columns, []string{"ID", "Name", "Active"}) {
			t.Errorf("columns = %v", columns)
		}

		rec, ok := table.Get("1")
		if !ok {
			t.Fatal("record for key 1 not found")
		}
		if !rec.Position.Valid || rec.Position.N != 1 {
			t.Errorf("expected position 1, got %+v", rec.Position)
		}

		rec, _ = table.Get("2")
		if rec.Position.N != 2 {
			t.Errorf("expected position 2, got %+v", rec.Position)
		}
	})

	t.Run("Stringifies Without Normalizing", func(t *testing.T) {
		table, _ := IndexGrid(grid, "ID")

		rec, _ := table.Get("1")
		if rec.Cells[2].Value != "false" {
			t.Errorf("boolean cell = %q, want false", rec.Cells[2].Value)
		}

		rec, _ = table.Get("2")
		if rec.Cells[1].Value != "Bob" {
			t.Errorf("expected trimmed value, got %q", rec.Cells[1].Value)
		}
		// "YES" stays literal: sheet values never pass the Normalizer.
		if rec.Cells[2].Value != "YES" {
			t.Errorf("sheet value was normalized: %q", rec.Cells[2].Value)
		}
	})

	t.Run("Empty Keys Collide", func(t *testing.T) {
		table, _ := IndexGrid([][]any{
			{"ID", "Name"},
			{nil, "Ghost"},
			{"", "Phantom"},
			{"1", "Alice"},
		}, "ID")

		// Both empty-key rows are indexed under "", last write wins.
		if table.Len() != 2 {
			t.Fatalf("expected 2 records, got %d", table.Len())
		}
		rec, _ := table.Get("")
		if rec.Cells[1].Value != "Phantom" {
			t.Errorf("expected last empty-key row to win, got %q", rec.Cells[1].Value)
		}
	})

	t.Run("Ragged Rows Pad To Header Width", func(t *testing.T) {
		table, _ := IndexGrid([][]any{
			{"ID", "Name", "Active"},
			{"1", "Alice"},
		}, "ID")
		rec, _ := table.Get("1")
		if len(rec.Cells) != 3 || rec.Cells[2].Value != "" {
			t.Errorf("short row should pad with empty cells, got %+v", rec.Cells)
		}
	})
}

func TestColumnPositions(t *testing.T) {
	pos := ColumnPositions([]string{"ID", "Name", "ID"})
	if pos["Name"] != 1 {
		t.Errorf("Name position = %d, want 1", pos["Name"])
	}
	// Later duplicate wins, matching plain loop assignment.
	if pos["ID"] != 2 {
		t.Errorf("duplicate column position = %d, want 2", pos["ID"])
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"  text ", "text"},
		{true, "true"},
		{false, "false"},
		{3.0, "3"},
		{3.5, "3.5"},
		{42, "42"},
		{int64(7), "7"},
	}

	for _, c := range cases {
		if got := Stringify(c.in); got != c.want {
			t.Errorf("Stringify(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

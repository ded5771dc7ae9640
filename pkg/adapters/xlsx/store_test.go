package xlsx_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/aretw0/gridsync/pkg/adapters/xlsx"
)

// writeFixture creates a small workbook on disk for the tests.
func writeFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "contacts.xlsx")
	f := excelize.NewFile()
	defer f.Close()

	cells := map[string]any{
		"A1": "ID", "B1": "Name", "C1": "Active",
		"A2": "1", "B2": "Alice", "C2": "FALSE",
	}
	for cell, v := range cells {
		if err := f.SetCellValue("Sheet1", cell, v); err != nil {
			t.Fatalf("failed to set %s: %v", cell, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	return path
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadGrid Returns Header First", func(t *testing.T) {
		store, err := xlsx.Open(xlsx.Config{Path: writeFixture(t)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer store.Close()

		grid, err := store.ReadGrid(ctx)
		if err != nil {
			t.Fatalf("ReadGrid failed: %v", err)
		}

		if len(grid) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(grid))
		}
		if grid[0][0] != "ID" || grid[1][1] != "Alice" {
			t.Errorf("unexpected grid content: %v", grid)
		}
	})

	t.Run("WriteCell And Flush Round Trip", func(t *testing.T) {
		path := writeFixture(t)

		store, err := xlsx.Open(xlsx.Config{Path: path})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		// Data-row 1 is the row below the header; column 2 is "Active".
		if err := store.WriteCell(ctx, 1, 2, "true"); err != nil {
			t.Fatalf("WriteCell failed: %v", err)
		}
		if err := store.Flush(ctx); err != nil {
			t.Fatalf("Flush failed: %v", err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		// Reopen from disk and verify the write survived.
		reopened, err := xlsx.Open(xlsx.Config{Path: path})
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		defer reopened.Close()

		grid, err := reopened.ReadGrid(ctx)
		if err != nil {
			t.Fatalf("ReadGrid failed: %v", err)
		}
		if grid[1][2] != "true" {
			t.Errorf("flushed cell = %v, want true", grid[1][2])
		}
	})

	t.Run("AutoCreate Builds A Fresh Workbook", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "new.xlsx")

		store, err := xlsx.Open(xlsx.Config{Path: path, Sheet: "People", AutoCreate: true})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer store.Close()

		if err := store.WriteCell(ctx, 1, 0, "1"); err != nil {
			t.Fatalf("WriteCell failed: %v", err)
		}
		if err := store.Flush(ctx); err != nil {
			t.Fatalf("Flush failed: %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("workbook not created: %v", err)
		}
	})

	t.Run("Missing Workbook Without AutoCreate Fails", func(t *testing.T) {
		_, err := xlsx.Open(xlsx.Config{Path: filepath.Join(t.TempDir(), "absent.xlsx")})
		if err == nil {
			t.Error("expected Open to fail for a missing workbook")
		}
	})

	t.Run("Lockfile Lifecycle", func(t *testing.T) {
		path := writeFixture(t)

		store, err := xlsx.Open(xlsx.Config{Path: path})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		lockPath := path + ".lock"
		if _, err := os.Stat(lockPath); err != nil {
			t.Errorf("lockfile missing while store is open: %v", err)
		}

		if err := store.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
			t.Errorf("lockfile not released on Close")
		}
	})
}

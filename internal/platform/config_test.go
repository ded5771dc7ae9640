package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/gridsync/internal/platform"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Valid Config with Two Jobs", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "gridsync.yaml")
		content := `jobs:
  - name: contacts
    snapshot: exports/contacts.csv
    workbook: contacts.xlsx
    sheet: Sheet1
    key: Email
  - snapshot: exports/orders-*.csv
    workbook: orders.xlsx
    key: OrderID
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		cfg, err := platform.LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if len(cfg.Jobs) != 2 {
			t.Fatalf("Expected 2 jobs, got %d", len(cfg.Jobs))
		}
		if cfg.Jobs[0].Name != "contacts" {
			t.Errorf("Expected job name 'contacts', got %q", cfg.Jobs[0].Name)
		}
		// Unnamed jobs default to the workbook basename.
		if cfg.Jobs[1].Name != "orders.xlsx" {
			t.Errorf("Expected defaulted name 'orders.xlsx', got %q", cfg.Jobs[1].Name)
		}
	})

	t.Run("Missing Required Fields Fail", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "gridsync.yaml")
		content := `jobs:
  - snapshot: exports/contacts.csv
    workbook: contacts.xlsx
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		if _, err := platform.LoadConfig(path); err == nil {
			t.Error("Expected error for job without key")
		}
	})

	t.Run("Missing File Fails", func(t *testing.T) {
		if _, err := platform.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Expected error for missing config file")
		}
	})

	t.Run("Invalid YAML Fails", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "gridsync.yaml")
		if err := os.WriteFile(path, []byte("jobs: [unclosed"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		if _, err := platform.LoadConfig(path); err == nil {
			t.Error("Expected error for malformed yaml")
		}
	})
}

func TestFindConfig(t *testing.T) {
	t.Run("Finds Config in Parent Directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "gridsync.yml")
		if err := os.WriteFile(path, []byte("jobs: []\n"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		nested := filepath.Join(tmpDir, "a", "b")
		if err := os.MkdirAll(nested, 0o755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}

		found, err := platform.FindConfig(nested)
		if err != nil {
			t.Fatalf("FindConfig failed: %v", err)
		}
		if found != path {
			t.Errorf("Expected %s, got %s", path, found)
		}
	})

	t.Run("Fails When No Config Exists", func(t *testing.T) {
		if _, err := platform.FindConfig(t.TempDir()); err == nil {
			t.Error("Expected error when no config file is present")
		}
	})
}

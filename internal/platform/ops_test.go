package platform_test

import (
	"context"
	"testing"

	"github.com/aretw0/gridsync/internal/platform"
	"github.com/aretw0/gridsync/pkg/adapters/memory"
)

func fixtureStore() *memory.Store {
	return memory.New([][]any{
		{"Email", "Name", "Status"},
		{"alice@x.io", "Alice", "active"},
	})
}

func TestPlan(t *testing.T) {
	t.Run("Reports Pending Writes Without Applying", func(t *testing.T) {
		store := fixtureStore()
		source := memory.NewSnapshot("Email,Name,Status\nalice@x.io,Alice,inactive\nbob@x.io,Bob,active\n")

		plan, err := platform.Plan(context.Background(), "", "", "Email",
			platform.WithStore(store), platform.WithSource(source))
		if err != nil {
			t.Fatalf("Plan failed: %v", err)
		}

		if len(plan.Appends) != 1 || len(plan.Updates) != 1 {
			t.Fatalf("Expected 1 append and 1 update, got %d and %d", len(plan.Appends), len(plan.Updates))
		}
		if got := len(store.Writes()); got != 0 {
			t.Errorf("Plan must not write to the store, got %d writes", got)
		}
	})

	t.Run("Fails Without Key Column", func(t *testing.T) {
		_, err := platform.Plan(context.Background(), "", "", "",
			platform.WithStore(fixtureStore()), platform.WithSource(memory.NewSnapshot("")))
		if err == nil {
			t.Error("Expected error for empty key column")
		}
	})
}

func TestSyncOp(t *testing.T) {
	t.Run("Applies Writes to Store", func(t *testing.T) {
		store := fixtureStore()
		source := memory.NewSnapshot("Email,Name,Status\nalice@x.io,Alice,inactive\n")

		plan, err := platform.Sync(context.Background(), "", "", "Email",
			platform.WithStore(store), platform.WithSource(source))
		if err != nil {
			t.Fatalf("Sync failed: %v", err)
		}
		if plan.Empty() {
			t.Fatal("Expected a non-empty plan")
		}

		if got := store.Cell(1, 2); got != "inactive" {
			t.Errorf("Expected cell (1,2) = 'inactive', got %q", got)
		}
	})
}

func TestRunJobs(t *testing.T) {
	t.Run("One Failing Job Does Not Stop the Rest", func(t *testing.T) {
		cfg := &platform.Config{Jobs: []platform.Job{
			{Name: "broken", Snapshot: "missing.csv", Workbook: "missing.xlsx", Key: "Email"},
		}}

		// The injected store and source make the job succeed regardless of
		// the paths above; run a second pass without injection to observe
		// the failure path.
		store := fixtureStore()
		source := memory.NewSnapshot("Email,Name,Status\nalice@x.io,Alice,active\n")

		results, err := platform.RunJobs(context.Background(), cfg, true,
			platform.WithStore(store), platform.WithSource(source))
		if err != nil {
			t.Fatalf("RunJobs failed: %v", err)
		}
		if len(results) != 1 || results[0].Err != nil {
			t.Fatalf("Expected one successful result, got %+v", results)
		}

		results, err = platform.RunJobs(context.Background(), cfg, true)
		if err == nil {
			t.Error("Expected summary error when a job fails")
		}
		if len(results) != 1 || results[0].Err == nil {
			t.Fatalf("Expected one failed result, got %+v", results)
		}
	})
}

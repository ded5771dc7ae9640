package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/gridsync/pkg/adapters/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadGrid Returns A Copy", func(t *testing.T) {
		store := memory.New([][]any{{"ID"}, {"1"}})

		grid, err := store.ReadGrid(ctx)
		if err != nil {
			t.Fatalf("ReadGrid failed: %v", err)
		}
		grid[1][0] = "mutated"

		if got := store.Cell(1, 0); got != "1" {
			t.Errorf("caller mutation leaked into store: %q", got)
		}
	})

	t.Run("WriteCell Grows The Grid", func(t *testing.T) {
		store := memory.New([][]any{{"ID", "Name"}})

		if err := store.WriteCell(ctx, 3, 2, "x"); err != nil {
			t.Fatalf("WriteCell failed: %v", err)
		}
		if got := store.Cell(3, 2); got != "x" {
			t.Errorf("cell = %q, want x", got)
		}
		if got := store.Cell(2, 0); got != "" {
			t.Errorf("intermediate cell = %q, want empty", got)
		}
	})

	t.Run("FailAfter Enforces A Write Budget", func(t *testing.T) {
		store := memory.New(nil)
		store.FailAfter = 2

		if err := store.WriteCell(ctx, 1, 0, "a"); err != nil {
			t.Fatalf("write 1 failed: %v", err)
		}
		if err := store.WriteCell(ctx, 1, 1, "b"); err != nil {
			t.Fatalf("write 2 failed: %v", err)
		}
		if err := store.WriteCell(ctx, 1, 2, "c"); !errors.Is(err, memory.ErrWriteLimit) {
			t.Errorf("expected ErrWriteLimit, got %v", err)
		}
		if len(store.Writes()) != 2 {
			t.Errorf("expected 2 recorded writes, got %d", len(store.Writes()))
		}
	})
}

package xlsx

import (
	"fmt"
	"os"
	"time"
)

// acquireLock takes a file-based lock next to the workbook for process
// safety. It blocks until the lock is acquired and returns the unlock
// function. The core assumes exclusive access to the store for the
// duration of one run; the lockfile enforces that across processes.
func acquireLock(lockPath string) (func(), error) {
	for {
		// Try to create lock file atomically
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL, 0666)
		if err == nil {
			f.Close()
			return func() {
				os.Remove(lockPath)
			}, nil
		}

		if os.IsExist(err) {
			// Lock exists, wait and retry.
			// Simple spinlock with backoff.
			// TODO: Add timeout to prevent infinite deadlocks?
			time.Sleep(10 * time.Millisecond)
			continue
		}

		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
}

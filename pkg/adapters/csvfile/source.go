// Package csvfile provides a SnapshotSource over CSV files on disk.
//
// The source is addressed by a path or a doublestar glob pattern
// (e.g. "exports/contacts-*.csv"). Globs resolve to the newest matching
// file on every Load, so periodic export drops are picked up without
// reconfiguration. The source also supports watching for changes.
package csvfile

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/introspection"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/gridsync/pkg/core"
)

// Source implements core.SnapshotSource and core.Watchable for CSV files.
type Source struct {
	pattern string
	logger  *slog.Logger

	mu       sync.RWMutex
	lastPath string
}

// New creates a source for the given path or glob pattern.
func New(pattern string, logger *slog.Logger) *Source {
	return &Source{pattern: pattern, logger: logger}
}

// Resolve returns the file the pattern currently points at. For a glob,
// that is the most recently modified match; for a plain path, the path
// itself.
func (s *Source) Resolve() (string, error) {
	base, pat := doublestar.SplitPattern(filepath.ToSlash(s.pattern))
	if pat == "" || !hasMeta(pat) {
		return filepath.FromSlash(s.pattern), nil
	}

	matches, err := doublestar.Glob(os.DirFS(base), pat)
	if err != nil {
		return "", fmt.Errorf("invalid snapshot pattern %q: %w", s.pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no snapshot matches pattern %q", s.pattern)
	}

	newest := ""
	var newestMod int64
	for _, m := range matches {
		full := filepath.Join(filepath.FromSlash(base), filepath.FromSlash(m))
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest, newestMod = full, mod
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no readable snapshot matches pattern %q", s.pattern)
	}
	return newest, nil
}

// Load implements core.SnapshotSource. It resolves the pattern, reads the
// file and strips a UTF-8 BOM if present.
func (s *Source) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.Resolve()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	s.mu.Lock()
	s.lastPath = path
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("snapshot loaded", "path", path, "bytes", len(data))
	}
	return string(data), nil
}

// Watch implements core.Watchable. Events are debounced and filtered
// through the source's pattern; the channel closes when ctx is cancelled.
func (s *Source) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, 16)

	worker := newWatchWorker(s, events)
	if err := worker.Start(ctx); err != nil {
		return nil, err
	}

	return events, nil
}

// matches reports whether a filesystem path falls under the pattern.
// Watcher events may carry paths relative to the watched directory, so
// both the full path and the base-relative path are tried.
func (s *Source) matches(path string) bool {
	pattern := filepath.ToSlash(s.pattern)
	if ok, err := doublestar.PathMatch(pattern, filepath.ToSlash(path)); err == nil && ok {
		return true
	}

	base, pat := doublestar.SplitPattern(pattern)
	rel, err := filepath.Rel(filepath.FromSlash(base), path)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(pat, filepath.ToSlash(rel))
	return err == nil && ok
}

// watchDir returns the static directory prefix of the pattern, the place
// the filesystem watcher attaches to.
func (s *Source) watchDir() string {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(s.pattern))
	return filepath.FromSlash(base)
}

// hasMeta reports whether the pattern fragment contains glob syntax.
func hasMeta(pat string) bool {
	for _, r := range pat {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// SourceState exposes internal state for observability.
type SourceState struct {
	Pattern  string `json:"pattern"`
	LastPath string `json:"last_path,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SourceState{Pattern: s.pattern, LastPath: s.lastPath}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "csv-file"
}

var _ core.SnapshotSource = (*Source)(nil)
var _ core.Watchable = (*Source)(nil)
var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)

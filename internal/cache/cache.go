// Package cache persists parsed headers in SQLite so repeated mpeginfo runs
// over an unchanged library skip the scan.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/simonhull/mpegaudio/internal/types"
)

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Key identifies one parse result. An entry is only valid while the file's
// size and modification time are unchanged, and only for the options it was
// parsed with.
type Key struct {
	Path        string
	Size        int64
	ModTime     time.Time
	Mode        types.ParseMode
	ResyncLimit int64
}

// KeyForFile stats path and builds its Key.
func KeyForFile(path string, mode types.ParseMode, resyncLimit int64) (Key, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Key{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Key{}, err
	}
	return Key{
		Path:        abs,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		Mode:        mode,
		ResyncLimit: resyncLimit,
	}, nil
}

// Cache is a header cache backed by SQLite. A nil *Cache is a valid,
// always-missing cache.
type Cache struct {
	db   *sql.DB
	path string
}

// Open creates or opens the cache database at path.
func Open(ctx context.Context, path string) (*Cache, error) {
	ctx = ensureContext(ctx)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	c := &Cache{db: db, path: path}
	if err := c.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// Path returns the database file location.
func (c *Cache) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Lookup returns the cached header for key. The boolean is false when no
// entry matches the key's size and modification time.
func (c *Cache) Lookup(ctx context.Context, key Key) (types.Header, bool, error) {
	if c == nil {
		return types.Header{}, false, nil
	}
	ctx = ensureContext(ctx)

	var (
		size    int64
		modTime int64
		payload string
	)
	err := retryOnBusy(ctx, func() error {
		return c.db.QueryRowContext(ctx,
			`SELECT size, mod_time, header_json FROM headers
			 WHERE path = ? AND parse_mode = ? AND resync_limit = ?`,
			key.Path, key.Mode.String(), key.ResyncLimit,
		).Scan(&size, &modTime, &payload)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return types.Header{}, false, nil
	}
	if err != nil {
		return types.Header{}, false, fmt.Errorf("lookup %s: %w", key.Path, err)
	}
	if size != key.Size || modTime != key.ModTime.UnixNano() {
		return types.Header{}, false, nil
	}

	var header types.Header
	if err := json.Unmarshal([]byte(payload), &header); err != nil {
		return types.Header{}, false, fmt.Errorf("decode cached header for %s: %w", key.Path, err)
	}
	return header, true, nil
}

// Store records header for key, replacing any previous entry for the path.
func (c *Cache) Store(ctx context.Context, key Key, header types.Header) error {
	if c == nil {
		return nil
	}
	ctx = ensureContext(ctx)

	payload, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("encode header for %s: %w", key.Path, err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	return retryOnBusy(ctx, func() error {
		_, err := c.db.ExecContext(ctx,
			`INSERT INTO headers (path, size, mod_time, parse_mode, resync_limit, header_json, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (path, parse_mode, resync_limit) DO UPDATE SET
			     size = excluded.size,
			     mod_time = excluded.mod_time,
			     header_json = excluded.header_json,
			     updated_at = excluded.updated_at`,
			key.Path, key.Size, key.ModTime.UnixNano(), key.Mode.String(), key.ResyncLimit, string(payload), now,
		)
		return err
	})
}

// Prune removes entries whose file no longer exists and returns how many
// were deleted.
func (c *Cache) Prune(ctx context.Context) (int, error) {
	if c == nil {
		return 0, nil
	}
	ctx = ensureContext(ctx)

	rows, err := c.db.QueryContext(ctx, "SELECT DISTINCT path FROM headers")
	if err != nil {
		return 0, fmt.Errorf("list cached paths: %w", err)
	}
	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan cached path: %w", err)
		}
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			stale = append(stale, path)
		}
	}
	if err := rows.Close(); err != nil {
		return 0, err
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, path := range stale {
		if err := retryOnBusy(ctx, func() error {
			_, err := c.db.ExecContext(ctx, "DELETE FROM headers WHERE path = ?", path)
			return err
		}); err != nil {
			return 0, fmt.Errorf("delete %s: %w", path, err)
		}
	}
	return len(stale), nil
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code()&0xff == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

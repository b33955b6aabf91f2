package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/mpegaudio"
	"github.com/simonhull/mpegaudio/internal/cache"
	"github.com/simonhull/mpegaudio/internal/config"
)

// errFilesFailed is returned when at least one file could not be read. The
// individual errors are part of the rendered output.
var errFilesFailed = errors.New("some files could not be read")

// fileResult is the outcome for one input file.
type fileResult struct {
	Path   string            `json:"path"`
	Header *mpegaudio.Header `json:"header,omitempty"`
	Cached bool              `json:"cached,omitempty"`
	Error  string            `json:"error,omitempty"`
}

func runInspect(cmd *cobra.Command, cmdCtx *commandContext, args []string) error {
	cfg, err := cmdCtx.ensureConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := cmdCtx.logger(cmd, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no MPEG audio files found in %v", args)
	}

	store, err := cmdCtx.openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := inspectFiles(ctx, cfg, store, logger, paths)
	if err != nil {
		return err
	}

	if cfg.Output.Format == "json" {
		if err := writeJSON(cmd, results); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), renderResults(results))
	}

	for _, r := range results {
		if r.Error != "" {
			return errFilesFailed
		}
	}
	return nil
}

// collectPaths expands directories into the MPEG audio files below them.
// Files named explicitly are kept regardless of their extension.
func collectPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// Reported as a per-file error by the reader.
			paths = append(paths, arg)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() && mpegaudio.IsMPEGAudioPath(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
		slices.Sort(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

// inspectFiles parses every path concurrently. Parse failures are recorded in
// the result; only cancellation aborts the batch.
func inspectFiles(ctx context.Context, cfg *config.Config, store *cache.Cache, logger *slog.Logger, paths []string) ([]fileResult, error) {
	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]fileResult, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = inspectFile(ctx, cfg, store, logger, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func inspectFile(ctx context.Context, cfg *config.Config, store *cache.Cache, logger *slog.Logger, path string) fileResult {
	result := fileResult{Path: path}
	log := logger.With("path", path)

	var key cache.Key
	useCache := store != nil
	if useCache {
		var err error
		key, err = cache.KeyForFile(path, cfg.ParseMode, cfg.ResyncLimit)
		if err != nil {
			useCache = false
		} else if header, ok, err := store.Lookup(ctx, key); err != nil {
			log.Warn("cache lookup failed", "error", err)
		} else if ok {
			log.Debug("cache hit")
			result.Header = &header
			result.Cached = true
			return result
		}
	}

	header, err := mpegaudio.ReadFile(path, cfg.ParseMode,
		mpegaudio.WithLogger(log),
		mpegaudio.WithResyncLimit(cfg.ResyncLimit),
	)
	if err != nil {
		log.Debug("read failed", "error", err)
		result.Error = err.Error()
		return result
	}
	result.Header = &header

	if useCache {
		if err := store.Store(ctx, key, header); err != nil {
			log.Warn("cache store failed", "error", err)
		}
	}
	return result
}

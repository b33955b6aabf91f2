package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/simonhull/mpegaudio/internal/cache"
	"github.com/simonhull/mpegaudio/internal/config"
	"github.com/simonhull/mpegaudio/internal/logging"
	"github.com/simonhull/mpegaudio/internal/types"
)

// commandFlags holds the raw values of the persistent flags. Only flags the
// user set override the configuration file.
type commandFlags struct {
	configPath  string
	mode        string
	jobs        int
	json        bool
	cache       bool
	noCache     bool
	logLevel    string
	resyncLimit int64
}

type commandContext struct {
	flags *commandFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *commandFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration file once and applies flag overrides.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cmd, cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		mode, err := types.ParseParseMode(strings.ToLower(strings.TrimSpace(c.flags.mode)))
		if err != nil {
			return err
		}
		cfg.ParseMode = mode
	}
	if flags.Changed("jobs") {
		cfg.Concurrency = c.flags.jobs
	}
	if flags.Changed("json") && c.flags.json {
		cfg.Output.Format = "json"
	}
	if flags.Changed("cache") && c.flags.cache {
		cfg.Cache.Enabled = true
	}
	if flags.Changed("no-cache") && c.flags.noCache {
		cfg.Cache.Enabled = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(c.flags.logLevel))
	}
	if flags.Changed("resync-limit") {
		cfg.ResyncLimit = c.flags.resyncLimit
	}
	return cfg.Validate()
}

func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// openCache returns nil when the cache is disabled.
func (c *commandContext) openCache(ctx context.Context, cfg *config.Config) (*cache.Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	store, err := cache.Open(ctx, cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return store, nil
}

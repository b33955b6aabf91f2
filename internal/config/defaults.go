package config

import "github.com/simonhull/mpegaudio/internal/types"

const (
	defaultConfigPath   = "~/.config/mpeginfo/config.toml"
	projectConfigName   = "mpeginfo.toml"
	defaultCacheFile    = "~/.cache/mpeginfo/headers.db"
	defaultLogLevel     = "warn"
	defaultLogFormat    = "auto"
	defaultOutputFormat = "table"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		ParseMode:   types.PreferVBRHeaders,
		ResyncLimit: 0,
		Concurrency: 0,
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Cache: Cache{
			Enabled: false,
			Path:    "", // $XDG_CACHE_HOME or ~/.cache, resolved by normalize
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}

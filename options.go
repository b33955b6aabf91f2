package mpegaudio

import (
	"log/slog"
	"runtime"
)

// Option configures behavior when reading MPEG audio streams.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	header, err := mpegaudio.ReadFile("song.mp3", mpegaudio.PreferVBRHeaders,
//	    mpegaudio.WithLogger(logger),
//	    mpegaudio.WithResyncLimit(64*1024),
//	)
type Option func(*readOptions)

// readOptions holds configuration for reading streams.
type readOptions struct {
	logger      *slog.Logger // Debug events; nil discards them
	resyncLimit int64        // Max unrecognized bytes between frames (0 = no limit)
	concurrency int          // Parallel files in ReadFiles
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		logger:      nil,
		resyncLimit: 0, // No limit
		concurrency: runtime.NumCPU(),
	}
}

func applyOptions(opts []Option) *readOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLogger sets the logger that receives debug events: skipped tags,
// VBR headers, truncated streams and trailing data.
//
// By default nothing is logged.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	header, err := mpegaudio.ReadFile("song.mp3", mpegaudio.PreferVBRHeaders, mpegaudio.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(o *readOptions) {
		o.logger = logger
	}
}

// WithResyncLimit bounds how many bytes matching neither a frame header nor
// a tag are skipped while searching for the next frame.
//
// When the limit is exceeded before the first audio frame, reading fails
// with an *UnrecognizedDataError. After audio has been read, the scan ends
// and the frames read so far are summarized.
//
// Default is 0 (no limit): the whole input is searched, which tolerates
// any amount of junk between frames but reads non-MPEG files to the end.
func WithResyncLimit(n int64) Option {
	return func(o *readOptions) {
		o.resyncLimit = n
	}
}

// WithConcurrency sets the number of files ReadFiles parses in parallel.
//
// Default is runtime.NumCPU(). Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *readOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

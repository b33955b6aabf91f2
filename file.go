package mpegaudio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/mpegaudio/internal/mpeg"
	"github.com/simonhull/mpegaudio/internal/types"
)

// ReadFrom reads an MPEG audio stream from r and returns its summary.
//
// r is consumed sequentially; no buffering is added. The stream may start
// with ID3v2/APEv2 tags and end with APEv2/ID3v1 tags.
//
// Example:
//
//	header, err := mpegaudio.ReadFrom(bufio.NewReader(os.Stdin), mpegaudio.PreferVBRHeaders)
//	if err != nil {
//		return err
//	}
//	fmt.Println(header.TotalDuration)
func ReadFrom(r io.Reader, mode ParseMode, opts ...Option) (Header, error) {
	options := applyOptions(opts)
	return mpeg.Parse(r, mpeg.Options{
		Mode:        mode,
		ResyncLimit: options.resyncLimit,
		Logger:      options.logger,
	})
}

// ReadFile opens the file at path and reads it with ReadFrom through a
// buffered reader.
//
// A file that cannot be opened is reported as a *PositionalError of kind
// KindIO at position zero.
func ReadFile(path string, mode ParseMode, opts ...Option) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, &types.PositionalError{Err: err, Kind: types.KindIO}
	}
	defer f.Close()

	return ReadFrom(bufio.NewReader(f), mode, opts...)
}

// ReadFiles reads multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines
// (see WithConcurrency). Results are returned in the same order as the
// input paths. The first failure cancels the files not yet started and is
// returned with its path; a parse in progress is never interrupted.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	headers, err := mpegaudio.ReadFiles(ctx, mpegaudio.PreferVBRHeaders, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, h := range headers {
//		fmt.Printf("%s: %s\n", paths[i], h)
//	}
func ReadFiles(ctx context.Context, mode ParseMode, paths []string, opts ...Option) ([]Header, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	options := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]Header, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			header, err := ReadFile(path, mode, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = header
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

package mpegaudio_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/mpegaudio"
	ts "github.com/simonhull/mpegaudio/internal/testsupport"
)

// TestReadFiles_Order verifies results are returned in input order
func TestReadFiles_Order(t *testing.T) {
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = writeTempFile(t, fmt.Sprintf("track%02d.mp3", i), ts.Frames(ts.WordMPEG1L3JointStereo, i+1))
	}

	headers, err := mpegaudio.ReadFiles(context.Background(), mpegaudio.IgnoreVBRHeaders, paths,
		mpegaudio.WithConcurrency(3))
	if err != nil {
		t.Fatalf("ReadFiles failed: %v", err)
	}

	if len(headers) != len(paths) {
		t.Fatalf("got %d headers, want %d", len(headers), len(paths))
	}
	for i, h := range headers {
		if h.FrameCount != uint64(i+1) {
			t.Errorf("header %d: frame count = %d, want %d", i, h.FrameCount, i+1)
		}
	}
}

// TestReadFiles_Cancellation verifies that a cancelled context stops the batch
func TestReadFiles_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = writeTempFile(t, fmt.Sprintf("f%d.mp3", i), createVBRStream(3))
	}

	// Create a context that's already cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	headers, err := mpegaudio.ReadFiles(ctx, mpegaudio.PreferVBRHeaders, paths)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if headers != nil {
		t.Error("expected nil headers on error")
	}
}

// TestReadFiles_PartialFailure verifies the failing path is reported
func TestReadFiles_PartialFailure(t *testing.T) {
	good := writeTempFile(t, "good.mp3", createVBRStream(3))
	missing := filepath.Join(t.TempDir(), "missing.mp3")

	headers, err := mpegaudio.ReadFiles(context.Background(), mpegaudio.PreferVBRHeaders,
		[]string{good, missing, good})

	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q should name the failing path", err)
	}
	var perr *mpegaudio.PositionalError
	if !errors.As(err, &perr) {
		t.Errorf("expected a wrapped *PositionalError, got %T", err)
	}
	if headers != nil {
		t.Error("expected nil headers on error")
	}
}

func TestReadFiles_Empty(t *testing.T) {
	headers, err := mpegaudio.ReadFiles(context.Background(), mpegaudio.PreferVBRHeaders, nil)
	if err != nil || headers != nil {
		t.Errorf("ReadFiles(nil) = (%v, %v), want (nil, nil)", headers, err)
	}
}

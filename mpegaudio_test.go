package mpegaudio_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/simonhull/mpegaudio"
	ts "github.com/simonhull/mpegaudio/internal/testsupport"
)

// createVBRStream builds a stream with a leading ID3v2 tag, a Xing header
// announcing n frames, n audio frames and an ID3v1 trailer.
func createVBRStream(n int) []byte {
	return ts.Concat(
		ts.ID3v2(256, false),
		ts.XingFrame(ts.WordMPEG1L3JointStereo, ts.XingOptions{
			TotalFrames: ts.Uint32(uint32(n)),
			TotalBytes:  ts.Uint32(uint32(n * 417)),
			TOC:         true,
		}),
		ts.Frames(ts.WordMPEG1L3JointStereo, n),
		ts.ID3v1("test"),
	)
}

// writeTempFile writes data to a file in a per-test directory.
func writeTempFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFrom_ParseModes(t *testing.T) {
	data := createVBRStream(20)

	tests := []struct {
		mode       mpegaudio.ParseMode
		wantSource mpegaudio.HeaderSource
	}{
		{mpegaudio.PreferVBRHeaders, mpegaudio.SourceXingHeader},
		{mpegaudio.IgnoreVBRHeaders, mpegaudio.SourceMPEGFrameHeaders},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			header, err := mpegaudio.ReadFrom(bytes.NewReader(data), tt.mode)
			if err != nil {
				t.Fatalf("ReadFrom failed: %v", err)
			}

			if header.Source != tt.wantSource {
				t.Errorf("source = %v, want %v", header.Source, tt.wantSource)
			}
			if header.TotalSampleCount != 20*1152 {
				t.Errorf("samples = %d, want %d", header.TotalSampleCount, 20*1152)
			}
			if header.Version != mpegaudio.VersionMPEG1 || header.Layer != mpegaudio.LayerIII {
				t.Errorf("version/layer = %v/%v", header.Version, header.Layer)
			}
			if header.Mode != mpegaudio.ModeJointStereo {
				t.Errorf("mode = %v", header.Mode)
			}
			if header.VBR == nil || header.VBR.TotalFrames != 20 {
				t.Errorf("VBR = %+v", header.VBR)
			}
			if header.TotalDuration < 522*time.Millisecond || header.TotalDuration > 523*time.Millisecond {
				t.Errorf("duration = %v, want about 522ms", header.TotalDuration)
			}
		})
	}
}

func TestReadFrom_WithResyncLimit(t *testing.T) {
	data := ts.Concat(make([]byte, 1024), ts.Frames(ts.WordMPEG1L3JointStereo, 2))

	if _, err := mpegaudio.ReadFrom(bytes.NewReader(data), mpegaudio.PreferVBRHeaders); err != nil {
		t.Fatalf("unlimited resync should skip junk: %v", err)
	}

	_, err := mpegaudio.ReadFrom(bytes.NewReader(data), mpegaudio.PreferVBRHeaders,
		mpegaudio.WithResyncLimit(512))
	var ude *mpegaudio.UnrecognizedDataError
	if !errors.As(err, &ude) {
		t.Fatalf("expected *UnrecognizedDataError, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	path := writeTempFile(t, "song.mp3", createVBRStream(5))

	header, err := mpegaudio.ReadFile(path, mpegaudio.IgnoreVBRHeaders)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if header.FrameCount != 5 {
		t.Errorf("frame count = %d, want 5", header.FrameCount)
	}
	if got := header.String(); got != "MPEG-1 Layer III 44.1kHz stereo 128kbps 100ms" {
		t.Errorf("String() = %q", got)
	}
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := mpegaudio.ReadFile(filepath.Join(t.TempDir(), "missing.mp3"), mpegaudio.PreferVBRHeaders)

	var perr *mpegaudio.PositionalError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PositionalError, got %v", err)
	}
	if perr.Kind != mpegaudio.KindIO {
		t.Errorf("kind = %v, want I/O error", perr.Kind)
	}
	if perr.Position != (mpegaudio.ReadPosition{}) {
		t.Errorf("position = %v, want zero", perr.Position)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("error chain should contain fs.ErrNotExist")
	}
}

func TestReadFile_Truncated(t *testing.T) {
	full := ts.Frames(ts.WordMPEG1L3JointStereo, 4)
	path := writeTempFile(t, "cut.mp3", full[:len(full)-200])

	header, err := mpegaudio.ReadFile(path, mpegaudio.PreferVBRHeaders)
	if err != nil {
		t.Fatalf("truncated stream should still parse: %v", err)
	}
	if header.FrameCount != 3 {
		t.Errorf("frame count = %d, want 3", header.FrameCount)
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := mpegaudio.GetVersionInfo()

	if info.Version != mpegaudio.LibraryVersion {
		t.Errorf("version = %q, want %q", info.Version, mpegaudio.LibraryVersion)
	}
	if info.GoVersion == "" || info.GoVersion == "unknown" {
		t.Errorf("go version = %q, want runtime fallback", info.GoVersion)
	}
	if mpegaudio.GetVersion() != mpegaudio.LibraryVersion {
		t.Error("GetVersion should return LibraryVersion")
	}
}

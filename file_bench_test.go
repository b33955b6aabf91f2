package mpegaudio_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/simonhull/mpegaudio"
	ts "github.com/simonhull/mpegaudio/internal/testsupport"
)

// benchmarkFrames is roughly one minute of 128 kbps audio.
const benchmarkFrames = 2300

// BenchmarkReadFrom compares the VBR header fast path with a full scan.
func BenchmarkReadFrom(b *testing.B) {
	data := createVBRStream(benchmarkFrames)

	for _, mode := range []mpegaudio.ParseMode{mpegaudio.PreferVBRHeaders, mpegaudio.IgnoreVBRHeaders} {
		b.Run(mode.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := mpegaudio.ReadFrom(bytes.NewReader(data), mode); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkReadFrom_Resync measures scanning through junk between frames.
func BenchmarkReadFrom_Resync(b *testing.B) {
	var parts [][]byte
	for i := 0; i < 100; i++ {
		parts = append(parts, ts.Frame(ts.WordMPEG1L3JointStereo), make([]byte, 512))
	}
	data := ts.Concat(parts...)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := mpegaudio.ReadFrom(bytes.NewReader(data), mpegaudio.IgnoreVBRHeaders); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReadFiles measures concurrent parsing of multiple files.
func BenchmarkReadFiles(b *testing.B) {
	data := createVBRStream(benchmarkFrames)
	paths := make([]string, 16)
	for i := range paths {
		paths[i] = writeTempFile(b, fmt.Sprintf("bench%02d.mp3", i), data)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := mpegaudio.ReadFiles(context.Background(), mpegaudio.IgnoreVBRHeaders, paths); err != nil {
			b.Fatal(err)
		}
	}
}

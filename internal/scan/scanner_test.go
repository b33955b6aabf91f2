package scan

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/simonhull/mpegaudio/internal/binary"
	ts "github.com/simonhull/mpegaudio/internal/testsupport"
	"github.com/simonhull/mpegaudio/internal/types"
)

func newScanner(data []byte, resyncLimit int64) (*Scanner, *binary.Reader) {
	r := binary.NewReader(bytes.NewReader(data))
	return New(r, resyncLimit, nil), r
}

func TestScanner_Next(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantWord   uint32
		wantOffset uint64
		wantTags   []TagKind
	}{
		{
			name:       "frame at start",
			data:       ts.Frame(ts.WordMPEG1L3JointStereo),
			wantWord:   ts.WordMPEG1L3JointStereo,
			wantOffset: 4,
		},
		{
			name:       "garbage before frame",
			data:       ts.Concat([]byte{0x00, 0x13, 0x37, 0x42, 0x00}, ts.Frame(ts.WordMPEG1L3Mono)),
			wantWord:   ts.WordMPEG1L3Mono,
			wantOffset: 9,
		},
		{
			name:       "leading ID3v2",
			data:       ts.Concat(ts.ID3v2(20, false), ts.Frame(ts.WordMPEG1L3JointStereo)),
			wantWord:   ts.WordMPEG1L3JointStereo,
			wantOffset: 34,
			wantTags:   []TagKind{TagID3v2},
		},
		{
			name:       "leading ID3v2 with footer",
			data:       ts.Concat(ts.ID3v2(20, true), ts.Frame(ts.WordMPEG1L3JointStereo)),
			wantWord:   ts.WordMPEG1L3JointStereo,
			wantOffset: 44,
			wantTags:   []TagKind{TagID3v2},
		},
		{
			name: "several leading tags",
			data: ts.Concat(
				ts.ID3v2(64, false),
				ts.APEv2(40),
				ts.ID3v1("intro"),
				ts.Frame(ts.WordMPEG2L3),
			),
			wantWord:   ts.WordMPEG2L3,
			wantOffset: 74 + 104 + 128 + 4,
			wantTags:   []TagKind{TagID3v2, TagAPEv2, TagID3v1},
		},
		{
			name: "sync with reserved bitrate inside payload",
			data: ts.Concat(
				[]byte{0xFF, 0xFB, 0xF0, 0x64},
				ts.Frame(ts.WordMPEG1L3JointStereo),
			),
			wantWord:   ts.WordMPEG1L3JointStereo,
			wantOffset: 8,
		},
		{
			name: "APE without APETAGEX signature is not a tag",
			data: ts.Concat(
				[]byte("APET1234"),
				make([]byte, 24),
				ts.Frame(ts.WordMPEG1L3JointStereo),
			),
			wantWord:   ts.WordMPEG1L3JointStereo,
			wantOffset: 36,
		},
		{
			name: "frame directly behind APET",
			data: ts.Concat(
				[]byte("APET"),
				ts.Frame(ts.WordMPEG1L3JointStereo),
			),
			wantWord:   ts.WordMPEG1L3JointStereo,
			wantOffset: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := newScanner(tt.data, 0)

			word, ok, err := s.Next()
			if err != nil {
				t.Fatalf("Next failed: %v", err)
			}
			if !ok {
				t.Fatal("expected a header word")
			}
			if word != tt.wantWord {
				t.Errorf("word = 0x%08X, want 0x%08X", word, tt.wantWord)
			}
			if got := r.Position().ByteOffset; got != tt.wantOffset {
				t.Errorf("byte offset = %d, want %d", got, tt.wantOffset)
			}

			tags := s.Tags()
			if len(tags) != len(tt.wantTags) {
				t.Fatalf("tags = %v, want %v", tags, tt.wantTags)
			}
			for i := range tags {
				if tags[i] != tt.wantTags[i] {
					t.Errorf("tag %d = %v, want %v", i, tags[i], tt.wantTags[i])
				}
			}
		})
	}
}

func TestScanner_EndOfInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short garbage", []byte{0x01, 0x02}},
		{"only zeros", make([]byte, 1000)},
		{"only tags", ts.Concat(ts.ID3v2(100, false), ts.ID3v1("x"))},
		{"truncated ID3v2 header", []byte("ID3\x03\x00")},
		{"ID3v2 body cut short", ts.ID3v2(100, false)[:50]},
		{"sync with reserved fields at the end", []byte{0xFF, 0xFB, 0xF0, 0x64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newScanner(tt.data, 0)

			_, ok, err := s.Next()
			if err != nil {
				t.Fatalf("end of input must not be an error: %v", err)
			}
			if ok {
				t.Error("expected no header word")
			}
		})
	}
}

func TestScanner_TrailingTagStopsScan(t *testing.T) {
	data := ts.Concat(
		ts.ID3v1("trailer"),
		ts.Frame(ts.WordMPEG1L3JointStereo), // never inspected
	)
	s, r := newScanner(data, 0)

	// Pretend an audio frame has already been consumed.
	r.AddDuration(26 * time.Millisecond)

	_, ok, err := s.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if ok {
		t.Fatal("scan should stop at a trailing tag")
	}
	if got := r.Position().ByteOffset; got != 128 {
		t.Errorf("byte offset = %d, want 128 (only the tag is consumed)", got)
	}
}

func TestScanner_ConsecutiveFrames(t *testing.T) {
	data := ts.Frames(ts.WordMPEG1L3JointStereo, 3)
	s, r := newScanner(data, 0)

	for i := 0; i < 3; i++ {
		word, ok, err := s.Next()
		if err != nil || !ok {
			t.Fatalf("frame %d: Next = (%v, %v)", i, ok, err)
		}
		if word != ts.WordMPEG1L3JointStereo {
			t.Errorf("frame %d: word = 0x%08X", i, word)
		}
		if _, err := r.SkipExactOrEOF(417 - 4); err != nil {
			t.Fatal(err)
		}
	}

	if _, ok, _ := s.Next(); ok {
		t.Error("expected end of input after the last frame")
	}
}

func TestScanner_ResyncLimit(t *testing.T) {
	data := ts.Concat(make([]byte, 100), ts.Frame(ts.WordMPEG1L3JointStereo))

	t.Run("limit exceeded", func(t *testing.T) {
		s, _ := newScanner(data, 10)

		_, ok, err := s.Next()
		if ok {
			t.Fatal("expected no header word")
		}

		var ude *types.UnrecognizedDataError
		if !errors.As(err, &ude) {
			t.Fatalf("expected *types.UnrecognizedDataError, got %v", err)
		}
		if ude.Bytes != [4]byte{} {
			t.Errorf("raw bytes = % X, want zeros", ude.Bytes)
		}

		var pe *types.PositionalError
		if !errors.As(err, &pe) {
			t.Fatal("expected a positional error in the chain")
		}
		if pe.Kind != types.KindFrame {
			t.Errorf("kind = %v, want frame error", pe.Kind)
		}
		if pe.Position.ByteOffset != 15 {
			t.Errorf("error at byte offset %d, want 15", pe.Position.ByteOffset)
		}
	})

	t.Run("limit large enough", func(t *testing.T) {
		s, _ := newScanner(data, 100)

		word, ok, err := s.Next()
		if err != nil || !ok || word != ts.WordMPEG1L3JointStereo {
			t.Fatalf("Next = (0x%08X, %v, %v)", word, ok, err)
		}
	})
}

func TestTagKind_String(t *testing.T) {
	tests := map[TagKind]string{
		TagNone:  "none",
		TagID3v1: "ID3v1",
		TagID3v2: "ID3v2",
		TagAPEv2: "APEv2",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

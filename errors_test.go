package mpegaudio

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestPositionalError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionalError
		contains []string
	}{
		{
			name: "unexpected end of input",
			err: &PositionalError{
				Err:      io.ErrUnexpectedEOF,
				Position: ReadPosition{ByteOffset: 4096, Duration: 1500 * time.Millisecond},
				Kind:     KindIO,
			},
			contains: []string{"unexpected EOF", "1500.000 ms", "byte offset = 4096", "0x1000"},
		},
		{
			name: "frame error",
			err: &PositionalError{
				Err:      &FrameError{Reason: "reserved MPEG layer", Word: 0xFFF99064},
				Position: ReadPosition{ByteOffset: 10},
				Kind:     KindFrame,
			},
			contains: []string{"reserved MPEG layer", "0xFFF99064", "byte offset = 10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestPositionalError_IsUnexpectedEOF(t *testing.T) {
	tests := []struct {
		name string
		err  *PositionalError
		want bool
	}{
		{"unexpected EOF", &PositionalError{Err: io.ErrUnexpectedEOF, Kind: KindIO}, true},
		{"other I/O error", &PositionalError{Err: errors.New("broken pipe"), Kind: KindIO}, false},
		{"frame error", &PositionalError{Err: &FrameError{Reason: "x"}, Kind: KindFrame}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.IsUnexpectedEOF(); got != tt.want {
				t.Errorf("IsUnexpectedEOF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnrecognizedDataError(t *testing.T) {
	inner := &PositionalError{
		Err:      &FrameError{Reason: "no frame sync or tag signature found"},
		Position: ReadPosition{ByteOffset: 77},
		Kind:     KindFrame,
	}
	err := error(&UnrecognizedDataError{Err: inner, Bytes: [4]byte{0xDE, 0xAD, 0xBE, 0xEF}})

	if msg := err.Error(); !strings.Contains(msg, "DE AD BE EF") || !strings.Contains(msg, "byte offset = 77") {
		t.Errorf("unexpected message %q", msg)
	}

	var perr *PositionalError
	if !errors.As(err, &perr) || perr != inner {
		t.Error("errors.As should find the wrapped positional error")
	}
	var ferr *FrameError
	if !errors.As(err, &ferr) {
		t.Error("errors.As should find the frame error")
	}
}

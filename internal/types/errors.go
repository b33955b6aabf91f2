package types

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ReadPosition is a snapshot of how far a parse has advanced.
type ReadPosition struct {
	// ByteOffset is the number of bytes consumed from the source.
	ByteOffset uint64 `json:"byte_offset"`

	// Duration is the playback time of all audio frames consumed so far.
	Duration time.Duration `json:"duration"`
}

// String returns the position as "<ms> ms (byte offset = N / 0xN)".
func (p ReadPosition) String() string {
	return fmt.Sprintf("%.3f ms (byte offset = %d / 0x%X)",
		float64(p.Duration)/float64(time.Millisecond), p.ByteOffset, p.ByteOffset)
}

// ErrorKind classifies a PositionalError.
type ErrorKind int

const (
	// KindIO is an I/O failure of the source, including an unexpected end of input.
	KindIO ErrorKind = iota // I/O error
	// KindFrame is structurally invalid frame data.
	KindFrame // frame error
)

// String returns a human-readable name of the kind.
func (k ErrorKind) String() string {
	if k == KindFrame {
		return "frame error"
	}
	return "I/O error"
}

// PositionalError is returned for every failed parse. It records the position
// at which the failure was detected.
type PositionalError struct {
	Err      error
	Position ReadPosition
	Kind     ErrorKind
}

func (e *PositionalError) Error() string {
	return fmt.Sprintf("%v at position %s", e.Err, e.Position)
}

// Unwrap returns the underlying error.
func (e *PositionalError) Unwrap() error { return e.Err }

// IsUnexpectedEOF reports whether the source ended in the middle of a structure.
func (e *PositionalError) IsUnexpectedEOF() bool {
	return e.Kind == KindIO && errors.Is(e.Err, io.ErrUnexpectedEOF)
}

// FrameError describes structurally invalid frame data.
type FrameError struct {
	Reason string
	Word   uint32
}

func (e *FrameError) Error() string {
	if e.Word != 0 {
		return fmt.Sprintf("frame error: %s (header word 0x%08X)", e.Reason, e.Word)
	}
	return fmt.Sprintf("frame error: %s", e.Reason)
}

// UnrecognizedDataError is returned by the frame scanner when it gives up on
// bytes that match neither a frame sync pattern nor a known tag signature.
type UnrecognizedDataError struct {
	Err   *PositionalError
	Bytes [4]byte
}

func (e *UnrecognizedDataError) Error() string {
	return fmt.Sprintf("unrecognized data % X: %v", e.Bytes[:], e.Err)
}

// Unwrap returns the positional error.
func (e *UnrecognizedDataError) Unwrap() error { return e.Err }

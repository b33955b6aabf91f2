// Package binary provides sequential reading primitives with position tracking
package binary

import (
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/simonhull/mpegaudio/internal/types"
)

// Reader wraps an io.Reader and keeps track of the number of bytes consumed
// and the playback duration registered by the caller.
//
// End of input is not an error: ReadExactOrEOF and SkipExactOrEOF report it
// by returning false. Every other failure is returned as a
// *types.PositionalError.
type Reader struct {
	r   io.Reader
	pos types.ReadPosition
}

// NewReader creates a new Reader positioned at offset 0.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadExactOrEOF fills buf completely.
//
// It returns false if the input ended before buf was filled. The bytes that
// were read before the end still count towards the position.
func (r *Reader) ReadExactOrEOF(buf []byte) (bool, error) {
	n, err := io.ReadFull(r.r, buf)
	r.pos.ByteOffset += uint64(n)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return false, nil
	}
	return false, r.Error(types.KindIO, err)
}

// SkipExactOrEOF discards n bytes.
//
// It returns false if the input ended before n bytes were discarded.
func (r *Reader) SkipExactOrEOF(n int64) (bool, error) {
	if n <= 0 {
		return true, nil
	}
	skipped, err := io.CopyN(io.Discard, r.r, n)
	r.pos.ByteOffset += uint64(skipped)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return false, nil
	}
	return false, r.Error(types.KindIO, err)
}

// Position returns a snapshot of the current position.
func (r *Reader) Position() types.ReadPosition {
	return r.pos
}

// Unread pushes buf back in front of the remaining input and moves the
// position back by len(buf). buf must hold the bytes most recently read.
func (r *Reader) Unread(buf []byte) {
	if len(buf) == 0 {
		return
	}
	pushed := bytes.Clone(buf)
	r.r = io.MultiReader(bytes.NewReader(pushed), r.r)
	r.pos.ByteOffset -= uint64(len(pushed))
}

// AddDuration registers the playback time of a consumed audio frame.
func (r *Reader) AddDuration(d time.Duration) {
	r.pos.Duration += d
}

// Error wraps err with the current position.
func (r *Reader) Error(kind types.ErrorKind, err error) *types.PositionalError {
	return &types.PositionalError{
		Err:      err,
		Position: r.pos,
		Kind:     kind,
	}
}

// UnexpectedEOF returns a positional error for input that ended in the
// middle of a structure.
func (r *Reader) UnexpectedEOF() *types.PositionalError {
	return r.Error(types.KindIO, io.ErrUnexpectedEOF)
}

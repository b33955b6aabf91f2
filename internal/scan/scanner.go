// Package scan locates MPEG audio frame headers in a byte stream, skipping
// the ID3v1, ID3v2 and APEv2 tag containers found before, between and after
// the frames.
package scan

import (
	"log/slog"

	"github.com/simonhull/mpegaudio/internal/binary"
	"github.com/simonhull/mpegaudio/internal/frame"
	"github.com/simonhull/mpegaudio/internal/types"
)

// Scanner searches for the next frame header word from the current reader
// position.
//
// The search shifts one byte at a time through a 4 byte window. Leading tags
// (found before any audio frame contributed playback time) are skipped and
// the search restarts behind them. The first tag found after audio ends the
// scan: everything behind a trailing tag is ignored.
type Scanner struct {
	r           *binary.Reader
	logger      *slog.Logger
	resyncLimit int64
	tags        []TagKind
}

// New creates a Scanner reading from r.
//
// If resyncLimit is positive, Next gives up with a *types.UnrecognizedDataError
// after discarding more than resyncLimit bytes without finding a frame
// header or tag. A limit of 0 searches until the end of input.
func New(r *binary.Reader, resyncLimit int64, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{
		r:           r,
		logger:      logger,
		resyncLimit: resyncLimit,
	}
}

// Tags returns the kinds of all tag containers skipped so far, in stream order.
func (s *Scanner) Tags() []TagKind {
	return s.tags
}

// Next returns the next header word that is synchronized and free of
// reserved field values.
//
// It returns false at the end of input and when a trailing tag has been
// reached. Read failures are returned as *types.PositionalError.
func (s *Scanner) Next() (uint32, bool, error) {
	var next [1]byte
	start := s.r.Position().ByteOffset
	var word uint32

	for {
		for !frame.IsSynced(word) {
			if consumed := s.r.Position().ByteOffset - start; consumed >= frame.HeaderSize {
				window := wordBytes(word)
				kind, err := skipTag(s.r, window)
				if err != nil {
					return 0, false, err
				}
				if kind != TagNone {
					s.tags = append(s.tags, kind)
					if s.r.Position().Duration != 0 {
						s.logger.Debug("trailing tag ends scan",
							slog.String("tag", kind.String()),
							slog.Uint64("byte_offset", s.r.Position().ByteOffset))
						return 0, false, nil
					}
					s.logger.Debug("skipped leading tag",
						slog.String("tag", kind.String()),
						slog.Uint64("byte_offset", s.r.Position().ByteOffset))
					start = s.r.Position().ByteOffset
					word = 0
					continue
				}
				if s.resyncLimit > 0 && int64(consumed)-frame.HeaderSize > s.resyncLimit {
					return 0, false, &types.UnrecognizedDataError{
						Err: s.r.Error(types.KindFrame, &types.FrameError{
							Reason: "no frame sync or tag signature found",
						}),
						Bytes: window,
					}
				}
			}
			ok, err := s.r.ReadExactOrEOF(next[:])
			if err != nil || !ok {
				return 0, false, err
			}
			word = word<<8 | uint32(next[0])
		}

		if frame.MaybeValid(word) {
			return word, true, nil
		}

		// Coincidental sync inside payload data: shift in one more byte.
		ok, err := s.r.ReadExactOrEOF(next[:])
		if err != nil || !ok {
			return 0, false, err
		}
		word = word<<8 | uint32(next[0])
	}
}

func wordBytes(word uint32) [frame.HeaderSize]byte {
	return [frame.HeaderSize]byte{byte(word >> 24), byte(word >> 16), byte(word >> 8), byte(word)}
}

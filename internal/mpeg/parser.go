// Package mpeg drives the frame scanner over an MPEG audio stream and builds
// the stream summary.
package mpeg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/simonhull/mpegaudio/internal/binary"
	"github.com/simonhull/mpegaudio/internal/frame"
	"github.com/simonhull/mpegaudio/internal/scan"
	"github.com/simonhull/mpegaudio/internal/stats"
	"github.com/simonhull/mpegaudio/internal/types"
	"github.com/simonhull/mpegaudio/internal/vbr"
)

// Options configures a single parse.
type Options struct {
	Mode types.ParseMode

	// ResyncLimit bounds the number of unrecognized bytes skipped while
	// searching for the next frame (0 = unlimited).
	ResyncLimit int64

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// parser holds the state of one parse.
type parser struct {
	r      *binary.Reader
	scan   *scan.Scanner
	acc    stats.Accumulator
	vbr    *types.VBRInfo
	opts   Options
	logger *slog.Logger
}

// Parse reads MPEG audio frames from src until the end of input, a trailing
// tag, or (with types.PreferVBRHeaders) the first usable VBR header.
//
// The end of input inside a frame is tolerated once audio samples have been
// counted; the incomplete frame is dropped. Before that it is returned as a
// *types.PositionalError wrapping io.ErrUnexpectedEOF.
func Parse(src io.Reader, opts Options) (types.Header, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := binary.NewReader(src)
	p := &parser{
		r:      r,
		scan:   scan.New(r, opts.ResyncLimit, logger),
		opts:   opts,
		logger: logger,
	}
	return p.run()
}

func (p *parser) run() (types.Header, error) {
	for {
		word, ok, err := p.scan.Next()
		if err != nil {
			var ude *types.UnrecognizedDataError
			if errors.As(err, &ude) && p.acc.SampleCount() > 0 {
				p.logger.Debug("unrecognized data ends scan",
					slog.String("bytes", fmt.Sprintf("% X", ude.Bytes[:])),
					slog.Uint64("byte_offset", ude.Err.Position.ByteOffset))
				return p.finish(), nil
			}
			return types.Header{}, err
		}
		if !ok {
			return p.finish(), nil
		}

		h, err := frame.Decode(word)
		if err != nil {
			return types.Header{}, p.r.Error(types.KindFrame, err)
		}

		done, header, err := p.consumeFrame(h)
		if err != nil || done {
			return header, err
		}
	}
}

// consumeFrame reads the frame h behind its header word. It returns true if
// parsing is complete, either through the VBR fast path or because the input
// ended inside the frame.
func (p *parser) consumeFrame(h frame.Header) (bool, types.Header, error) {
	sideInfo := int(h.SideInformationSize())
	// Small Layer I frames are shorter than the nominal side information.
	if size, known := h.Size(); known {
		sideInfo = max(0, min(sideInfo, int(size)-frame.HeaderSize))
	}
	consumed := frame.HeaderSize + sideInfo
	ok, err := p.r.SkipExactOrEOF(int64(sideInfo))
	if err != nil {
		return true, types.Header{}, err
	}
	if !ok {
		header, err := p.truncated()
		return true, header, err
	}

	audio := true

	// VBR headers are only honored in front of the first audio frame.
	if p.acc.SampleCount() == 0 {
		res, ok, err := vbr.Inspect(p.r, h, consumed)
		if err != nil {
			return true, types.Header{}, err
		}
		if !ok {
			header, err := p.truncated()
			return true, header, err
		}
		consumed = res.Consumed

		if info := res.Info; info != nil {
			audio = false
			p.logger.Debug("found VBR header",
				slog.String("tag", info.Tag),
				slog.Any("total_frames", info.TotalFrames),
				slog.Uint64("byte_offset", p.r.Position().ByteOffset))
			if p.vbr == nil {
				p.vbr = info
			}
			if p.opts.Mode == types.PreferVBRHeaders && info.TotalFrames > 0 {
				return true, vbr.Header(h, *info), nil
			}
		}
	}

	if size, known := h.Size(); known && int(size) > consumed {
		ok, err := p.r.SkipExactOrEOF(int64(int(size) - consumed))
		if err != nil {
			return true, types.Header{}, err
		}
		if !ok {
			header, err := p.truncated()
			return true, header, err
		}
	}

	if audio {
		p.acc.Add(h)
		p.r.AddDuration(h.Duration())
	}
	return false, types.Header{}, nil
}

// truncated handles the end of input inside a frame.
func (p *parser) truncated() (types.Header, error) {
	if p.acc.SampleCount() == 0 {
		return types.Header{}, p.r.UnexpectedEOF()
	}
	p.logger.Debug("stream truncated inside frame",
		slog.Uint64("byte_offset", p.r.Position().ByteOffset),
		slog.Duration("duration", p.r.Position().Duration))
	return p.finish(), nil
}

func (p *parser) finish() types.Header {
	h := p.acc.Header()
	h.VBR = p.vbr
	return h
}

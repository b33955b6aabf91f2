// Package vbr reads the Xing/Info and VBRI summaries that encoders embed in
// the first frame of a stream.
package vbr

import (
	"math/bits"
	"time"

	"github.com/simonhull/mpegaudio/internal/binary"
	"github.com/simonhull/mpegaudio/internal/frame"
	"github.com/simonhull/mpegaudio/internal/types"
)

const (
	// xingMinSize covers the tag and the 4 byte flags word.
	xingMinSize = 8

	// vbriMinSize covers the tag and all fixed fields up to the TOC entries:
	// tag(4) version(2) delay(2) quality(2) bytes(4) frames(4)
	// entries(2) scale(2) entry size(2) frames per entry(2)
	vbriMinSize = 26

	xingTOCSize = 100
)

// Xing flags, stored in the low byte of the flags word.
const (
	xingFlagFrames  = 0b0001
	xingFlagBytes   = 0b0010
	xingFlagTOC     = 0b0100
	xingFlagQuality = 0b1000
)

// Result is the outcome of inspecting a frame for a VBR header.
type Result struct {
	// Info is nil if the frame is an ordinary audio frame.
	Info *types.VBRInfo

	// Consumed is the number of bytes read from the start of the frame,
	// header and side information included.
	Consumed int
}

// Inspect looks for a VBR header in the frame h, whose first consumed bytes
// (header word and side information) have already been read from r.
//
// It returns false if the input ended inside the frame. A frame too small
// to contain a VBR header is reported as an ordinary audio frame without
// reading from r.
func Inspect(r *binary.Reader, h frame.Header, consumed int) (Result, bool, error) {
	res := Result{Consumed: consumed}
	if !h.Fits(consumed + xingMinSize) {
		return res, true, nil
	}

	var head [xingMinSize]byte
	ok, err := r.ReadExactOrEOF(head[:])
	if err != nil || !ok {
		return res, false, err
	}
	res.Consumed += xingMinSize

	switch tag := string(head[:4]); tag {
	case "Xing", "Info":
		info := &types.VBRInfo{Source: types.SourceXingHeader, Tag: tag}
		n, ok, err := readXing(r, binary.BE[uint32](head[4:8]), info)
		res.Consumed += n
		if err != nil || !ok {
			return res, false, err
		}
		res.Info = info
		return res, true, nil

	case "VBRI":
		if !h.Fits(consumed + vbriMinSize) {
			return res, true, nil
		}
		info := &types.VBRInfo{
			Source:      types.SourceVBRIHeader,
			Tag:         tag,
			VBRIVersion: binary.BE[uint16](head[4:6]),
			Delay:       binary.BE[uint16](head[6:8]),
		}
		n, ok, err := readVBRI(r, info)
		res.Consumed += n
		if err != nil || !ok {
			return res, false, err
		}
		res.Info = info
		return res, true, nil
	}

	return res, true, nil
}

// readXing reads the optional Xing fields selected by flags, in their fixed
// order. It returns the number of bytes consumed.
func readXing(r *binary.Reader, flags uint32, info *types.VBRInfo) (int, bool, error) {
	var n int
	var field [4]byte

	readField := func(dst *uint32) (bool, error) {
		ok, err := r.ReadExactOrEOF(field[:])
		if err != nil || !ok {
			return false, err
		}
		n += len(field)
		*dst = binary.BE[uint32](field[:])
		return true, nil
	}

	if flags&xingFlagFrames != 0 {
		if ok, err := readField(&info.TotalFrames); err != nil || !ok {
			return n, false, err
		}
	}
	if flags&xingFlagBytes != 0 {
		if ok, err := readField(&info.TotalBytes); err != nil || !ok {
			return n, false, err
		}
	}
	if flags&xingFlagTOC != 0 {
		ok, err := r.SkipExactOrEOF(xingTOCSize)
		if err != nil || !ok {
			return n, false, err
		}
		n += xingTOCSize
		info.TOCEntries = xingTOCSize
		info.TOCEntrySize = 1
	}
	if flags&xingFlagQuality != 0 {
		if ok, err := readField(&info.Quality); err != nil || !ok {
			return n, false, err
		}
	}
	return n, true, nil
}

// readVBRI reads the fixed VBRI fields following version and delay, then
// skips the seek table. It returns the number of bytes consumed.
func readVBRI(r *binary.Reader, info *types.VBRInfo) (int, bool, error) {
	var fields [vbriMinSize - xingMinSize]byte
	ok, err := r.ReadExactOrEOF(fields[:])
	if err != nil || !ok {
		return 0, false, err
	}
	n := len(fields)

	info.Quality = uint32(binary.BE[uint16](fields[0:2]))
	info.TotalBytes = binary.BE[uint32](fields[2:6])
	info.TotalFrames = binary.BE[uint32](fields[6:10])
	info.TOCEntries = binary.BE[uint16](fields[10:12])
	// fields[12:14] is the TOC scale factor
	info.TOCEntrySize = binary.BE[uint16](fields[14:16])
	// fields[16:18] is the number of frames per TOC entry

	tocSize := int(info.TOCEntries) * int(info.TOCEntrySize)
	ok, err = r.SkipExactOrEOF(int64(tocSize))
	if err != nil || !ok {
		return n, false, err
	}
	return n + tocSize, true, nil
}

// Duration returns the playback time of totalSamples samples at rate Hz
// using integer arithmetic only.
//
// Whole seconds and the nanosecond remainder are both truncated, so the
// result is reproducible across platforms.
func Duration(totalSamples uint64, rateHz uint16) time.Duration {
	rate := uint64(rateHz)
	seconds := totalSamples / rate

	// totalSamples * 1e9 overflows 64 bits for long streams; the quotient
	// always fits since rate >= 8000.
	hi, lo := bits.Mul64(totalSamples, uint64(time.Second))
	nanos, _ := bits.Div64(hi, lo, rate)
	nanos -= seconds * uint64(time.Second)

	return time.Duration(seconds)*time.Second + time.Duration(nanos)
}

// Header builds the stream summary announced by a VBR header found in the
// first frame h. Version, layer, mode, channels and sample rate are taken
// from h.
func Header(h frame.Header, info types.VBRInfo) types.Header {
	totalSamples := uint64(info.TotalFrames) * uint64(h.SampleCount)
	channels := h.ChannelCount()
	rate := h.SampleRateHz

	out := types.Header{
		Source:           info.Source,
		Version:          h.Version,
		Layer:            h.Layer,
		Mode:             h.Mode,
		MinChannelCount:  channels,
		MaxChannelCount:  channels,
		MinSampleRateHz:  rate,
		MaxSampleRateHz:  rate,
		FrameCount:       uint64(info.TotalFrames),
		TotalSampleCount: totalSamples,
		TotalDuration:    Duration(totalSamples, rate),
		AvgSampleRateHz:  &rate,
		VBR:              &info,
	}
	if bitrate, ok := h.Bitrate(); ok {
		out.MinBitrateBps = bitrate
		out.MaxBitrateBps = bitrate
		out.AvgBitrateBps = &bitrate
	}
	return out
}

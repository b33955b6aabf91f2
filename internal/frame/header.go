// Package frame decodes MPEG audio frame header words.
//
// The bit layout of the 32-bit big-endian header word is:
//
//	AAAAAAAA AAABBCCD EEEEFFGH IIJJKLMM
//
//	A sync (all 1)     B version      C layer        D protection
//	E bitrate index    F sample rate  G padding      H private
//	I channel mode     J mode ext.    K copyright    L original
//	M emphasis
package frame

import (
	"time"

	"github.com/simonhull/mpegaudio/internal/types"
)

// HeaderSize is the size of a frame header word in bytes.
const HeaderSize = 4

const (
	syncMask = 0xFFE00000

	versionShift    = 19
	layerShift      = 17
	bitrateShift    = 12
	sampleRateShift = 10
	paddingShift    = 9
	modeShift       = 6

	bitrateReserved    = 0b1111
	sampleRateReserved = 0b11
	emphasisReserved   = 0b10
)

// Header is the decoded content of a single frame header word.
type Header struct {
	Version types.Version
	Layer   types.Layer
	Mode    types.Mode

	// SampleCount is the number of samples per channel in this frame.
	SampleCount  uint16
	SampleRateHz uint16

	// BitrateBps is only meaningful if FreeFormat is false.
	BitrateBps uint32
	FreeFormat bool

	// FrameSize is the total size of the frame including the header. It is
	// only meaningful if SizeKnown is true; free format frames (and frames
	// whose size computes to 0) have no known size.
	FrameSize uint16
	SizeKnown bool

	Padding bool
}

// IsSynced reports whether the top 11 bits of word are all set.
func IsSynced(word uint32) bool {
	return word&syncMask == syncMask
}

// MaybeValid reports whether none of the fields of word hold a reserved value.
//
// The sync pattern alone occurs frequently inside audio payload. This cheap
// filter rejects most coincidental matches before a full decode.
func MaybeValid(word uint32) bool {
	if _, ok := versionFromWord(word); !ok {
		return false
	}
	if _, ok := layerFromWord(word); !ok {
		return false
	}
	if bitrateIndexFromWord(word) == bitrateReserved {
		return false
	}
	if sampleRateIndexFromWord(word) == sampleRateReserved {
		return false
	}
	return word&0b11 != emphasisReserved
}

func versionFromWord(word uint32) (types.Version, bool) {
	switch (word >> versionShift) & 0b11 {
	case 0b00:
		return types.VersionMPEG25, true
	case 0b10:
		return types.VersionMPEG2, true
	case 0b11:
		return types.VersionMPEG1, true
	default: // 0b01
		return types.VersionUnknown, false
	}
}

func layerFromWord(word uint32) (types.Layer, bool) {
	switch (word >> layerShift) & 0b11 {
	case 0b01:
		return types.LayerIII, true
	case 0b10:
		return types.LayerII, true
	case 0b11:
		return types.LayerI, true
	default: // 0b00
		return types.LayerUnknown, false
	}
}

func modeFromWord(word uint32) types.Mode {
	switch (word >> modeShift) & 0b11 {
	case 0b00:
		return types.ModeStereo
	case 0b01:
		return types.ModeJointStereo
	case 0b10:
		return types.ModeDualChannel
	default:
		return types.ModeMono
	}
}

func bitrateIndexFromWord(word uint32) uint32 {
	return (word >> bitrateShift) & 0b1111
}

func sampleRateIndexFromWord(word uint32) uint32 {
	return (word >> sampleRateShift) & 0b11
}

// Decode decodes a synchronized header word.
//
// Words with reserved field values are rejected with a *types.FrameError.
func Decode(word uint32) (Header, error) {
	if !IsSynced(word) {
		return Header{}, &types.FrameError{Reason: "missing frame sync", Word: word}
	}
	version, ok := versionFromWord(word)
	if !ok {
		return Header{}, &types.FrameError{Reason: "reserved MPEG version", Word: word}
	}
	layer, ok := layerFromWord(word)
	if !ok {
		return Header{}, &types.FrameError{Reason: "reserved MPEG layer", Word: word}
	}
	bitrateIdx := bitrateIndexFromWord(word)
	if bitrateIdx == bitrateReserved {
		return Header{}, &types.FrameError{Reason: "reserved bitrate index", Word: word}
	}
	sampleRateIdx := sampleRateIndexFromWord(word)
	if sampleRateIdx == sampleRateReserved {
		return Header{}, &types.FrameError{Reason: "reserved sample rate index", Word: word}
	}

	vi, li := versionIndex(version), layerIndex(layer)
	h := Header{
		Version:      version,
		Layer:        layer,
		Mode:         modeFromWord(word),
		SampleCount:  samplesPerFrame[vi][li],
		SampleRateHz: sampleRatesHz[vi][sampleRateIdx],
		Padding:      (word>>paddingShift)&1 == 1,
	}

	kbps := bitratesKbps[vi][li][bitrateIdx]
	if kbps == 0 {
		h.FreeFormat = true
		return h, nil
	}
	h.BitrateBps = kbps * 1000

	size := frameSize(layer, kbps, h.SampleCount, h.SampleRateHz, h.Padding)
	if size > 0 {
		h.FrameSize = uint16(size)
		h.SizeKnown = true
	}
	return h, nil
}

// frameSize computes the frame length in bytes. The grouping of the integer
// divisions is fixed: durations derived from it must be reproducible.
// The largest possible result (MPEG-2.5 Layer II, 160 kbps, 8 kHz) is 2881.
func frameSize(layer types.Layer, kbps uint32, samples, sampleRateHz uint16, padding bool) uint32 {
	var pad uint32
	if padding {
		pad = 1
	}
	if layer == types.LayerI {
		// Layer I frames consist of 4-byte slots.
		return (12000*kbps/uint32(sampleRateHz) + pad) * 4
	}
	bitrateBps := kbps * 1000
	return uint32(samples)*(bitrateBps/8)/uint32(sampleRateHz) + pad
}

// Bitrate returns the bitrate in bits/sec, false for free format frames.
func (h Header) Bitrate() (uint32, bool) {
	return h.BitrateBps, !h.FreeFormat
}

// Size returns the frame size in bytes, false if the size is unknown.
func (h Header) Size() (uint16, bool) {
	return h.FrameSize, h.SizeKnown
}

// ChannelCount returns 1 for mono frames and 2 otherwise.
func (h Header) ChannelCount() uint8 {
	return h.Mode.ChannelCount()
}

// SideInformationSize returns the size of the side information following the header.
func (h Header) SideInformationSize() uint16 {
	return SideInformationSize(h.Version, h.Mode)
}

// Fits reports whether n bytes, counted from the start of the frame, fit
// into the frame. Frames of unknown size are assumed to be large enough.
func (h Header) Fits(n int) bool {
	if !h.SizeKnown {
		return true
	}
	return n <= int(h.FrameSize)
}

// Duration returns the playback time of the frame, truncated to whole
// nanoseconds. It is always below one second.
func (h Header) Duration() time.Duration {
	return time.Duration(uint64(h.SampleCount) * uint64(time.Second) / uint64(h.SampleRateHz))
}

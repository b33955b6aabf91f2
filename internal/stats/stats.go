// Package stats aggregates the properties of individual audio frames into a
// stream summary.
package stats

import (
	"time"

	"github.com/simonhull/mpegaudio/internal/frame"
	"github.com/simonhull/mpegaudio/internal/types"
)

type trackState uint8

const (
	stateUnknown trackState = iota
	stateKnown
	stateInconsistent
)

// tracker remembers a value that is expected to stay the same in every frame.
// The first disagreement permanently marks it inconsistent.
type tracker[T comparable] struct {
	value T
	state trackState
}

func (t *tracker[T]) observe(v T) {
	switch t.state {
	case stateUnknown:
		t.value = v
		t.state = stateKnown
	case stateKnown:
		if t.value != v {
			var zero T
			t.value = zero
			t.state = stateInconsistent
		}
	}
}

// get returns the tracked value, or the zero value (the Unknown enum member)
// if nothing was observed or the frames disagreed.
func (t tracker[T]) get() T {
	return t.value
}

// Accumulator collects running totals over the audio frames of a stream.
// The zero value is ready to use.
type Accumulator struct {
	version tracker[types.Version]
	layer   tracker[types.Layer]
	mode    tracker[types.Mode]

	frames   uint64
	samples  uint64
	duration time.Duration

	minChannels, maxChannels uint8
	minRate, maxRate         uint16
	minBitrate, maxBitrate   uint32

	// Sample weighted sums.
	rateSum    uint64
	bitrateSum uint64
}

// Add folds an audio frame into the totals. Frames carrying a VBR header
// must not be added.
func (a *Accumulator) Add(h frame.Header) {
	a.version.observe(h.Version)
	a.layer.observe(h.Layer)
	a.mode.observe(h.Mode)

	samples := uint64(h.SampleCount)
	a.frames++
	a.samples += samples
	a.duration += h.Duration()

	channels := h.ChannelCount()
	if a.minChannels == 0 || channels < a.minChannels {
		a.minChannels = channels
	}
	a.maxChannels = max(a.maxChannels, channels)

	if a.minRate == 0 || h.SampleRateHz < a.minRate {
		a.minRate = h.SampleRateHz
	}
	a.maxRate = max(a.maxRate, h.SampleRateHz)
	a.rateSum += uint64(h.SampleRateHz) * samples

	// Free format frames only count towards samples and duration.
	if bitrate, ok := h.Bitrate(); ok {
		if a.minBitrate == 0 || bitrate < a.minBitrate {
			a.minBitrate = bitrate
		}
		a.maxBitrate = max(a.maxBitrate, bitrate)
		a.bitrateSum += uint64(bitrate) * samples
	}
}

// FrameCount returns the number of frames added.
func (a *Accumulator) FrameCount() uint64 {
	return a.frames
}

// SampleCount returns the number of samples per channel added so far.
func (a *Accumulator) SampleCount() uint64 {
	return a.samples
}

// Header finalizes the totals.
//
// The averages are weighted by sample count and nil if no samples were
// added. The total duration is the sum of the truncated per-frame
// durations.
func (a *Accumulator) Header() types.Header {
	h := types.Header{
		Source:           types.SourceMPEGFrameHeaders,
		Version:          a.version.get(),
		Layer:            a.layer.get(),
		Mode:             a.mode.get(),
		MinChannelCount:  a.minChannels,
		MaxChannelCount:  a.maxChannels,
		MinSampleRateHz:  a.minRate,
		MaxSampleRateHz:  a.maxRate,
		MinBitrateBps:    a.minBitrate,
		MaxBitrateBps:    a.maxBitrate,
		FrameCount:       a.frames,
		TotalSampleCount: a.samples,
		TotalDuration:    a.duration,
	}
	if a.samples > 0 {
		rate := uint16(a.rateSum / a.samples)
		bitrate := uint32(a.bitrateSum / a.samples)
		h.AvgSampleRateHz = &rate
		h.AvgBitrateBps = &bitrate
	}
	return h
}

package types

import (
	"fmt"
	"time"
)

// HeaderSource identifies where the values of a Header came from.
type HeaderSource int

const (
	// SourceMPEGFrameHeaders means the header was aggregated from every frame.
	SourceMPEGFrameHeaders HeaderSource = iota // MPEG frame headers
	// SourceXingHeader means the header was taken from a Xing/Info summary.
	SourceXingHeader // Xing header
	// SourceVBRIHeader means the header was taken from a Fraunhofer VBRI summary.
	SourceVBRIHeader // VBRI header
)

// String returns a human-readable name of the source.
func (s HeaderSource) String() string {
	switch s {
	case SourceXingHeader:
		return "Xing header"
	case SourceVBRIHeader:
		return "VBRI header"
	default:
		return "MPEG frame headers"
	}
}

// ParseMode controls which sources are considered when parsing.
type ParseMode int

const (
	// PreferVBRHeaders returns the summary of the first valid Xing/VBRI header
	// as soon as it is found and stops reading. Streams without such a header
	// are aggregated from all frames.
	//
	// This is fast but trusts the encoder's totals.
	PreferVBRHeaders ParseMode = iota
	// IgnoreVBRHeaders skips Xing/VBRI headers and always aggregates every frame.
	//
	// This reads the whole stream but reflects the frames actually present.
	IgnoreVBRHeaders
)

// String returns the configuration spelling of the mode.
func (m ParseMode) String() string {
	switch m {
	case IgnoreVBRHeaders:
		return "ignore-vbr"
	default:
		return "prefer-vbr"
	}
}

// ParseParseMode converts a configuration value into a ParseMode.
func ParseParseMode(s string) (ParseMode, error) {
	switch s {
	case "prefer-vbr", "prefer", "":
		return PreferVBRHeaders, nil
	case "ignore-vbr", "ignore", "frames":
		return IgnoreVBRHeaders, nil
	}
	return PreferVBRHeaders, fmt.Errorf("invalid parse mode %q (want prefer-vbr or ignore-vbr)", s)
}

// VBRInfo holds the contents of the first Xing/Info or VBRI header found in
// the stream.
type VBRInfo struct {
	// Source is SourceXingHeader or SourceVBRIHeader.
	Source HeaderSource `json:"source"`

	// Tag is the literal marker: "Xing", "Info" or "VBRI".
	Tag string `json:"tag"`

	// TotalFrames is the number of audio frames announced by the encoder
	// (0 if the field is absent).
	TotalFrames uint32 `json:"total_frames"`

	// TotalBytes is the announced stream size in bytes (0 if absent).
	TotalBytes uint32 `json:"total_bytes,omitempty"`

	// Quality is the encoder quality indicator (0 if absent).
	Quality uint32 `json:"quality,omitempty"`

	// TOCEntries and TOCEntrySize describe the seek table.
	// Xing tables always have 100 one-byte entries.
	TOCEntries   uint16 `json:"toc_entries,omitempty"`
	TOCEntrySize uint16 `json:"toc_entry_size,omitempty"`

	// VBRIVersion and Delay are only set for VBRI headers.
	VBRIVersion uint16 `json:"vbri_version,omitempty"`
	Delay       uint16 `json:"delay,omitempty"`
}

// Header describes the properties of an MPEG audio stream.
//
// It is a virtual header, built either from the first Xing/VBRI summary or
// aggregated from all MPEG frame headers in the stream. Header holds no
// references into the stream and can be copied freely.
type Header struct {
	// Source of the metadata in this header.
	Source HeaderSource `json:"source"`

	// Version common to all frames, VersionUnknown if absent or inconsistent.
	Version Version `json:"version"`

	// Layer common to all frames, LayerUnknown if absent or inconsistent.
	Layer Layer `json:"layer"`

	// Mode common to all frames, ModeUnknown if absent or inconsistent.
	Mode Mode `json:"mode"`

	MinChannelCount uint8 `json:"min_channel_count"`
	MaxChannelCount uint8 `json:"max_channel_count"`

	MinSampleRateHz uint16 `json:"min_sample_rate_hz"`
	MaxSampleRateHz uint16 `json:"max_sample_rate_hz"`

	// MinBitrateBps and MaxBitrateBps ignore free-format frames and are 0 if
	// every frame was free-format.
	MinBitrateBps uint32 `json:"min_bitrate_bps"`
	MaxBitrateBps uint32 `json:"max_bitrate_bps"`

	// FrameCount is the number of audio frames (VBR headers excluded).
	FrameCount uint64 `json:"frame_count"`

	// TotalSampleCount is the number of samples per channel.
	TotalSampleCount uint64 `json:"total_sample_count"`

	// TotalDuration is the sum of the exact per-frame durations, truncated to
	// whole nanoseconds frame by frame.
	TotalDuration time.Duration `json:"total_duration"`

	// AvgSampleRateHz is the sample weighted average, nil without samples.
	AvgSampleRateHz *uint16 `json:"avg_sample_rate_hz,omitempty"`

	// AvgBitrateBps is the sample weighted average in bits/sec, nil without samples.
	AvgBitrateBps *uint32 `json:"avg_bitrate_bps,omitempty"`

	// VBR is the first VBR header found, regardless of the parse mode.
	VBR *VBRInfo `json:"vbr,omitempty"`
}

// ChannelDescription returns "mono", "stereo" or a range like "1-2ch".
func (h Header) ChannelDescription() string {
	if h.MinChannelCount != h.MaxChannelCount {
		return fmt.Sprintf("%d-%dch", h.MinChannelCount, h.MaxChannelCount)
	}
	switch h.MaxChannelCount {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%dch", h.MaxChannelCount)
	}
}

// String returns a short summary such as
// "MPEG-1 Layer III 44.1kHz stereo 128kbps 3m25.4s".
func (h Header) String() string {
	parts := []string{}
	if h.Version.Known() {
		parts = append(parts, h.Version.String())
	}
	if h.Layer.Known() {
		parts = append(parts, h.Layer.String())
	}
	if h.AvgSampleRateHz != nil {
		parts = append(parts, fmt.Sprintf("%.1fkHz", float64(*h.AvgSampleRateHz)/1000))
	}
	parts = append(parts, h.ChannelDescription())
	if h.AvgBitrateBps != nil && *h.AvgBitrateBps > 0 {
		parts = append(parts, fmt.Sprintf("%dkbps", *h.AvgBitrateBps/1000))
	}
	parts = append(parts, h.TotalDuration.Round(100*time.Millisecond).String())
	return join(parts, " ")
}

// join concatenates strings with a separator, skipping empty strings.
func join(parts []string, sep string) string {
	var result string
	for _, part := range parts {
		if part == "" {
			continue
		}
		if result != "" {
			result += sep
		}
		result += part
	}
	return result
}

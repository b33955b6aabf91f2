package types

// Version represents the MPEG audio version of a frame.
type Version int

const (
	// VersionUnknown represents an absent or inconsistent version.
	VersionUnknown Version = iota // Unknown
	// VersionMPEG1 represents MPEG-1 (ISO/IEC 11172-3).
	VersionMPEG1 // MPEG-1
	// VersionMPEG2 represents MPEG-2 LSF (ISO/IEC 13818-3).
	VersionMPEG2 // MPEG-2
	// VersionMPEG25 represents the unofficial MPEG-2.5 extension.
	VersionMPEG25 // MPEG-2.5
)

// String returns the conventional name of the version.
func (v Version) String() string {
	switch v {
	case VersionMPEG1:
		return "MPEG-1"
	case VersionMPEG2:
		return "MPEG-2"
	case VersionMPEG25:
		return "MPEG-2.5"
	default:
		return "Unknown"
	}
}

// Known reports whether v is one of the concrete versions.
func (v Version) Known() bool {
	return v >= VersionMPEG1 && v <= VersionMPEG25
}

// Layer represents the MPEG audio layer of a frame.
type Layer int

const (
	// LayerUnknown represents an absent or inconsistent layer.
	LayerUnknown Layer = iota // Unknown
	// LayerI represents Layer I (.mp1).
	LayerI // Layer I
	// LayerII represents Layer II (.mp2).
	LayerII // Layer II
	// LayerIII represents Layer III (.mp3).
	LayerIII // Layer III
)

// String returns the conventional name of the layer.
func (l Layer) String() string {
	switch l {
	case LayerI:
		return "Layer I"
	case LayerII:
		return "Layer II"
	case LayerIII:
		return "Layer III"
	default:
		return "Unknown"
	}
}

// Known reports whether l is one of the concrete layers.
func (l Layer) Known() bool {
	return l >= LayerI && l <= LayerIII
}

// Mode represents the channel mode of a frame.
type Mode int

const (
	// ModeUnknown represents an absent or inconsistent channel mode.
	ModeUnknown Mode = iota // Unknown
	// ModeStereo represents plain stereo.
	ModeStereo // Stereo
	// ModeJointStereo represents joint (intensity/MS) stereo.
	ModeJointStereo // Joint Stereo
	// ModeDualChannel represents two independent mono channels.
	ModeDualChannel // Dual Channel
	// ModeMono represents a single channel.
	ModeMono // Mono
)

// String returns the conventional name of the channel mode.
func (m Mode) String() string {
	switch m {
	case ModeStereo:
		return "Stereo"
	case ModeJointStereo:
		return "Joint Stereo"
	case ModeDualChannel:
		return "Dual Channel"
	case ModeMono:
		return "Mono"
	default:
		return "Unknown"
	}
}

// Known reports whether m is one of the concrete channel modes.
func (m Mode) Known() bool {
	return m >= ModeStereo && m <= ModeMono
}

// ChannelCount returns the number of channels carried in this mode,
// or 0 for ModeUnknown.
func (m Mode) ChannelCount() uint8 {
	switch m {
	case ModeStereo, ModeJointStereo, ModeDualChannel:
		return 2
	case ModeMono:
		return 1
	default:
		return 0
	}
}

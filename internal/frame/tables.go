package frame

import "github.com/simonhull/mpegaudio/internal/types"

// Tables are indexed by [version][layer] using versionIndex and layerIndex.
// Reserved header values never reach a lookup: Decode rejects them first.

// bitratesKbps is indexed by [version][layer][bitrate index].
// Index 0 is free format, index 15 is reserved and absent.
var bitratesKbps = [3][3][15]uint32{
	{
		{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448}, // MPEG-1 Layer I
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},    // MPEG-1 Layer II
		{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},     // MPEG-1 Layer III
	},
	{
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256}, // MPEG-2 Layer I
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},      // MPEG-2 Layer II
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},      // MPEG-2 Layer III
	},
	{
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256}, // MPEG-2.5 Layer I
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},      // MPEG-2.5 Layer II
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},      // MPEG-2.5 Layer III
	},
}

// sampleRatesHz is indexed by [version][sample rate index]. Index 3 is reserved.
var sampleRatesHz = [3][3]uint16{
	{44100, 48000, 32000}, // MPEG-1
	{22050, 24000, 16000}, // MPEG-2
	{11025, 12000, 8000},  // MPEG-2.5
}

// samplesPerFrame is indexed by [version][layer].
var samplesPerFrame = [3][3]uint16{
	{384, 1152, 1152}, // MPEG-1
	{384, 1152, 576},  // MPEG-2
	{384, 1152, 576},  // MPEG-2.5
}

// sideInformationSizes is indexed by [version][mode].
var sideInformationSizes = [3][4]uint16{
	{32, 32, 32, 17}, // MPEG-1
	{17, 17, 17, 9},  // MPEG-2
	{17, 17, 17, 9},  // MPEG-2.5
}

func versionIndex(v types.Version) int {
	switch v {
	case types.VersionMPEG1:
		return 0
	case types.VersionMPEG2:
		return 1
	case types.VersionMPEG25:
		return 2
	}
	panic("frame: table lookup with unknown MPEG version")
}

func layerIndex(l types.Layer) int {
	switch l {
	case types.LayerI:
		return 0
	case types.LayerII:
		return 1
	case types.LayerIII:
		return 2
	}
	panic("frame: table lookup with unknown MPEG layer")
}

func modeIndex(m types.Mode) int {
	switch m {
	case types.ModeStereo:
		return 0
	case types.ModeJointStereo:
		return 1
	case types.ModeDualChannel:
		return 2
	case types.ModeMono:
		return 3
	}
	panic("frame: table lookup with unknown channel mode")
}

// SamplesPerFrame returns the number of samples per channel in a frame.
func SamplesPerFrame(v types.Version, l types.Layer) uint16 {
	return samplesPerFrame[versionIndex(v)][layerIndex(l)]
}

// SideInformationSize returns the size in bytes of the side information
// that follows the frame header.
func SideInformationSize(v types.Version, m types.Mode) uint16 {
	return sideInformationSizes[versionIndex(v)][modeIndex(m)]
}

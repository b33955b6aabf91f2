package mpegaudio

import (
	"path/filepath"
	"strings"

	"github.com/simonhull/mpegaudio/internal/types"
)

// Header is an alias to types.Header.
// Re-exporting from internal/types to maintain public API.
type Header = types.Header

// HeaderSource is an alias to types.HeaderSource.
type HeaderSource = types.HeaderSource

// Re-export all header sources.
const (
	SourceMPEGFrameHeaders = types.SourceMPEGFrameHeaders
	SourceXingHeader       = types.SourceXingHeader
	SourceVBRIHeader       = types.SourceVBRIHeader
)

// ParseMode is an alias to types.ParseMode.
type ParseMode = types.ParseMode

// Re-export all parse modes.
const (
	PreferVBRHeaders = types.PreferVBRHeaders
	IgnoreVBRHeaders = types.IgnoreVBRHeaders
)

// ParseParseMode converts "prefer-vbr" or "ignore-vbr" into a ParseMode.
func ParseParseMode(s string) (ParseMode, error) {
	return types.ParseParseMode(s)
}

// VBRInfo is an alias to types.VBRInfo.
type VBRInfo = types.VBRInfo

// MPEGVersion is an alias to types.Version.
type MPEGVersion = types.Version

// Re-export all MPEG versions.
const (
	VersionUnknown = types.VersionUnknown
	VersionMPEG1   = types.VersionMPEG1
	VersionMPEG2   = types.VersionMPEG2
	VersionMPEG25  = types.VersionMPEG25
)

// Layer is an alias to types.Layer.
type Layer = types.Layer

// Re-export all layers.
const (
	LayerUnknown = types.LayerUnknown
	LayerI       = types.LayerI
	LayerII      = types.LayerII
	LayerIII     = types.LayerIII
)

// Mode is an alias to types.Mode.
type Mode = types.Mode

// Re-export all channel modes.
const (
	ModeUnknown     = types.ModeUnknown
	ModeStereo      = types.ModeStereo
	ModeJointStereo = types.ModeJointStereo
	ModeDualChannel = types.ModeDualChannel
	ModeMono        = types.ModeMono
)

// mpegExtensions lists the file extensions of MPEG audio elementary streams.
var mpegExtensions = map[string]bool{
	".mp1": true,
	".mp2": true,
	".mp3": true,
	".mpa": true,
}

// IsMPEGAudioPath reports whether path has an MPEG audio file extension.
// The check is case insensitive and does not touch the file system.
func IsMPEGAudioPath(path string) bool {
	return mpegExtensions[strings.ToLower(filepath.Ext(path))]
}

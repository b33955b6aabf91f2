package mpegaudio

import (
	"github.com/simonhull/mpegaudio/internal/types"
)

// ReadPosition is an alias to types.ReadPosition.
// Re-exporting from internal/types to maintain public API.
type ReadPosition = types.ReadPosition

// ErrorKind is an alias to types.ErrorKind.
type ErrorKind = types.ErrorKind

// Error kinds.
const (
	KindIO    = types.KindIO
	KindFrame = types.KindFrame
)

// PositionalError is an alias to types.PositionalError.
// Re-exporting from internal/types to maintain public API.
type PositionalError = types.PositionalError

// FrameError is an alias to types.FrameError.
// Re-exporting from internal/types to maintain public API.
type FrameError = types.FrameError

// UnrecognizedDataError is an alias to types.UnrecognizedDataError.
// It is only returned when a resync limit is set, see WithResyncLimit.
type UnrecognizedDataError = types.UnrecognizedDataError

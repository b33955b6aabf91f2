package types

import "fmt"

// enum is satisfied by the small closed enumerations of this package.
type enum interface {
	~int
	String() string
}

// unmarshalEnum resolves text against the String() form of every value.
func unmarshalEnum[T enum](text []byte, values []T, dst *T, what string) error {
	s := string(text)
	for _, v := range values {
		if v.String() == s {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q", what, s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []Version{VersionUnknown, VersionMPEG1, VersionMPEG2, VersionMPEG25}, v, "MPEG version")
}

// MarshalText implements encoding.TextMarshaler.
func (l Layer) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layer) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []Layer{LayerUnknown, LayerI, LayerII, LayerIII}, l, "MPEG layer")
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []Mode{ModeUnknown, ModeStereo, ModeJointStereo, ModeDualChannel, ModeMono}, m, "channel mode")
}

// MarshalText implements encoding.TextMarshaler.
func (s HeaderSource) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *HeaderSource) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []HeaderSource{SourceMPEGFrameHeaders, SourceXingHeader, SourceVBRIHeader}, s, "header source")
}

// MarshalText implements encoding.TextMarshaler.
func (m ParseMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler and accepts every
// spelling understood by ParseParseMode.
func (m *ParseMode) UnmarshalText(text []byte) error {
	mode, err := ParseParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

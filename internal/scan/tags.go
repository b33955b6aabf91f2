package scan

import (
	"github.com/simonhull/mpegaudio/internal/binary"
	"github.com/simonhull/mpegaudio/internal/frame"
)

// Tag container sizes in bytes, including the signature bytes that have
// already been consumed into the scan window.
const (
	id3v1Size       = 128
	id3v2HeaderSize = 10
	id3v2FooterSize = 10
	apev2HeaderSize = 32

	id3v2FooterFlag = 0b0001_0000
)

// TagKind identifies a recognized tag container.
type TagKind int

const (
	// TagNone means the window does not start a tag container.
	TagNone TagKind = iota // none
	// TagID3v1 is a 128 byte ID3v1 trailer.
	TagID3v1 // ID3v1
	// TagID3v2 is an ID3v2 tag with a synchsafe size.
	TagID3v2 // ID3v2
	// TagAPEv2 is an APEv2 tag with a header.
	TagAPEv2 // APEv2
)

// String returns the conventional name of the tag kind.
func (k TagKind) String() string {
	switch k {
	case TagID3v1:
		return "ID3v1"
	case TagID3v2:
		return "ID3v2"
	case TagAPEv2:
		return "APEv2"
	default:
		return "none"
	}
}

// tagKind matches the signature at the start of a 4 byte window.
func tagKind(window [frame.HeaderSize]byte) TagKind {
	switch string(window[:3]) {
	case "ID3":
		return TagID3v2
	case "TAG":
		return TagID3v1
	case "APE":
		if window[3] == 'T' {
			return TagAPEv2
		}
	}
	return TagNone
}

// skipTag consumes the rest of the tag container whose first 4 bytes are in
// window. It returns the recognized kind, or TagNone if window does not start
// a tag.
//
// A tag that is cut short by the end of input still counts as recognized;
// the following read reports the end of input.
func skipTag(r *binary.Reader, window [frame.HeaderSize]byte) (TagKind, error) {
	kind := tagKind(window)
	switch kind {
	case TagID3v2:
		var header [id3v2HeaderSize - frame.HeaderSize]byte
		ok, err := r.ReadExactOrEOF(header[:])
		if err != nil || !ok {
			return kind, err
		}
		// header[0] is the revision, header[1] the flags.
		size := int64(binary.Synchsafe(header[2:6]))
		if header[1]&id3v2FooterFlag != 0 {
			size += id3v2FooterSize
		}
		_, err = r.SkipExactOrEOF(size)
		return kind, err

	case TagID3v1:
		_, err := r.SkipExactOrEOF(id3v1Size - frame.HeaderSize)
		return kind, err

	case TagAPEv2:
		var header [apev2HeaderSize - frame.HeaderSize]byte
		ok, err := r.ReadExactOrEOF(header[:])
		if err != nil || !ok {
			return kind, err
		}
		if string(header[:4]) != "AGEX" {
			// Not a tag: the bytes go back to the sync search.
			r.Unread(header[:])
			return TagNone, nil
		}
		// header[4:8] is the APE version, header[8:12] the tag size
		// excluding this header.
		size := int64(binary.LE[uint32](header[8:12]))
		_, err = r.SkipExactOrEOF(size)
		return kind, err
	}
	return TagNone, nil
}

// Package testsupport builds synthetic MPEG audio streams for tests.
package testsupport

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Frame header words used throughout the tests.
const (
	// MPEG-1 Layer III, 128 kbps, 44.1 kHz, joint stereo: 417 bytes, 1152 samples.
	WordMPEG1L3JointStereo uint32 = 0xFFFB9064
	// Same as WordMPEG1L3JointStereo with the padding bit set: 418 bytes.
	WordMPEG1L3Padded uint32 = 0xFFFB9264
	// MPEG-1 Layer III, 128 kbps, 44.1 kHz, stereo: 417 bytes.
	WordMPEG1L3Stereo uint32 = 0xFFFB9004
	// MPEG-1 Layer III, 128 kbps, 44.1 kHz, mono: 417 bytes.
	WordMPEG1L3Mono uint32 = 0xFFFB90C4
	// MPEG-1 Layer III, 64 kbps, 44.1 kHz, joint stereo: 208 bytes.
	WordMPEG1L3Low uint32 = 0xFFFB5064
	// MPEG-2 Layer III, 64 kbps, 22.05 kHz, stereo: 208 bytes, 576 samples.
	WordMPEG2L3 uint32 = 0xFFF38004
	// MPEG-1 Layer II, 256 kbps, 48 kHz, stereo: 768 bytes, 1152 samples.
	WordMPEG1L2 uint32 = 0xFFFDC400
	// MPEG-1 Layer III, free format, 44.1 kHz, joint stereo.
	WordMPEG1L3Free uint32 = 0xFFFB0064
	// MPEG-1 Layer I, 32 kbps, 48 kHz, stereo: 32 bytes, 384 samples.
	// The frame is shorter than header plus nominal side information.
	WordMPEG1L1Small uint32 = 0xFFFF1400
)

// FrameSize returns the size of the frames produced by Frame for the words
// declared in this package.
func FrameSize(word uint32) int {
	switch word {
	case WordMPEG1L3JointStereo, WordMPEG1L3Stereo, WordMPEG1L3Mono:
		return 417
	case WordMPEG1L3Padded:
		return 418
	case WordMPEG1L3Low:
		return 208
	case WordMPEG2L3:
		return 208
	case WordMPEG1L2:
		return 768
	case WordMPEG1L1Small:
		return 32
	case WordMPEG1L3Free:
		return 0
	}
	panic(fmt.Sprintf("testsupport: unknown frame word 0x%08X", word))
}

// Frame returns a complete frame: the header word followed by zeroed side
// information and payload.
func Frame(word uint32) []byte {
	size := FrameSize(word)
	if size == 0 {
		size = 4
	}
	buf := make([]byte, size)
	binary.BigEndian.PutUint32(buf, word)
	return buf
}

// Frames returns n consecutive frames with the same header word.
func Frames(word uint32, n int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		buf.Write(Frame(word))
	}
	return buf.Bytes()
}

// Concat joins byte slices.
func Concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// ID3v2 returns an ID3v2.3 tag whose header declares a body of size bytes.
// With footer set, the footer flag is raised and a 10 byte footer appended.
func ID3v2(size int, footer bool) []byte {
	var buf bytes.Buffer
	buf.WriteString("ID3")
	buf.Write([]byte{0x03, 0x00}) // Version 2.3.0
	flags := byte(0)
	if footer {
		flags |= 0x10
	}
	buf.WriteByte(flags)
	buf.Write(synchsafe(uint32(size)))
	body := make([]byte, size)
	if size >= 11 {
		// TIT2 frame header, so the body looks like a real tag
		copy(body, []byte{'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00})
	}
	buf.Write(body)
	if footer {
		buf.WriteString("3DI")
		buf.Write([]byte{0x04, 0x00, flags})
		buf.Write(synchsafe(uint32(size)))
	}
	return buf.Bytes()
}

func synchsafe(v uint32) []byte {
	return []byte{
		byte(v>>21) & 0x7F,
		byte(v>>14) & 0x7F,
		byte(v>>7) & 0x7F,
		byte(v) & 0x7F,
	}
}

// ID3v1 returns a 128 byte ID3v1 trailer.
func ID3v1(title string) []byte {
	buf := make([]byte, 128)
	copy(buf, "TAG")
	copy(buf[3:33], title)
	return buf
}

// APEv2 returns an APEv2 tag with header and footer around itemsSize bytes of items.
func APEv2(itemsSize int) []byte {
	const headerSize = 32
	tagSize := uint32(itemsSize + headerSize) // items + footer

	header := func(isHeader bool) []byte {
		b := make([]byte, headerSize)
		copy(b, "APETAGEX")
		binary.LittleEndian.PutUint32(b[8:], 2000)
		binary.LittleEndian.PutUint32(b[12:], tagSize)
		flags := uint32(1 << 31) // contains header
		if isHeader {
			flags |= 1 << 29
		}
		binary.LittleEndian.PutUint32(b[20:], flags)
		return b
	}

	return Concat(header(true), make([]byte, itemsSize), header(false))
}

// XingOptions describes the fields of a Xing/Info header.
type XingOptions struct {
	Tag         string // "Xing" (default) or "Info"
	TotalFrames *uint32
	TotalBytes  *uint32
	TOC         bool
	Quality     *uint32
}

// Uint32 returns a pointer to v.
func Uint32(v uint32) *uint32 { return &v }

// XingFrame returns a frame with header word word carrying a Xing header.
// The header follows 32 bytes of side information (MPEG-1 stereo).
func XingFrame(word uint32, opts XingOptions) []byte {
	buf := Frame(word)
	tag := opts.Tag
	if tag == "" {
		tag = "Xing"
	}

	off := 4 + sideInfo(word)
	copy(buf[off:], tag)
	off += 4

	var flags uint32
	var fields []byte
	if opts.TotalFrames != nil {
		flags |= 0x1
		fields = binary.BigEndian.AppendUint32(fields, *opts.TotalFrames)
	}
	if opts.TotalBytes != nil {
		flags |= 0x2
		fields = binary.BigEndian.AppendUint32(fields, *opts.TotalBytes)
	}
	if opts.TOC {
		flags |= 0x4
		for i := 0; i < 100; i++ {
			fields = append(fields, byte(i*255/100))
		}
	}
	if opts.Quality != nil {
		flags |= 0x8
		fields = binary.BigEndian.AppendUint32(fields, *opts.Quality)
	}
	binary.BigEndian.PutUint32(buf[off:], flags)
	off += 4
	copy(buf[off:], fields)
	return buf
}

// VBRIOptions describes the fields of a VBRI header.
type VBRIOptions struct {
	Version      uint16
	Delay        uint16
	Quality      uint16
	TotalBytes   uint32
	TotalFrames  uint32
	TOCEntries   uint16
	TOCEntrySize uint16
}

// VBRIFrame returns a frame with header word word carrying a VBRI header
// 32 bytes behind the frame header.
func VBRIFrame(word uint32, opts VBRIOptions) []byte {
	buf := Frame(word)
	b := buf[4+32:]
	copy(b, "VBRI")
	binary.BigEndian.PutUint16(b[4:], opts.Version)
	binary.BigEndian.PutUint16(b[6:], opts.Delay)
	binary.BigEndian.PutUint16(b[8:], opts.Quality)
	binary.BigEndian.PutUint32(b[10:], opts.TotalBytes)
	binary.BigEndian.PutUint32(b[14:], opts.TotalFrames)
	binary.BigEndian.PutUint16(b[18:], opts.TOCEntries)
	binary.BigEndian.PutUint16(b[20:], 1) // TOC scale
	binary.BigEndian.PutUint16(b[22:], opts.TOCEntrySize)
	binary.BigEndian.PutUint16(b[24:], 1) // frames per TOC entry
	return buf
}

// sideInfo returns the side information size of the words in this package.
func sideInfo(word uint32) int {
	switch word {
	case WordMPEG1L3Mono:
		return 17
	case WordMPEG2L3:
		return 17
	default:
		return 32
	}
}

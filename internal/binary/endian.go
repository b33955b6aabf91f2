package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: MPEG frame headers, Xing and VBRI headers.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: APEv2 tag headers.
	LittleEndian
)

// BE decodes a value of type T from the start of b using big-endian byte order.
//
// Example:
//
//	totalFrames := binary.BE[uint32](buf[8:12])
func BE[T uint8 | uint16 | uint32 | uint64](b []byte) T {
	return Decode[T](b, BigEndian)
}

// LE decodes a value of type T from the start of b using little-endian byte order.
//
// Example:
//
//	tagSize := binary.LE[uint32](header[12:16])
func LE[T uint8 | uint16 | uint32 | uint64](b []byte) T {
	return Decode[T](b, LittleEndian)
}

// Decode decodes a value of type T from the start of b with the given byte order.
//
// b must hold at least as many bytes as T; callers slice fixed size header
// buffers, so a short slice is a programming error and panics.
func Decode[T uint8 | uint16 | uint32 | uint64](b []byte, endian Endianness) T {
	var zero T
	var order binary.ByteOrder = binary.BigEndian
	if endian == LittleEndian {
		order = binary.LittleEndian
	}

	switch any(zero).(type) {
	case uint8:
		return T(b[0])
	case uint16:
		return T(order.Uint16(b))
	case uint32:
		return T(order.Uint32(b))
	default:
		return T(order.Uint64(b))
	}
}

// Synchsafe decodes a 28-bit synchronization safe integer (ID3v2), which
// stores 7 bits in each of 4 bytes.
func Synchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

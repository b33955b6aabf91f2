package binary

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestLE(t *testing.T) {
	// Create test data with known little-endian values
	buf := &bytes.Buffer{}

	// uint16: 0x0201 (little-endian) = 513 (decimal)
	binary.Write(buf, binary.LittleEndian, uint16(513))

	// uint32: 0x04030201 (little-endian) = 67305985 (decimal)
	binary.Write(buf, binary.LittleEndian, uint32(67305985))

	// uint64: 0x0807060504030201 (little-endian)
	binary.Write(buf, binary.LittleEndian, uint64(578437695752307201))

	data := buf.Bytes()

	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{name: "uint8", got: uint64(LE[uint8](data[0:])), want: 0x01},
		{name: "uint16 little-endian", got: uint64(LE[uint16](data[0:])), want: 513},
		{name: "uint32 little-endian", got: uint64(LE[uint32](data[2:])), want: 67305985},
		{name: "uint64 little-endian", got: LE[uint64](data[6:]), want: 578437695752307201},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestBE(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}

	if got := BE[uint16](data); got != 0x1234 {
		t.Errorf("BE[uint16] = 0x%04x, want 0x1234", got)
	}
	if got := BE[uint32](data); got != 0x12345678 {
		t.Errorf("BE[uint32] = 0x%08x, want 0x12345678", got)
	}
	if got := BE[uint64](data); got != 0x123456789ABCDEF0 {
		t.Errorf("BE[uint64] = 0x%016x, want 0x123456789ABCDEF0", got)
	}
}

func TestDecode_ByteOrderDiffers(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}

	be := Decode[uint32](data, BigEndian)
	le := Decode[uint32](data, LittleEndian)

	if be == le {
		t.Fatalf("big and little endian decode should differ, both = 0x%08x", be)
	}
	if be != 0x01020304 {
		t.Errorf("big-endian = 0x%08x, want 0x01020304", be)
	}
	if le != 0x04030201 {
		t.Errorf("little-endian = 0x%08x, want 0x04030201", le)
	}
}

func TestSynchsafe(t *testing.T) {
	tests := []struct {
		input    []byte
		expected uint32
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x00, 0x7F}, 127},
		{[]byte{0x00, 0x00, 0x01, 0x00}, 128},
		{[]byte{0x00, 0x00, 0x02, 0x00}, 256},
		{[]byte{0x7F, 0x7F, 0x7F, 0x7F}, 0x0FFFFFFF},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF}, 0x0FFFFFFF}, // high bits ignored
		{[]byte{0x00, 0x00}, 0},                      // wrong length
	}

	for _, tt := range tests {
		result := Synchsafe(tt.input)
		if result != tt.expected {
			t.Errorf("Synchsafe(%v) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

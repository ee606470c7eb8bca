package protocol

import (
	"errors"
	"testing"
)

func TestVLQLengths(t *testing.T) {
	testCases := []struct {
		v    int32
		size int
	}{
		{0, 1},
		{95, 1},
		{96, 2},
		{-32, 1},
		{-33, 2},
		{12287, 2},
		{12288, 3},
		{-1000000, 4},
		{0x50004080, 5},
	}

	for _, tc := range testCases {
		enc := AppendVLQ(nil, tc.v)
		if len(enc) != tc.size {
			t.Errorf("AppendVLQ(%d) = %d bytes, want %d", tc.v, len(enc), tc.size)
		}
		data := enc
		got, err := ReadVLQ(&data)
		if err != nil || got != tc.v {
			t.Errorf("ReadVLQ(% X) = %d, %v; want %d", enc, got, err, tc.v)
		}
		if len(data) != 0 {
			t.Errorf("ReadVLQ(% X) left %d bytes", enc, len(data))
		}
	}
}

func TestUVLQHighBit(t *testing.T) {
	data := AppendUVLQ(nil, 0xE000E100)
	got, err := ReadUVLQ(&data)
	if err != nil || got != 0xE000E100 {
		t.Errorf("ReadUVLQ = 0x%08X, %v", got, err)
	}
}

func TestReadVLQErrors(t *testing.T) {
	short := []byte{0x81}
	if _, err := ReadVLQ(&short); !errors.Is(err, ErrShortPayload) {
		t.Errorf("truncated value error = %v", err)
	}
	if len(short) != 1 {
		t.Error("failed read consumed input")
	}

	long := []byte{0x81, 0x81, 0x81, 0x81, 0x81, 0x01}
	if _, err := ReadVLQ(&long); !errors.Is(err, ErrInvalidVLQ) {
		t.Errorf("overlong value error = %v", err)
	}
}

func TestString(t *testing.T) {
	data := AppendString(nil, "xgpio, 001")
	data = AppendString(data, "")
	s, err := ReadString(&data)
	if err != nil || s != "xgpio, 001" {
		t.Errorf("ReadString = %q, %v", s, err)
	}
	s, err = ReadString(&data)
	if err != nil || s != "" {
		t.Errorf("ReadString = %q, %v", s, err)
	}

	bad := []byte{5, 'a', 'b'}
	if _, err := ReadString(&bad); !errors.Is(err, ErrShortPayload) {
		t.Errorf("short string error = %v", err)
	}
}

package protocol

import "errors"

var (
	ErrInvalidVLQ   = errors.New("invalid VLQ encoding")
	ErrShortPayload = errors.New("payload too short")
)

// AppendVLQ appends the variable-length encoding of v to dst: 7 bits per
// byte, most significant first, high bit set on all but the last byte.
// Values in [-32, 96) take one byte.
func AppendVLQ(dst []byte, v int32) []byte {
	if v < -(1<<26) || v >= 3<<26 {
		dst = append(dst, byte(v>>28)&0x7F|0x80)
	}
	if v < -(1<<19) || v >= 3<<19 {
		dst = append(dst, byte(v>>21)&0x7F|0x80)
	}
	if v < -(1<<12) || v >= 3<<12 {
		dst = append(dst, byte(v>>14)&0x7F|0x80)
	}
	if v < -(1<<5) || v >= 3<<5 {
		dst = append(dst, byte(v>>7)&0x7F|0x80)
	}
	return append(dst, byte(v)&0x7F)
}

// AppendUVLQ appends an unsigned value.
func AppendUVLQ(dst []byte, v uint32) []byte {
	return AppendVLQ(dst, int32(v))
}

// AppendString appends a length-prefixed string.
func AppendString(dst []byte, s string) []byte {
	dst = AppendUVLQ(dst, uint32(len(s)))
	return append(dst, s...)
}

// ReadVLQ decodes one value from the front of *data and advances it.
func ReadVLQ(data *[]byte) (int32, error) {
	buf := *data
	if len(buf) == 0 {
		return 0, ErrShortPayload
	}
	c := uint32(buf[0])
	v := c & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F) // negative
	}
	i := 1
	for c&0x80 != 0 {
		if i >= len(buf) {
			return 0, ErrShortPayload
		}
		if i == 5 {
			return 0, ErrInvalidVLQ
		}
		c = uint32(buf[i])
		v = v<<7 | c&0x7F
		i++
	}
	*data = buf[i:]
	return int32(v), nil
}

// ReadUVLQ decodes one unsigned value.
func ReadUVLQ(data *[]byte) (uint32, error) {
	v, err := ReadVLQ(data)
	return uint32(v), err
}

// ReadString decodes a length-prefixed string.
func ReadString(data *[]byte) (string, error) {
	n, err := ReadUVLQ(data)
	if err != nil {
		return "", err
	}
	if uint32(len(*data)) < n {
		return "", ErrShortPayload
	}
	s := string((*data)[:n])
	*data = (*data)[n:]
	return s, nil
}

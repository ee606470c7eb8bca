package protocol

import "testing"

func TestCRC16(t *testing.T) {
	testCases := []struct {
		data []byte
		want uint16
	}{
		{[]byte{}, 0xFFFF},
		{[]byte("123456789"), 0x6F91},
	}

	for _, tc := range testCases {
		if got := CRC16(tc.data); got != tc.want {
			t.Errorf("CRC16(%q) = 0x%04X, want 0x%04X", tc.data, got, tc.want)
		}
	}
}

func TestCRC16DetectsSingleBitFlip(t *testing.T) {
	data := []byte{0x08, 0x10, 0x02, 0x61}
	want := CRC16(data)
	for i := range data {
		for bit := 0; bit < 8; bit++ {
			data[i] ^= 1 << bit
			if CRC16(data) == want {
				t.Errorf("flip byte %d bit %d not detected", i, bit)
			}
			data[i] ^= 1 << bit
		}
	}
}

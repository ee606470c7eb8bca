package protocol

// CRC16 returns the CRC-16/MCRF4XX checksum of data, computed one byte at a
// time without a table so it fits small firmware.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		x := b ^ uint8(crc)
		x ^= x << 4
		w := uint16(x)
		crc = (w<<8 | crc>>8) ^ (w >> 4) ^ (w << 3)
	}
	return crc
}

package oskar

import "encoding/binary"

// Fixture builders shared by the package tests. The package never writes
// files, so tests assemble the on-disk layout by hand.

func encodeTestHeader(version uint8) []byte {
	b := make([]byte, HeaderSize)
	copy(b, Magic)
	b[9] = version
	b[10] = 1 // little-endian writer
	// LP64 platform widths
	b[11], b[12], b[13], b[14], b[15] = 8, 4, 8, 4, 8
	binary.LittleEndian.PutUint32(b[16:], 0x00020001)
	return b
}

func encodeTestTag(dataType, flags, group, tagID uint8, userIdx uint32, payloadSize uint64) []byte {
	b := make([]byte, TagSize)
	b[0], b[1], b[2] = 'T', 'B', 'G'
	b[4] = flags
	b[5] = dataType
	b[6] = group
	b[7] = tagID
	binary.LittleEndian.PutUint32(b[8:], userIdx)
	binary.LittleEndian.PutUint64(b[12:], payloadSize)
	return b
}

// appendCRC returns body plus the little-endian CRC32C trailer computed
// over tagRaw and body.
func appendCRC(tagRaw, body []byte) []byte {
	sum := CRC32C(append(append([]byte{}, tagRaw...), body...))
	out := append(append([]byte{}, body...), 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(out[len(body):], sum)
	return out
}

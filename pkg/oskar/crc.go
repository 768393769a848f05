package oskar

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// CRC32C returns the Castagnoli CRC-32 of data: initial value zero, no
// final XOR beyond the standard CRC-32C definition.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// VerifyChecksum validates the CRC32C trailer of a checksummed chunk.
// tagRaw is the encoded 20-byte tag; payload includes the 4-byte
// trailer. It returns the payload with the trailer stripped. Format
// versions older than 2 carry no checksum and the payload is returned
// unchanged.
func VerifyChecksum(version uint8, tagRaw, payload []byte) ([]byte, error) {
	if version < 2 {
		return payload, nil
	}
	if len(payload) < crcSize {
		return nil, fmt.Errorf("%w: %d-byte payload cannot hold a crc trailer", ErrDecode, len(payload))
	}
	body := payload[:len(payload)-crcSize]
	stored := binary.LittleEndian.Uint32(payload[len(payload)-crcSize:])
	sum := crc32.Update(0, castagnoli, tagRaw)
	sum = crc32.Update(sum, castagnoli, body)
	if sum != stored {
		return nil, fmt.Errorf("%w: stored 0x%08X, computed 0x%08X", ErrChecksumMismatch, stored, sum)
	}
	return body, nil
}

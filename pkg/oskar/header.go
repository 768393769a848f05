package oskar

import "fmt"

// headerFields is the 64-byte preamble layout.
var headerFields = []field{
	{"magic", 9, fieldBytes},
	{"version", 1, fieldUint},
	{"littleEndian", 1, fieldUint},
	{"voidPtrSize", 1, fieldUint},
	{"intSize", 1, fieldUint},
	{"longSize", 1, fieldUint},
	{"floatSize", 1, fieldUint},
	{"doubleSize", 1, fieldUint},
	{"appVersion", 4, fieldUint},
	{"reserved", 44, fieldBytes},
}

// FileHeader is the decoded 64-byte file preamble. The five width fields
// record the writer platform's primitive sizes and are informational.
type FileHeader struct {
	Version      uint8
	LittleEndian uint8
	VoidPtrSize  uint8
	IntSize      uint8
	LongSize     uint8
	FloatSize    uint8
	DoubleSize   uint8
	AppVersion   uint32
}

// HasChecksums reports whether the format version writes CRC32C trailers
// on checksummed chunks. Files older than version 2 carry none.
func (h FileHeader) HasChecksums() bool { return h.Version >= 2 }

// PayloadsLittleEndian reports the byte order the writer declared for
// payload data. The preamble itself is always little-endian.
func (h FileHeader) PayloadsLittleEndian() bool { return h.LittleEndian != 0 }

// DecodeHeader parses the file preamble. The magic must match and all
// 44 reserved bytes must be zero.
func DecodeHeader(data []byte) (FileHeader, error) {
	vals, err := decodeRow(data, headerFields)
	if err != nil {
		return FileHeader{}, err
	}
	if string(vals[0].b) != Magic {
		return FileHeader{}, fmt.Errorf("%w: bad magic %q", ErrFormat, vals[0].b)
	}
	for _, b := range vals[9].b {
		if b != 0 {
			return FileHeader{}, fmt.Errorf("%w: non-zero reserved bytes", ErrFormat)
		}
	}
	return FileHeader{
		Version:      uint8(vals[1].u),
		LittleEndian: uint8(vals[2].u),
		VoidPtrSize:  uint8(vals[3].u),
		IntSize:      uint8(vals[4].u),
		LongSize:     uint8(vals[5].u),
		FloatSize:    uint8(vals[6].u),
		DoubleSize:   uint8(vals[7].u),
		AppVersion:   uint32(vals[8].u),
	}, nil
}

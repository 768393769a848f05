package oskar

import (
	"encoding/binary"
	"fmt"
)

// The on-disk structures are fixed little-endian layouts. Each layout is
// declared once as an ordered field table and decoded by one generic
// routine, so byte widths and offsets live in exactly one place.

type fieldKind uint8

const (
	fieldBytes fieldKind = iota
	fieldUint
)

type field struct {
	name  string
	width int
	kind  fieldKind
}

type fieldValue struct {
	u uint64
	b []byte
}

func layoutSize(fields []field) int {
	n := 0
	for _, f := range fields {
		n += f.width
	}
	return n
}

// decodeRow decodes one fixed-layout structure, returning a value per
// field in declaration order. Byte fields alias the input slice.
func decodeRow(data []byte, fields []field) ([]fieldValue, error) {
	if len(data) < layoutSize(fields) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedFile, layoutSize(fields), len(data))
	}
	out := make([]fieldValue, len(fields))
	off := 0
	for i, f := range fields {
		raw := data[off : off+f.width]
		switch f.kind {
		case fieldBytes:
			out[i].b = raw
		case fieldUint:
			switch f.width {
			case 1:
				out[i].u = uint64(raw[0])
			case 4:
				out[i].u = uint64(binary.LittleEndian.Uint32(raw))
			case 8:
				out[i].u = binary.LittleEndian.Uint64(raw)
			default:
				return nil, fmt.Errorf("%w: field %s has unsupported width %d", ErrDecode, f.name, f.width)
			}
		}
		off += f.width
	}
	return out, nil
}

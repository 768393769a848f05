package oskar

import (
	"fmt"
	"math/bits"
)

// Chunk flag bits.
const (
	flagBigEndian uint8 = 1 << 4
	flagCRC32C    uint8 = 1 << 6
	flagExtended  uint8 = 1 << 7
)

// Data-type bit-field: bits 0-3 select the base element type, bits 5 and
// 6 are shape modifiers, bits 4 and 7 are reserved and must be zero.
const (
	typeChar   uint8 = 1 << 0
	typeInt    uint8 = 1 << 1
	typeFloat  uint8 = 1 << 2
	typeDouble uint8 = 1 << 3

	typeComplex uint8 = 1 << 5
	typeMatrix  uint8 = 1 << 6

	typeBaseMask     uint8 = 0x0F
	typeReservedMask uint8 = 0x90
)

// tagFields is the 20-byte chunk tag layout.
var tagFields = []field{
	{"marker", 3, fieldBytes},
	{"elementSize", 1, fieldUint},
	{"chunkFlags", 1, fieldUint},
	{"dataType", 1, fieldUint},
	{"groupID", 1, fieldUint},
	{"tagID", 1, fieldUint},
	{"userIndex", 4, fieldUint},
	{"payloadSize", 8, fieldUint},
}

// Tag is the fixed 20-byte header preceding each payload chunk.
// ElementSize is the writer-declared element width; the data-type
// bit-field is authoritative and the declared width is informational.
type Tag struct {
	Marker      [3]byte
	ElementSize uint8
	ChunkFlags  uint8
	DataType    uint8
	GroupID     uint8
	TagID       uint8
	UserIndex   uint32
	PayloadSize uint64
}

// DecodeTag parses one tag. It validates nothing beyond having 20 bytes
// available; call Sane before interpreting the payload.
func DecodeTag(data []byte) (Tag, error) {
	vals, err := decodeRow(data, tagFields)
	if err != nil {
		return Tag{}, err
	}
	var t Tag
	copy(t.Marker[:], vals[0].b)
	t.ElementSize = uint8(vals[1].u)
	t.ChunkFlags = uint8(vals[2].u)
	t.DataType = uint8(vals[3].u)
	t.GroupID = uint8(vals[4].u)
	t.TagID = uint8(vals[5].u)
	t.UserIndex = uint32(vals[6].u)
	t.PayloadSize = vals[7].u
	return t, nil
}

// PayloadBigEndian reports whether the payload was written big-endian.
func (t Tag) PayloadBigEndian() bool { return t.ChunkFlags&flagBigEndian != 0 }

// UsesCRC32C reports whether the payload ends in a 4-byte CRC32C trailer.
func (t Tag) UsesCRC32C() bool { return t.ChunkFlags&flagCRC32C != 0 }

// Extended reports the extended-tag flag. Extended tags decode like any
// other chunk; the extension fields stay inside the payload.
func (t Tag) Extended() bool { return t.ChunkFlags&flagExtended != 0 }

func (t Tag) IsChar() bool    { return t.DataType&typeChar != 0 }
func (t Tag) IsInt() bool     { return t.DataType&typeInt != 0 }
func (t Tag) IsFloat() bool   { return t.DataType&typeFloat != 0 }
func (t Tag) IsDouble() bool  { return t.DataType&typeDouble != 0 }
func (t Tag) IsComplex() bool { return t.DataType&typeComplex != 0 }
func (t Tag) IsMatrix() bool  { return t.DataType&typeMatrix != 0 }

// Sane reports whether the data-type bit-field is well formed: exactly
// one base-type bit set and both reserved bits clear.
func (t Tag) Sane() bool {
	return t.DataType&typeReservedMask == 0 &&
		bits.OnesCount8(t.DataType&typeBaseMask) == 1
}

// Kind identifies the base element type of a payload.
type Kind uint8

const (
	KindChar Kind = iota
	KindInt
	KindFloat
	KindDouble
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Kind returns the base element type. Only meaningful when Sane holds.
func (t Tag) Kind() Kind {
	switch {
	case t.IsChar():
		return KindChar
	case t.IsInt():
		return KindInt
	case t.IsFloat():
		return KindFloat
	default:
		return KindDouble
	}
}

// ElementWidth returns the byte width of one base element: 1 for char,
// 4 for int and float, 8 for double. Zero when the tag is not sane.
func (t Tag) ElementWidth() int {
	if !t.Sane() {
		return 0
	}
	switch t.Kind() {
	case KindChar:
		return 1
	case KindInt, KindFloat:
		return 4
	default:
		return 8
	}
}

// ShapeMultiplier returns the number of base elements per logical value:
// x2 for complex, x4 for a 2x2 matrix, x8 for both.
func (t Tag) ShapeMultiplier() int {
	m := 1
	if t.IsComplex() {
		m *= 2
	}
	if t.IsMatrix() {
		m *= 4
	}
	return m
}

// TypeString renders the data type for display, e.g. "float complex".
func (t Tag) TypeString() string {
	if !t.Sane() {
		return fmt.Sprintf("invalid(0x%02X)", t.DataType)
	}
	s := t.Kind().String()
	if t.IsComplex() {
		s += " complex"
	}
	if t.IsMatrix() {
		s += " matrix(2x2)"
	}
	return s
}

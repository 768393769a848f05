package oskar

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Value is one decoded payload: a UTF-8 string for char chunks, or a
// flat, order-preserving numeric slice for everything else.
//
// Complex payloads interleave (real, imaginary) pairs. Matrix payloads
// hold each 2x2 matrix in row-major order [a b c d]. When both modifiers
// are set the ordering is matrix-major with each cell interleaved:
// [a_re a_im b_re b_im c_re c_im d_re d_im]. The container format leaves
// the combined ordering to the reader, so this package fixes that
// convention.
type Value struct {
	Kind    Kind
	Complex bool
	Matrix  bool
	Data    any // string, []int32, []float32 or []float64
}

// Len returns the number of scalars in a numeric payload, or the byte
// length of a string payload.
func (v Value) Len() int {
	switch d := v.Data.(type) {
	case string:
		return len(d)
	case []int32:
		return len(d)
	case []float32:
		return len(d)
	case []float64:
		return len(d)
	default:
		return 0
	}
}

// DecodePayload converts raw payload bytes into a Value. The raw slice
// must already exclude any CRC trailer.
func DecodePayload(tag Tag, raw []byte) (Value, error) {
	if !tag.Sane() {
		return Value{}, fmt.Errorf("%w: data type 0x%02X", ErrInvalidTypeDescriptor, tag.DataType)
	}
	v := Value{Kind: tag.Kind(), Complex: tag.IsComplex(), Matrix: tag.IsMatrix()}
	if tag.IsChar() {
		if !utf8.Valid(raw) {
			return Value{}, fmt.Errorf("%w: char payload is not valid UTF-8", ErrDecode)
		}
		v.Data = string(raw)
		return v, nil
	}

	width := tag.ElementWidth()
	group := width * tag.ShapeMultiplier()
	if len(raw)%group != 0 {
		return Value{}, fmt.Errorf("%w: %d payload bytes not divisible by %d-byte values", ErrDecode, len(raw), group)
	}
	var order binary.ByteOrder = binary.LittleEndian
	if tag.PayloadBigEndian() {
		order = binary.BigEndian
	}

	n := len(raw) / width
	switch tag.Kind() {
	case KindInt:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(order.Uint32(raw[i*4:]))
		}
		v.Data = out
	case KindFloat:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(raw[i*4:]))
		}
		v.Data = out
	default:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(raw[i*8:]))
		}
		v.Data = out
	}
	return v, nil
}

package oskar

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestDecodePayloadString(t *testing.T) {
	t.Parallel()

	tag := Tag{DataType: typeChar}
	v, err := DecodePayload(tag, []byte("element_pattern_fit"))
	if err != nil {
		t.Fatalf("decode string payload: %v", err)
	}
	if v.Kind != KindChar {
		t.Fatalf("kind: got %s want char", v.Kind)
	}
	if got := v.Data.(string); got != "element_pattern_fit" {
		t.Fatalf("string mismatch: %q", got)
	}
	if v.Len() != len("element_pattern_fit") {
		t.Fatalf("len: got %d", v.Len())
	}
}

func TestDecodePayloadInvalidUTF8(t *testing.T) {
	t.Parallel()

	tag := Tag{DataType: typeChar}
	if _, err := DecodePayload(tag, []byte{0xFF, 0xFE, 0xFD}); !errors.Is(err, ErrDecode) {
		t.Fatalf("invalid utf-8: got %v want ErrDecode", err)
	}
}

func TestDecodePayloadInt32(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 8)
	binary.LittleEndian.PutUint32(raw[0:], uint32(0x7FFFFFFF))
	binary.LittleEndian.PutUint32(raw[4:], 0xFFFFFFFF) // -1

	v, err := DecodePayload(Tag{DataType: typeInt}, raw)
	if err != nil {
		t.Fatalf("decode int payload: %v", err)
	}
	got := v.Data.([]int32)
	if len(got) != 2 || got[0] != math.MaxInt32 || got[1] != -1 {
		t.Fatalf("int values mismatch: %v", got)
	}
}

func TestDecodePayloadBigEndianFloat(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 8)
	binary.BigEndian.PutUint32(raw[0:], math.Float32bits(1.5))
	binary.BigEndian.PutUint32(raw[4:], math.Float32bits(-2.25))

	v, err := DecodePayload(Tag{DataType: typeFloat, ChunkFlags: flagBigEndian}, raw)
	if err != nil {
		t.Fatalf("decode big-endian floats: %v", err)
	}
	got := v.Data.([]float32)
	if len(got) != 2 || got[0] != 1.5 || got[1] != -2.25 {
		t.Fatalf("float values mismatch: %v", got)
	}
}

func TestDecodePayloadDoubleMatrixOrder(t *testing.T) {
	t.Parallel()

	// One 2x2 matrix in row-major order [a b c d].
	want := []float64{1, 2, 3, 4}
	raw := make([]byte, 32)
	for i, f := range want {
		binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(f))
	}

	v, err := DecodePayload(Tag{DataType: typeDouble | typeMatrix}, raw)
	if err != nil {
		t.Fatalf("decode matrix payload: %v", err)
	}
	if !v.Matrix || v.Complex {
		t.Fatalf("shape flags wrong: %+v", v)
	}
	got := v.Data.([]float64)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("matrix order mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestDecodePayloadComplexMatrixConvention(t *testing.T) {
	t.Parallel()

	// Matrix-major with each cell interleaved (real, imaginary):
	// [a_re a_im b_re b_im c_re c_im d_re d_im].
	want := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	raw := make([]byte, 32)
	for i, f := range want {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(f))
	}

	v, err := DecodePayload(Tag{DataType: typeFloat | typeComplex | typeMatrix}, raw)
	if err != nil {
		t.Fatalf("decode complex matrix payload: %v", err)
	}
	if !v.Matrix || !v.Complex {
		t.Fatalf("shape flags wrong: %+v", v)
	}
	got := v.Data.([]float32)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("complex matrix order mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestDecodePayloadIndivisibleLength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dataType uint8
		size     int
	}{
		// each size is short of a whole value group (4, 16 and 32 bytes)
		{typeFloat, 6},
		{typeDouble | typeComplex, 24},
		{typeFloat | typeComplex | typeMatrix, 16},
	}
	for _, c := range cases {
		_, err := DecodePayload(Tag{DataType: c.dataType}, make([]byte, c.size))
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("indivisible payload (type 0x%02X, %d bytes): got %v want ErrDecode", c.dataType, c.size, err)
		}
	}
}

func TestDecodePayloadInsaneTag(t *testing.T) {
	t.Parallel()

	// Char bit plus reserved bit 7 set.
	tag := Tag{DataType: 0x81}
	if _, err := DecodePayload(tag, []byte("abc")); !errors.Is(err, ErrInvalidTypeDescriptor) {
		t.Fatalf("insane tag: got %v want ErrInvalidTypeDescriptor", err)
	}
}

func TestDecodePayloadEmptyNumeric(t *testing.T) {
	t.Parallel()

	v, err := DecodePayload(Tag{DataType: typeDouble}, nil)
	if err != nil {
		t.Fatalf("decode empty payload: %v", err)
	}
	if v.Len() != 0 {
		t.Fatalf("empty payload len: got %d", v.Len())
	}
}

package oskar

import (
	"errors"
	"testing"
)

func TestHeaderLayoutCoversPreamble(t *testing.T) {
	t.Parallel()

	if got := layoutSize(headerFields); got != HeaderSize {
		t.Fatalf("header layout size: got %d want %d", got, HeaderSize)
	}
}

func TestDecodeHeader(t *testing.T) {
	t.Parallel()

	h, err := DecodeHeader(encodeTestHeader(2))
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	want := FileHeader{
		Version:      2,
		LittleEndian: 1,
		VoidPtrSize:  8,
		IntSize:      4,
		LongSize:     8,
		FloatSize:    4,
		DoubleSize:   8,
		AppVersion:   0x00020001,
	}
	if h != want {
		t.Fatalf("header mismatch: got %+v want %+v", h, want)
	}
	if !h.HasChecksums() {
		t.Fatalf("version 2 must report checksums")
	}
	if !h.PayloadsLittleEndian() {
		t.Fatalf("little-endian flag not surfaced")
	}
}

func TestDecodeHeaderLegacyVersion(t *testing.T) {
	t.Parallel()

	h, err := DecodeHeader(encodeTestHeader(1))
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if h.HasChecksums() {
		t.Fatalf("version 1 must not report checksums")
	}
}

func TestDecodeHeaderBadMagic(t *testing.T) {
	t.Parallel()

	raw := encodeTestHeader(2)
	raw[0] = 'X'
	if _, err := DecodeHeader(raw); !errors.Is(err, ErrFormat) {
		t.Fatalf("bad magic: got %v want ErrFormat", err)
	}
}

func TestDecodeHeaderReservedBytes(t *testing.T) {
	t.Parallel()

	raw := encodeTestHeader(2)
	raw[63] = 1
	if _, err := DecodeHeader(raw); !errors.Is(err, ErrFormat) {
		t.Fatalf("non-zero reserved byte: got %v want ErrFormat", err)
	}
}

func TestDecodeHeaderShortInput(t *testing.T) {
	t.Parallel()

	if _, err := DecodeHeader(encodeTestHeader(2)[:HeaderSize-1]); !errors.Is(err, ErrTruncatedFile) {
		t.Fatalf("short header: got %v want ErrTruncatedFile", err)
	}
}

package oskar

import "errors"

var (
	// ErrFormat reports a malformed file preamble: wrong magic or
	// non-zero reserved bytes.
	ErrFormat = errors.New("oskar: malformed file header")

	// ErrInvalidTypeDescriptor reports a tag whose data-type bit-field
	// fails the sanity invariant.
	ErrInvalidTypeDescriptor = errors.New("oskar: invalid type descriptor")

	// ErrChecksumMismatch reports a stored CRC32C that does not match
	// the checksum computed over the tag and payload bytes.
	ErrChecksumMismatch = errors.New("oskar: crc32c mismatch")

	// ErrTruncatedFile reports a source that ended inside a header,
	// tag or declared payload.
	ErrTruncatedFile = errors.New("oskar: truncated file")

	// ErrDecode reports a payload that cannot be interpreted as its
	// declared type.
	ErrDecode = errors.New("oskar: payload decode failed")
)

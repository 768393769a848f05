// Package oskar implements the OSKAR binary container format.
//
// An OSKAR binary file is a fixed 64-byte preamble followed by a
// sequence of tagged chunks. Each chunk starts with a fixed 20-byte tag
// describing the payload that follows it: base element type, shape
// modifiers, byte order and payload length. Chunks written by format
// version 2 and later end in a CRC32C trailer covering the tag and
// payload bytes.
//
// The package is strictly a reader. It decodes headers, tags and
// payloads into native Go values and never writes or repairs files.
package oskar

// Format constants. These must never change.
const (
	// Magic identifies an OSKAR binary file. It occupies the first
	// nine bytes of the preamble, encoded as "OSKARBIN\0".
	Magic = "OSKARBIN\x00"

	// HeaderSize is the fixed size of the file preamble in bytes.
	HeaderSize = 64

	// TagSize is the fixed size of a chunk tag in bytes.
	TagSize = 20

	// crcSize is the size of the CRC32C trailer at the end of a
	// checksummed payload.
	crcSize = 4
)

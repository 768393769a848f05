package oskar

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// Record is one decoded chunk: the tag plus its decoded payload. Records
// are owned by the caller once yielded and stay valid after the scan
// stops or fails.
type Record struct {
	Tag    Tag
	Value  Value
	Offset int64 // byte offset of the tag within the source
}

type scanState uint8

const (
	stateScanning scanState = iota
	stateDone
	stateFailed
)

// Scanner is a forward-only, lazy reader over the chunks of one OSKAR
// binary source. It decodes one record per Next call, so peak memory is
// bounded by the largest single payload. A scanner cannot be rewound;
// to re-scan, reopen the source.
type Scanner struct {
	header  FileHeader
	r       *bufio.Reader
	release func() error
	state   scanState
	rec     Record
	err     error
	offset  int64
}

// Open opens path and validates its preamble. The file is memory-mapped
// where the platform allows it, with a buffered read fallback. Close
// releases the mapping or file handle on every path.
func Open(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	size := st.Size()
	if size > 0 && size <= int64(int(^uint(0)>>1)) {
		if data, merr := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED); merr == nil {
			_ = f.Close()
			s, err := NewScanner(bytes.NewReader(data))
			if err != nil {
				_ = unix.Munmap(data)
				return nil, err
			}
			s.release = func() error { return unix.Munmap(data) }
			return s, nil
		}
	}

	s, err := NewScanner(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	s.release = f.Close
	return s, nil
}

// NewScanner reads an OSKAR binary stream from r. The 64-byte preamble
// is consumed and validated immediately.
func NewScanner(r io.Reader) (*Scanner, error) {
	br := bufio.NewReader(r)
	raw := make([]byte, HeaderSize)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("%w: source shorter than %d-byte header", ErrTruncatedFile, HeaderSize)
	}
	h, err := DecodeHeader(raw)
	if err != nil {
		return nil, err
	}
	return &Scanner{header: h, r: br, offset: HeaderSize}, nil
}

// Header returns the decoded file preamble.
func (s *Scanner) Header() FileHeader { return s.header }

// Next advances to the next record. It returns false at end of file or
// on the first fatal error; consult Err to tell the two apart. Every
// error is fatal: the scan never resumes past a bad record.
func (s *Scanner) Next() bool {
	if s.state != stateScanning {
		return false
	}

	var tagRaw [TagSize]byte
	if _, err := io.ReadFull(s.r, tagRaw[:]); err != nil {
		if err == io.EOF {
			// Exactly at a tag boundary: normal termination.
			s.state = stateDone
			return false
		}
		s.fail(fmt.Errorf("%w: partial tag at offset %d", ErrTruncatedFile, s.offset))
		return false
	}
	tag, err := DecodeTag(tagRaw[:])
	if err != nil {
		s.fail(err)
		return false
	}
	if !tag.Sane() {
		s.fail(fmt.Errorf("%w: data type 0x%02X at offset %d", ErrInvalidTypeDescriptor, tag.DataType, s.offset))
		return false
	}
	if tag.PayloadSize > uint64(math.MaxInt-TagSize) {
		s.fail(fmt.Errorf("%w: declared payload size %d at offset %d", ErrTruncatedFile, tag.PayloadSize, s.offset))
		return false
	}

	// The declared size is untrusted; CopyN keeps the allocation bounded
	// by the bytes actually present, so a corrupt size fails as
	// truncation instead of a giant up-front allocation.
	var pbuf bytes.Buffer
	if _, err := io.CopyN(&pbuf, s.r, int64(tag.PayloadSize)); err != nil {
		s.fail(fmt.Errorf("%w: payload of %d bytes at offset %d", ErrTruncatedFile, tag.PayloadSize, s.offset))
		return false
	}
	payload := pbuf.Bytes()

	body := payload
	if s.header.HasChecksums() && tag.UsesCRC32C() {
		body, err = VerifyChecksum(s.header.Version, tagRaw[:], payload)
		if err != nil {
			s.fail(fmt.Errorf("record at offset %d: %w", s.offset, err))
			return false
		}
	}

	val, err := DecodePayload(tag, body)
	if err != nil {
		s.fail(fmt.Errorf("record at offset %d: %w", s.offset, err))
		return false
	}

	s.rec = Record{Tag: tag, Value: val, Offset: s.offset}
	s.offset += TagSize + int64(tag.PayloadSize)
	return true
}

// Record returns the record produced by the last successful Next.
func (s *Scanner) Record() Record { return s.rec }

// Err returns the fatal error that stopped the scan, or nil after a
// clean end of file. Records yielded before the failure remain valid.
func (s *Scanner) Err() error { return s.err }

// Close releases the underlying file or mapping. It is safe to call at
// any point of the scan and more than once.
func (s *Scanner) Close() error {
	if s.release == nil {
		return nil
	}
	release := s.release
	s.release = nil
	return release()
}

func (s *Scanner) fail(err error) {
	s.state = stateFailed
	s.err = err
}

// Package stream provides a growable byte buffer with independent read and
// write cursors and fixed-width scalar codecs in host, big-endian and
// little-endian byte order.
//
// A Stream is written at its write position and read at its read position.
// Writing past the current length extends it; reading never goes past it:
//
//	s := stream.New(16)
//	s.WriteUint32BE(0xCAFEBABE)
//	s.WriteUint16LE(7)
//	magic, _ := s.ReadUint32BE()
//	version, _ := s.ReadUint16LE()
//
// A Stream has no internal synchronization. Confine each Stream to a single
// goroutine or serialize access externally.
//
// Slices returned by Bytes, BytesAt and BufferWithLength alias the stream's
// storage. They must not be used after any call that can reallocate, compact
// or reset the buffer (writes that grow it, PurgeReadBytes, Reset). Borrow
// and BorrowAt return Views that detect this misuse.
package stream

import (
	"fmt"
)

// Stream is a read-write byte buffer with independent cursors.
//
// The invariants 0 <= ReadPosition() <= Len() <= Cap() and
// 0 <= WritePosition() <= Len() hold after every call.
//
// The zero value is an empty stream with DefaultOptions semantics except
// that no capacity limit applies; prefer New.
type Stream struct {
	buffer
	rpos int
	wpos int

	// Region handed out by the last BufferWithLength, valid while the write
	// position and generation are unchanged.
	lent    int
	lentAt  int
	lentGen uint64
}

// New creates an empty stream with room for capacity bytes.
// A negative capacity is treated as zero.
func New(capacity int) *Stream {
	return NewWithOptions(capacity, DefaultOptions)
}

// NewWithOptions creates an empty stream with the specified options.
func NewWithOptions(capacity int, opts Options) *Stream {
	if capacity < 0 {
		capacity = 0
	}
	return &Stream{
		buffer: buffer{
			data: make([]byte, capacity),
			opts: opts,
		},
	}
}

// NewFromBytes creates a stream holding a copy of p.
// The stream is positioned to read from the start and append at the end.
func NewFromBytes(p []byte) *Stream {
	return newFromSlice(p, DefaultOptions)
}

// NewFromStream creates a stream holding a copy of the unread bytes of src.
// src itself is not modified. A nil src yields an empty stream.
func NewFromStream(src *Stream) *Stream {
	if src == nil {
		return New(0)
	}
	return newFromSlice(src.data[src.rpos:src.length], src.opts)
}

func newFromSlice(p []byte, opts Options) *Stream {
	s := &Stream{
		buffer: buffer{
			data:   make([]byte, len(p)),
			length: len(p),
			opts:   opts,
		},
		wpos: len(p),
	}
	copy(s.data, p)
	return s
}

// Options returns the stream's current options.
func (s *Stream) Options() Options {
	return s.opts
}

// SetOptions updates the stream's options.
// Storage already allocated is kept even if it exceeds the new limits.
func (s *Stream) SetOptions(opts Options) {
	s.opts = opts
}

// Reset sets the length and both cursors to zero.
// Memory is not released; the capacity stays the same.
func (s *Stream) Reset() {
	s.truncate()
	s.rpos = 0
	s.wpos = 0
}

// String returns a short description of the stream state.
func (s *Stream) String() string {
	return fmt.Sprintf("Stream{len=%d cap=%d read=%d write=%d}", s.length, len(s.data), s.rpos, s.wpos)
}

// StreamFromReadingBytes builds a new stream from the next amount unread
// bytes and advances the read position past them.
//
// A negative amount takes every unread byte. If amount exceeds Available
// the call fails with ErrInsufficientData and the read position is kept.
func (s *Stream) StreamFromReadingBytes(amount int) (*Stream, error) {
	p, err := s.take("StreamFromReadingBytes", amount)
	if err != nil {
		return nil, err
	}
	return newFromSlice(p, s.opts), nil
}

// ReadData returns a copy of the next amount unread bytes and advances the
// read position. A negative amount reads everything available.
//
// A nil slice is returned when no byte is read; requesting more than
// Available fails with ErrInsufficientData.
func (s *Stream) ReadData(amount int) ([]byte, error) {
	p, err := s.take("ReadData", amount)
	if err != nil || len(p) == 0 {
		return nil, err
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

// take consumes amount bytes (all when negative), leaving the cursor
// untouched on failure.
func (s *Stream) take(op string, amount int) ([]byte, error) {
	avail := s.Available()
	if amount < 0 {
		amount = avail
	}
	if amount > avail {
		return nil, NewDecodeErrorAt(op, s.rpos,
			fmt.Sprintf("requested %d bytes, %d available", amount, avail), ErrInsufficientData)
	}
	p := s.data[s.rpos : s.rpos+amount]
	s.rpos += amount
	return p, nil
}

// WriteData copies bytes from data, starting at index, into the stream at
// the write position and returns the number of bytes copied.
//
// When index is outside data or amount is zero nothing is done. A negative
// amount (All) copies everything from index to the end of data; larger
// amounts are limited to what data holds.
func (s *Stream) WriteData(data []byte, index, amount int) int {
	if index < 0 || index >= len(data) || amount == 0 {
		return 0
	}
	rest := data[index:]
	if amount > 0 && amount < len(rest) {
		rest = rest[:amount]
	}
	n, _ := s.Write(rest)
	return n
}

// WriteStream copies bytes from the read position of src to the write
// position of s, advancing both cursors by the number of bytes copied.
//
// A negative amount (All) copies every unread byte of src; larger amounts
// are limited to src.Available(). A nil src or a zero amount does nothing.
// The count is smaller than requested only when s cannot grow.
// src may be s itself.
func (s *Stream) WriteStream(src *Stream, amount int) int {
	if src == nil || amount == 0 {
		return 0
	}
	avail := src.Available()
	if amount < 0 || amount > avail {
		amount = avail
	}
	if amount == 0 {
		return 0
	}

	// The slice keeps the source array alive if s reallocates, and copy
	// handles overlap when src == s.
	chunk := src.data[src.rpos : src.rpos+amount]
	n, _ := s.Write(chunk)
	src.rpos += n
	return n
}

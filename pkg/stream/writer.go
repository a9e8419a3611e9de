package stream

import (
	"fmt"
	"math"

	"github.com/blockberries/sfstream/internal/wire"
)

// WritePosition returns the offset at which the next write starts.
func (s *Stream) WritePosition() int {
	return s.wpos
}

// SetWritePosition moves the write cursor to offset.
// It fails, leaving the cursor unchanged, unless 0 <= offset <= Len():
// a stream is extended by writing, not by seeking.
func (s *Stream) SetWritePosition(offset int) bool {
	if offset < 0 || offset > s.length {
		return false
	}
	s.wpos = offset
	return true
}

// reserve makes room for n bytes at the write position and returns how
// many of them fit.
func (s *Stream) reserve(n int) int {
	if n > math.MaxInt-s.wpos {
		n = math.MaxInt - s.wpos
	}
	return s.ensure(s.wpos+n) - s.wpos
}

// commit advances the write position by n, extending the length when the
// cursor passes it.
func (s *Stream) commit(n int) {
	s.wpos += n
	if s.wpos > s.length {
		s.length = s.wpos
	}
}

// BufferWithLength returns n bytes of writable storage starting at the
// write position, growing the stream if necessary.
//
// The bytes become part of the stream only after Advance. It returns nil
// when n <= 0 or when the stream cannot grow to n bytes. The slice is
// invalidated by the next call that grows, compacts or resets the stream.
func (s *Stream) BufferWithLength(n int) []byte {
	if n <= 0 {
		return nil
	}
	if s.reserve(n) < n {
		return nil
	}
	s.lent, s.lentAt, s.lentGen = n, s.wpos, s.generation
	return s.data[s.wpos : s.wpos+n : s.wpos+n]
}

// Advance commits n bytes previously filled through BufferWithLength,
// moving the write position and extending the length as needed.
//
// It returns the number of bytes committed, which is limited to what the
// last BufferWithLength handed out. Nothing is committed once the write
// position moved or the stream was grown, purged or reset in between.
func (s *Stream) Advance(n int) int {
	if n <= 0 || s.lentAt != s.wpos || s.lentGen != s.generation {
		return 0
	}
	if n > s.lent {
		n = s.lent
	}
	s.commit(n)
	s.lent -= n
	s.lentAt = s.wpos
	return n
}

// Write copies p into the stream at the write position, growing it as
// needed. It implements io.Writer.
//
// When the stream cannot grow enough, the prefix that fits is written and
// an error wrapping ErrCapacityExceeded is returned with the short count.
func (s *Stream) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	start := s.wpos
	n := s.reserve(len(p))
	copy(s.data[s.wpos:s.wpos+n], p)
	s.commit(n)
	if n < len(p) {
		return n, NewEncodeErrorAt("Write", start, n,
			fmt.Sprintf("room for %d of %d bytes", n, len(p)), ErrCapacityExceeded)
	}
	return n, nil
}

// fixed reserves size bytes for a scalar and commits them.
// Scalar writes are all-or-nothing.
func (s *Stream) fixed(op string, size int) ([]byte, error) {
	if s.reserve(size) < size {
		return nil, NewEncodeErrorAt(op, s.wpos, 0, "stream cannot grow", ErrCapacityExceeded)
	}
	p := s.data[s.wpos : s.wpos+size]
	s.commit(size)
	return p, nil
}

// WriteByte writes a single byte. It implements io.ByteWriter.
func (s *Stream) WriteByte(c byte) error {
	p, err := s.fixed("WriteByte", ByteSize)
	if err != nil {
		return err
	}
	p[0] = c
	return nil
}

// WriteBool writes 1 for true and 0 for false.
func (s *Stream) WriteBool(v bool) error {
	if v {
		return s.WriteByte(1)
	}
	return s.WriteByte(0)
}

func (s *Stream) writeUint16(op string, order ByteOrder, v uint16) error {
	p, err := s.fixed(op, Uint16Size)
	if err != nil {
		return err
	}
	wire.PutUint16(p, order, v)
	return nil
}

func (s *Stream) writeUint32(op string, order ByteOrder, v uint32) error {
	p, err := s.fixed(op, Uint32Size)
	if err != nil {
		return err
	}
	wire.PutUint32(p, order, v)
	return nil
}

func (s *Stream) writeUint64(op string, order ByteOrder, v uint64) error {
	p, err := s.fixed(op, Uint64Size)
	if err != nil {
		return err
	}
	wire.PutUint64(p, order, v)
	return nil
}

func (s *Stream) writeFloat32(op string, order ByteOrder, v float32) error {
	p, err := s.fixed(op, Float32Size)
	if err != nil {
		return err
	}
	wire.PutFloat32(p, order, v)
	return nil
}

func (s *Stream) writeFloat64(op string, order ByteOrder, v float64) error {
	p, err := s.fixed(op, Float64Size)
	if err != nil {
		return err
	}
	wire.PutFloat64(p, order, v)
	return nil
}

// WriteUint16 writes a 16-bit value in host byte order.
func (s *Stream) WriteUint16(v uint16) error {
	return s.writeUint16("WriteUint16", HostEndian, v)
}

// WriteUint32 writes a 32-bit value in host byte order.
func (s *Stream) WriteUint32(v uint32) error {
	return s.writeUint32("WriteUint32", HostEndian, v)
}

// WriteUint64 writes a 64-bit value in host byte order.
func (s *Stream) WriteUint64(v uint64) error {
	return s.writeUint64("WriteUint64", HostEndian, v)
}

// WriteFloat32 writes a float32 in host byte order.
// The IEEE 754 bits are stored unchanged.
func (s *Stream) WriteFloat32(v float32) error {
	return s.writeFloat32("WriteFloat32", HostEndian, v)
}

// WriteFloat64 writes a float64 in host byte order.
func (s *Stream) WriteFloat64(v float64) error {
	return s.writeFloat64("WriteFloat64", HostEndian, v)
}

// WriteUint16BE writes a big-endian 16-bit value.
func (s *Stream) WriteUint16BE(v uint16) error {
	return s.writeUint16("WriteUint16BE", BigEndian, v)
}

// WriteUint32BE writes a big-endian 32-bit value.
func (s *Stream) WriteUint32BE(v uint32) error {
	return s.writeUint32("WriteUint32BE", BigEndian, v)
}

// WriteUint64BE writes a big-endian 64-bit value.
func (s *Stream) WriteUint64BE(v uint64) error {
	return s.writeUint64("WriteUint64BE", BigEndian, v)
}

// WriteFloat32BE writes a big-endian float32.
func (s *Stream) WriteFloat32BE(v float32) error {
	return s.writeFloat32("WriteFloat32BE", BigEndian, v)
}

// WriteFloat64BE writes a big-endian float64.
func (s *Stream) WriteFloat64BE(v float64) error {
	return s.writeFloat64("WriteFloat64BE", BigEndian, v)
}

// WriteUint16LE writes a little-endian 16-bit value.
func (s *Stream) WriteUint16LE(v uint16) error {
	return s.writeUint16("WriteUint16LE", LittleEndian, v)
}

// WriteUint32LE writes a little-endian 32-bit value.
func (s *Stream) WriteUint32LE(v uint32) error {
	return s.writeUint32("WriteUint32LE", LittleEndian, v)
}

// WriteUint64LE writes a little-endian 64-bit value.
func (s *Stream) WriteUint64LE(v uint64) error {
	return s.writeUint64("WriteUint64LE", LittleEndian, v)
}

// WriteFloat32LE writes a little-endian float32.
func (s *Stream) WriteFloat32LE(v float32) error {
	return s.writeFloat32("WriteFloat32LE", LittleEndian, v)
}

// WriteFloat64LE writes a little-endian float64.
func (s *Stream) WriteFloat64LE(v float64) error {
	return s.writeFloat64("WriteFloat64LE", LittleEndian, v)
}

// WriteUint writes the low size bytes (1, 2, 4 or 8) of v in order.
func (s *Stream) WriteUint(order ByteOrder, size int, v uint64) error {
	if !order.IsValid() {
		return NewEncodeErrorAt("WriteUint", s.wpos, 0, fmt.Sprintf("byte order %v", order), ErrInvalidArgument)
	}
	if !wire.IsValidSize(size) {
		return NewEncodeErrorAt("WriteUint", s.wpos, 0, fmt.Sprintf("size %d", size), ErrUnsupportedSize)
	}
	p, err := s.fixed("WriteUint", size)
	if err != nil {
		return err
	}
	wire.PutUint(p, order, size, v)
	return nil
}

// WriteInt writes v as a two's complement integer of size bytes in order.
// Values outside the range of size bytes are truncated.
func (s *Stream) WriteInt(order ByteOrder, size int, v int64) error {
	return s.WriteUint(order, size, uint64(v))
}

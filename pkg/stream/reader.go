package stream

import (
	"fmt"
	"io"

	"github.com/blockberries/sfstream/internal/wire"
)

// ReadPosition returns the offset of the next byte to read.
func (s *Stream) ReadPosition() int {
	return s.rpos
}

// Available returns the number of unread bytes, Len() - ReadPosition().
func (s *Stream) Available() int {
	return s.length - s.rpos
}

// SetReadPosition moves the read cursor to offset.
// It fails, leaving the cursor unchanged, unless 0 <= offset <= Len().
func (s *Stream) SetReadPosition(offset int) bool {
	if offset < 0 || offset > s.length {
		return false
	}
	s.rpos = offset
	return true
}

// Bytes returns the unread bytes, starting at the read position.
// The slice aliases the stream storage and is only valid until the next
// call that grows, compacts or resets the stream.
func (s *Stream) Bytes() []byte {
	return s.data[s.rpos:s.length:s.length]
}

// BytesAt returns the valid bytes starting at the absolute offset.
// It reports false when offset is outside [0, Len()].
// The same aliasing rule as Bytes applies.
func (s *Stream) BytesAt(offset int) ([]byte, bool) {
	if offset < 0 || offset > s.length {
		return nil, false
	}
	return s.data[offset:s.length:s.length], true
}

// Read copies up to len(p) unread bytes into p and advances the read
// position by the number copied. It implements io.Reader: io.EOF is
// returned only when no byte is available and len(p) > 0.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.rpos >= s.length {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.rpos:s.length])
	s.rpos += n
	return n, nil
}

// next returns the following n unread bytes and advances past them.
// On failure the read position does not move.
func (s *Stream) next(op string, n int) ([]byte, error) {
	if n > s.length-s.rpos {
		return nil, NewDecodeErrorAt(op, s.rpos,
			fmt.Sprintf("need %d bytes, %d available", n, s.length-s.rpos), ErrInsufficientData)
	}
	p := s.data[s.rpos : s.rpos+n]
	s.rpos += n
	return p, nil
}

// ReadByte reads a single byte. It implements io.ByteReader.
func (s *Stream) ReadByte() (byte, error) {
	p, err := s.next("ReadByte", ByteSize)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// UnreadByte moves the read position back by one byte.
// It implements io.ByteScanner.
func (s *Stream) UnreadByte() error {
	if s.rpos == 0 {
		return NewDecodeErrorAt("UnreadByte", 0, "already at start", ErrOutOfBounds)
	}
	s.rpos--
	return nil
}

func (s *Stream) readUint16(op string, order ByteOrder) (uint16, error) {
	p, err := s.next(op, Uint16Size)
	if err != nil {
		return 0, err
	}
	return wire.DecodeUint16(p, order)
}

func (s *Stream) readUint32(op string, order ByteOrder) (uint32, error) {
	p, err := s.next(op, Uint32Size)
	if err != nil {
		return 0, err
	}
	return wire.DecodeUint32(p, order)
}

func (s *Stream) readUint64(op string, order ByteOrder) (uint64, error) {
	p, err := s.next(op, Uint64Size)
	if err != nil {
		return 0, err
	}
	return wire.DecodeUint64(p, order)
}

func (s *Stream) readFloat32(op string, order ByteOrder) (float32, error) {
	p, err := s.next(op, Float32Size)
	if err != nil {
		return 0, err
	}
	return wire.DecodeFloat32(p, order)
}

func (s *Stream) readFloat64(op string, order ByteOrder) (float64, error) {
	p, err := s.next(op, Float64Size)
	if err != nil {
		return 0, err
	}
	return wire.DecodeFloat64(p, order)
}

// ReadUint16 reads a 16-bit value in host byte order.
func (s *Stream) ReadUint16() (uint16, error) {
	return s.readUint16("ReadUint16", HostEndian)
}

// ReadUint32 reads a 32-bit value in host byte order.
func (s *Stream) ReadUint32() (uint32, error) {
	return s.readUint32("ReadUint32", HostEndian)
}

// ReadUint64 reads a 64-bit value in host byte order.
func (s *Stream) ReadUint64() (uint64, error) {
	return s.readUint64("ReadUint64", HostEndian)
}

// ReadFloat32 reads a float32 in host byte order.
func (s *Stream) ReadFloat32() (float32, error) {
	return s.readFloat32("ReadFloat32", HostEndian)
}

// ReadFloat64 reads a float64 in host byte order.
func (s *Stream) ReadFloat64() (float64, error) {
	return s.readFloat64("ReadFloat64", HostEndian)
}

// ReadUint16BE reads a big-endian 16-bit value.
func (s *Stream) ReadUint16BE() (uint16, error) {
	return s.readUint16("ReadUint16BE", BigEndian)
}

// ReadUint32BE reads a big-endian 32-bit value.
func (s *Stream) ReadUint32BE() (uint32, error) {
	return s.readUint32("ReadUint32BE", BigEndian)
}

// ReadUint64BE reads a big-endian 64-bit value.
func (s *Stream) ReadUint64BE() (uint64, error) {
	return s.readUint64("ReadUint64BE", BigEndian)
}

// ReadFloat32BE reads a big-endian float32.
func (s *Stream) ReadFloat32BE() (float32, error) {
	return s.readFloat32("ReadFloat32BE", BigEndian)
}

// ReadFloat64BE reads a big-endian float64.
func (s *Stream) ReadFloat64BE() (float64, error) {
	return s.readFloat64("ReadFloat64BE", BigEndian)
}

// ReadUint16LE reads a little-endian 16-bit value.
func (s *Stream) ReadUint16LE() (uint16, error) {
	return s.readUint16("ReadUint16LE", LittleEndian)
}

// ReadUint32LE reads a little-endian 32-bit value.
func (s *Stream) ReadUint32LE() (uint32, error) {
	return s.readUint32("ReadUint32LE", LittleEndian)
}

// ReadUint64LE reads a little-endian 64-bit value.
func (s *Stream) ReadUint64LE() (uint64, error) {
	return s.readUint64("ReadUint64LE", LittleEndian)
}

// ReadFloat32LE reads a little-endian float32.
func (s *Stream) ReadFloat32LE() (float32, error) {
	return s.readFloat32("ReadFloat32LE", LittleEndian)
}

// ReadFloat64LE reads a little-endian float64.
func (s *Stream) ReadFloat64LE() (float64, error) {
	return s.readFloat64("ReadFloat64LE", LittleEndian)
}

// ReadUint reads an unsigned integer of size bytes (1, 2, 4 or 8) stored
// in order, returning it as a uint64.
func (s *Stream) ReadUint(order ByteOrder, size int) (uint64, error) {
	if !order.IsValid() {
		return 0, NewDecodeErrorAt("ReadUint", s.rpos, fmt.Sprintf("byte order %v", order), ErrInvalidArgument)
	}
	if !wire.IsValidSize(size) {
		return 0, NewDecodeErrorAt("ReadUint", s.rpos, fmt.Sprintf("size %d", size), ErrUnsupportedSize)
	}
	p, err := s.next("ReadUint", size)
	if err != nil {
		return 0, err
	}
	return wire.DecodeUint(p, order, size)
}

// ReadInt reads a two's complement integer of size bytes stored in order,
// returning it sign-extended to int64.
func (s *Stream) ReadInt(order ByteOrder, size int) (int64, error) {
	v, err := s.ReadUint(order, size)
	if err != nil {
		return 0, err
	}
	return wire.SignExtend(v, size), nil
}

// ReadBool reads one byte; any non-zero value is true.
func (s *Stream) ReadBool() (bool, error) {
	b, err := s.ReadByte()
	return b != 0, err
}

// PurgeReadBytes discards the bytes before the read position, moving the
// unread bytes to offset 0. The write position moves back by the same
// amount (stopping at 0) and the read position becomes 0. Capacity is kept.
//
// Calling it with nothing read is a no-op.
func (s *Stream) PurgeReadBytes() {
	n := s.rpos
	if n == 0 {
		return
	}
	s.discard(n)
	if s.wpos < n {
		s.wpos = 0
	} else {
		s.wpos -= n
	}
	s.rpos = 0
}

package stream

import "io"

// Buffer reports the storage bookkeeping shared by every stream.
type Buffer interface {
	// Cap returns the allocated storage in bytes.
	Cap() int
	// Len returns the number of valid bytes.
	Len() int
}

// StreamReader is the read side of a stream: a cursor over valid bytes with
// bounds-checked scalar decoding.
type StreamReader interface {
	Buffer
	io.Reader
	io.ByteReader

	ReadPosition() int
	Available() int
	SetReadPosition(offset int) bool
	Bytes() []byte
	BytesAt(offset int) ([]byte, bool)

	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)
	ReadUint64() (uint64, error)
	ReadFloat32() (float32, error)
	ReadFloat64() (float64, error)

	ReadUint16BE() (uint16, error)
	ReadUint32BE() (uint32, error)
	ReadUint64BE() (uint64, error)
	ReadFloat32BE() (float32, error)
	ReadFloat64BE() (float64, error)

	ReadUint16LE() (uint16, error)
	ReadUint32LE() (uint32, error)
	ReadUint64LE() (uint64, error)
	ReadFloat32LE() (float32, error)
	ReadFloat64LE() (float64, error)

	ReadUint(order ByteOrder, size int) (uint64, error)

	PurgeReadBytes()
}

// StreamWriter is the write side of a stream: a cursor that grows the
// storage as values are encoded.
type StreamWriter interface {
	Buffer
	io.Writer
	io.ByteWriter

	WritePosition() int
	SetWritePosition(offset int) bool
	BufferWithLength(n int) []byte
	Advance(n int) int

	WriteUint16(v uint16) error
	WriteUint32(v uint32) error
	WriteUint64(v uint64) error
	WriteFloat32(v float32) error
	WriteFloat64(v float64) error

	WriteUint16BE(v uint16) error
	WriteUint32BE(v uint32) error
	WriteUint64BE(v uint64) error
	WriteFloat32BE(v float32) error
	WriteFloat64BE(v float64) error

	WriteUint16LE(v uint16) error
	WriteUint32LE(v uint32) error
	WriteUint64LE(v uint64) error
	WriteFloat32LE(v float32) error
	WriteFloat64LE(v float64) error

	WriteUint(order ByteOrder, size int, v uint64) error
}

var (
	_ StreamReader    = (*Stream)(nil)
	_ StreamWriter    = (*Stream)(nil)
	_ io.ByteScanner  = (*Stream)(nil)
	_ io.StringWriter = (*Stream)(nil)
	_ io.ReaderFrom   = (*Stream)(nil)
	_ io.WriterTo     = (*Stream)(nil)
)

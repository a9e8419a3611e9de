// Package wire provides the low-level encoding primitives used by sfstream:
// fixed-width values in an explicit byte order and LEB128 varints.
package wire

import (
	"errors"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// Maximum number of bytes for a varint-encoded uint64.
// Each varint byte carries 7 bits, so ceil(64/7) = 10 bytes.
const MaxVarintLen64 = 10

// Errors for varint decoding.
var (
	// ErrVarintOverflow indicates the varint overflows a 64-bit integer.
	ErrVarintOverflow = errors.New("sfstream: varint overflows uint64")

	// ErrVarintTruncated indicates the input ended inside a varint.
	ErrVarintTruncated = errors.New("sfstream: varint truncated")
)

// DecodeUvarint decodes a varint from data and returns the value and the
// number of bytes consumed.
func DecodeUvarint(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrVarintTruncated
	}
	// Single byte fast path.
	if data[0] < 0x80 {
		return uint64(data[0]), 1, nil
	}
	v, n := protowire.ConsumeVarint(data)
	if n < 0 {
		if errors.Is(protowire.ParseError(n), io.ErrUnexpectedEOF) {
			return 0, 0, ErrVarintTruncated
		}
		return 0, 0, ErrVarintOverflow
	}
	return v, n, nil
}

// DecodeSvarint decodes a zigzag-encoded signed varint from data.
func DecodeSvarint(data []byte) (int64, int, error) {
	uv, n, err := DecodeUvarint(data)
	if err != nil {
		return 0, n, err
	}
	return protowire.DecodeZigZag(uv), n, nil
}

// UvarintSize returns the number of bytes required to encode v as a varint.
func UvarintSize(v uint64) int {
	return protowire.SizeVarint(v)
}

// SvarintSize returns the number of bytes required to encode v as a zigzag varint.
func SvarintSize(v int64) int {
	return protowire.SizeVarint(protowire.EncodeZigZag(v))
}

// PutUvarint encodes v into buf and returns the number of bytes written.
// buf must hold at least UvarintSize(v) bytes.
func PutUvarint(buf []byte, v uint64) int {
	return len(protowire.AppendVarint(buf[:0], v))
}

// PutSvarint encodes v into buf using zigzag encoding and returns bytes written.
func PutSvarint(buf []byte, v int64) int {
	return PutUvarint(buf, protowire.EncodeZigZag(v))
}

package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrTruncated indicates that fewer bytes were supplied than the value width.
var ErrTruncated = errors.New("sfstream: fixed-width value truncated")

// Order identifies the byte order of a fixed-width value.
type Order uint8

const (
	// Host is the native byte order of the executing machine.
	Host Order = iota

	// Big stores the most significant byte first.
	Big

	// Little stores the least significant byte first.
	Little
)

// String returns the name used for o in layouts and diagnostics.
func (o Order) String() string {
	switch o {
	case Host:
		return "host"
	case Big:
		return "big"
	case Little:
		return "little"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// IsValid reports whether o is one of the defined orders.
func (o Order) IsValid() bool {
	return o <= Little
}

// ParseOrder converts a name into an Order. The empty string means Host.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "host", "native":
		return Host, nil
	case "big", "be", "big-endian", "network":
		return Big, nil
	case "little", "le", "little-endian":
		return Little, nil
	default:
		return Host, fmt.Errorf("sfstream: unknown byte order %q", s)
	}
}

// ByteOrder maps o onto the encoding/binary implementation.
func (o Order) ByteOrder() binary.ByteOrder {
	switch o {
	case Big:
		return binary.BigEndian
	case Little:
		return binary.LittleEndian
	default:
		return binary.NativeEndian
	}
}

// HostIsBigEndian reports whether the executing machine stores the most
// significant byte first.
func HostIsBigEndian() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0102)
	return probe[0] == 0x01
}

// Size constants for fixed-width types.
const (
	Fixed8Size  = 1
	Fixed16Size = 2
	Fixed32Size = 4
	Fixed64Size = 8
	Float32Size = 4
	Float64Size = 8
)

// PutUint16 writes v to buf in order o. buf must hold at least 2 bytes.
func PutUint16(buf []byte, o Order, v uint16) {
	o.ByteOrder().PutUint16(buf, v)
}

// PutUint32 writes v to buf in order o. buf must hold at least 4 bytes.
func PutUint32(buf []byte, o Order, v uint32) {
	o.ByteOrder().PutUint32(buf, v)
}

// PutUint64 writes v to buf in order o. buf must hold at least 8 bytes.
func PutUint64(buf []byte, o Order, v uint64) {
	o.ByteOrder().PutUint64(buf, v)
}

// PutFloat32 writes the IEEE 754 bits of v to buf in order o.
// The bits are stored unchanged; NaN payloads and negative zero survive.
func PutFloat32(buf []byte, o Order, v float32) {
	PutUint32(buf, o, math.Float32bits(v))
}

// PutFloat64 writes the IEEE 754 bits of v to buf in order o.
func PutFloat64(buf []byte, o Order, v float64) {
	PutUint64(buf, o, math.Float64bits(v))
}

// DecodeUint16 decodes a 16-bit value stored in order o.
func DecodeUint16(data []byte, o Order) (uint16, error) {
	if len(data) < Fixed16Size {
		return 0, ErrTruncated
	}
	return o.ByteOrder().Uint16(data), nil
}

// DecodeUint32 decodes a 32-bit value stored in order o.
func DecodeUint32(data []byte, o Order) (uint32, error) {
	if len(data) < Fixed32Size {
		return 0, ErrTruncated
	}
	return o.ByteOrder().Uint32(data), nil
}

// DecodeUint64 decodes a 64-bit value stored in order o.
func DecodeUint64(data []byte, o Order) (uint64, error) {
	if len(data) < Fixed64Size {
		return 0, ErrTruncated
	}
	return o.ByteOrder().Uint64(data), nil
}

// DecodeFloat32 decodes a float32 stored in order o.
func DecodeFloat32(data []byte, o Order) (float32, error) {
	bits, err := DecodeUint32(data, o)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// DecodeFloat64 decodes a float64 stored in order o.
func DecodeFloat64(data []byte, o Order) (float64, error) {
	bits, err := DecodeUint64(data, o)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// IsValidSize reports whether size is a supported integer width in bytes.
func IsValidSize(size int) bool {
	switch size {
	case Fixed8Size, Fixed16Size, Fixed32Size, Fixed64Size:
		return true
	default:
		return false
	}
}

// PutUint writes the low size bytes of v to buf in order o.
// size must be 1, 2, 4 or 8 and buf must hold at least size bytes.
func PutUint(buf []byte, o Order, size int, v uint64) {
	switch size {
	case Fixed8Size:
		buf[0] = byte(v)
	case Fixed16Size:
		PutUint16(buf, o, uint16(v))
	case Fixed32Size:
		PutUint32(buf, o, uint32(v))
	case Fixed64Size:
		PutUint64(buf, o, v)
	default:
		panic(fmt.Sprintf("sfstream: unsupported integer size %d", size))
	}
}

// DecodeUint decodes an unsigned integer of size bytes stored in order o.
func DecodeUint(data []byte, o Order, size int) (uint64, error) {
	if len(data) < size {
		return 0, ErrTruncated
	}
	switch size {
	case Fixed8Size:
		return uint64(data[0]), nil
	case Fixed16Size:
		return uint64(o.ByteOrder().Uint16(data)), nil
	case Fixed32Size:
		return uint64(o.ByteOrder().Uint32(data)), nil
	case Fixed64Size:
		return o.ByteOrder().Uint64(data), nil
	default:
		return 0, fmt.Errorf("sfstream: unsupported integer size %d", size)
	}
}

// SignExtend interprets the low size bytes of v as a two's complement value.
func SignExtend(v uint64, size int) int64 {
	shift := uint(64 - 8*size)
	return int64(v<<shift) >> shift
}

package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

var uvarintSamples = []uint64{
	0, 1, 127, 128, 300, 16383, 16384,
	1<<21 - 1, 1 << 21, 1<<28 + 5, 1<<35 - 1, 1 << 42,
	1<<56 + 1, 1<<63 - 1, 1 << 63, math.MaxUint64,
}

func TestPutUvarintMatchesProtowire(t *testing.T) {
	for _, v := range uvarintSamples {
		want := protowire.AppendVarint(nil, v)

		buf := make([]byte, MaxVarintLen64)
		n := PutUvarint(buf, v)
		if !bytes.Equal(buf[:n], want) {
			t.Errorf("PutUvarint(%d) = %x, want %x", v, buf[:n], want)
		}
		if got := UvarintSize(v); got != len(want) {
			t.Errorf("UvarintSize(%d) = %d, want %d", v, got, len(want))
		}
	}
}

func TestPutUvarintExactBuffer(t *testing.T) {
	// The stream hands PutUvarint a slice of exactly UvarintSize bytes,
	// capped so any write past it would reallocate instead of landing in place.
	backing := []byte{0xAA, 0xAA, 0xAA, 0xAA}
	buf := backing[1:3:3]
	if n := PutUvarint(buf, 300); n != 2 {
		t.Fatalf("PutUvarint(300) = %d, want 2", n)
	}
	if want := []byte{0xAA, 0xAC, 0x02, 0xAA}; !bytes.Equal(backing, want) {
		t.Errorf("backing = %x, want %x", backing, want)
	}
}

func TestPutSvarintZigZag(t *testing.T) {
	tests := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0x00}},
		{-1, []byte{0x01}},
		{1, []byte{0x02}},
		{-2, []byte{0x03}},
		{-64, []byte{0x7f}},
		{64, []byte{0x80, 0x01}},
		{math.MinInt64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, tc := range tests {
		buf := make([]byte, MaxVarintLen64)
		n := PutSvarint(buf, tc.value)
		if !bytes.Equal(buf[:n], tc.want) {
			t.Errorf("PutSvarint(%d) = %x, want %x", tc.value, buf[:n], tc.want)
		}
		if got := SvarintSize(tc.value); got != len(tc.want) {
			t.Errorf("SvarintSize(%d) = %d, want %d", tc.value, got, len(tc.want))
		}
	}
}

func TestDecodeUvarint(t *testing.T) {
	for _, v := range uvarintSamples {
		data := append(protowire.AppendVarint(nil, v), 0xEE)
		got, n, err := DecodeUvarint(data)
		if err != nil {
			t.Errorf("DecodeUvarint(%x) error: %v", data, err)
			continue
		}
		if got != v || n != len(data)-1 {
			t.Errorf("DecodeUvarint(%x) = %d, %d; want %d, %d", data, got, n, v, len(data)-1)
		}
	}
}

func TestDecodeUvarintErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrVarintTruncated},
		{"continuation_only", []byte{0x80}, ErrVarintTruncated},
		{"nine_continuations", bytes.Repeat([]byte{0xff}, 9), ErrVarintTruncated},
		{"tenth_byte_too_large", append(bytes.Repeat([]byte{0xff}, 9), 0x02), ErrVarintOverflow},
		{"eleven_bytes", bytes.Repeat([]byte{0xff}, 11), ErrVarintOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, n, err := DecodeUvarint(tc.data)
			if !errors.Is(err, tc.want) {
				t.Errorf("DecodeUvarint(%x) error = %v, want %v", tc.data, err, tc.want)
			}
			if v != 0 || n != 0 {
				t.Errorf("DecodeUvarint(%x) = %d, %d on error, want 0, 0", tc.data, v, n)
			}
		})
	}
}

func TestDecodeSvarint(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 63, -64, 1 << 40, math.MinInt64, math.MaxInt64} {
		buf := make([]byte, MaxVarintLen64)
		n := PutSvarint(buf, v)
		got, m, err := DecodeSvarint(buf[:n])
		if err != nil || got != v || m != n {
			t.Errorf("DecodeSvarint(PutSvarint(%d)) = %d, %d, %v", v, got, m, err)
		}
	}

	if _, _, err := DecodeSvarint([]byte{0x81}); !errors.Is(err, ErrVarintTruncated) {
		t.Errorf("DecodeSvarint(truncated) error = %v", err)
	}
}

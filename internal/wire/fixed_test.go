package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestPutUint16(t *testing.T) {
	tests := []struct {
		name     string
		order    Order
		value    uint16
		expected []byte
	}{
		{"big_0x1234", Big, 0x1234, []byte{0x12, 0x34}},
		{"little_0x1234", Little, 0x1234, []byte{0x34, 0x12}},
		{"big_max", Big, math.MaxUint16, []byte{0xff, 0xff}},
		{"little_one", Little, 1, []byte{0x01, 0x00}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 2)
			PutUint16(buf, tc.order, tc.value)
			if !bytes.Equal(buf, tc.expected) {
				t.Errorf("PutUint16(%#x, %v) = %v, want %v", tc.value, tc.order, buf, tc.expected)
			}
		})
	}
}

func TestPutUint32(t *testing.T) {
	tests := []struct {
		name     string
		order    Order
		value    uint32
		expected []byte
	}{
		{"big_0x12345678", Big, 0x12345678, []byte{0x12, 0x34, 0x56, 0x78}},
		{"little_0x12345678", Little, 0x12345678, []byte{0x78, 0x56, 0x34, 0x12}},
		{"little_256", Little, 256, []byte{0x00, 0x01, 0x00, 0x00}},
		{"big_max", Big, math.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 4)
			PutUint32(buf, tc.order, tc.value)
			if !bytes.Equal(buf, tc.expected) {
				t.Errorf("PutUint32(%#x, %v) = %v, want %v", tc.value, tc.order, buf, tc.expected)
			}
		})
	}
}

func TestPutUint64(t *testing.T) {
	tests := []struct {
		name     string
		order    Order
		value    uint64
		expected []byte
	}{
		{"big", Big, 0x123456789ABCDEF0, []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}},
		{"little", Little, 0x123456789ABCDEF0, []byte{0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 8)
			PutUint64(buf, tc.order, tc.value)
			if !bytes.Equal(buf, tc.expected) {
				t.Errorf("PutUint64(%#x, %v) = %v, want %v", tc.value, tc.order, buf, tc.expected)
			}
		})
	}
}

func TestHostOrderMatchesNative(t *testing.T) {
	buf := make([]byte, 4)
	PutUint32(buf, Host, 0x01020304)

	want := Little
	if HostIsBigEndian() {
		want = Big
	}
	expected := make([]byte, 4)
	PutUint32(expected, want, 0x01020304)
	if !bytes.Equal(buf, expected) {
		t.Errorf("host encoding = %v, want %v", buf, expected)
	}
}

func TestDecodeTruncated(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"uint16", func() error { _, err := DecodeUint16([]byte{1}, Big); return err }},
		{"uint32", func() error { _, err := DecodeUint32([]byte{1, 2, 3}, Little); return err }},
		{"uint64", func() error { _, err := DecodeUint64([]byte{1, 2, 3, 4, 5, 6, 7}, Host); return err }},
		{"float32", func() error { _, err := DecodeFloat32(nil, Big); return err }},
		{"float64", func() error { _, err := DecodeFloat64([]byte{0}, Little); return err }},
		{"uint_size4", func() error { _, err := DecodeUint([]byte{1, 2}, Big, 4); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.fn(); !errors.Is(err, ErrTruncated) {
				t.Errorf("error = %v, want ErrTruncated", err)
			}
		})
	}
}

func TestFloatBitsPreserved(t *testing.T) {
	// NaN payloads and negative zero are stored verbatim.
	patterns32 := []uint32{0x7FC00001, 0x7F800001, 0x80000000, 0xFF800000, 0x3F800000}
	for _, bits := range patterns32 {
		for _, o := range []Order{Host, Big, Little} {
			buf := make([]byte, 4)
			PutFloat32(buf, o, math.Float32frombits(bits))
			got, err := DecodeFloat32(buf, o)
			if err != nil {
				t.Fatalf("DecodeFloat32 error: %v", err)
			}
			if math.Float32bits(got) != bits {
				t.Errorf("float32 %v bits %#x -> %#x", o, bits, math.Float32bits(got))
			}
		}
	}

	patterns64 := []uint64{0x7FF8000000000001, 0x8000000000000000, 0x3FF0000000000000}
	for _, bits := range patterns64 {
		for _, o := range []Order{Host, Big, Little} {
			buf := make([]byte, 8)
			PutFloat64(buf, o, math.Float64frombits(bits))
			got, err := DecodeFloat64(buf, o)
			if err != nil {
				t.Fatalf("DecodeFloat64 error: %v", err)
			}
			if math.Float64bits(got) != bits {
				t.Errorf("float64 %v bits %#x -> %#x", o, bits, math.Float64bits(got))
			}
		}
	}
}

func TestPutDecodeUint(t *testing.T) {
	for _, size := range []int{1, 2, 4, 8} {
		for _, o := range []Order{Host, Big, Little} {
			v := uint64(0x0102030405060708) & (1<<(8*uint(size)) - 1)
			if size == 8 {
				v = 0x0102030405060708
			}
			buf := make([]byte, size)
			PutUint(buf, o, size, v)
			got, err := DecodeUint(buf, o, size)
			if err != nil {
				t.Fatalf("DecodeUint(size=%d, %v) error: %v", size, o, err)
			}
			if got != v {
				t.Errorf("DecodeUint(size=%d, %v) = %#x, want %#x", size, o, got, v)
			}
		}
	}

	if _, err := DecodeUint(make([]byte, 8), Big, 3); err == nil {
		t.Error("DecodeUint with size 3 should fail")
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		v        uint64
		size     int
		expected int64
	}{
		{0xff, 1, -1},
		{0x7f, 1, 127},
		{0x8000, 2, math.MinInt16},
		{0xfffffffe, 4, -2},
		{math.MaxUint64, 8, -1},
	}

	for _, tc := range tests {
		if got := SignExtend(tc.v, tc.size); got != tc.expected {
			t.Errorf("SignExtend(%#x, %d) = %d, want %d", tc.v, tc.size, got, tc.expected)
		}
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in       string
		expected Order
		wantErr  bool
	}{
		{"", Host, false},
		{"host", Host, false},
		{"BIG", Big, false},
		{"network", Big, false},
		{"le", Little, false},
		{"little-endian", Little, false},
		{"middle", Host, true},
	}

	for _, tc := range tests {
		got, err := ParseOrder(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseOrder(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseOrder(%q) = %v, want %v", tc.in, got, tc.expected)
		}
	}
}

func TestOrderString(t *testing.T) {
	if Big.String() != "big" || Little.String() != "little" || Host.String() != "host" {
		t.Error("unexpected Order names")
	}
	if Order(9).IsValid() {
		t.Error("Order(9) should be invalid")
	}
	if Order(9).String() != "Order(9)" {
		t.Errorf("Order(9).String() = %q", Order(9).String())
	}
}

func BenchmarkPutUint32Big(b *testing.B) {
	buf := make([]byte, 4)
	for i := 0; i < b.N; i++ {
		PutUint32(buf, Big, uint32(i))
	}
}

func BenchmarkDecodeUint64Little(b *testing.B) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < b.N; i++ {
		_, _ = DecodeUint64(data, Little)
	}
}

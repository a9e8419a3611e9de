package stream

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/blockberries/sfstream/internal/wire"
)

// WriteString writes the bytes of str without a length prefix or
// terminator. It implements io.StringWriter.
func (s *Stream) WriteString(str string) (int, error) {
	if len(str) == 0 {
		return 0, nil
	}
	start := s.wpos
	n := s.reserve(len(str))
	copy(s.data[s.wpos:s.wpos+n], str)
	s.commit(n)
	if n < len(str) {
		return n, NewEncodeErrorAt("WriteString", start, n,
			fmt.Sprintf("room for %d of %d bytes", n, len(str)), ErrCapacityExceeded)
	}
	return n, nil
}

// ReadString reads exactly n bytes and returns them as a string.
func (s *Stream) ReadString(n int) (string, error) {
	if n < 0 {
		return "", NewDecodeErrorAt("ReadString", s.rpos, fmt.Sprintf("negative length %d", n), ErrInvalidArgument)
	}
	p, err := s.next("ReadString", n)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

// utf16Encoding returns the UTF-16 codec for order, without a byte order mark.
func utf16Encoding(order ByteOrder) encoding.Encoding {
	endian := unicode.LittleEndian
	if order == BigEndian || (order == HostEndian && wire.HostIsBigEndian()) {
		endian = unicode.BigEndian
	}
	return unicode.UTF16(endian, unicode.IgnoreBOM)
}

// WriteUTF16 writes str encoded as UTF-16 in order and returns the number
// of bytes written. Invalid UTF-8 in str is replaced with U+FFFD.
func (s *Stream) WriteUTF16(str string, order ByteOrder) (int, error) {
	encoded, err := utf16Encoding(order).NewEncoder().Bytes([]byte(str))
	if err != nil {
		return 0, NewEncodeErrorAt("WriteUTF16", s.wpos, 0, "encode UTF-16", err)
	}
	p, err := s.fixed("WriteUTF16", len(encoded))
	if err != nil {
		return 0, err
	}
	copy(p, encoded)
	return len(encoded), nil
}

// ReadUTF16 reads n bytes of UTF-16 text stored in order and returns it as
// a UTF-8 string. n must be even.
func (s *Stream) ReadUTF16(n int, order ByteOrder) (string, error) {
	if n < 0 || n%2 != 0 {
		return "", NewDecodeErrorAt("ReadUTF16", s.rpos, fmt.Sprintf("byte length %d", n), ErrInvalidUTF16)
	}
	if n > s.Available() {
		return "", NewDecodeErrorAt("ReadUTF16", s.rpos,
			fmt.Sprintf("need %d bytes, %d available", n, s.Available()), ErrInsufficientData)
	}
	decoded, err := utf16Encoding(order).NewDecoder().Bytes(s.data[s.rpos : s.rpos+n])
	if err != nil {
		return "", NewDecodeErrorAt("ReadUTF16", s.rpos, "decode UTF-16", err)
	}
	s.rpos += n
	return string(decoded), nil
}

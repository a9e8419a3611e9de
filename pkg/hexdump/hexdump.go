// Package hexdump formats binary data as offset/hex/ASCII lines and parses
// textual hex back into bytes.
package hexdump

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// DefaultWidth is the number of bytes printed per line.
const DefaultWidth = 16

// ErrInvalidHex indicates text that is not a sequence of hex byte pairs.
var ErrInvalidHex = errors.New("hexdump: invalid hex string")

// Options controls dump formatting.
type Options struct {
	// Width is the number of bytes per line. Values <= 0 use DefaultWidth.
	Width int

	// Offset is the address printed for the first byte.
	Offset int
}

// Dump writes data to w as hex lines, preceded by head and followed by
// tail. Empty head or tail lines are omitted.
func Dump(w io.Writer, data []byte, head, tail string) error {
	return DumpWithOptions(w, data, Options{}, head, tail)
}

// DumpWithOptions is Dump with explicit formatting options.
func DumpWithOptions(w io.Writer, data []byte, opts Options, head, tail string) error {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	bw := bufio.NewWriter(w)
	if head != "" {
		fmt.Fprintln(bw, head)
	}
	for i := 0; i < len(data); i += width {
		dumpLine(bw, opts.Offset+i, data[i:min(i+width, len(data))], width)
	}
	if tail != "" {
		fmt.Fprintln(bw, tail)
	}
	return bw.Flush()
}

// dumpLine writes one line: address, hex bytes in groups of eight, and the
// printable characters.
func dumpLine(w *bufio.Writer, addr int, line []byte, width int) {
	fmt.Fprintf(w, "%08x ", addr)
	for i := 0; i < width; i++ {
		if i%8 == 0 {
			w.WriteByte(' ')
		}
		if i < len(line) {
			fmt.Fprintf(w, "%02x ", line[i])
		} else {
			w.WriteString("   ")
		}
	}
	w.WriteString(" |")
	for _, c := range line {
		if c >= 32 && c <= 126 {
			w.WriteByte(c)
		} else {
			w.WriteByte('.')
		}
	}
	w.WriteString("|\n")
}

// String returns the dump of data as a string.
func String(data []byte) string {
	var sb strings.Builder
	DumpWithOptions(&sb, data, Options{}, "", "")
	return sb.String()
}

// ParseBinaryString decodes hex text such as "de ad be ef",
// "0xDE 0xAD", "de:ad:be:ef" or "dead-beef" into bytes.
// Whitespace, ':', '-' and ',' separate groups; each group may carry a 0x
// prefix and must hold an even number of hex digits.
func ParseBinaryString(s string) ([]byte, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ':' || r == '-' || r == ','
	})

	out := make([]byte, 0, len(s)/2)
	for _, f := range fields {
		digits := f
		if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
			digits = digits[2:]
		}
		if len(digits)%2 != 0 {
			return nil, fmt.Errorf("%w: group %q has an odd number of digits", ErrInvalidHex, f)
		}
		b, err := hex.DecodeString(digits)
		if err != nil {
			return nil, fmt.Errorf("%w: group %q: %v", ErrInvalidHex, f, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// Package layout describes binary records declaratively and decodes or
// encodes them with a stream.Stream.
//
// A layout is written in YAML:
//
//	name: header
//	order: big
//	fields:
//	  - {name: magic, type: u32}
//	  - {name: version, type: u16, order: little}
//	  - {name: title, type: string, size: 8}
//	  - {name: payload, type: bytes}
//
// Numeric fields have a fixed width. bytes, string and utf16 fields hold
// size bytes when size is set and are prefixed by a uvarint byte count
// otherwise.
package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blockberries/sfstream/pkg/stream"
)

// Type names the encoding of a field.
type Type string

// Field types.
const (
	TypeU8      Type = "u8"
	TypeU16     Type = "u16"
	TypeU32     Type = "u32"
	TypeU64     Type = "u64"
	TypeI8      Type = "i8"
	TypeI16     Type = "i16"
	TypeI32     Type = "i32"
	TypeI64     Type = "i64"
	TypeF32     Type = "f32"
	TypeF64     Type = "f64"
	TypeBool    Type = "bool"
	TypeBytes   Type = "bytes"
	TypeString  Type = "string"
	TypeUTF16   Type = "utf16"
	TypeUvarint Type = "uvarint"
	TypeVarint  Type = "varint"
)

// widths holds the encoded size of fixed-width types.
var widths = map[Type]int{
	TypeU8: 1, TypeU16: 2, TypeU32: 4, TypeU64: 8,
	TypeI8: 1, TypeI16: 2, TypeI32: 4, TypeI64: 8,
	TypeF32: 4, TypeF64: 8,
	TypeBool: 1,
}

// Width returns the encoded size of a fixed-width type, or 0.
func (t Type) Width() int {
	return widths[t]
}

// IsSigned reports whether t is a two's complement integer type.
func (t Type) IsSigned() bool {
	switch t {
	case TypeI8, TypeI16, TypeI32, TypeI64:
		return true
	}
	return false
}

// IsSized reports whether t is a byte sequence whose length comes from the
// field size or a length prefix.
func (t Type) IsSized() bool {
	return t == TypeBytes || t == TypeString || t == TypeUTF16
}

func (t Type) valid() bool {
	return t.Width() > 0 || t.IsSized() || t == TypeUvarint || t == TypeVarint
}

// ErrInvalidLayout is returned for layouts that fail validation.
var ErrInvalidLayout = errors.New("layout: invalid layout")

// Field is one entry of a record layout.
type Field struct {
	Name string `yaml:"name"`
	Type Type   `yaml:"type"`

	// Order overrides the layout byte order for this field.
	Order string `yaml:"order,omitempty"`

	// Size is the byte length of a bytes, string or utf16 field.
	// Zero means the value is prefixed by its length as a uvarint.
	Size int `yaml:"size,omitempty"`

	order stream.ByteOrder
}

// ByteOrder returns the resolved byte order of the field.
// It is only meaningful after Validate.
func (f *Field) ByteOrder() stream.ByteOrder {
	return f.order
}

// Layout is a named, ordered list of fields.
type Layout struct {
	Name   string  `yaml:"name"`
	Order  string  `yaml:"order,omitempty"`
	Fields []Field `yaml:"fields"`
}

// Parse decodes a YAML layout and validates it.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: parse: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks names, types, byte orders and sizes, and resolves the
// byte order of every field.
func (l *Layout) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidLayout)
	}
	if len(l.Fields) == 0 {
		return fmt.Errorf("%w: %s has no fields", ErrInvalidLayout, l.Name)
	}
	order, err := stream.ParseByteOrder(l.Order)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidLayout, l.Name, err)
	}

	seen := make(map[string]bool, len(l.Fields))
	for i := range l.Fields {
		f := &l.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("%w: %s: field %d has no name", ErrInvalidLayout, l.Name, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidLayout, l.Name, f.Name)
		}
		seen[f.Name] = true

		if !f.Type.valid() {
			return fmt.Errorf("%w: %s.%s: unknown type %q", ErrInvalidLayout, l.Name, f.Name, f.Type)
		}
		if err := checkSize(f); err != nil {
			return fmt.Errorf("%w: %s.%s: %v", ErrInvalidLayout, l.Name, f.Name, err)
		}

		f.order = order
		if f.Order != "" {
			o, err := stream.ParseByteOrder(f.Order)
			if err != nil {
				return fmt.Errorf("%w: %s.%s: %v", ErrInvalidLayout, l.Name, f.Name, err)
			}
			f.order = o
		}
	}
	return nil
}

func checkSize(f *Field) error {
	switch {
	case f.Size < 0:
		return fmt.Errorf("negative size %d", f.Size)
	case f.Type.IsSized():
		if f.Type == TypeUTF16 && f.Size%2 != 0 {
			return fmt.Errorf("utf16 size %d is odd", f.Size)
		}
	case f.Size != 0 && f.Size != f.Type.Width():
		return fmt.Errorf("size %d does not match type %s", f.Size, f.Type)
	}
	return nil
}

// FixedSize returns the encoded size of a record when every field has a
// fixed width.
func (l *Layout) FixedSize() (int, bool) {
	total := 0
	for _, f := range l.Fields {
		switch {
		case f.Type.Width() > 0:
			total += f.Type.Width()
		case f.Type.IsSized() && f.Size > 0:
			total += f.Size
		default:
			return 0, false
		}
	}
	return total, true
}

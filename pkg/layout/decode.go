package layout

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/blockberries/sfstream/pkg/stream"
)

// FieldError reports the field that failed to decode or encode.
type FieldError struct {
	Layout string
	Field  string
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("layout: %s.%s at offset %d: %v", e.Layout, e.Field, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Decoder reads records described by a Layout.
type Decoder struct {
	layout *Layout
	logger *zap.Logger
}

// NewDecoder returns a decoder for l, which must have been validated.
// A nil logger disables logging.
func NewDecoder(l *Layout, logger *zap.Logger) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{
		layout: l,
		logger: logger.With(zap.String("layout", l.Name)),
	}
}

// Decode reads one record at the read position of s.
// On failure the read position is restored and the error is a *FieldError.
func (d *Decoder) Decode(s *stream.Stream) (Record, error) {
	start := s.ReadPosition()
	rec := make(Record, 0, len(d.layout.Fields))

	for i := range d.layout.Fields {
		f := &d.layout.Fields[i]
		offset := s.ReadPosition()
		v, err := decodeField(s, f)
		if err != nil {
			s.SetReadPosition(start)
			d.logger.Debug("decode failed",
				zap.String("field", f.Name),
				zap.Int("offset", offset),
				zap.Error(err))
			return nil, &FieldError{Layout: d.layout.Name, Field: f.Name, Offset: offset, Err: err}
		}
		rec = append(rec, Value{Name: f.Name, Label: Label(f.Name), Type: f.Type, Value: v})
	}

	d.logger.Debug("decoded record",
		zap.Int("offset", start),
		zap.Int("size", s.ReadPosition()-start))
	return rec, nil
}

// DecodeAll decodes records until the stream has no unread bytes.
// Records decoded before an error are returned with it.
func (d *Decoder) DecodeAll(s *stream.Stream) ([]Record, error) {
	var records []Record
	for s.Available() > 0 {
		rec, err := d.Decode(s)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeField(s *stream.Stream, f *Field) (any, error) {
	order := f.ByteOrder()
	switch f.Type {
	case TypeU8, TypeU16, TypeU32, TypeU64:
		return s.ReadUint(order, f.Type.Width())
	case TypeI8, TypeI16, TypeI32, TypeI64:
		return s.ReadInt(order, f.Type.Width())
	case TypeF32:
		bits, err := s.ReadUint(order, 4)
		if err != nil {
			return nil, err
		}
		return math.Float32frombits(uint32(bits)), nil
	case TypeF64:
		bits, err := s.ReadUint(order, 8)
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(bits), nil
	case TypeBool:
		return s.ReadBool()
	case TypeUvarint:
		return s.ReadUvarint()
	case TypeVarint:
		return s.ReadVarint()
	}

	n, err := sizedLength(s, f)
	if err != nil {
		return nil, err
	}
	switch f.Type {
	case TypeBytes:
		p, err := s.ReadData(n)
		if p == nil && err == nil {
			p = []byte{}
		}
		return p, err
	case TypeString:
		str, err := s.ReadString(n)
		if err != nil {
			return nil, err
		}
		return trimPadding(str, f), nil
	case TypeUTF16:
		str, err := s.ReadUTF16(n, order)
		if err != nil {
			return nil, err
		}
		return trimPadding(str, f), nil
	}
	return nil, fmt.Errorf("unsupported type %q", f.Type)
}

// sizedLength returns the byte length of a sized field, reading the uvarint
// prefix when the layout gives no size.
func sizedLength(s *stream.Stream, f *Field) (int, error) {
	if f.Size > 0 {
		return f.Size, nil
	}
	n, err := s.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if n > uint64(s.Available()) {
		return 0, fmt.Errorf("length %d exceeds %d available bytes: %w", n, s.Available(), stream.ErrInsufficientData)
	}
	return int(n), nil
}

// trimPadding drops the NUL padding of fixed-size text fields.
func trimPadding(str string, f *Field) string {
	if f.Size == 0 {
		return str
	}
	return strings.TrimRight(str, "\x00")
}

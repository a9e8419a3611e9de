package layout

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/blockberries/sfstream/pkg/stream"
)

// ErrMissingValue indicates a record without a value for a layout field.
var ErrMissingValue = errors.New("layout: missing value")

// Encoder writes records described by a Layout.
type Encoder struct {
	layout *Layout
	logger *zap.Logger
}

// NewEncoder returns an encoder for l, which must have been validated.
// A nil logger disables logging.
func NewEncoder(l *Layout, logger *zap.Logger) *Encoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Encoder{
		layout: l,
		logger: logger.With(zap.String("layout", l.Name)),
	}
}

// Encode returns the encoding of r. Values are matched to fields by name;
// extra values are ignored.
func (e *Encoder) Encode(r Record) ([]byte, error) {
	hint := 64
	if n, ok := e.layout.FixedSize(); ok {
		hint = n
	}
	s := stream.Get(hint)
	defer stream.Put(s)

	if err := e.EncodeTo(s, r); err != nil {
		return nil, err
	}
	out := make([]byte, s.Len())
	copy(out, s.Bytes())
	return out, nil
}

// EncodeTo writes r at the write position of s.
// On failure s may hold a partially written record.
func (e *Encoder) EncodeTo(s *stream.Stream, r Record) error {
	start := s.WritePosition()
	for i := range e.layout.Fields {
		f := &e.layout.Fields[i]
		v, ok := r.Get(f.Name)
		if !ok {
			return &FieldError{Layout: e.layout.Name, Field: f.Name, Offset: s.WritePosition(), Err: ErrMissingValue}
		}
		if err := encodeField(s, f, v); err != nil {
			return &FieldError{Layout: e.layout.Name, Field: f.Name, Offset: s.WritePosition(), Err: err}
		}
	}
	e.logger.Debug("encoded record",
		zap.Int("offset", start),
		zap.Int("size", s.WritePosition()-start))
	return nil
}

func encodeField(s *stream.Stream, f *Field, v any) error {
	order := f.ByteOrder()
	switch f.Type {
	case TypeU8, TypeU16, TypeU32, TypeU64:
		u, err := toUint64(v)
		if err != nil {
			return err
		}
		if w := f.Type.Width(); w < 8 && u >= 1<<(8*w) {
			return fmt.Errorf("value %d overflows %s", u, f.Type)
		}
		return s.WriteUint(order, f.Type.Width(), u)
	case TypeI8, TypeI16, TypeI32, TypeI64:
		i, err := toInt64(v)
		if err != nil {
			return err
		}
		if w := f.Type.Width(); w < 8 {
			limit := int64(1) << (8*w - 1)
			if i < -limit || i >= limit {
				return fmt.Errorf("value %d overflows %s", i, f.Type)
			}
		}
		return s.WriteInt(order, f.Type.Width(), i)
	case TypeF32:
		x, err := toFloat64(v)
		if err != nil {
			return err
		}
		return s.WriteUint(order, 4, uint64(math.Float32bits(float32(x))))
	case TypeF64:
		x, err := toFloat64(v)
		if err != nil {
			return err
		}
		return s.WriteUint(order, 8, math.Float64bits(x))
	case TypeBool:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("want bool, got %T", v)
		}
		return s.WriteBool(b)
	case TypeUvarint:
		u, err := toUint64(v)
		if err != nil {
			return err
		}
		return s.WriteUvarint(u)
	case TypeVarint:
		i, err := toInt64(v)
		if err != nil {
			return err
		}
		return s.WriteVarint(i)
	case TypeBytes, TypeString:
		var p []byte
		switch x := v.(type) {
		case []byte:
			p = x
		case string:
			p = []byte(x)
		default:
			return fmt.Errorf("want []byte or string, got %T", v)
		}
		return writeSized(s, f, p)
	case TypeUTF16:
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("want string, got %T", v)
		}
		scratch := stream.Get(2 * len(str))
		defer stream.Put(scratch)
		if _, err := scratch.WriteUTF16(str, order); err != nil {
			return err
		}
		return writeSized(s, f, scratch.Bytes())
	}
	return fmt.Errorf("unsupported type %q", f.Type)
}

// writeSized writes p with a uvarint length prefix, or padded with NULs to
// the field size.
func writeSized(s *stream.Stream, f *Field, p []byte) error {
	if f.Size == 0 {
		return s.WriteFrame(p)
	}
	if len(p) > f.Size {
		return fmt.Errorf("%d bytes do not fit in %d", len(p), f.Size)
	}
	if _, err := s.Write(p); err != nil {
		return err
	}
	for i := len(p); i < f.Size; i++ {
		if err := s.WriteByte(0); err != nil {
			return err
		}
	}
	return nil
}

func toUint64(v any) (uint64, error) {
	switch x := v.(type) {
	case uint64:
		return x, nil
	case uint:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case int, int8, int16, int32, int64:
		i, _ := toInt64(x)
		if i < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned field", i)
		}
		return uint64(i), nil
	}
	return 0, fmt.Errorf("want unsigned integer, got %T", v)
}

func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", x)
		}
		return int64(x), nil
	}
	return 0, fmt.Errorf("want integer, got %T", v)
}

func toFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	}
	if i, err := toInt64(v); err == nil {
		return float64(i), nil
	}
	return 0, fmt.Errorf("want float, got %T", v)
}

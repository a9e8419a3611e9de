package layout

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Value is one decoded field.
//
// Value holds uint64 for unsigned integers and uvarints, int64 for signed
// integers and varints, float32, float64, bool, []byte for bytes and
// string for string and utf16 fields.
type Value struct {
	Name  string
	Label string
	Type  Type
	Value any
}

// Record is the ordered list of field values of one decoded record.
type Record []Value

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, v := range r {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// Format writes one "Label: value" line per field.
func (r Record) Format(w io.Writer) error {
	width := 0
	for _, v := range r {
		width = max(width, len(v.Label))
	}
	for _, v := range r {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width+1, v.Label+":", formatValue(v)); err != nil {
			return err
		}
	}
	return nil
}

func (r Record) String() string {
	var sb strings.Builder
	r.Format(&sb)
	return sb.String()
}

func formatValue(v Value) string {
	switch x := v.Value.(type) {
	case []byte:
		return fmt.Sprintf("%x", x)
	case string:
		return fmt.Sprintf("%q", x)
	case uint64:
		return fmt.Sprintf("%d (%#x)", x, x)
	default:
		return fmt.Sprint(x)
	}
}

// Label converts a field name such as "payload_size" or "payloadSize"
// into "Payload Size".
func Label(name string) string {
	// A Caser is stateful, so each call gets its own.
	titleCaser := cases.Title(language.English)
	parts := splitName(name)
	for i, p := range parts {
		parts[i] = titleCaser.String(strings.ToLower(p))
	}
	return strings.Join(parts, " ")
}

// splitName splits on separators and lower-to-upper case transitions.
func splitName(s string) []string {
	var parts []string
	var current strings.Builder
	var prev rune

	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) && current.Len() > 0:
			parts = append(parts, current.String())
			current.Reset()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

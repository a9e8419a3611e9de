package stream

import (
	"bytes"
	"errors"
	"testing"
)

func TestViewValidAcrossInPlaceWrites(t *testing.T) {
	s := New(64)
	s.WriteString("hello")

	v := s.Borrow()
	if !v.Valid() || v.Len() != 5 || v.Offset() != 0 {
		t.Fatalf("Borrow() = {valid: %v, len: %d, offset: %d}", v.Valid(), v.Len(), v.Offset())
	}

	s.WriteString(" world")
	if !v.Valid() {
		t.Error("write within capacity invalidated the view")
	}
	if string(v.Bytes()) != "hello" {
		t.Errorf("Bytes() = %q, want %q", v.Bytes(), "hello")
	}
}

func TestViewInvalidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Stream)
	}{
		{"growth", func(s *Stream) { s.Write(make([]byte, 100)) }},
		{"purge", func(s *Stream) { s.ReadByte(); s.PurgeReadBytes() }},
		{"reset", func(s *Stream) { s.Reset() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(8)
			s.WriteString("abcd")
			v := s.Borrow()

			tt.mutate(s)

			if v.Valid() {
				t.Fatal("view still valid after mutation")
			}
			if _, ok := v.TryBytes(); ok {
				t.Error("TryBytes() reported ok")
			}
			if _, err := v.Copy(); !errors.Is(err, ErrViewInvalidated) {
				t.Errorf("Copy() error = %v, want ErrViewInvalidated", err)
			}
			if !IsFatal(ErrViewInvalidated) {
				t.Error("ErrViewInvalidated should be fatal")
			}
			if len(v.UnsafeBytes()) != 4 {
				t.Errorf("UnsafeBytes() len = %d, want 4", len(v.UnsafeBytes()))
			}

			defer func() {
				if recover() == nil {
					t.Error("Bytes() on invalid view did not panic")
				}
			}()
			_ = v.Bytes()
		})
	}
}

func TestViewCopyOutlivesStream(t *testing.T) {
	s := NewFromBytes([]byte("data"))
	v := s.Borrow()
	c, err := v.Copy()
	if err != nil {
		t.Fatal(err)
	}
	s.Reset()
	s.WriteString("XXXX")
	if !bytes.Equal(c, []byte("data")) {
		t.Errorf("copy = %q, want %q", c, "data")
	}
}

func TestBorrowAt(t *testing.T) {
	s := NewFromBytes(seq(6))
	v, err := s.BorrowAt(4)
	if err != nil {
		t.Fatal(err)
	}
	if v.Offset() != 4 || !bytes.Equal(v.Bytes(), []byte{4, 5}) {
		t.Errorf("BorrowAt(4) = offset %d, %v", v.Offset(), v.Bytes())
	}

	v, err = s.BorrowAt(6)
	if err != nil || !v.IsEmpty() {
		t.Errorf("BorrowAt(Len()) = %v, %v; want empty view", v.Len(), err)
	}

	for _, off := range []int{-1, 7} {
		if _, err := s.BorrowAt(off); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("BorrowAt(%d) error = %v, want ErrOutOfBounds", off, err)
		}
	}
}

func TestZeroView(t *testing.T) {
	var v View
	if !v.Valid() || !v.IsEmpty() || v.Len() != 0 {
		t.Error("zero View should be a valid empty view")
	}
}

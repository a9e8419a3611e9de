package stream

// View is a borrowed, read-only window into a Stream's storage.
// It records the stream generation at the time it was taken and refuses
// access once the stream has been reallocated, purged or reset.
//
// Writes that fit in the current capacity do not invalidate a View, but
// they may change the bytes it shows.
type View struct {
	b          []byte
	offset     int
	generation uint64
	owner      *buffer
}

// Borrow returns a View of the unread bytes.
func (s *Stream) Borrow() View {
	return View{
		b:          s.data[s.rpos:s.length:s.length],
		offset:     s.rpos,
		generation: s.generation,
		owner:      &s.buffer,
	}
}

// BorrowAt returns a View of the valid bytes starting at the absolute offset.
func (s *Stream) BorrowAt(offset int) (View, error) {
	if offset < 0 || offset > s.length {
		return View{}, NewDecodeErrorAt("BorrowAt", offset, "offset outside valid data", ErrOutOfBounds)
	}
	return View{
		b:          s.data[offset:s.length:s.length],
		offset:     offset,
		generation: s.generation,
		owner:      &s.buffer,
	}, nil
}

// Valid returns true if the stream has not been reallocated, purged or
// reset since the View was taken.
func (v View) Valid() bool {
	return v.owner == nil || v.owner.generation == v.generation
}

// Bytes returns the viewed bytes, panicking if the View is no longer valid.
func (v View) Bytes() []byte {
	if !v.Valid() {
		panic("sfstream: View accessed after the stream buffer was reallocated, purged or reset")
	}
	return v.b
}

// TryBytes returns the viewed bytes and whether the View is still valid.
func (v View) TryBytes() ([]byte, bool) {
	if !v.Valid() {
		return nil, false
	}
	return v.b, true
}

// Copy returns a copy of the viewed bytes that outlives the stream state.
func (v View) Copy() ([]byte, error) {
	if !v.Valid() {
		return nil, ErrViewInvalidated
	}
	out := make([]byte, len(v.b))
	copy(out, v.b)
	return out, nil
}

// UnsafeBytes returns the underlying slice without validation.
// Only use this if you have externally guaranteed the stream was not mutated.
func (v View) UnsafeBytes() []byte {
	return v.b
}

// Offset returns the absolute stream offset of the first viewed byte.
func (v View) Offset() int {
	return v.offset
}

// Len returns the number of viewed bytes.
func (v View) Len() int {
	return len(v.b)
}

// IsEmpty returns true if the View holds no bytes.
func (v View) IsEmpty() bool {
	return len(v.b) == 0
}

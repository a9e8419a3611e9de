package stream

// buffer owns the backing storage of a Stream.
// len(data) is the capacity; data[:length] holds valid bytes.
type buffer struct {
	data   []byte
	length int
	opts   Options

	// generation is incremented whenever data is reallocated, compacted or
	// logically emptied, invalidating every View handed out before.
	generation uint64
}

// Cap returns the total capacity of the storage in bytes.
// Capacity is allocated memory, not valid data; see Len.
func (b *buffer) Cap() int {
	return len(b.data)
}

// Len returns the number of bytes holding valid data.
func (b *buffer) Len() int {
	return b.length
}

// Generation returns the current generation counter.
func (b *buffer) Generation() uint64 {
	return b.generation
}

// ensure grows the storage so that offsets below end are addressable.
// It returns the end actually available, which is smaller than end only
// when Limits.MaxCapacity prevents the growth.
func (b *buffer) ensure(end int) int {
	if end <= len(b.data) {
		return end
	}
	limit := b.opts.Limits.MaxCapacity
	if limit > 0 && len(b.data) >= limit {
		return len(b.data)
	}

	// Grow by doubling, with a minimum growth
	newCap := len(b.data) * 2
	if newCap < b.opts.MinGrowth {
		newCap = b.opts.MinGrowth
	}
	if newCap < end {
		newCap = end
	}
	if limit > 0 && newCap > limit {
		newCap = limit
	}

	newData := make([]byte, newCap)
	copy(newData, b.data[:b.length])
	b.data = newData
	b.generation++

	if end > newCap {
		return newCap
	}
	return end
}

// discard drops the first n valid bytes and moves the rest to offset 0.
func (b *buffer) discard(n int) {
	if n <= 0 {
		return
	}
	copy(b.data, b.data[n:b.length])
	b.length -= n
	b.generation++
}

// truncate empties the buffer without releasing its storage.
func (b *buffer) truncate() {
	b.length = 0
	b.generation++
}

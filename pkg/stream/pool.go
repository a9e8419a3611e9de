package stream

import "sync"

// Size-tiered stream pools for efficient memory reuse.
// Streams are pooled by capacity: 64, 256, 1024, 4096, 16384, 65536 bytes.
var streamPools = [6]sync.Pool{
	{New: func() any { return New(64) }},
	{New: func() any { return New(256) }},
	{New: func() any { return New(1024) }},
	{New: func() any { return New(4096) }},
	{New: func() any { return New(16384) }},
	{New: func() any { return New(65536) }},
}

// poolSizes maps pool index to capacity.
var poolSizes = [6]int{64, 256, 1024, 4096, 16384, 65536}

// poolIndex returns the smallest pool whose streams hold size bytes.
func poolIndex(size int) int {
	for i, c := range poolSizes {
		if size <= c {
			return i
		}
	}
	return -1 // Too large for pooling
}

// putIndex returns the largest pool whose capacity c satisfies.
func putIndex(c int) int {
	for i := len(poolSizes) - 1; i >= 0; i-- {
		if c >= poolSizes[i] {
			return i
		}
	}
	return -1
}

// Get returns an empty stream with at least sizeHint bytes of capacity,
// reusing pooled storage when possible. Return it with Put when done.
func Get(sizeHint int) *Stream {
	idx := poolIndex(sizeHint)
	if idx < 0 {
		return New(sizeHint)
	}
	s := streamPools[idx].Get().(*Stream)
	s.Reset()
	s.opts = DefaultOptions
	return s
}

// Put returns a stream to the pool. The stream and every slice or View
// obtained from it must not be used afterwards.
// Streams larger than 64KB are left to the garbage collector.
func Put(s *Stream) {
	if s == nil {
		return
	}
	c := s.Cap()
	if c > poolSizes[len(poolSizes)-1] {
		return
	}
	idx := putIndex(c)
	if idx < 0 {
		return
	}
	s.Reset()
	streamPools[idx].Put(s)
}

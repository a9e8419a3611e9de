package stream

import "testing"

func TestPool(t *testing.T) {
	s := Get(100)
	if s == nil {
		t.Fatal("Get() returned nil")
	}
	if s.Cap() < 100 {
		t.Errorf("Cap() = %d, want >= 100", s.Cap())
	}
	s.WriteUint32BE(42)
	s.SetOptions(SecureOptions)
	Put(s)

	s2 := Get(100)
	if s2.Len() != 0 || s2.ReadPosition() != 0 || s2.WritePosition() != 0 {
		t.Errorf("pooled stream not reset: %s", s2)
	}
	if s2.Options() != DefaultOptions {
		t.Error("pooled stream kept caller options")
	}
	Put(s2)

	// Put with nil should not panic
	Put(nil)
}

func TestPoolLargeStream(t *testing.T) {
	s := Get(1 << 20)
	if s.Cap() < 1<<20 {
		t.Errorf("Cap() = %d, want >= %d", s.Cap(), 1<<20)
	}
	Put(s)
}

func TestPoolIndex(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{-1, 0},
		{0, 0},
		{64, 0},
		{65, 1},
		{4096, 3},
		{65536, 5},
		{65537, -1},
	}
	for _, tt := range tests {
		if got := poolIndex(tt.size); got != tt.want {
			t.Errorf("poolIndex(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestPutIndex(t *testing.T) {
	tests := []struct {
		cap  int
		want int
	}{
		{0, -1},
		{63, -1},
		{64, 0},
		{100, 0},
		{256, 1},
		{70000, 5},
	}
	for _, tt := range tests {
		if got := putIndex(tt.cap); got != tt.want {
			t.Errorf("putIndex(%d) = %d, want %d", tt.cap, got, tt.want)
		}
	}
}

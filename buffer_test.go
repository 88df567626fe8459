package mmring

import (
	"bytes"
	"errors"
	"testing"
)

// helper to create a buffer over a heap region with the given capacity
func newTestBuffer(t *testing.T, capacity int) *Buffer {
	t.Helper()
	b, err := New(NewMemRegion(capacity), capacity)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	return b
}

func TestNewEmptyState(t *testing.T) {
	for _, capacity := range []int{1, 2, 16, 4096} {
		b := newTestBuffer(t, capacity)
		if b.Len() != 0 {
			t.Fatalf("cap %d: expected Len 0, got %d", capacity, b.Len())
		}
		if !b.IsEmpty() {
			t.Fatalf("cap %d: fresh buffer should be empty", capacity)
		}
		if b.IsFull() {
			t.Fatalf("cap %d: fresh buffer should not be full", capacity)
		}
		if b.Cap() != capacity || b.Free() != capacity {
			t.Fatalf("cap %d: got Cap %d Free %d", capacity, b.Cap(), b.Free())
		}
	}
}

func TestNewSizeMismatch(t *testing.T) {
	if _, err := New(NewMemRegion(10), 16); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch for short region, got %v", err)
	}
	if _, err := New(NewMemRegion(32), 16); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch for long region, got %v", err)
	}
	if _, err := New(NewMemRegion(0), 0); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch for zero capacity, got %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	const capacity = 64
	b := newTestBuffer(t, capacity)

	payload := make([]byte, capacity)
	for i := range payload {
		payload[i] = byte(i)
	}
	if n := b.Write(payload); n != capacity {
		t.Fatalf("Write returned %d, want %d", n, capacity)
	}
	if !b.IsFull() {
		t.Fatalf("buffer should be full after writing %d bytes", capacity)
	}

	got := make([]byte, capacity)
	if n := b.Read(got); n != capacity {
		t.Fatalf("Read returned %d, want %d", n, capacity)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch after round trip")
	}
	if !b.IsEmpty() {
		t.Fatalf("buffer should be empty after draining")
	}
}

func TestOverflowKeepsLatest(t *testing.T) {
	const (
		capacity = 32
		extra    = 13
	)
	b := newTestBuffer(t, capacity)

	payload := make([]byte, capacity+extra)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	b.Write(payload)

	got := make([]byte, capacity)
	if n := b.Read(got); n != capacity {
		t.Fatalf("Read returned %d, want %d", n, capacity)
	}
	if !bytes.Equal(got, payload[extra:]) {
		t.Fatalf("expected the last %d bytes to survive overflow", capacity)
	}
}

func TestOverflowOneByte(t *testing.T) {
	b := newTestBuffer(t, 16)

	b.Write([]byte("0123456789abcdef"))
	if !b.IsFull() {
		t.Fatalf("buffer should be full")
	}
	b.Write([]byte("X"))

	got := make([]byte, 16)
	if n := b.Read(got); n != 16 {
		t.Fatalf("Read returned %d, want 16", n)
	}
	if string(got) != "123456789abcdefX" {
		t.Fatalf("expected oldest byte evicted, got %q", got)
	}
}

func TestWriteLongerThanCapacity(t *testing.T) {
	b := newTestBuffer(t, 8)

	payload := []byte("abcdefghijklmnopqrst") // 20 bytes
	if n := b.Write(payload); n != len(payload) {
		t.Fatalf("Write returned %d, want %d", n, len(payload))
	}
	got := make([]byte, 8)
	if n := b.Read(got); n != 8 {
		t.Fatalf("Read returned %d, want 8", n)
	}
	if string(got) != "mnopqrst" {
		t.Fatalf("expected trailing 8 bytes, got %q", got)
	}
}

func TestInterleavedFIFO(t *testing.T) {
	b := newTestBuffer(t, 8)

	b.Write([]byte("abcde"))
	got := make([]byte, 3)
	if n := b.Read(got); n != 3 || string(got) != "abc" {
		t.Fatalf("first read: got %d %q", n, got[:n])
	}

	b.Write([]byte("fghij")) // wraps around the region end
	if b.Len() != 7 {
		t.Fatalf("expected 7 unread bytes, got %d", b.Len())
	}

	rest := make([]byte, 16)
	n := b.Read(rest)
	if n != 7 || string(rest[:n]) != "defghij" {
		t.Fatalf("interleaved read: got %d %q", n, rest[:n])
	}
}

func TestShortRead(t *testing.T) {
	b := newTestBuffer(t, 32)
	b.Write([]byte("hello"))

	got := make([]byte, 32)
	if n := b.Read(got); n != 5 {
		t.Fatalf("expected short read of 5, got %d", n)
	}
	if n := b.Read(got); n != 0 {
		t.Fatalf("read on empty buffer should return 0, got %d", n)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	b := newTestBuffer(t, 16)
	b.Write([]byte("peekable"))

	first := make([]byte, 8)
	second := make([]byte, 8)
	if n := b.Peek(first); n != 8 {
		t.Fatalf("peek returned %d", n)
	}
	if n := b.Peek(second); n != 8 {
		t.Fatalf("second peek returned %d", n)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("peeks disagree: %q vs %q", first, second)
	}
	if b.Len() != 8 {
		t.Fatalf("peek must not consume, Len now %d", b.Len())
	}
}

func TestReset(t *testing.T) {
	b := newTestBuffer(t, 8)
	b.Write([]byte("abcdef"))
	b.Reset()

	if !b.IsEmpty() || b.Len() != 0 {
		t.Fatalf("buffer not empty after reset")
	}
	// cursors rewound: a fresh write reads back unchanged
	b.Write([]byte("xy"))
	got := make([]byte, 2)
	if n := b.Read(got); n != 2 || string(got) != "xy" {
		t.Fatalf("write after reset: got %d %q", n, got[:n])
	}
}

// failRegion reports a device error on every Flush.
type failRegion struct {
	data []byte
	err  error
}

func (r *failRegion) Bytes() []byte { return r.data }
func (r *failRegion) Flush() error  { return r.err }

func TestFlushFailureSurfacedStateIntact(t *testing.T) {
	devErr := errors.New("device error")
	region := &failRegion{data: make([]byte, 16), err: devErr}
	b, err := New(region, 16)
	if err != nil {
		t.Fatalf("new buffer: %v", err)
	}
	b.Write([]byte("abcdefgh"))

	if err := b.Flush(); !errors.Is(err, devErr) {
		t.Fatalf("expected the region error surfaced verbatim, got %v", err)
	}
	// reported once per call, never retried or latched internally
	if err := b.Flush(); !errors.Is(err, devErr) {
		t.Fatalf("expected the error again on the next call, got %v", err)
	}

	// a failed flush only affects durability; head/tail/count are untouched
	if b.Len() != 8 {
		t.Fatalf("Len changed after failed flush: %d", b.Len())
	}
	got := make([]byte, 8)
	if n := b.Read(got); n != 8 || string(got) != "abcdefgh" {
		t.Fatalf("contents changed after failed flush: %d %q", n, got[:n])
	}
}

func TestFlushMemRegionNoop(t *testing.T) {
	b := newTestBuffer(t, 8)
	b.Write([]byte("data"))
	if err := b.Flush(); err != nil {
		t.Fatalf("flush on heap region must not fail: %v", err)
	}
}

func TestStatsCounting(t *testing.T) {
	b := newTestBuffer(t, 4)

	b.Write([]byte("abcdef")) // 6 bytes into cap 4: 2 evicted immediately
	b.Write([]byte("gh"))     // full buffer: 2 more evicted
	got := make([]byte, 4)
	if n := b.Read(got); n != 4 || string(got) != "efgh" {
		t.Fatalf("read after evictions: got %d %q", n, got[:n])
	}

	st := b.GetStats()
	if st.BytesWritten != 8 || st.BytesRead != 4 || st.BytesEvicted != 4 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if st.EvictionRatio != 50.0 {
		t.Fatalf("expected eviction ratio 50, got %v", st.EvictionRatio)
	}

	b.ResetStats()
	st = b.GetStats()
	if st.BytesWritten != 0 || st.BytesRead != 0 || st.BytesEvicted != 0 || st.Flushes != 0 {
		t.Fatalf("stats not reset: %+v", st)
	}
}

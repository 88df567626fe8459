package mmring

import (
	"fmt"
	"sync/atomic"
)

// Buffer is a fixed-capacity circular byte FIFO over a caller-supplied
// Region. Writes append at the head cursor and, once the buffer is full,
// overwrite the oldest unread bytes by advancing the tail: the producer
// never blocks and the buffer never grows. Reads consume from the tail in
// write order and never block either; they return fewer bytes (possibly
// zero) when less data is stored.
//
// A Buffer is NOT safe for concurrent mutation: callers either follow a
// single-writer/single-reader discipline or wrap the buffer in a
// LockedBuffer. Concurrent Peek calls with no writer in flight are safe.
// Sharing the backing region across processes additionally requires external
// coordination that this package does not provide.
type Buffer struct {
	region   Region
	capacity int

	head  int // next write offset, in [0, capacity)
	tail  int // oldest unread offset, in [0, capacity)
	count int // valid unread bytes, in [0, capacity]

	// statistik (atomic agar snapshot murah dari goroutine lain)
	statWritten uint64
	statRead    uint64
	statEvicted uint64
	statFlushes uint64
}

// New constructs an empty Buffer over region. The region length must equal
// capacity exactly; anything else fails with ErrSizeMismatch. The buffer
// retains the region but does not own its lifecycle.
func New(region Region, capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity harus positif, dapat %d", ErrSizeMismatch, capacity)
	}
	if got := len(region.Bytes()); got != capacity {
		return nil, fmt.Errorf("%w: region %d byte, capacity %d", ErrSizeMismatch, got, capacity)
	}
	return &Buffer{region: region, capacity: capacity}, nil
}

// Write appends p to the buffer. Input of any length is accepted: once the
// buffer is full the oldest unread bytes are evicted to make room, and input
// longer than the capacity keeps only its trailing capacity bytes. After the
// call the most recent min(len(p), capacity) bytes are readable in original
// order. Returns len(p); Write never fails and never blocks.
func (b *Buffer) Write(p []byte) int {
	n := len(p)
	if n == 0 {
		return 0
	}
	data := b.region.Bytes()
	atomic.AddUint64(&b.statWritten, uint64(n))

	if n >= b.capacity {
		// Everything previously stored plus the leading part of p is
		// evicted; the region ends up holding exactly the tail of p.
		atomic.AddUint64(&b.statEvicted, uint64(b.count+n-b.capacity))
		copy(data, p[n-b.capacity:])
		b.head = 0
		b.tail = 0
		b.count = b.capacity
		return n
	}

	// At most two copies: up to the end of the region, then wrap to 0.
	first := b.capacity - b.head
	if first > n {
		first = n
	}
	copy(data[b.head:], p[:first])
	copy(data, p[first:])
	b.head = (b.head + n) % b.capacity

	if overflow := b.count + n - b.capacity; overflow > 0 {
		// full: tail chases head, dropping the oldest bytes
		b.tail = (b.tail + overflow) % b.capacity
		b.count = b.capacity
		atomic.AddUint64(&b.statEvicted, uint64(overflow))
	} else {
		b.count += n
	}
	return n
}

// Read copies up to min(len(p), Len()) bytes into p in FIFO order, consumes
// them, and returns the number copied. An empty buffer yields 0, not an
// error. Read never fails and never blocks.
func (b *Buffer) Read(p []byte) int {
	n := b.copyOut(p)
	if n > 0 {
		b.tail = (b.tail + n) % b.capacity
		b.count -= n
		atomic.AddUint64(&b.statRead, uint64(n))
	}
	return n
}

// Peek is Read without consuming: the same bytes remain readable afterwards.
func (b *Buffer) Peek(p []byte) int {
	return b.copyOut(p)
}

func (b *Buffer) copyOut(p []byte) int {
	n := len(p)
	if n > b.count {
		n = b.count
	}
	if n == 0 {
		return 0
	}
	data := b.region.Bytes()
	first := b.capacity - b.tail
	if first > n {
		first = n
	}
	copy(p[:first], data[b.tail:b.tail+first])
	copy(p[first:n], data)
	return n
}

// Len returns the number of valid unread bytes stored.
func (b *Buffer) Len() int { return b.count }

// Cap returns the fixed capacity in bytes.
func (b *Buffer) Cap() int { return b.capacity }

// Free returns how many bytes can be written before eviction starts.
func (b *Buffer) Free() int { return b.capacity - b.count }

// IsEmpty reports whether no unread bytes are stored.
func (b *Buffer) IsEmpty() bool { return b.count == 0 }

// IsFull reports whether the next write will evict.
func (b *Buffer) IsFull() bool { return b.count == b.capacity }

// Reset discards all unread bytes and rewinds both cursors to zero. Region
// bytes are left as-is.
func (b *Buffer) Reset() {
	b.head = 0
	b.tail = 0
	b.count = 0
}

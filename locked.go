package mmring

import "sync"

// LockedBuffer wraps a Buffer with an RWMutex so multiple goroutines can
// share it without arranging their own discipline. Both operations stay
// non-blocking in the buffer sense: Write evicts instead of waiting for
// space and Read returns short instead of waiting for data; the lock only
// serialises access.
type LockedBuffer struct {
	mu  sync.RWMutex
	buf *Buffer
}

// NewLocked wraps b. The caller must stop using b directly afterwards.
func NewLocked(b *Buffer) *LockedBuffer {
	return &LockedBuffer{buf: b}
}

// Write appends p under the write lock. See Buffer.Write.
func (l *LockedBuffer) Write(p []byte) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

// Read consumes into p under the write lock (it mutates the tail cursor).
func (l *LockedBuffer) Read(p []byte) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Read(p)
}

// Peek copies without consuming; concurrent Peeks share the read lock.
func (l *LockedBuffer) Peek(p []byte) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Peek(p)
}

// Reset discards all unread bytes.
func (l *LockedBuffer) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.Reset()
}

// Flush forces region durability while excluding writers.
func (l *LockedBuffer) Flush() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Flush()
}

// SaveCursor persists the cursors while excluding writers.
func (l *LockedBuffer) SaveCursor(path string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.SaveCursor(path)
}

// RestoreCursor loads cursors under the write lock.
func (l *LockedBuffer) RestoreCursor(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.RestoreCursor(path)
}

// Len returns the number of valid unread bytes stored.
func (l *LockedBuffer) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Len()
}

// Cap returns the fixed capacity in bytes.
func (l *LockedBuffer) Cap() int {
	return l.buf.Cap()
}

// Free returns how many bytes can be written before eviction starts.
func (l *LockedBuffer) Free() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Free()
}

// IsEmpty reports whether no unread bytes are stored.
func (l *LockedBuffer) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.IsEmpty()
}

// IsFull reports whether the next write will evict.
func (l *LockedBuffer) IsFull() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.IsFull()
}

// GetStats snapshots the wrapped buffer's counters.
func (l *LockedBuffer) GetStats() Stats {
	return l.buf.GetStats()
}

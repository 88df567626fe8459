package mmring

import "sync/atomic"

// Stats menyimpan statistik kumulatif buffer.
// EvictionRatio dalam persentase (0-100) terhadap total byte yang ditulis.
type Stats struct {
	BytesWritten  uint64
	BytesRead     uint64
	BytesEvicted  uint64
	Flushes       uint64
	EvictionRatio float64
}

// GetStats mengambil snapshot statistik tanpa lock berat.
func (b *Buffer) GetStats() Stats {
	written := atomic.LoadUint64(&b.statWritten)
	evicted := atomic.LoadUint64(&b.statEvicted)
	ratio := 0.0
	if written > 0 {
		ratio = float64(evicted) / float64(written) * 100.0
	}
	return Stats{
		BytesWritten:  written,
		BytesRead:     atomic.LoadUint64(&b.statRead),
		BytesEvicted:  evicted,
		Flushes:       atomic.LoadUint64(&b.statFlushes),
		EvictionRatio: ratio,
	}
}

// ResetStats mengatur ulang semua penghitung.
func (b *Buffer) ResetStats() {
	atomic.StoreUint64(&b.statWritten, 0)
	atomic.StoreUint64(&b.statRead, 0)
	atomic.StoreUint64(&b.statEvicted, 0)
	atomic.StoreUint64(&b.statFlushes, 0)
}

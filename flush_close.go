package mmring

import (
	"fmt"
	"sync/atomic"
)

// Flush memaksa byte yang sudah ditulis ke region tersimpan durable di
// backing storage. No-op untuk region tanpa backing file. Kegagalan
// dilaporkan sekali per panggilan dan tidak pernah di-retry internal;
// state head/tail/count tidak terpengaruh oleh kegagalan flush.
func (b *Buffer) Flush() error {
	atomic.AddUint64(&b.statFlushes, 1)
	if err := b.region.Flush(); err != nil {
		return fmt.Errorf("gagal flush region: %w", err)
	}
	return nil
}

// Flush menulis isi region ke disk: msync untuk region mmap, write-back +
// fsync untuk buffered mode.
func (r *FileRegion) Flush() error {
	if r.mapped {
		if err := syncRegion(r.data); err != nil {
			return fmt.Errorf("gagal msync region: %w", err)
		}
		return nil
	}
	if _, err := r.file.WriteAt(r.data, 0); err != nil {
		return fmt.Errorf("gagal menulis balik region: %w", err)
	}
	if err := r.file.Sync(); err != nil {
		return fmt.Errorf("gagal sync region: %w", err)
	}
	return nil
}

// Close menutup semua sumber daya (file & mmap) milik region. Setelah Close,
// slice Bytes tidak boleh dipakai lagi.
func (r *FileRegion) Close() error {
	var firstErr error
	if r.mapped {
		if err := unmapRegion(r.data); err != nil {
			firstErr = fmt.Errorf("gagal unmap region: %w", err)
		}
	}
	if err := r.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("gagal menutup file region: %w", err)
	}
	r.data = nil
	return firstErr
}

//go:build unix

package mmring

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapRegion maps the file's [0, size) range as readable-writable shared
// memory. MAP_SHARED ensures writes are carried through to the backing file
// and are visible to other mappings of the same file.
func mapRegion(f *os.File, size int64) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

// syncRegion flushes mapped pages back to the backing file synchronously.
func syncRegion(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

// unmapRegion releases the mapping. The slice must not be used afterwards.
func unmapRegion(data []byte) error {
	return unix.Munmap(data)
}

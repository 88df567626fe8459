package mmring

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"
)

// cursor sidecar layout: 28 bytes (little-endian)
// 0..7   : uint64 head (next write offset)
// 8..15  : uint64 tail (oldest unread offset)
// 16..23 : uint64 count (valid unread bytes)
// 24..27 : uint32 CRC32-IEEE over bytes 0..23
//
// The sidecar is deliberately separate from the ring region itself: the
// region holds only raw ring contents, so the logical position is lost on
// reopen unless the caller saved it here.

const cursorFileSize = 28

// CursorPath returns the conventional sidecar path for a backing file.
func CursorPath(base string) string { return base + ".cursor" }

// SaveCursor persists the buffer's head/tail/count to a sidecar file so a
// later process can resume where this one stopped. Call it after Flush; the
// sidecar is only meaningful if the region bytes it describes are durable.
func (b *Buffer) SaveCursor(path string) error {
	buf := make([]byte, cursorFileSize)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(b.head))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(b.tail))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(b.count))
	crc := crc32.ChecksumIEEE(buf[:24])
	binary.LittleEndian.PutUint32(buf[24:28], crc)
	if err := os.WriteFile(path, buf, 0o666); err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}
	return nil
}

// RestoreCursor loads head/tail/count from a sidecar written by SaveCursor.
// A truncated file, CRC mismatch, or cursors violating the buffer invariants
// fail with ErrCursorInvalid and leave the buffer state untouched.
func (b *Buffer) RestoreCursor(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load cursor: %w", err)
	}
	if len(data) < cursorFileSize {
		return fmt.Errorf("%w: file too small (%d bytes)", ErrCursorInvalid, len(data))
	}
	if crc32.ChecksumIEEE(data[:24]) != binary.LittleEndian.Uint32(data[24:28]) {
		return fmt.Errorf("%w: CRC mismatch", ErrCursorInvalid)
	}

	head := binary.LittleEndian.Uint64(data[0:8])
	tail := binary.LittleEndian.Uint64(data[8:16])
	count := binary.LittleEndian.Uint64(data[16:24])

	cap64 := uint64(b.capacity)
	if head >= cap64 || tail >= cap64 || count > cap64 {
		return fmt.Errorf("%w: cursors out of range for capacity %d", ErrCursorInvalid, b.capacity)
	}
	if (tail+count)%cap64 != head {
		return fmt.Errorf("%w: head/tail/count inconsistent", ErrCursorInvalid)
	}

	b.head = int(head)
	b.tail = int(tail)
	b.count = int(count)
	return nil
}

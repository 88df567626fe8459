package mmring

import "errors"

var (
	// ErrSizeMismatch is returned when a region's length does not equal the
	// declared capacity, or when an existing backing file has a different
	// size than requested. The region is never resized to compensate.
	ErrSizeMismatch = errors.New("mmring: region size mismatch")

	// ErrMmapUnsupported is returned by OpenFileRegion with UseMmap enabled
	// on platforms without mmap support.
	ErrMmapUnsupported = errors.New("mmring: mmap not supported on this platform")

	// ErrCursorInvalid is returned by RestoreCursor when the sidecar file is
	// truncated, fails its checksum, or holds cursors that violate the
	// buffer's invariants.
	ErrCursorInvalid = errors.New("mmring: invalid cursor sidecar")
)
